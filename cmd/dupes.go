package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/fsutils/scan"
	"github.com/lepinkainen/fsutils/types"
	"github.com/lepinkainen/fsutils/ui"
)

// DupesCmd scans a directory tree for files with identical content.
type DupesCmd struct {
	Directory  string `arg:"" name:"directory" help:"Directory to scan for duplicates" type:"path" default:"."`
	NoTUI      bool   `name:"no-tui" help:"Disable interactive TUI and just list duplicates"`
	NoProgress bool   `name:"no-progress" help:"Disable the progress bar while hashing"`
}

func (cmd *DupesCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("fsutils %s", appCtx.VersionOrDefault())))
	fmt.Printf("Scanning %s for duplicates...\n", cmd.Directory)

	var bar *progressbar.ProgressBar
	opts := scan.Options{}
	if !cmd.NoProgress {
		opts.Progress = func(hashed, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "hashing")
			}
			_ = bar.Set(hashed)
		}
	}

	res, err := scan.FindDuplicatesWithOptions(cmd.Directory, opts)
	if err != nil {
		return fmt.Errorf("failed to find duplicates: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	for _, w := range res.Warnings {
		fmt.Printf("%s\n", ui.WarningStyle.Render(fmt.Sprintf("⚠️  Skipped %s: %v", w.Path, w.Err)))
	}

	if len(res.Groups) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found"))
		return nil
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d duplicate file(s) in %d group(s)",
		res.DuplicateCount(), len(res.Groups))))
	fmt.Printf("Total space scanned: %s\n", humanize.IBytes(uint64(res.TotalSize)))
	fmt.Printf("Potential space savings: %s\n", humanize.IBytes(uint64(res.DuplicateSize)))

	// Plain read-only report, never touches the file system
	if cmd.NoTUI {
		for _, group := range res.Groups {
			fmt.Printf("\n🔸 Digest %s (size: %s, %d files):\n",
				group.Digest, humanize.IBytes(uint64(group.Size)), len(group.Files))
			for _, file := range group.Files {
				fmt.Printf("  %s\n", file)
			}
		}
		return nil
	}

	// Launch TUI for interactive duplicate management
	model := ui.NewDupesModel(res.Groups)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
