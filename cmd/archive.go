package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/fsutils/archive"
	"github.com/lepinkainen/fsutils/types"
	"github.com/lepinkainen/fsutils/ui"
	"github.com/lepinkainen/fsutils/utils"
)

// ArchiveCmd creates a timestamped zip backup of the vault directory.
// Locations come from FSUTILS_VAULT_LOCATION / FSUTILS_BACKUP_LOCATION
// unless overridden by flags.
type ArchiveCmd struct {
	Vault  string   `help:"Vault directory to back up (defaults to $FSUTILS_VAULT_LOCATION)" type:"path"`
	Backup string   `help:"Directory for backup archives (defaults to $FSUTILS_BACKUP_LOCATION)" type:"path"`
	Ignore []string `help:"Additional glob patterns to exclude from the archive"`
}

func (cmd *ArchiveCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("fsutils %s", appCtx.VersionOrDefault())))

	cfg, err := archive.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Vault != "" {
		cfg.VaultLocation = cmd.Vault
	}
	if cmd.Backup != "" {
		cfg.BackupLocation = cmd.Backup
	}
	if len(cmd.Ignore) > 0 {
		extra := strings.Join(cmd.Ignore, ",")
		if cfg.IgnorePatterns == "" {
			cfg.IgnorePatterns = extra
		} else {
			cfg.IgnorePatterns += "," + extra
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if utils.IsNetworkDrive(cfg.BackupLocation) {
		fmt.Printf("%s\n", ui.WarningStyle.Render("⚠️  Backup location looks like a network drive, archiving may be slow"))
	}

	fmt.Printf("Backing up %s\n", cfg.VaultLocation)

	var bar *progressbar.ProgressBar
	res, err := archive.CreateBackup(cfg, archive.Options{
		Progress: func(added, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "archiving")
			}
			_ = bar.Set(added)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render("✅ Backup completed successfully!"))
	fmt.Printf("Archive saved to: %s\n", res.ArchivePath)
	fmt.Printf("Files archived: %d (%d ignored)\n", res.FilesAdded, res.Ignored)
	fmt.Printf("Total size: %s\n", humanize.IBytes(uint64(res.ArchiveSize)))
	return nil
}
