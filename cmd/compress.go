package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/fsutils/imgutil"
	"github.com/lepinkainen/fsutils/types"
	"github.com/lepinkainen/fsutils/ui"
)

// CompressCmd re-encodes an image as JPEG at a chosen quality.
type CompressCmd struct {
	Image    string `arg:"" name:"image" help:"Image file to compress" type:"existingfile"`
	Output   string `help:"Output path (defaults to <name>_compressed.jpg)" type:"path"`
	Quality  int    `help:"JPEG quality (1-100)" default:"85"`
	MaxWidth uint   `name:"max-width" help:"Downscale to this width if wider, 0 keeps dimensions" default:"0"`
}

func (cmd *CompressCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("fsutils %s", appCtx.VersionOrDefault())))

	if !imgutil.IsImageFile(cmd.Image) {
		return fmt.Errorf("%s is not a supported image file", cmd.Image)
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("📊 Compressing %s (quality %d)", cmd.Image, cmd.Quality)))

	res, err := imgutil.Compress(cmd.Image, cmd.Output, imgutil.CompressOptions{
		Quality:  cmd.Quality,
		MaxWidth: cmd.MaxWidth,
	})
	if err != nil {
		return fmt.Errorf("failed to compress image: %w", err)
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Saved %s", res.OutputPath)))
	fmt.Printf("Original: %s | Compressed: %s | Reduction: %.1f%%\n",
		humanize.IBytes(uint64(res.OriginalSize)),
		humanize.IBytes(uint64(res.CompressedSize)),
		res.Reduction())
	return nil
}
