package cmd

import (
	"fmt"

	"github.com/lepinkainen/fsutils/imgutil"
	"github.com/lepinkainen/fsutils/ui"
)

// SimilarCmd finds perceptually similar images by comparing perception
// hashes pairwise.
type SimilarCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files to compare" type:"existingfile"`
	Threshold int      `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

func (cmd *SimilarCmd) Run() error {
	if len(cmd.Files) < 2 {
		fmt.Printf("%s\n", ui.ErrorStyle.Render("❌ Need at least 2 files to compare"))
		return nil
	}

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Calculating perceptual hashes for %d files...", len(cmd.Files))))

	var hashes []imgutil.FileHash

	for _, imageFile := range cmd.Files {
		if !imgutil.IsImageFile(imageFile) {
			fmt.Printf("⚠️  %s is not an image file, skipping\n", imageFile)
			continue
		}

		hash, err := imgutil.HashImage(imageFile)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error calculating perceptual hash for %s: %v", imageFile, err)))
			continue
		}

		hashes = append(hashes, imgutil.FileHash{Path: imageFile, Hash: hash})
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Processed %s", imageFile)))
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %d files for similarity (threshold: %d):", len(hashes), cmd.Threshold)))

	pairs, err := imgutil.FindSimilar(hashes, cmd.Threshold)
	if err != nil {
		return fmt.Errorf("failed to compare images: %w", err)
	}

	if len(pairs) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No similar files found within threshold"))
		return nil
	}

	for _, pair := range pairs {
		fmt.Printf("🎯 Similar (distance %d): %s and %s\n", pair.Distance, pair.A, pair.B)
	}

	return nil
}
