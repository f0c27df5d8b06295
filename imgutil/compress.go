package imgutil

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 85

// CompressOptions controls the JPEG re-encode.
type CompressOptions struct {
	Quality  int  // JPEG quality, 1-100
	MaxWidth uint // downscale to this width if wider, 0 keeps dimensions
}

// CompressResult describes a completed compression.
type CompressResult struct {
	OutputPath     string
	OriginalSize   int64
	CompressedSize int64
}

// Reduction returns the size reduction as a percentage of the original.
func (r *CompressResult) Reduction() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.OriginalSize-r.CompressedSize) / float64(r.OriginalSize) * 100
}

// IsImageFile checks if the given file extension is one of the supported
// image formats.
func IsImageFile(path string) bool {
	var desiredExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// DefaultOutputPath derives the output name for a compressed image:
// photo.png becomes photo_compressed.jpg next to the original.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return inputPath[:len(inputPath)-len(ext)] + "_compressed.jpg"
}

// Compress re-encodes an image as JPEG at the requested quality, optionally
// downscaling it first. The original file is never modified.
func Compress(inputPath, outputPath string, opts CompressOptions) (*CompressResult, error) {
	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	fi, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if opts.MaxWidth > 0 && uint(img.Bounds().Dx()) > opts.MaxWidth {
		// Height 0 preserves the aspect ratio
		img = resize.Resize(opts.MaxWidth, 0, img, resize.Lanczos3)
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: quality}); err != nil {
		_ = out.Close()
		_ = os.Remove(outputPath)
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output: %w", err)
	}

	return &CompressResult{
		OutputPath:     outputPath,
		OriginalSize:   fi.Size(),
		CompressedSize: outInfo.Size(),
	}, nil
}
