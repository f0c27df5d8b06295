package imgutil

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG creates a PNG with a simple gradient so JPEG compression has
// something to work with.
func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func TestCompress(t *testing.T) {
	testDir := t.TempDir()
	input := filepath.Join(testDir, "photo.png")
	writeTestPNG(t, input, 200, 120)

	res, err := Compress(input, "", CompressOptions{Quality: 70})
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	if res.OutputPath != filepath.Join(testDir, "photo_compressed.jpg") {
		t.Errorf("Unexpected output path: %s", res.OutputPath)
	}
	if res.CompressedSize <= 0 {
		t.Errorf("Expected positive compressed size, got %d", res.CompressedSize)
	}

	// Output must be a decodable JPEG with the original dimensions
	f, err := os.Open(res.OutputPath)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a valid JPEG: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 120 {
		t.Errorf("Expected 200x120 output, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCompress_MaxWidth(t *testing.T) {
	testDir := t.TempDir()
	input := filepath.Join(testDir, "wide.png")
	writeTestPNG(t, input, 400, 200)

	output := filepath.Join(testDir, "small.jpg")
	_, err := Compress(input, output, CompressOptions{Quality: 85, MaxWidth: 100})
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a valid JPEG: %v", err)
	}

	// Aspect ratio preserved: 400x200 downscaled to 100 wide is 100x50
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("Expected 100x50 output, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCompress_MaxWidthNoUpscale(t *testing.T) {
	testDir := t.TempDir()
	input := filepath.Join(testDir, "small.png")
	writeTestPNG(t, input, 50, 50)

	output := filepath.Join(testDir, "out.jpg")
	_, err := Compress(input, output, CompressOptions{MaxWidth: 500})
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a valid JPEG: %v", err)
	}
	if img.Bounds().Dx() != 50 {
		t.Errorf("Image narrower than max-width must not be upscaled, got width %d", img.Bounds().Dx())
	}
}

func TestCompress_InvalidQuality(t *testing.T) {
	tests := []int{-1, 101, 1000}
	for _, quality := range tests {
		if _, err := Compress("irrelevant.png", "", CompressOptions{Quality: quality}); err == nil {
			t.Errorf("Compress() expected error for quality %d, got nil", quality)
		}
	}
}

func TestCompress_InputErrors(t *testing.T) {
	testDir := t.TempDir()

	// Missing input
	if _, err := Compress(filepath.Join(testDir, "missing.png"), "", CompressOptions{}); err == nil {
		t.Error("Compress() expected error for missing input, got nil")
	}

	// Not an image
	notImage := filepath.Join(testDir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("plain text"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if _, err := Compress(notImage, "", CompressOptions{}); err == nil {
		t.Error("Compress() expected decode error for non-image input, got nil")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "photo.png", expected: "photo_compressed.jpg"},
		{input: "dir/image.jpeg", expected: "dir/image_compressed.jpg"},
		{input: "noext", expected: "noext_compressed.jpg"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.input); got != tt.expected {
			t.Errorf("DefaultOutputPath(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "photo.png", expected: true},
		{path: "photo.JPG", expected: true},
		{path: "photo.jpeg", expected: true},
		{path: "anim.gif", expected: true},
		{path: "movie.mp4", expected: false},
		{path: "document.txt", expected: false},
		{path: "noext", expected: false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.expected {
			t.Errorf("IsImageFile(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}
