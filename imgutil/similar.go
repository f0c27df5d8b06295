package imgutil

import (
	"fmt"
	"image"
	"os"

	"github.com/corona10/goimagehash"
)

// FileHash pairs an image path with its perceptual hash.
type FileHash struct {
	Path string
	Hash *goimagehash.ImageHash
}

// SimilarPair is a pair of images whose perceptual hashes are within the
// similarity threshold.
type SimilarPair struct {
	A        string
	B        string
	Distance int
}

// HashImage calculates the perceptual hash of an image file.
func HashImage(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}

// FindSimilar compares every pair of hashes and returns the pairs whose
// Hamming distance is at or under the threshold.
func FindSimilar(hashes []FileHash, threshold int) ([]SimilarPair, error) {
	var pairs []SimilarPair
	for i := 0; i < len(hashes); i++ {
		for j := i + 1; j < len(hashes); j++ {
			distance, err := hashes[i].Hash.Distance(hashes[j].Hash)
			if err != nil {
				return nil, fmt.Errorf("failed to compare %s and %s: %w", hashes[i].Path, hashes[j].Path, err)
			}
			if distance <= threshold {
				pairs = append(pairs, SimilarPair{A: hashes[i].Path, B: hashes[j].Path, Distance: distance})
			}
		}
	}
	return pairs, nil
}
