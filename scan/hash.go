package scan

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
)

// hashBlockSize is the read buffer used while digesting a file, so memory
// use stays bounded regardless of file size.
const hashBlockSize = 64 * 1024

// HashFile computes the MD5 digest of a file's content, streamed in
// fixed-size blocks, and returns it as a lowercase hex string. MD5 is not
// used for anything security-sensitive here; a 128-bit digest makes
// accidental collisions between distinct files a non-concern while staying
// much cheaper than byte-by-byte comparison.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	buf := make([]byte, hashBlockSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
