package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WalkFiles recursively enumerates regular files under root. Symlinks,
// devices and other non-regular entries are skipped. An unreadable subtree
// produces a Warning and the walk continues with its siblings; only a
// missing or non-directory root is fatal.
func WalkFiles(root string) ([]FileRecord, []Warning, error) {
	fi, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, nil, fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, root)
	}

	var files []FileRecord
	var warnings []Warning

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: record it and keep walking the rest of the tree
			warnings = append(warnings, Warning{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			warnings = append(warnings, Warning{Path: path, Err: err})
			return nil
		}

		files = append(files, FileRecord{Path: path, Size: info.Size()})
		return nil
	})
	if walkErr != nil {
		return nil, warnings, walkErr
	}

	return files, warnings, nil
}
