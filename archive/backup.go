package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Options controls optional behavior of a backup run.
type Options struct {
	// Progress, when non-nil, is invoked after each file is written to the
	// archive with the number archived so far and the candidate total.
	Progress func(added, total int)
}

// Result describes a completed backup.
type Result struct {
	ArchivePath string
	ArchiveSize int64
	FilesAdded  int
	Ignored     int
}

// backupFileName builds the timestamped archive name for a backup started
// at the given time.
func backupFileName(t time.Time) string {
	return fmt.Sprintf("backup_%s.zip", t.Format("20060102_150405"))
}

// CreateBackup zips the vault directory into a timestamped archive under
// the backup location, skipping paths that match the ignore patterns.
// Entry names are vault-relative with forward slashes.
func CreateBackup(cfg *Config, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.VaultLocation); err != nil {
		return nil, fmt.Errorf("vault location does not exist: %s", cfg.VaultLocation)
	}

	if err := os.MkdirAll(cfg.BackupLocation, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	matcher := NewMatcher(cfg.Patterns())

	// First pass counts candidate files so progress has a total
	var candidates []string
	ignored := 0
	err := filepath.WalkDir(cfg.VaultLocation, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(cfg.VaultLocation, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			// Pruned directories are never descended into
			if matcher.ShouldIgnore(rel) {
				ignored++
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if matcher.ShouldIgnore(rel) {
			ignored++
			return nil
		}

		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}

	archivePath := filepath.Join(cfg.BackupLocation, backupFileName(time.Now()))
	zf, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	zw := zip.NewWriter(zf)
	added := 0
	for _, path := range candidates {
		rel, err := filepath.Rel(cfg.VaultLocation, path)
		if err != nil {
			continue
		}
		if err := addFileToZip(zw, path, filepath.ToSlash(rel)); err != nil {
			_ = zw.Close()
			_ = zf.Close()
			_ = os.Remove(archivePath)
			return nil, fmt.Errorf("failed to archive %s: %w", rel, err)
		}
		added++
		if opts.Progress != nil {
			opts.Progress(added, len(candidates))
		}
	}

	if err := zw.Close(); err != nil {
		_ = zf.Close()
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := zf.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}

	fi, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	return &Result{
		ArchivePath: archivePath,
		ArchiveSize: fi.Size(),
		FilesAdded:  added,
		Ignored:     ignored,
	}, nil
}

// addFileToZip writes one file into the archive under the given entry name
// using deflate compression.
func addFileToZip(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, f)
	return err
}
