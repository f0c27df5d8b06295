package scan

import "errors"

// ErrPathNotFound is returned when the scan root does not resolve to an
// existing directory. It is the only fatal error in a scan; everything else
// is collected as a Warning.
var ErrPathNotFound = errors.New("path not found")

// FileRecord describes a single regular file found during the walk.
// Path and Size are filled in by the walker, Digest by the hasher, and the
// record is not modified afterwards.
type FileRecord struct {
	Path   string
	Size   int64
	Digest string
}

// DuplicateGroup is a set of two or more files sharing the same content
// digest (and therefore the same byte size). Files keeps walk order.
type DuplicateGroup struct {
	Digest string
	Size   int64
	Files  []string
}

// Warning records a file or subtree that had to be skipped without aborting
// the scan (permission denied, file vanished between walk and hash, etc.)
type Warning struct {
	Path string
	Err  error
}

// Result holds the outcome of one duplicate scan.
type Result struct {
	Groups        []DuplicateGroup
	FilesScanned  int
	TotalSize     int64 // bytes seen during the walk
	DuplicateSize int64 // bytes reclaimable by keeping one copy per group
	Warnings      []Warning
}

// DuplicateCount returns the number of redundant files, i.e. every group
// member beyond the first.
func (r *Result) DuplicateCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Files) - 1
	}
	return n
}
