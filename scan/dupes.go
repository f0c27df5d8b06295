package scan

// Options controls optional behavior of a duplicate scan.
type Options struct {
	// Progress, when non-nil, is invoked after each hash attempt with the
	// number of candidate files processed so far and the candidate total.
	Progress func(hashed, total int)
}

// FindDuplicates runs the walk → hash → group pipeline over root and
// returns every group of two or more files with identical content.
func FindDuplicates(root string) (*Result, error) {
	return FindDuplicatesWithOptions(root, Options{})
}

// FindDuplicatesWithOptions is FindDuplicates with explicit Options.
// The scan is strictly sequential and read-only; per-file failures are
// collected on the result instead of aborting the run.
func FindDuplicatesWithOptions(root string, opts Options) (*Result, error) {
	records, warnings, err := WalkFiles(root)
	if err != nil {
		return nil, err
	}

	res := &Result{
		FilesScanned: len(records),
		Warnings:     warnings,
	}

	sizeCount := make(map[int64]int, len(records))
	for i := range records {
		res.TotalSize += records[i].Size
		sizeCount[records[i].Size]++
	}

	// A duplicate must match on byte size before it can match on digest,
	// so files whose size is unique are never opened at all.
	var candidates []*FileRecord
	for i := range records {
		if sizeCount[records[i].Size] > 1 {
			candidates = append(candidates, &records[i])
		}
	}

	groups := make(map[string]*DuplicateGroup)
	var order []string

	for i, rec := range candidates {
		digest, err := HashFile(rec.Path)
		if err != nil {
			// File vanished or became unreadable after the walk
			res.Warnings = append(res.Warnings, Warning{Path: rec.Path, Err: err})
		} else {
			rec.Digest = digest
			g, ok := groups[digest]
			if !ok {
				g = &DuplicateGroup{Digest: digest, Size: rec.Size}
				groups[digest] = g
				order = append(order, digest)
			}
			g.Files = append(g.Files, rec.Path)
		}

		if opts.Progress != nil {
			opts.Progress(i+1, len(candidates))
		}
	}

	for _, digest := range order {
		g := groups[digest]
		if len(g.Files) < 2 {
			continue
		}
		res.Groups = append(res.Groups, *g)
		res.DuplicateSize += g.Size * int64(len(g.Files)-1)
	}

	return res, nil
}
