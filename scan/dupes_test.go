package scan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTestFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		fullPath := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}
}

func TestFindDuplicates(t *testing.T) {
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
		"c.txt": "world",
	})

	res, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Groups) != 1 {
		t.Fatalf("Expected 1 duplicate group, got %d: %v", len(res.Groups), res.Groups)
	}

	group := res.Groups[0]
	if len(group.Files) != 2 {
		t.Fatalf("Expected 2 files in group, got %d: %v", len(group.Files), group.Files)
	}

	foundMap := make(map[string]bool)
	for _, f := range group.Files {
		foundMap[filepath.Base(f)] = true
	}
	if !foundMap["a.txt"] || !foundMap["b.txt"] {
		t.Errorf("Expected a.txt and b.txt in group, got %v", group.Files)
	}
	if foundMap["c.txt"] {
		t.Errorf("Unique file c.txt must not appear in any group: %v", group.Files)
	}

	if group.Size != int64(len("hello")) {
		t.Errorf("Expected group size %d, got %d", len("hello"), group.Size)
	}

	if res.DuplicateCount() != 1 {
		t.Errorf("Expected 1 redundant file, got %d", res.DuplicateCount())
	}
	if res.DuplicateSize != int64(len("hello")) {
		t.Errorf("Expected duplicate size %d, got %d", len("hello"), res.DuplicateSize)
	}
	if res.TotalSize != int64(len("hello")*2+len("world")) {
		t.Errorf("Expected total size %d, got %d", len("hello")*2+len("world"), res.TotalSize)
	}
}

func TestFindDuplicates_EmptyDirectory(t *testing.T) {
	res, err := FindDuplicates(t.TempDir())
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Groups) != 0 {
		t.Errorf("Expected no duplicates in empty directory, got %d", len(res.Groups))
	}
	if res.FilesScanned != 0 {
		t.Errorf("Expected 0 files scanned, got %d", res.FilesScanned)
	}
}

func TestFindDuplicates_SingleFile(t *testing.T) {
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{"only.txt": "alone"})

	res, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Groups) != 0 {
		t.Errorf("Expected no duplicates for a single file, got %d", len(res.Groups))
	}
}

func TestFindDuplicates_NonExistentDirectory(t *testing.T) {
	_, err := FindDuplicates("/does/not/exist")
	if err == nil {
		t.Fatal("FindDuplicates() expected error for non-existent directory, got nil")
	}
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Expected ErrPathNotFound, got %v", err)
	}
}

func TestFindDuplicates_Idempotence(t *testing.T) {
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"x1.dat":        "same bytes",
		"x2.dat":        "same bytes",
		"sub/x3.dat":    "same bytes",
		"sub/other.dat": "different",
	})

	first, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("First FindDuplicates() error = %v", err)
	}
	second, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("Second FindDuplicates() error = %v", err)
	}

	if !reflect.DeepEqual(first.Groups, second.Groups) {
		t.Errorf("Grouping not idempotent:\nfirst:  %v\nsecond: %v", first.Groups, second.Groups)
	}
}

func TestFindDuplicates_SameSizeDifferentContent(t *testing.T) {
	// Size pre-filter must not group files that only match on size
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"a.dat": "aaaa",
		"b.dat": "bbbb",
	})

	res, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Groups) != 0 {
		t.Errorf("Expected no duplicates for same-size different content, got %v", res.Groups)
	}
}

func TestFindDuplicates_MultipleGroups(t *testing.T) {
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"red1.txt":   "red",
		"red2.txt":   "red",
		"blue1.txt":  "blue!",
		"blue2.txt":  "blue!",
		"blue3.txt":  "blue!",
		"unique.txt": "nothing like me",
	})

	res, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Groups) != 2 {
		t.Fatalf("Expected 2 duplicate groups, got %d: %v", len(res.Groups), res.Groups)
	}

	sizes := map[int]bool{}
	for _, g := range res.Groups {
		sizes[len(g.Files)] = true
	}
	if !sizes[2] || !sizes[3] {
		t.Errorf("Expected groups of 2 and 3 files, got %v", res.Groups)
	}

	if res.DuplicateCount() != 3 {
		t.Errorf("Expected 3 redundant files, got %d", res.DuplicateCount())
	}
}

func TestFindDuplicates_UnreadableSubtreeStillReports(t *testing.T) {
	// This test only runs on Unix-like systems where we can control directory permissions
	if os.Getuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"keep1.txt":         "duplicated content",
		"keep2.txt":         "duplicated content",
		"locked/hidden.txt": "duplicated content",
	})

	locked := filepath.Join(testDir, "locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("Failed to change directory permissions: %v", err)
	}
	defer func() { _ = os.Chmod(locked, 0755) }() // Restore permissions for cleanup

	res, err := FindDuplicates(testDir)
	if err != nil {
		t.Fatalf("FindDuplicates() error = %v", err)
	}

	if len(res.Warnings) == 0 {
		t.Error("Expected a warning for the unreadable subtree, got none")
	}

	if len(res.Groups) != 1 {
		t.Fatalf("Expected duplicates found outside locked subtree, got %v", res.Groups)
	}
	if len(res.Groups[0].Files) != 2 {
		t.Errorf("Expected 2 readable duplicates, got %v", res.Groups[0].Files)
	}
}

func TestFindDuplicates_ProgressCallback(t *testing.T) {
	testDir := t.TempDir()
	writeTestFiles(t, testDir, map[string]string{
		"a.txt":      "pair",
		"b.txt":      "pair",
		"unique.txt": "a size all of its own",
	})

	var calls int
	var lastTotal int
	_, err := FindDuplicatesWithOptions(testDir, Options{
		Progress: func(hashed, total int) {
			calls++
			lastTotal = total
			if hashed > total {
				t.Errorf("hashed %d exceeds total %d", hashed, total)
			}
		},
	})
	if err != nil {
		t.Fatalf("FindDuplicatesWithOptions() error = %v", err)
	}

	// Only the two size-colliding files are hash candidates
	if lastTotal != 2 {
		t.Errorf("Expected 2 hash candidates, got %d", lastTotal)
	}
	if calls != 2 {
		t.Errorf("Expected 2 progress callbacks, got %d", calls)
	}
}
