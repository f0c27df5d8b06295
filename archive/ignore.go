package archive

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a vault-relative path is excluded from the backup.
type Matcher struct {
	patterns []string
}

// NewMatcher creates a matcher for the given glob patterns. Patterns use
// doublestar syntax, so "**/node_modules" and ".git/**" both work.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

// ShouldIgnore reports whether relPath matches any ignore pattern.
// relPath must use forward slashes regardless of platform, matching the
// entry names written into the archive.
func (m *Matcher) ShouldIgnore(relPath string) bool {
	for _, pattern := range m.patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
