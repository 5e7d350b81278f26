// Package pathutil provides path normalization helpers shared by the
// backend adapters.
package pathutil

import (
	"path/filepath"
	"strings"
)

// RelSlash returns path relative to base in forward-slash form, for
// matching against glob patterns. Returns ok=false when path does not sit
// under base.
func RelSlash(base, path string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
