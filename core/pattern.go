package core

import "path/filepath"

// RelativePattern pairs a glob pattern with the absolute base path it is
// evaluated against. Both backends consume the same pattern type for glob
// and watch operations.
//
// A RelativePattern is immutable after construction through
// NewRelativePattern.
type RelativePattern struct {
	// Base is an absolute path with no trailing separator and no relative
	// segments. Pattern is evaluated relative to it.
	Base string

	// Pattern is a glob expression, e.g. "*.txt" or "src/**/*.go".
	Pattern string
}

// NewRelativePattern constructs a RelativePattern, normalizing base to a
// clean absolute path without a trailing separator. A relative base is
// rejected rather than silently resolved against the working directory.
func NewRelativePattern(base, pattern string) (RelativePattern, error) {
	if base == "" {
		return RelativePattern{}, NewError(CodeUnknown, "relative pattern base must not be empty")
	}
	if !filepath.IsAbs(base) {
		return RelativePattern{}, NewErrorf(CodeUnknown, "relative pattern base must be absolute: %q", base)
	}
	// Clean strips trailing separators from everything but a root, and a
	// root ("/" or a drive like `C:\`) must keep its separator.
	return RelativePattern{Base: filepath.Clean(base), Pattern: pattern}, nil
}
