//go:build !linux && !darwin && !windows

package times

import "io/fs"

// CTime falls back to the modification time on platforms whose stat record
// carries no creation or change time this package knows how to read.
func CTime(info fs.FileInfo) int64 {
	return MTime(info)
}
