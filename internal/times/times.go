// Package times extracts creation timestamps from platform-specific stat
// records. Platforms without a recorded birth time fall back to the inode
// change time, and failing that to the modification time.
package times

import "io/fs"

// MTime returns the modification instant in milliseconds since the epoch.
func MTime(info fs.FileInfo) int64 {
	return info.ModTime().UnixMilli()
}
