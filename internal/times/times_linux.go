//go:build linux

package times

import (
	"io/fs"
	"syscall"
)

// CTime returns the inode change time in milliseconds since the epoch.
// Linux does not expose a birth time through Stat_t.
func CTime(info fs.FileInfo) int64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		sec, nsec := st.Ctim.Unix()
		return sec*1000 + nsec/1e6
	}
	return MTime(info)
}
