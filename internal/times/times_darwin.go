//go:build darwin

package times

import (
	"io/fs"
	"syscall"
)

// CTime returns the file birth time in milliseconds since the epoch.
func CTime(info fs.FileInfo) int64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		sec, nsec := st.Birthtimespec.Unix()
		return sec*1000 + nsec/1e6
	}
	return MTime(info)
}
