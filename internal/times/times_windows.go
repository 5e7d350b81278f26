//go:build windows

package times

import (
	"io/fs"
	"syscall"
)

// CTime returns the file creation time in milliseconds since the epoch.
func CTime(info fs.FileInfo) int64 {
	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return st.CreationTime.Nanoseconds() / 1e6
	}
	return MTime(info)
}
