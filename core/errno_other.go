//go:build !unix

package core

import (
	"errors"
	"syscall"
)

// errnoCode maps the errno-style signals that exist on every platform.
// Richer mappings (quota, write locks) are Unix-only; see errno_unix.go.
func errnoCode(err error) (ErrorCode, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return CodeUnknown, false
	}
	switch errno {
	case syscall.ENOENT:
		return CodeFileNotFound, true
	case syscall.EEXIST:
		return CodeFileExists, true
	case syscall.EISDIR:
		return CodeFileIsADirectory, true
	case syscall.ENOTDIR:
		return CodeFileNotADirectory, true
	case syscall.EACCES, syscall.EPERM:
		return CodeNoPermissions, true
	}
	return CodeUnknown, false
}
