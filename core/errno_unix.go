//go:build unix

package core

import (
	"errors"
	"syscall"
)

// errnoCode maps errno-style signals buried in err to a taxonomy code.
// Checked before the fs.Err* sentinels because the errno is the lower-level
// signal: EISDIR and ENOTDIR have no sentinel equivalent at all.
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
	case syscall.EDQUOT, syscall.ENOSPC:
		return CodeFileExceedsStorageQuota, true
	case syscall.EFBIG:
		return CodeFileTooLarge, true
	case syscall.EROFS, syscall.ETXTBSY:
		return CodeFileWriteLocked, true
	case syscall.EBUSY, syscall.EAGAIN:
		return CodeUnavailable, true
	}
	return CodeUnknown, false
}
