package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode identifies a normalized failure condition.
// The set of codes is closed; backends must map every native failure onto
// exactly one of these values.
type ErrorCode string

const (
	// CodeFileExists indicates a creation, rename, or copy target was
	// already present and overwriting was disallowed.
	CodeFileExists ErrorCode = "FileExists"

	// CodeFileNotFound indicates the entry does not exist.
	CodeFileNotFound ErrorCode = "FileNotFound"

	// CodeFileNotADirectory indicates the operation required a directory
	// but the target is a file.
	CodeFileNotADirectory ErrorCode = "FileNotADirectory"

	// CodeFileIsADirectory indicates the operation required a file but the
	// target is a directory.
	CodeFileIsADirectory ErrorCode = "FileIsADirectory"

	// CodeFileExceedsStorageQuota indicates the operation would exceed the
	// available storage quota or space.
	CodeFileExceedsStorageQuota ErrorCode = "FileExceedsStorageQuota"

	// CodeFileTooLarge indicates the file is too large for the operation
	// or the underlying storage.
	CodeFileTooLarge ErrorCode = "FileTooLarge"

	// CodeFileWriteLocked indicates the target is locked against writing,
	// typically a read-only filesystem or a busy executable.
	CodeFileWriteLocked ErrorCode = "FileWriteLocked"

	// CodeNoPermissions indicates a permission or access-control denial.
	CodeNoPermissions ErrorCode = "NoPermissions"

	// CodeUnavailable indicates the backend or entry is temporarily
	// unavailable.
	CodeUnavailable ErrorCode = "Unavailable"

	// CodeUnknown indicates a failure that maps to no other code. The
	// original message is preserved verbatim so diagnostic information is
	// never dropped.
	CodeUnknown ErrorCode = "Unknown"
)

// FileSystemError is the normalized error produced by every backend.
//
// The concrete type is exported but construction goes through NewError,
// NewErrorf, WrapError, or Normalize so that every instance carries exactly
// one taxonomy code. Use IsFileSystemError to distinguish already-normalized
// errors from foreign ones that still need translation.
type FileSystemError struct {
	code    ErrorCode
	message string
	cause   error
}

// NewError creates a FileSystemError with the given code and message.
func NewError(code ErrorCode, message string) *FileSystemError {
	return &FileSystemError{code: code, message: message}
}

// NewErrorf creates a FileSystemError with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *FileSystemError {
	return &FileSystemError{code: code, message: fmt.Sprintf(format, args...)}
}

// WrapError creates a FileSystemError that records err as its cause.
// The cause remains reachable through errors.Is and errors.As.
// Returns nil if err is nil.
func WrapError(err error, code ErrorCode, message string) *FileSystemError {
	if err == nil {
		return nil
	}
	return &FileSystemError{code: code, message: message, cause: err}
}

// Error returns "[Code] message" or "[Code] message: cause".
func (e *FileSystemError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the taxonomy code.
func (e *FileSystemError) Code() ErrorCode {
	return e.code
}

// Message returns the human-readable message without the code prefix.
func (e *FileSystemError) Message() string {
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *FileSystemError) Unwrap() error {
	return e.cause
}

// IsFileSystemError reports whether err (or anything in its chain) is an
// error produced by this package's constructors. It is intentionally
// independent of the code carried, so callers can tell "expected,
// already-normalized" failures apart from foreign errors.
func IsFileSystemError(err error) bool {
	var fse *FileSystemError
	return errors.As(err, &fse)
}

// CodeOf extracts the taxonomy code from an error chain.
// Returns CodeUnknown for nil or foreign errors.
func CodeOf(err error) ErrorCode {
	var fse *FileSystemError
	if errors.As(err, &fse) {
		return fse.code
	}
	return CodeUnknown
}

// Normalize translates a backend-native failure into a FileSystemError.
//
// Normalize is idempotent: an error that is already a FileSystemError is
// returned unchanged rather than re-wrapped, so codes survive propagation
// and retries. Mapping precedence follows the lowest-level native signal
// available; anything unmapped becomes CodeUnknown with the original
// message preserved verbatim.
func Normalize(err error) *FileSystemError {
	if err == nil {
		return nil
	}
	var fse *FileSystemError
	if errors.As(err, &fse) {
		return fse
	}
	if code, ok := errnoCode(err); ok {
		return &FileSystemError{code: code, message: err.Error(), cause: err}
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &FileSystemError{code: CodeFileNotFound, message: err.Error(), cause: err}
	case errors.Is(err, fs.ErrExist):
		return &FileSystemError{code: CodeFileExists, message: err.Error(), cause: err}
	case errors.Is(err, fs.ErrPermission):
		return &FileSystemError{code: CodeNoPermissions, message: err.Error(), cause: err}
	}
	return &FileSystemError{code: CodeUnknown, message: err.Error(), cause: err}
}
