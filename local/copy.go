package local

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Groupguanfang/vscode-fs/core"
)

// Copy copies source to target, recursing depth-first into directories.
// The default overwrites existing targets; with ErrorIfExists a present
// target fails with CodeFileExists.
//
// Children are copied sequentially, bounding open handles to one pair at a
// time. The recursion is not atomic: a failure mid-tree leaves the partial
// copy in place.
func (l *FS) Copy(source, target string, opts core.CopyOptions) error {
	if err := l.copyEntry(source, target, opts.ErrorIfExists); err != nil {
		return core.Normalize(err)
	}
	return nil
}

func (l *FS) copyEntry(source, target string, errorIfExists bool) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	switch {
	case info.Mode().IsRegular():
		return copyFile(source, target, errorIfExists)
	case info.IsDir():
		if errorIfExists {
			if _, err := os.Lstat(target); err == nil {
				return core.NewErrorf(core.CodeFileExists, "copy target already exists: %s", target)
			}
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		entries, err := os.ReadDir(source)
		if err != nil {
			return err
		}
		for _, e := range entries {
			src := filepath.Join(source, e.Name())
			dst := filepath.Join(target, e.Name())
			if err := l.copyEntry(src, dst, errorIfExists); err != nil {
				return err
			}
		}
		return nil
	default:
		// Device nodes, sockets, and the like have no portable copy.
		return core.NewErrorf(core.CodeUnknown, "cannot copy entry of unknown type: %s", source)
	}
}

func copyFile(source, target string, errorIfExists bool) error {
	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if errorIfExists {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	dst, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
