package host

import (
	"io"
	iofs "io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/gobwas/glob"

	"github.com/Groupguanfang/vscode-fs/core"
)

// BillyProvider adapts a billy.Filesystem to the Provider surface. Billy
// backends span exactly the provider spectrum: osfs is local, memfs is
// virtual, and custom implementations may be remote.
//
// Billy has no change-notification primitive, so
// CreateFileSystemWatcher fails with Unavailable; it also has no trash
// facility.
type BillyProvider struct {
	bfs billy.Filesystem
}

// NewBillyProvider creates a Provider backed by bfs.
func NewBillyProvider(bfs billy.Filesystem) *BillyProvider {
	return &BillyProvider{bfs: bfs}
}

// Stat returns metadata for the entry at path, resolving a symbolic link
// to its target the same way the local backend does.
func (p *BillyProvider) Stat(path string) (core.FileStat, error) {
	info, err := p.bfs.Lstat(path)
	if err != nil {
		return core.FileStat{}, err
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		return billyStat(info, billyType(info.Mode())), nil
	}
	target, err := p.bfs.Stat(path)
	if err != nil {
		return billyStat(info, core.FileTypeSymbolicLink), nil
	}
	return billyStat(target, billyType(target.Mode())|core.FileTypeSymbolicLink), nil
}

func billyType(mode iofs.FileMode) core.FileType {
	switch {
	case mode.IsRegular():
		return core.FileTypeFile
	case mode.IsDir():
		return core.FileTypeDirectory
	case mode&iofs.ModeSymlink != 0:
		return core.FileTypeSymbolicLink
	default:
		return core.FileTypeUnknown
	}
}

// billyStat builds the metadata record. Billy file infos carry no creation
// time, so the modification time stands in for it.
func billyStat(info iofs.FileInfo, t core.FileType) core.FileStat {
	mtime := info.ModTime().UnixMilli()
	return core.FileStat{Type: t, CTime: mtime, MTime: mtime, Size: info.Size()}
}

// ReadDirectory lists immediate children, resolving symlinked children
// individually and degrading unresolvable links to FileTypeSymbolicLink.
func (p *BillyProvider) ReadDirectory(path string) ([]core.DirEntry, error) {
	infos, err := p.bfs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]core.DirEntry, 0, len(infos))
	for _, info := range infos {
		t := billyType(info.Mode())
		if info.Mode()&iofs.ModeSymlink != 0 {
			if st, err := p.Stat(p.bfs.Join(path, info.Name())); err == nil {
				t = st.Type
			}
		}
		out = append(out, core.DirEntry{Name: info.Name(), Type: t})
	}
	return out, nil
}

// CreateDirectory creates the directory and any missing parents.
func (p *BillyProvider) CreateDirectory(path string) error {
	return p.bfs.MkdirAll(path, 0o755)
}

// ReadFile returns the entire content of the file at path.
func (p *BillyProvider) ReadFile(path string) ([]byte, error) {
	f, err := p.bfs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// WriteFile replaces the entire content of the file at path.
func (p *BillyProvider) WriteFile(path string, data []byte) error {
	f, err := p.bfs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Delete removes the entry at path. Billy has no trash facility.
func (p *BillyProvider) Delete(path string, recursive, useTrash bool) error {
	if useTrash {
		return core.NewError(core.CodeUnavailable, "this provider has no trash facility")
	}
	if !recursive {
		return p.bfs.Remove(path)
	}
	if _, err := p.bfs.Lstat(path); err != nil {
		return err
	}
	return p.removeAll(path)
}

// removeAll removes path and everything below it. Billy has no RemoveAll
// of its own.
func (p *BillyProvider) removeAll(path string) error {
	info, err := p.bfs.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		infos, err := p.bfs.ReadDir(path)
		if err != nil {
			return err
		}
		for _, child := range infos {
			if err := p.removeAll(p.bfs.Join(path, child.Name())); err != nil {
				return err
			}
		}
	}
	return p.bfs.Remove(path)
}

// Rename moves source to target, refusing to replace an existing target
// unless overwrite is set.
func (p *BillyProvider) Rename(source, target string, overwrite bool) error {
	if !overwrite {
		if _, err := p.bfs.Lstat(target); err == nil {
			return os.ErrExist
		}
	}
	return p.bfs.Rename(source, target)
}

// Copy copies source to target, recursing depth-first into directories.
func (p *BillyProvider) Copy(source, target string, overwrite bool) error {
	info, err := p.bfs.Stat(source)
	if err != nil {
		return err
	}
	switch {
	case info.Mode().IsRegular():
		return p.copyFile(source, target, overwrite)
	case info.IsDir():
		if !overwrite {
			if _, err := p.bfs.Lstat(target); err == nil {
				return os.ErrExist
			}
		}
		if err := p.bfs.MkdirAll(target, 0o755); err != nil {
			return err
		}
		infos, err := p.bfs.ReadDir(source)
		if err != nil {
			return err
		}
		for _, child := range infos {
			src := p.bfs.Join(source, child.Name())
			dst := p.bfs.Join(target, child.Name())
			if err := p.Copy(src, dst, overwrite); err != nil {
				return err
			}
		}
		return nil
	default:
		return core.NewErrorf(core.CodeUnknown, "cannot copy entry of unknown type: %s", source)
	}
}

func (p *BillyProvider) copyFile(source, target string, overwrite bool) error {
	src, err := p.bfs.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	dst, err := p.bfs.OpenFile(target, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// FindFiles walks the tree below include.Base returning files whose
// base-relative path matches include.Pattern, excluding matches of the
// single exclude pattern. This mirrors a native file search: only regular
// files are returned.
func (p *BillyProvider) FindFiles(include core.RelativePattern, exclude string) ([]string, error) {
	matcher, err := glob.Compile(include.Pattern, '/')
	if err != nil {
		return nil, err
	}
	var excludeMatcher glob.Glob
	if exclude != "" {
		excludeMatcher, err = glob.Compile(exclude, '/')
		if err != nil {
			return nil, err
		}
	}
	var out []string
	if err := p.findFiles(include.Base, "", matcher, excludeMatcher, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *BillyProvider) findFiles(dir, relDir string, include, exclude glob.Glob, out *[]string) error {
	infos, err := p.bfs.ReadDir(dir)
	if err != nil {
		if relDir == "" {
			return err
		}
		return nil
	}
	for _, info := range infos {
		rel := info.Name()
		if relDir != "" {
			rel = relDir + "/" + info.Name()
		}
		abs := p.bfs.Join(dir, info.Name())
		if exclude != nil && exclude.Match(rel) {
			continue
		}
		if info.IsDir() {
			if err := p.findFiles(abs, rel, include, exclude, out); err != nil {
				return err
			}
			continue
		}
		if include.Match(rel) {
			*out = append(*out, abs)
		}
	}
	return nil
}

// CreateFileSystemWatcher fails: billy exposes no change notification.
func (p *BillyProvider) CreateFileSystemWatcher(_ core.RelativePattern, _, _, _ bool) (ProviderWatcher, error) {
	return nil, core.NewError(core.CodeUnavailable, "this provider has no file watching support")
}

// Unwrap returns the underlying billy.Filesystem.
func (p *BillyProvider) Unwrap() billy.Filesystem {
	return p.bfs
}

// Compile-time interface check.
var _ Provider = (*BillyProvider)(nil)
