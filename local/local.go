// Package local implements the filesystem contract directly on top of the
// operating system: os file primitives for I/O, fsnotify for change
// notification, a glob engine for matching, and the user trash can for
// soft deletion.
package local

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/internal/times"
	"github.com/Groupguanfang/vscode-fs/internal/trash"
)

// FS is the local-OS backend. The zero value is not usable; construct
// through New.
type FS struct {
	logger zerolog.Logger

	trashOnce sync.Once
	trasher   trash.Trasher
	trashErr  error
}

// Option configures filesystem creation.
type Option func(*FS)

// WithLogger attaches a structured logger. The default discards all logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *FS) {
		l.logger = logger
	}
}

// WithTrasher overrides the trash facility used by Delete with UseTrash.
// The default is the user's freedesktop.org trash directory, resolved
// lazily on first use.
func WithTrasher(t trash.Trasher) Option {
	return func(l *FS) {
		l.trasher = t
		// Burn the once so the lazy default never replaces the override.
		l.trashOnce.Do(func() {})
	}
}

// New creates a local-OS backend.
func New(opts ...Option) *FS {
	l := &FS{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stat returns fresh metadata for the entry at path, resolving a symbolic
// link to its target. A link whose target cannot be resolved reports
// FileTypeSymbolicLink alone, with the link's own times and size.
func (l *FS) Stat(path string) (core.FileStat, error) {
	st, err := l.stat(path)
	if err != nil {
		return core.FileStat{}, core.Normalize(err)
	}
	return st, nil
}

// stat is Stat without error normalization, shared by the probes.
func (l *FS) stat(path string) (core.FileStat, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return core.FileStat{}, err
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		return statFromInfo(info, typeOf(info.Mode())), nil
	}
	target, err := os.Stat(path)
	if err != nil {
		// Broken link: report the link's own record with no base type.
		return statFromInfo(info, core.FileTypeSymbolicLink), nil
	}
	return statFromInfo(target, typeOf(target.Mode())|core.FileTypeSymbolicLink), nil
}

// typeOf maps a file mode to the entry type taxonomy.
func typeOf(mode iofs.FileMode) core.FileType {
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

func statFromInfo(info iofs.FileInfo, t core.FileType) core.FileStat {
	return core.FileStat{
		Type:  t,
		CTime: times.CTime(info),
		MTime: times.MTime(info),
		Size:  info.Size(),
	}
}

// ReadDirectory lists the immediate children of the directory at path.
// Symlinked children are resolved individually; an unresolvable link
// degrades to FileTypeSymbolicLink rather than failing the listing.
func (l *FS) ReadDirectory(path string) ([]core.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, core.Normalize(err)
	}
	out := make([]core.DirEntry, 0, len(entries))
	for _, e := range entries {
		t := typeOf(e.Type())
		if e.Type()&iofs.ModeSymlink != 0 {
			if st, err := l.stat(filepath.Join(path, e.Name())); err == nil {
				t = st.Type
			}
		}
		out = append(out, core.DirEntry{Name: e.Name(), Type: t})
	}
	return out, nil
}

// CreateDirectory creates the directory at path along with any missing
// parents. Succeeds if the directory already exists.
func (l *FS) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return core.Normalize(err)
	}
	return nil
}

// ReadFile returns the entire content of the file at path.
func (l *FS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Normalize(err)
	}
	return data, nil
}

// WriteFile replaces the entire content of the file at path, creating it
// if necessary.
func (l *FS) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return core.Normalize(err)
	}
	return nil
}

// Delete removes the entry at path. With UseTrash the entry is moved to
// the trash facility; otherwise it is removed permanently, recursing into
// directories only when Recursive is set.
func (l *FS) Delete(path string, opts core.DeleteOptions) error {
	if opts.UseTrash {
		t, err := l.trashFacility()
		if err != nil {
			return core.Normalize(err)
		}
		if err := t.Trash(path); err != nil {
			return core.Normalize(err)
		}
		l.logger.Debug().Str("path", path).Msg("moved to trash")
		return nil
	}
	if opts.Recursive {
		// RemoveAll succeeds on a missing path; the contract reports
		// not-found, so check first.
		if _, err := os.Lstat(path); err != nil {
			return core.Normalize(err)
		}
		if err := os.RemoveAll(path); err != nil {
			return core.Normalize(err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil {
		return core.Normalize(err)
	}
	return nil
}

// trashFacility resolves the trash collaborator on first use.
func (l *FS) trashFacility() (trash.Trasher, error) {
	l.trashOnce.Do(func() {
		l.trasher, l.trashErr = trash.NewXDG()
	})
	if l.trashErr != nil {
		return nil, l.trashErr
	}
	return l.trasher, nil
}

// Rename moves source to target. With ErrorIfExists, a present target
// fails with CodeFileExists before anything is renamed; otherwise the
// rename is unconditional and replaces an existing target.
func (l *FS) Rename(source, target string, opts core.RenameOptions) error {
	if opts.ErrorIfExists {
		if _, err := os.Lstat(target); err == nil {
			return core.NewErrorf(core.CodeFileExists, "rename target already exists: %s", target)
		}
	}
	if err := os.Rename(source, target); err != nil {
		return core.Normalize(err)
	}
	return nil
}

// IsFile reports whether the resolved type of path is exactly
// FileTypeFile. Probes never fail: any error reports false.
func (l *FS) IsFile(path string) (core.FileStat, bool) {
	return l.probe(path, core.FileTypeFile)
}

// IsDirectory reports whether the resolved type of path is exactly
// FileTypeDirectory.
func (l *FS) IsDirectory(path string) (core.FileStat, bool) {
	return l.probe(path, core.FileTypeDirectory)
}

// IsSymbolicLink reports whether the type of path is exactly
// FileTypeSymbolicLink, i.e. a link with no resolved base type.
func (l *FS) IsSymbolicLink(path string) (core.FileStat, bool) {
	return l.probe(path, core.FileTypeSymbolicLink)
}

// probe narrows Stat to an exact type. The comparison is bitwise equality,
// not a superset check: a symlink resolving to a file matches neither
// IsFile nor IsSymbolicLink.
func (l *FS) probe(path string, want core.FileType) (core.FileStat, bool) {
	st, err := l.stat(path)
	if err != nil || st.Type != want {
		return core.FileStat{}, false
	}
	return st, true
}

// Exists returns the stat record for path, reporting false on any error.
func (l *FS) Exists(path string) (core.FileStat, bool) {
	st, err := l.stat(path)
	if err != nil {
		return core.FileStat{}, false
	}
	return st, true
}

// Compile-time interface check.
var _ core.FileSystem = (*FS)(nil)
