package core

import (
	"io"
	"io/fs"
)

// FileSystem is the capability surface all consumers program against.
//
// A consumer obtains one backend instance satisfying FileSystem at
// initialization; the concrete backend (local OS or host provider) is
// transparent thereafter. Every operation reports failures as a
// *FileSystemError drawn from the closed taxonomy; raw backend errors
// never escape.
//
// Operations take and return absolute file paths. No operation is
// serialized against concurrent calls on the same path; callers get no
// locking or isolation beyond what the underlying backend provides, and a
// positive probe result is no guarantee for a subsequent operation.
type FileSystem interface {
	// Stat returns fresh metadata for the entry at path. Symbolic links
	// are resolved one level: a link to a file reports
	// FileTypeFile|FileTypeSymbolicLink, a link whose target cannot be
	// resolved reports FileTypeSymbolicLink alone.
	Stat(path string) (FileStat, error)

	// ReadDirectory lists the immediate children of the directory at path
	// as (name, type) pairs. Symlinked children are resolved individually;
	// an unresolvable link degrades to FileTypeSymbolicLink rather than
	// failing the whole listing.
	ReadDirectory(path string) ([]DirEntry, error)

	// CreateDirectory creates the directory at path along with any missing
	// parents. It succeeds if the directory already exists.
	CreateDirectory(path string) error

	// ReadFile returns the entire content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the entire content of the file at path, creating
	// it if necessary.
	WriteFile(path string, data []byte) error

	// Delete removes the entry at path. With UseTrash the entry is moved
	// to the trash facility instead of being removed permanently. Deleting
	// a non-empty directory without Recursive fails.
	Delete(path string, opts DeleteOptions) error

	// Rename moves source to target. By default an existing target is
	// replaced; with ErrorIfExists set, a present target fails with
	// CodeFileExists and neither entry is changed.
	Rename(source, target string, opts RenameOptions) error

	// Copy copies source to target, recursing depth-first into
	// directories. By default an existing target is overwritten; with
	// ErrorIfExists set, a present target fails with CodeFileExists.
	// Entries that are neither files nor directories fail with
	// CodeUnknown. Copying is not atomic: a partial copy may remain when
	// an error interrupts the recursion.
	Copy(source, target string, opts CopyOptions) error

	// IsFile reports whether the resolved type of path is exactly
	// FileTypeFile (bitwise equality, so symlinks to files do not match)
	// and returns the stat record when it is. Probes never fail: any
	// underlying error, including not-found, reports false.
	IsFile(path string) (FileStat, bool)

	// IsDirectory is the directory analogue of IsFile.
	IsDirectory(path string) (FileStat, bool)

	// IsSymbolicLink reports whether the type of path is exactly
	// FileTypeSymbolicLink, i.e. a broken link with no resolved base type.
	IsSymbolicLink(path string) (FileStat, bool)

	// Exists returns the stat record for path when it can be produced and
	// reports false on any error.
	Exists(path string) (FileStat, bool)

	// Glob returns the absolute paths under pattern.Base matching
	// pattern.Pattern, filtered and bounded by opts. Results are sorted.
	Glob(pattern RelativePattern, opts GlobOptions) ([]string, error)

	// CreateWatcher starts change notification for paths matching pattern
	// and returns a disposable Watcher multiplexing create, change, and
	// delete events. The watcher runs until disposed; leaking it leaks the
	// underlying notification resource.
	CreateWatcher(pattern RelativePattern, opts WatchOptions) (Watcher, error)

	// CreateReadableStream opens the file at path for streaming reads.
	CreateReadableStream(path string) (io.ReadCloser, error)

	// CreateWritableStream opens the file at path for streaming writes,
	// honoring the open flags and permission in opts.
	CreateWritableStream(path string, opts WritableStreamOptions) (io.WriteCloser, error)
}

// DeleteOptions controls Delete. The zero value removes permanently and
// refuses non-empty directories.
type DeleteOptions struct {
	// Recursive permits deleting directories together with their contents.
	Recursive bool

	// UseTrash moves the entry to the operating system trash facility
	// instead of removing it permanently.
	UseTrash bool
}

// RenameOptions controls Rename. The zero value renames unconditionally,
// replacing an existing target.
type RenameOptions struct {
	// ErrorIfExists makes Rename fail with CodeFileExists when the target
	// is already present, instead of replacing it.
	ErrorIfExists bool
}

// CopyOptions controls Copy. The zero value overwrites an existing target,
// matching RenameOptions' default.
type CopyOptions struct {
	// ErrorIfExists makes Copy fail with CodeFileExists when the target is
	// already present, instead of overwriting it.
	ErrorIfExists bool
}

// GlobOptions is passed through to the glob engine.
type GlobOptions struct {
	// OnlyFiles restricts results to regular files.
	OnlyFiles bool

	// OnlyDirectories restricts results to directories.
	OnlyDirectories bool

	// FollowSymbolicLinks descends into directories reached through
	// symbolic links. Combined with Deep this bounds traversal of cyclic
	// link structures.
	FollowSymbolicLinks bool

	// Ignore lists glob patterns, relative to the search base, whose
	// matches (and matched directories' subtrees) are excluded.
	Ignore []string

	// IgnorePattern excludes matches of a pattern evaluated against its
	// own base. It composes with Ignore.
	IgnorePattern *RelativePattern

	// Dot includes entries whose names begin with a dot.
	Dot bool

	// ExpandDirectories additionally returns everything inside matched
	// directories.
	ExpandDirectories bool

	// ExtGlob enables brace alternation syntax such as "*.{go,md}". When
	// unset, braces match literally.
	ExtGlob bool

	// Deep bounds recursion depth below the base; 0 means unbounded.
	Deep int
}

// WatchOptions selects which event kinds a watcher delivers. The zero
// value delivers all three.
type WatchOptions struct {
	IgnoreCreateEvents bool
	IgnoreChangeEvents bool
	IgnoreDeleteEvents bool
}

// WritableStreamOptions controls CreateWritableStream. The zero value
// truncates or creates the target with permission 0o644.
type WritableStreamOptions struct {
	// Flags are os.O_* open flags. Zero means
	// os.O_WRONLY|os.O_CREATE|os.O_TRUNC.
	Flags int

	// Perm is the permission used when the file is created. Zero means
	// 0o644.
	Perm fs.FileMode
}
