package core

// FileType identifies the kind of a filesystem entry.
//
// File and Directory may be combined with SymbolicLink via bitwise OR to
// describe a symbolic link whose target resolves to that type. A broken
// symbolic link (one whose target cannot be resolved) is reported as
// SymbolicLink alone, with no File or Directory bit set.
type FileType int

const (
	// FileTypeUnknown indicates the entry type could not be determined,
	// or is something other than a file, directory, or symbolic link
	// (e.g., a device node or socket).
	FileTypeUnknown FileType = 0

	// FileTypeFile indicates a regular file.
	FileTypeFile FileType = 1

	// FileTypeDirectory indicates a directory.
	FileTypeDirectory FileType = 2

	// FileTypeSymbolicLink indicates a symbolic link. Combined with
	// FileTypeFile or FileTypeDirectory when the link target resolves.
	FileTypeSymbolicLink FileType = 64
)

// IsFile reports whether the File bit is set, including symlinks that
// resolve to a file. Use equality with FileTypeFile to exclude symlinks.
func (t FileType) IsFile() bool {
	return t&FileTypeFile != 0
}

// IsDirectory reports whether the Directory bit is set, including symlinks
// that resolve to a directory.
func (t FileType) IsDirectory() bool {
	return t&FileTypeDirectory != 0
}

// IsSymbolicLink reports whether the SymbolicLink bit is set.
func (t FileType) IsSymbolicLink() bool {
	return t&FileTypeSymbolicLink != 0
}

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeFile:
		return "file"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymbolicLink:
		return "symbolic-link"
	case FileTypeFile | FileTypeSymbolicLink:
		return "file-symbolic-link"
	case FileTypeDirectory | FileTypeSymbolicLink:
		return "directory-symbolic-link"
	default:
		return "unknown"
	}
}

// FileStat is a point-in-time metadata record for a filesystem entry.
//
// A FileStat is produced fresh on every metadata query and is never cached
// across calls; it carries no identity beyond the moment of observation.
type FileStat struct {
	// Type is the entry type, possibly a composite such as
	// FileTypeFile | FileTypeSymbolicLink.
	Type FileType

	// CTime is the creation instant in milliseconds since the Unix epoch.
	// On platforms without birth-time support this is the inode change time.
	CTime int64

	// MTime is the last modification instant in milliseconds since the
	// Unix epoch.
	MTime int64

	// Size is the entry size in bytes. Never negative.
	Size int64
}

// DirEntry is a single child produced by ReadDirectory.
type DirEntry struct {
	// Name is the base name of the child, without any path separators.
	Name string

	// Type is the child's resolved type. Symlinked children are resolved
	// the same way Stat resolves a top-level symlink; unresolvable links
	// degrade to FileTypeSymbolicLink alone.
	Type FileType
}
