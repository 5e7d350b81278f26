// Package host implements the filesystem contract on top of a host
// environment's native file-system provider. The provider may itself be
// local, remote, or virtual; this package only adapts its surface to the
// core contract and translates its failure signals into the normalized
// taxonomy.
package host

import (
	"fmt"

	"github.com/Groupguanfang/vscode-fs/core"
)

// Provider is the native file-system surface a host environment exposes.
// Implementations report failures however they like; the adapter funnels
// everything through the error taxonomy. ProviderError lets an
// implementation attach a host-native signal code the adapter understands.
type Provider interface {
	// Stat returns metadata for the entry at path.
	Stat(path string) (core.FileStat, error)

	// ReadDirectory lists immediate children as (name, type) pairs.
	ReadDirectory(path string) ([]core.DirEntry, error)

	// CreateDirectory creates the directory and any missing parents.
	CreateDirectory(path string) error

	// ReadFile returns the whole content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the whole content of the file at path.
	WriteFile(path string, data []byte) error

	// Delete removes the entry at path. Providers without a trash
	// facility fail when useTrash is requested.
	Delete(path string, recursive, useTrash bool) error

	// Rename moves source to target, replacing the target when overwrite
	// is set.
	Rename(source, target string, overwrite bool) error

	// Copy copies source to target, replacing the target when overwrite
	// is set.
	Copy(source, target string, overwrite bool) error

	// FindFiles returns files under include.Base matching include.Pattern,
	// excluding matches of the single exclude pattern when non-empty.
	FindFiles(include core.RelativePattern, exclude string) ([]string, error)

	// CreateFileSystemWatcher starts native change notification for the
	// pattern. Providers without watching support fail.
	CreateFileSystemWatcher(pattern core.RelativePattern, ignoreCreate, ignoreChange, ignoreDelete bool) (ProviderWatcher, error)
}

// ProviderWatcher is the native watcher handle. It carries no disposal
// state of its own; the adapter wraps it to add one.
type ProviderWatcher interface {
	OnDidCreate(listener func(path string)) ProviderDisposable
	OnDidChange(listener func(path string)) ProviderDisposable
	OnDidDelete(listener func(path string)) ProviderDisposable
	Dispose()
}

// ProviderDisposable releases one native listener registration.
type ProviderDisposable interface {
	Dispose()
}

// ProviderError carries a host-native failure signal code alongside its
// message. Codes spelled like a taxonomy code (e.g. "FileNotFound") keep
// that code through normalization; unrecognized codes translate to the
// Unknown taxonomy code with the message preserved.
type ProviderError struct {
	Code    string
	Message string
}

// CodeRemoteHostNotAllowed is the host signal raised when the provider
// refuses to reach a remote host that is not on the configured allow list.
const CodeRemoteHostNotAllowed = "RemoteHostNotAllowed"

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
