package host

import (
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/local"
)

// FS is the host-provider backend. Every operation delegates to the
// native provider where a direct equivalent exists; streaming, which the
// provider surface lacks, is forwarded to a lazily constructed local
// backend. Construct through New.
type FS struct {
	provider Provider
	logger   zerolog.Logger

	localOnce sync.Once
	localFS   *local.FS
}

// Option configures filesystem creation.
type Option func(*FS)

// WithLogger attaches a structured logger. The default discards all logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *FS) {
		h.logger = logger
	}
}

// New creates a host-provider backend delegating to p.
func New(p Provider, opts ...Option) *FS {
	h := &FS{provider: p, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// normalize translates a provider failure into the taxonomy. A
// ProviderError whose code mirrors a taxonomy code keeps that code; the
// disallowed-remote-host signal has no code of its own and becomes Unknown
// with guidance naming the setting that permits the host; any other native
// code collapses to Unknown with the message preserved.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var perr *ProviderError
	if errors.As(err, &perr) {
		if perr.Code == CodeRemoteHostNotAllowed {
			return core.NewErrorf(core.CodeUnknown,
				"%s (add the host to the \"vscode-fs.allowedHosts\" setting to permit it)", perr.Message)
		}
		if code, ok := providerCode(perr.Code); ok {
			return core.WrapError(err, code, perr.Message)
		}
		return core.WrapError(err, core.CodeUnknown, perr.Message)
	}
	return core.Normalize(err)
}

// providerCode recognizes native signal codes that mirror the taxonomy, so
// a host reporting FileNotFound surfaces as FileNotFound rather than
// Unknown.
func providerCode(code string) (core.ErrorCode, bool) {
	switch c := core.ErrorCode(code); c {
	case core.CodeFileExists, core.CodeFileNotFound,
		core.CodeFileNotADirectory, core.CodeFileIsADirectory,
		core.CodeFileExceedsStorageQuota, core.CodeFileTooLarge,
		core.CodeFileWriteLocked, core.CodeNoPermissions,
		core.CodeUnavailable:
		return c, true
	}
	return core.CodeUnknown, false
}

// Stat returns fresh metadata from the native provider.
func (h *FS) Stat(path string) (core.FileStat, error) {
	st, err := h.provider.Stat(path)
	if err != nil {
		return core.FileStat{}, normalize(err)
	}
	return st, nil
}

// ReadDirectory lists immediate children through the native provider.
func (h *FS) ReadDirectory(path string) ([]core.DirEntry, error) {
	entries, err := h.provider.ReadDirectory(path)
	if err != nil {
		return nil, normalize(err)
	}
	return entries, nil
}

// CreateDirectory creates the directory and any missing parents.
func (h *FS) CreateDirectory(path string) error {
	return normalize(h.provider.CreateDirectory(path))
}

// ReadFile returns the entire content of the file at path.
func (h *FS) ReadFile(path string) ([]byte, error) {
	data, err := h.provider.ReadFile(path)
	if err != nil {
		return nil, normalize(err)
	}
	return data, nil
}

// WriteFile replaces the entire content of the file at path.
func (h *FS) WriteFile(path string, data []byte) error {
	return normalize(h.provider.WriteFile(path, data))
}

// Delete removes the entry at path through the native provider.
func (h *FS) Delete(path string, opts core.DeleteOptions) error {
	return normalize(h.provider.Delete(path, opts.Recursive, opts.UseTrash))
}

// Rename moves source to target. With ErrorIfExists the native rename is
// asked not to overwrite; otherwise replacement is unconditional.
func (h *FS) Rename(source, target string, opts core.RenameOptions) error {
	return normalize(h.provider.Rename(source, target, !opts.ErrorIfExists))
}

// Copy copies source to target through the native provider.
func (h *FS) Copy(source, target string, opts core.CopyOptions) error {
	return normalize(h.provider.Copy(source, target, !opts.ErrorIfExists))
}

// IsFile reports whether the native stat type is exactly FileTypeFile.
// Probes never fail: any provider rejection reports false.
func (h *FS) IsFile(path string) (core.FileStat, bool) {
	return h.probe(path, core.FileTypeFile)
}

// IsDirectory reports whether the native stat type is exactly
// FileTypeDirectory.
func (h *FS) IsDirectory(path string) (core.FileStat, bool) {
	return h.probe(path, core.FileTypeDirectory)
}

// IsSymbolicLink reports whether the native stat type is exactly
// FileTypeSymbolicLink.
func (h *FS) IsSymbolicLink(path string) (core.FileStat, bool) {
	return h.probe(path, core.FileTypeSymbolicLink)
}

func (h *FS) probe(path string, want core.FileType) (core.FileStat, bool) {
	st, err := h.provider.Stat(path)
	if err != nil || st.Type != want {
		return core.FileStat{}, false
	}
	return st, true
}

// Exists returns the native stat record, reporting false on any error.
func (h *FS) Exists(path string) (core.FileStat, bool) {
	st, err := h.provider.Stat(path)
	if err != nil {
		return core.FileStat{}, false
	}
	return st, true
}

// Glob delegates to the native search. A single-entry Ignore translates to
// the native exclusion parameter; a longer list is not expressible through
// the native call and is dropped, which is an accepted limitation of this
// backend. Results are sorted.
func (h *FS) Glob(pattern core.RelativePattern, opts core.GlobOptions) ([]string, error) {
	exclude := ""
	if len(opts.Ignore) == 1 {
		exclude = opts.Ignore[0]
	}
	paths, err := h.provider.FindFiles(pattern, exclude)
	if err != nil {
		return nil, normalize(err)
	}
	sort.Strings(paths)
	return paths, nil
}

// CreateWatcher wraps the native watcher to add the disposal-state flag
// the native type lacks, intercepting Dispose.
func (h *FS) CreateWatcher(pattern core.RelativePattern, opts core.WatchOptions) (core.Watcher, error) {
	pw, err := h.provider.CreateFileSystemWatcher(pattern,
		opts.IgnoreCreateEvents, opts.IgnoreChangeEvents, opts.IgnoreDeleteEvents)
	if err != nil {
		return nil, normalize(err)
	}
	h.logger.Debug().
		Str("base", pattern.Base).
		Str("pattern", pattern.Pattern).
		Msg("native watcher started")
	return &hostWatcher{raw: pw}, nil
}

// CreateReadableStream forwards to the local backend; the provider surface
// has no streaming primitives.
func (h *FS) CreateReadableStream(path string) (io.ReadCloser, error) {
	return h.local().CreateReadableStream(path)
}

// CreateWritableStream forwards to the local backend.
func (h *FS) CreateWritableStream(path string, opts core.WritableStreamOptions) (io.WriteCloser, error) {
	return h.local().CreateWritableStream(path, opts)
}

// local lazily constructs the stream-delegate backend once and reuses it
// for every stream call on this instance.
func (h *FS) local() *local.FS {
	h.localOnce.Do(func() {
		h.localFS = local.New(local.WithLogger(h.logger))
	})
	return h.localFS
}

// hostWatcher adds the disposed flag missing from the native watcher.
type hostWatcher struct {
	mu       sync.Mutex
	raw      ProviderWatcher
	disposed bool
}

func (w *hostWatcher) OnDidCreate(listener func(path string)) core.Disposable {
	return w.subscribe(func() ProviderDisposable { return w.raw.OnDidCreate(listener) })
}

func (w *hostWatcher) OnDidChange(listener func(path string)) core.Disposable {
	return w.subscribe(func() ProviderDisposable { return w.raw.OnDidChange(listener) })
}

func (w *hostWatcher) OnDidDelete(listener func(path string)) core.Disposable {
	return w.subscribe(func() ProviderDisposable { return w.raw.OnDidDelete(listener) })
}

func (w *hostWatcher) subscribe(register func() ProviderDisposable) core.Disposable {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed {
		return noopDisposable{}
	}
	return disposableAdapter{raw: register()}
}

func (w *hostWatcher) IsDisposed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disposed
}

func (w *hostWatcher) Dispose() {
	w.mu.Lock()
	if w.disposed {
		w.mu.Unlock()
		return
	}
	w.disposed = true
	w.mu.Unlock()
	w.raw.Dispose()
}

type disposableAdapter struct {
	raw ProviderDisposable
}

func (d disposableAdapter) Dispose() { d.raw.Dispose() }

type noopDisposable struct{}

func (noopDisposable) Dispose() {}

// Compile-time interface checks.
var (
	_ core.FileSystem = (*FS)(nil)
	_ core.Watcher    = (*hostWatcher)(nil)
)
