package host_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/fstest"
	"github.com/Groupguanfang/vscode-fs/host"
)

func TestHostFS(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func(t *testing.T) (core.FileSystem, string) {
		bfs := memfs.New()
		root := string(filepath.Separator) + "workspace"
		require.NoError(t, bfs.MkdirAll(root, 0o755))
		return host.New(host.NewBillyProvider(bfs)), root
	}, fstest.ProviderConfig())
}

func TestHostDisallowedRemoteHost(t *testing.T) {
	p := &signalProvider{err: &host.ProviderError{
		Code:    host.CodeRemoteHostNotAllowed,
		Message: "cannot reach \"ssh://build-box\"",
	}}
	fs := host.New(p)

	_, err := fs.ReadFile("/anything")
	require.Error(t, err)
	assert.True(t, core.IsFileSystemError(err))
	assert.Equal(t, core.CodeUnknown, core.CodeOf(err))
	assert.Contains(t, err.Error(), "vscode-fs.allowedHosts",
		"the failure must tell the user which setting permits the host")
	assert.Contains(t, err.Error(), "ssh://build-box")
}

func TestHostProviderErrorTaxonomyCodes(t *testing.T) {
	codes := []core.ErrorCode{
		core.CodeFileExists,
		core.CodeFileNotFound,
		core.CodeFileNotADirectory,
		core.CodeFileIsADirectory,
		core.CodeFileExceedsStorageQuota,
		core.CodeFileTooLarge,
		core.CodeFileWriteLocked,
		core.CodeNoPermissions,
		core.CodeUnavailable,
	}
	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			p := &signalProvider{err: &host.ProviderError{Code: string(code), Message: "entry absent"}}
			fs := host.New(p)

			// A native signal mirroring the taxonomy keeps its code.
			_, err := fs.Stat("/anything")
			require.Error(t, err)
			assert.True(t, core.IsFileSystemError(err))
			assert.Equal(t, code, core.CodeOf(err))
			assert.Contains(t, err.Error(), "entry absent")
		})
	}
}

func TestHostProviderErrorUnknownCode(t *testing.T) {
	p := &signalProvider{err: &host.ProviderError{Code: "SomethingNative", Message: "boom"}}
	fs := host.New(p)

	_, err := fs.Stat("/anything")
	require.Error(t, err)
	assert.Equal(t, core.CodeUnknown, core.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "boom"))
}

func TestHostWatcherDisposal(t *testing.T) {
	raw := &fakeWatcher{}
	fs := host.New(&watchProvider{watcher: raw})

	rp, err := core.NewRelativePattern(string(filepath.Separator)+"ws", "**")
	require.NoError(t, err)
	w, err := fs.CreateWatcher(rp, core.WatchOptions{})
	require.NoError(t, err)
	assert.False(t, w.IsDisposed())

	sub := w.OnDidChange(func(string) {})
	assert.Equal(t, 1, raw.subscriptions)

	sub.Dispose()
	assert.Equal(t, 1, raw.listenerDisposals)

	w.Dispose()
	assert.True(t, w.IsDisposed())
	assert.Equal(t, 1, raw.disposals)

	// Dispose is idempotent and later registrations are inert.
	w.Dispose()
	assert.Equal(t, 1, raw.disposals)
	w.OnDidCreate(func(string) {}).Dispose()
	assert.Equal(t, 1, raw.subscriptions, "a disposed watcher must not reach the native handle")
}

// signalProvider fails every operation with a fixed error.
type signalProvider struct {
	host.Provider
	err error
}

func (p *signalProvider) Stat(string) (core.FileStat, error) { return core.FileStat{}, p.err }
func (p *signalProvider) ReadFile(string) ([]byte, error)    { return nil, p.err }
func (p *signalProvider) WriteFile(string, []byte) error     { return p.err }
func (p *signalProvider) Delete(string, bool, bool) error    { return p.err }

// watchProvider hands out a canned native watcher.
type watchProvider struct {
	host.Provider
	watcher host.ProviderWatcher
}

func (p *watchProvider) CreateFileSystemWatcher(core.RelativePattern, bool, bool, bool) (host.ProviderWatcher, error) {
	return p.watcher, nil
}

type fakeWatcher struct {
	subscriptions     int
	listenerDisposals int
	disposals         int
}

func (f *fakeWatcher) OnDidCreate(func(path string)) host.ProviderDisposable { return f.register() }
func (f *fakeWatcher) OnDidChange(func(path string)) host.ProviderDisposable { return f.register() }
func (f *fakeWatcher) OnDidDelete(func(path string)) host.ProviderDisposable { return f.register() }
func (f *fakeWatcher) Dispose()                                              { f.disposals++ }

func (f *fakeWatcher) register() host.ProviderDisposable {
	f.subscriptions++
	return fakeDisposable{f}
}

type fakeDisposable struct{ w *fakeWatcher }

func (d fakeDisposable) Dispose() { d.w.listenerDisposals++ }
