package fstest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

const (
	eventTimeout = 3 * time.Second
	quietWindow  = 300 * time.Millisecond
)

func waitFor(t *testing.T, ch <-chan string, what string) string {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(eventTimeout):
		t.Fatalf("timeout waiting for %s", what)
		return ""
	}
}

func assertQuiet(t *testing.T, ch <-chan string, what string) {
	t.Helper()
	select {
	case got := <-ch:
		t.Fatalf("unexpected %s: %q", what, got)
	case <-time.After(quietWindow):
	}
}

func testWatcher(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	rp, err := core.NewRelativePattern(root, "*.txt")
	require.NoError(t, err)

	w, err := fs.CreateWatcher(rp, core.WatchOptions{})
	require.NoError(t, err)
	defer w.Dispose()
	assert.False(t, w.IsDisposed())

	creates := make(chan string, 8)
	deletes := make(chan string, 8)
	w.OnDidCreate(func(path string) { creates <- path })
	w.OnDidDelete(func(path string) { deletes <- path })

	note := filepath.Join(root, "note.txt")
	require.NoError(t, fs.WriteFile(note, []byte("hello")))
	assert.Equal(t, note, waitFor(t, creates, "create event"))
	assertQuiet(t, creates, "second create event")

	// A non-matching file fires nothing.
	require.NoError(t, fs.WriteFile(filepath.Join(root, "skip.md"), []byte("x")))
	assertQuiet(t, creates, "create event for non-matching file")

	require.NoError(t, fs.Delete(note, core.DeleteOptions{}))
	assert.Equal(t, note, waitFor(t, deletes, "delete event"))

	w.Dispose()
	assert.True(t, w.IsDisposed())

	// No delivery after disposal.
	require.NoError(t, fs.WriteFile(filepath.Join(root, "late.txt"), []byte("x")))
	assertQuiet(t, creates, "create event after dispose")

	// Disposal is idempotent.
	w.Dispose()
	assert.True(t, w.IsDisposed())
}

// watchChannels subscribes all three event kinds on w and returns their
// delivery channels.
func watchChannels(w core.Watcher) (creates, changes, deletes chan string) {
	creates = make(chan string, 8)
	changes = make(chan string, 8)
	deletes = make(chan string, 8)
	w.OnDidCreate(func(path string) { creates <- path })
	w.OnDidChange(func(path string) { changes <- path })
	w.OnDidDelete(func(path string) { deletes <- path })
	return creates, changes, deletes
}

func testWatcherEventFilters(t *testing.T, newFS Factory) {
	start := func(t *testing.T, opts core.WatchOptions) (core.FileSystem, string, chan string, chan string, chan string) {
		fs, root := newFS(t)
		rp, err := core.NewRelativePattern(root, "*.txt")
		require.NoError(t, err)
		w, err := fs.CreateWatcher(rp, opts)
		require.NoError(t, err)
		t.Cleanup(w.Dispose)
		creates, changes, deletes := watchChannels(w)
		return fs, root, creates, changes, deletes
	}

	t.Run("IgnoreCreateEvents", func(t *testing.T) {
		fs, root, creates, changes, deletes := start(t, core.WatchOptions{IgnoreCreateEvents: true})
		file := filepath.Join(root, "f.txt")

		// Creation is suppressed; the other kinds still deliver.
		require.NoError(t, fs.WriteFile(file, []byte("v1")))
		assertQuiet(t, creates, "create event with creates ignored")

		require.NoError(t, fs.WriteFile(file, []byte("v2")))
		assert.Equal(t, file, waitFor(t, changes, "change event"))

		require.NoError(t, fs.Delete(file, core.DeleteOptions{}))
		assert.Equal(t, file, waitFor(t, deletes, "delete event"))
	})

	t.Run("IgnoreChangeEvents", func(t *testing.T) {
		fs, root, creates, changes, deletes := start(t, core.WatchOptions{IgnoreChangeEvents: true})
		file := filepath.Join(root, "f.txt")

		require.NoError(t, fs.WriteFile(file, []byte("v1")))
		assert.Equal(t, file, waitFor(t, creates, "create event"))

		require.NoError(t, fs.WriteFile(file, []byte("v2")))
		assertQuiet(t, changes, "change event with changes ignored")

		require.NoError(t, fs.Delete(file, core.DeleteOptions{}))
		assert.Equal(t, file, waitFor(t, deletes, "delete event"))
	})

	t.Run("IgnoreDeleteEvents", func(t *testing.T) {
		fs, root, creates, _, deletes := start(t, core.WatchOptions{IgnoreDeleteEvents: true})
		file := filepath.Join(root, "f.txt")

		require.NoError(t, fs.WriteFile(file, []byte("v1")))
		assert.Equal(t, file, waitFor(t, creates, "create event"))

		require.NoError(t, fs.Delete(file, core.DeleteOptions{}))
		assertQuiet(t, deletes, "delete event with deletes ignored")
	})
}

func testListenerRemoval(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	file := filepath.Join(root, "tracked.txt")
	require.NoError(t, fs.WriteFile(file, []byte("v1")))

	rp, err := core.NewRelativePattern(root, "*.txt")
	require.NoError(t, err)
	w, err := fs.CreateWatcher(rp, core.WatchOptions{})
	require.NoError(t, err)
	defer w.Dispose()

	first := make(chan string, 8)
	second := make(chan string, 8)
	sub1 := w.OnDidChange(func(path string) { first <- path })
	w.OnDidChange(func(path string) { second <- path })

	// Removing one listener must leave the other untouched.
	sub1.Dispose()

	require.NoError(t, fs.WriteFile(file, []byte("v2")))
	assert.Equal(t, file, waitFor(t, second, "change event on remaining listener"))
	assertQuiet(t, first, "change event on removed listener")
}
