package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

func testSymlinks(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	target := filepath.Join(root, "target.txt")
	require.NoError(t, fs.WriteFile(target, []byte("content")))

	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))
	broken := filepath.Join(root, "broken")
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), broken))

	t.Run("ResolvedLink", func(t *testing.T) {
		st, err := fs.Stat(link)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeFile|core.FileTypeSymbolicLink, st.Type)
		assert.Equal(t, int64(7), st.Size, "stat must report the target's record")
	})

	t.Run("BrokenLink", func(t *testing.T) {
		st, err := fs.Stat(broken)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeSymbolicLink, st.Type)
	})

	t.Run("ProbeExactness", func(t *testing.T) {
		// A link resolving to a file is not exactly a file, nor exactly
		// a bare symlink.
		_, ok := fs.IsFile(link)
		assert.False(t, ok)
		_, ok = fs.IsSymbolicLink(link)
		assert.False(t, ok)

		_, ok = fs.IsSymbolicLink(broken)
		assert.True(t, ok)
	})

	t.Run("ReadDirectoryDegrades", func(t *testing.T) {
		entries, err := fs.ReadDirectory(root)
		require.NoError(t, err)
		types := map[string]core.FileType{}
		for _, e := range entries {
			types[e.Name] = e.Type
		}
		assert.Equal(t, core.FileTypeFile|core.FileTypeSymbolicLink, types["link"])
		assert.Equal(t, core.FileTypeSymbolicLink, types["broken"])
	})
}

func testStreams(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	path := filepath.Join(root, "stream.txt")

	w, err := fs.CreateWritableStream(path, core.WritableStreamOptions{})
	require.NoError(t, err)
	_, err = w.Write([]byte("part one, "))
	require.NoError(t, err)
	_, err = w.Write([]byte("part two"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fs.CreateReadableStream(path)
	require.NoError(t, err)
	data := make([]byte, 64)
	n, _ := r.Read(data)
	require.NoError(t, r.Close())
	assert.Equal(t, "part one, part two", string(data[:n]))

	_, err = fs.CreateReadableStream(filepath.Join(root, "missing"))
	require.Error(t, err)
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))

	// Append flag passes through.
	w, err = fs.CreateWritableStream(path, core.WritableStreamOptions{
		Flags: os.O_WRONLY | os.O_APPEND,
	})
	require.NoError(t, err)
	_, err = w.Write([]byte(", part three"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "part one, part two, part three", string(content))
}
