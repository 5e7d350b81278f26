package fstest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

func testStatAndExists(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	file := filepath.Join(root, "file.txt")
	require.NoError(t, fs.WriteFile(file, []byte("hello")))

	st, err := fs.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeFile, st.Type)
	assert.Equal(t, int64(5), st.Size)
	assert.Greater(t, st.MTime, int64(0))

	// exists(p) is truthy iff stat(p) succeeds.
	est, ok := fs.Exists(file)
	require.True(t, ok)
	assert.Equal(t, st.Type, est.Type)

	missing := filepath.Join(root, "missing")
	_, err = fs.Stat(missing)
	require.Error(t, err)
	assert.True(t, core.IsFileSystemError(err), "stat must return a normalized error")
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))

	_, ok = fs.Exists(missing)
	assert.False(t, ok)
}

func testProbes(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	file := filepath.Join(root, "file.txt")
	dir := filepath.Join(root, "dir")
	require.NoError(t, fs.WriteFile(file, []byte("x")))
	require.NoError(t, fs.CreateDirectory(dir))

	st, ok := fs.IsFile(file)
	require.True(t, ok)
	assert.Equal(t, core.FileTypeFile, st.Type)
	_, ok = fs.IsDirectory(file)
	assert.False(t, ok)
	_, ok = fs.IsSymbolicLink(file)
	assert.False(t, ok)

	st, ok = fs.IsDirectory(dir)
	require.True(t, ok)
	assert.Equal(t, core.FileTypeDirectory, st.Type)
	_, ok = fs.IsFile(dir)
	assert.False(t, ok)

	// Probes never fail; a missing entry is a plain false.
	_, ok = fs.IsFile(filepath.Join(root, "missing"))
	assert.False(t, ok)
	_, ok = fs.IsDirectory(filepath.Join(root, "missing"))
	assert.False(t, ok)
}

func testReadWrite(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	file := filepath.Join(root, "data.bin")

	require.NoError(t, fs.WriteFile(file, []byte("first")))
	data, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	// Write fully replaces prior content.
	require.NoError(t, fs.WriteFile(file, []byte("2")))
	data, err = fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), data)

	_, err = fs.ReadFile(filepath.Join(root, "missing"))
	require.Error(t, err)
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))
}

func testReadDirectory(t *testing.T, newFS Factory, config Config) {
	fs, root := newFS(t)
	require.NoError(t, fs.WriteFile(filepath.Join(root, "a.txt"), []byte("a")))
	require.NoError(t, fs.CreateDirectory(filepath.Join(root, "sub")))

	entries, err := fs.ReadDirectory(root)
	require.NoError(t, err)
	types := map[string]core.FileType{}
	for _, e := range entries {
		types[e.Name] = e.Type
	}
	assert.Equal(t, core.FileTypeFile, types["a.txt"])
	assert.Equal(t, core.FileTypeDirectory, types["sub"])

	if config.StrictDirectoryErrors {
		_, err = fs.ReadDirectory(filepath.Join(root, "missing"))
		require.Error(t, err)
		assert.True(t, core.IsFileSystemError(err))
	}
}

func testCreateDirectory(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	nested := filepath.Join(root, "a", "b", "c")

	require.NoError(t, fs.CreateDirectory(nested))
	_, ok := fs.IsDirectory(nested)
	assert.True(t, ok)

	// Idempotent when already present.
	require.NoError(t, fs.CreateDirectory(nested))
}

func testDelete(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	file := filepath.Join(root, "f.txt")
	require.NoError(t, fs.WriteFile(file, []byte("x")))

	require.NoError(t, fs.Delete(file, core.DeleteOptions{}))
	_, ok := fs.Exists(file)
	assert.False(t, ok)

	// A non-empty directory needs Recursive.
	dir := filepath.Join(root, "dir")
	require.NoError(t, fs.CreateDirectory(dir))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "child"), []byte("x")))
	err := fs.Delete(dir, core.DeleteOptions{})
	require.Error(t, err)
	assert.True(t, core.IsFileSystemError(err))
	_, ok = fs.Exists(dir)
	assert.True(t, ok, "failed delete must leave the directory in place")

	require.NoError(t, fs.Delete(dir, core.DeleteOptions{Recursive: true}))
	_, ok = fs.Exists(dir)
	assert.False(t, ok)

	err = fs.Delete(filepath.Join(root, "missing"), core.DeleteOptions{Recursive: true})
	require.Error(t, err)
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))
}
