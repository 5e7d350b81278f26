package fstest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

func testRename(t *testing.T, newFS Factory) {
	fs, root := newFS(t)

	t.Run("Default", func(t *testing.T) {
		a := filepath.Join(root, "a.txt")
		b := filepath.Join(root, "b.txt")
		require.NoError(t, fs.WriteFile(a, []byte("from a")))
		require.NoError(t, fs.WriteFile(b, []byte("from b")))

		// The default replaces an existing target.
		require.NoError(t, fs.Rename(a, b, core.RenameOptions{}))
		_, ok := fs.Exists(a)
		assert.False(t, ok)
		data, err := fs.ReadFile(b)
		require.NoError(t, err)
		assert.Equal(t, []byte("from a"), data)
	})

	t.Run("NoOverwrite", func(t *testing.T) {
		c := filepath.Join(root, "c.txt")
		d := filepath.Join(root, "d.txt")
		require.NoError(t, fs.WriteFile(c, []byte("from c")))
		require.NoError(t, fs.WriteFile(d, []byte("from d")))

		err := fs.Rename(c, d, core.RenameOptions{ErrorIfExists: true})
		require.Error(t, err)
		assert.Equal(t, core.CodeFileExists, core.CodeOf(err))

		// Both entries are left unchanged.
		data, err := fs.ReadFile(c)
		require.NoError(t, err)
		assert.Equal(t, []byte("from c"), data)
		data, err = fs.ReadFile(d)
		require.NoError(t, err)
		assert.Equal(t, []byte("from d"), data)
	})

	t.Run("MissingSource", func(t *testing.T) {
		err := fs.Rename(filepath.Join(root, "missing"), filepath.Join(root, "out"), core.RenameOptions{})
		require.Error(t, err)
		assert.True(t, core.IsFileSystemError(err))
	})
}

func testCopy(t *testing.T, newFS Factory) {
	fs, root := newFS(t)

	setupTree := func(t *testing.T, name string) string {
		dir := filepath.Join(root, name)
		require.NoError(t, fs.CreateDirectory(filepath.Join(dir, "y")))
		require.NoError(t, fs.WriteFile(filepath.Join(dir, "x.txt"), []byte("hi")))
		require.NoError(t, fs.WriteFile(filepath.Join(dir, "y", "z.txt"), []byte("deep")))
		return dir
	}

	t.Run("File", func(t *testing.T) {
		src := filepath.Join(root, "src.txt")
		dst := filepath.Join(root, "dst.txt")
		require.NoError(t, fs.WriteFile(src, []byte("content")))

		require.NoError(t, fs.Copy(src, dst, core.CopyOptions{}))
		data, err := fs.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("content"), data)

		// Source remains.
		_, ok := fs.Exists(src)
		assert.True(t, ok)
	})

	t.Run("Tree", func(t *testing.T) {
		dirA := setupTree(t, "dirA")
		dirB := filepath.Join(root, "dirB")

		require.NoError(t, fs.Copy(dirA, dirB, core.CopyOptions{}))
		data, err := fs.ReadFile(filepath.Join(dirB, "x.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), data)
		data, err = fs.ReadFile(filepath.Join(dirB, "y", "z.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("deep"), data)
	})

	t.Run("NoOverwrite", func(t *testing.T) {
		dirC := setupTree(t, "dirC")
		dirD := filepath.Join(root, "dirD")
		require.NoError(t, fs.CreateDirectory(dirD))
		require.NoError(t, fs.WriteFile(filepath.Join(dirD, "keep.txt"), []byte("keep")))

		err := fs.Copy(dirC, dirD, core.CopyOptions{ErrorIfExists: true})
		require.Error(t, err)
		assert.Equal(t, core.CodeFileExists, core.CodeOf(err))

		// Existing contents are untouched.
		data, err := fs.ReadFile(filepath.Join(dirD, "keep.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("keep"), data)
		_, ok := fs.Exists(filepath.Join(dirD, "x.txt"))
		assert.False(t, ok)
	})

	t.Run("FileNoOverwrite", func(t *testing.T) {
		src := filepath.Join(root, "fno-src.txt")
		dst := filepath.Join(root, "fno-dst.txt")
		require.NoError(t, fs.WriteFile(src, []byte("new")))
		require.NoError(t, fs.WriteFile(dst, []byte("old")))

		err := fs.Copy(src, dst, core.CopyOptions{ErrorIfExists: true})
		require.Error(t, err)
		assert.Equal(t, core.CodeFileExists, core.CodeOf(err))
		data, err := fs.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("old"), data)
	})
}
