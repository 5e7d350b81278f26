package fstest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

func testGlob(t *testing.T, newFS Factory) {
	fs, root := newFS(t)
	require.NoError(t, fs.WriteFile(filepath.Join(root, "a.txt"), []byte("a")))
	require.NoError(t, fs.WriteFile(filepath.Join(root, "b.txt"), []byte("b")))
	require.NoError(t, fs.WriteFile(filepath.Join(root, "c.md"), []byte("c")))
	require.NoError(t, fs.CreateDirectory(filepath.Join(root, "sub")))
	require.NoError(t, fs.WriteFile(filepath.Join(root, "sub", "d.txt"), []byte("d")))

	pattern := func(p string) core.RelativePattern {
		rp, err := core.NewRelativePattern(root, p)
		require.NoError(t, err)
		return rp
	}

	t.Run("TopLevel", func(t *testing.T) {
		got, err := fs.Glob(pattern("*.txt"), core.GlobOptions{OnlyFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "b.txt"),
		}, got)
	})

	t.Run("Nested", func(t *testing.T) {
		got, err := fs.Glob(pattern("sub/*.txt"), core.GlobOptions{OnlyFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "sub", "d.txt")}, got)
	})

	t.Run("Ignore", func(t *testing.T) {
		got, err := fs.Glob(pattern("*.txt"), core.GlobOptions{
			OnlyFiles: true,
			Ignore:    []string{"b.*"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.txt")}, got)
	})
}
