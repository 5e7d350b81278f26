package local_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/fstest"
	"github.com/Groupguanfang/vscode-fs/internal/trash"
	"github.com/Groupguanfang/vscode-fs/local"
)

func TestLocalFS(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
		return local.New(), t.TempDir()
	})
}

func TestDeleteUseTrash(t *testing.T) {
	trashDir := t.TempDir()
	fs := local.New(local.WithTrasher(trash.NewXDGAt(trashDir)))

	root := t.TempDir()
	file := filepath.Join(root, "doomed.txt")
	require.NoError(t, fs.WriteFile(file, []byte("bye")))

	require.NoError(t, fs.Delete(file, core.DeleteOptions{UseTrash: true}))
	_, ok := fs.Exists(file)
	assert.False(t, ok, "trashed file must leave its original location")

	// The entry landed in the trash with its restore record.
	data, err := os.ReadFile(filepath.Join(trashDir, "files", "doomed.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bye"), data)
	info, err := os.ReadFile(filepath.Join(trashDir, "info", "doomed.txt.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
}

func TestDeleteUseTrashDirectory(t *testing.T) {
	trashDir := t.TempDir()
	fs := local.New(local.WithTrasher(trash.NewXDGAt(trashDir)))

	root := t.TempDir()
	dir := filepath.Join(root, "project")
	require.NoError(t, fs.CreateDirectory(dir))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x")))

	require.NoError(t, fs.Delete(dir, core.DeleteOptions{UseTrash: true, Recursive: true}))
	_, ok := fs.Exists(dir)
	assert.False(t, ok)

	data, err := os.ReadFile(filepath.Join(trashDir, "files", "project", "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestGlobOptions(t *testing.T) {
	fs := local.New()
	root := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.CreateDirectory(filepath.Dir(path)))
		require.NoError(t, fs.WriteFile(path, []byte(rel)))
	}
	write("a.txt")
	write(".hidden.txt")
	write("sub/b.txt")
	write("sub/deep/c.txt")
	write("assets/logo.png")
	write("assets/icons/app.png")

	pattern := func(p string) core.RelativePattern {
		rp, err := core.NewRelativePattern(root, p)
		require.NoError(t, err)
		return rp
	}
	abs := func(rel string) string {
		return filepath.Join(root, filepath.FromSlash(rel))
	}

	t.Run("DotHiddenByDefault", func(t *testing.T) {
		got, err := fs.Glob(pattern("*.txt"), core.GlobOptions{OnlyFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("a.txt")}, got)
	})

	t.Run("Dot", func(t *testing.T) {
		got, err := fs.Glob(pattern("*.txt"), core.GlobOptions{OnlyFiles: true, Dot: true})
		require.NoError(t, err)
		assert.Equal(t, []string{abs(".hidden.txt"), abs("a.txt")}, got)
	})

	t.Run("Deep", func(t *testing.T) {
		// Depth 2 reaches sub/b.txt but never sub/deep/c.txt.
		got, err := fs.Glob(pattern("**.txt"), core.GlobOptions{OnlyFiles: true, Deep: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("a.txt"), abs("sub/b.txt")}, got)
	})

	t.Run("OnlyDirectories", func(t *testing.T) {
		got, err := fs.Glob(pattern("*"), core.GlobOptions{OnlyDirectories: true})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("assets"), abs("sub")}, got)
	})

	t.Run("ExpandDirectories", func(t *testing.T) {
		// A matched directory expands to everything beneath it.
		got, err := fs.Glob(pattern("assets"), core.GlobOptions{
			OnlyFiles:         true,
			ExpandDirectories: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("assets/icons/app.png"), abs("assets/logo.png")}, got)
	})

	t.Run("IgnorePattern", func(t *testing.T) {
		ignore := pattern("sub/**")
		got, err := fs.Glob(pattern("**.txt"), core.GlobOptions{
			OnlyFiles:     true,
			IgnorePattern: &ignore,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("a.txt")}, got)
	})

	t.Run("BracesLiteralByDefault", func(t *testing.T) {
		write("{a,b}.txt")
		got, err := fs.Glob(pattern("{a,b}.txt"), core.GlobOptions{OnlyFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("{a,b}.txt")}, got)
	})

	t.Run("ExtGlob", func(t *testing.T) {
		got, err := fs.Glob(pattern("{a,missing}.txt"), core.GlobOptions{
			OnlyFiles: true,
			ExtGlob:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{abs("a.txt")}, got)
	})
}

func TestGlobFollowSymbolicLinks(t *testing.T) {
	fs := local.New()
	root := t.TempDir()
	target := filepath.Join(root, "real")
	require.NoError(t, fs.CreateDirectory(target))
	require.NoError(t, fs.WriteFile(filepath.Join(target, "inside.txt"), []byte("x")))
	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	rp, err := core.NewRelativePattern(root, "link/*.txt")
	require.NoError(t, err)

	got, err := fs.Glob(rp, core.GlobOptions{OnlyFiles: true})
	require.NoError(t, err)
	assert.Empty(t, got, "links are not traversed unless requested")

	got, err = fs.Glob(rp, core.GlobOptions{OnlyFiles: true, FollowSymbolicLinks: true})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "link", "inside.txt")}, got)
}

func TestWriteFileMissingParent(t *testing.T) {
	fs := local.New()
	root := t.TempDir()

	err := fs.WriteFile(filepath.Join(root, "no-such-dir", "c.txt"), []byte("x"))
	require.Error(t, err)
	assert.True(t, core.IsFileSystemError(err))
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))
}
