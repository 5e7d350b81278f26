package trash_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/internal/trash"
)

func TestTrashFile(t *testing.T) {
	root := t.TempDir()
	work := t.TempDir()
	file := filepath.Join(work, "report.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	tr := trash.NewXDGAt(root)
	require.NoError(t, tr.Trash(file))

	_, err := os.Lstat(file)
	assert.True(t, os.IsNotExist(err), "the original location must be empty")

	data, err := os.ReadFile(filepath.Join(root, "files", "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestTrashInfoRecord(t *testing.T) {
	root := t.TempDir()
	work := t.TempDir()
	file := filepath.Join(work, "with space.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tr := trash.NewXDGAt(root)
	require.NoError(t, tr.Trash(file))

	info, err := os.ReadFile(filepath.Join(root, "info", "with space.txt.trashinfo"))
	require.NoError(t, err)
	content := string(info)
	assert.Contains(t, content, "[Trash Info]")
	assert.Contains(t, content, "Path="+filepath.ToSlash(filepath.Join(work, "with%20space.txt")))
	assert.Contains(t, content, "DeletionDate=")
	// The deletion date uses the trashinfo local-time layout.
	assert.Contains(t, content, "DeletionDate="+time.Now().Format("2006-01-02T"))
}

func TestTrashNameCollision(t *testing.T) {
	root := t.TempDir()
	tr := trash.NewXDGAt(root)

	for i := 0; i < 3; i++ {
		work := t.TempDir()
		file := filepath.Join(work, "same.txt")
		require.NoError(t, os.WriteFile(file, []byte{byte('0' + i)}, 0o644))
		require.NoError(t, tr.Trash(file))
	}

	// Three distinct names, none overwritten.
	first, err := os.ReadFile(filepath.Join(root, "files", "same.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("0"), first)
	second, err := os.ReadFile(filepath.Join(root, "files", "same.txt.1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), second)
	third, err := os.ReadFile(filepath.Join(root, "files", "same.txt.2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), third)
}

func TestTrashDirectory(t *testing.T) {
	root := t.TempDir()
	work := t.TempDir()
	dir := filepath.Join(work, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "f.txt"), []byte("x"), 0o644))

	tr := trash.NewXDGAt(root)
	require.NoError(t, tr.Trash(dir))

	data, err := os.ReadFile(filepath.Join(root, "files", "project", "nested", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestTrashMissingEntry(t *testing.T) {
	tr := trash.NewXDGAt(t.TempDir())
	err := tr.Trash(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
