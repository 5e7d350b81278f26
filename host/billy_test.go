package host_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/host"
)

func TestBillyProviderNoTrash(t *testing.T) {
	fs := host.New(host.NewBillyProvider(memfs.New()))
	require.NoError(t, fs.WriteFile("/f.txt", []byte("x")))

	err := fs.Delete("/f.txt", core.DeleteOptions{UseTrash: true})
	require.Error(t, err)
	assert.Equal(t, core.CodeUnavailable, core.CodeOf(err))

	// The entry survives the refused delete.
	_, ok := fs.Exists("/f.txt")
	assert.True(t, ok)
}

func TestBillyProviderNoWatching(t *testing.T) {
	fs := host.New(host.NewBillyProvider(memfs.New()))

	rp, err := core.NewRelativePattern("/ws", "**")
	require.NoError(t, err)
	_, err = fs.CreateWatcher(rp, core.WatchOptions{})
	require.Error(t, err)
	assert.Equal(t, core.CodeUnavailable, core.CodeOf(err))
}

func TestBillyProviderFindFilesExclude(t *testing.T) {
	bfs := memfs.New()
	p := host.NewBillyProvider(bfs)
	require.NoError(t, p.WriteFile("/ws/src/a.go", []byte("a")))
	require.NoError(t, p.WriteFile("/ws/src/a_test.go", []byte("t")))
	require.NoError(t, p.WriteFile("/ws/vendor/b.go", []byte("b")))

	rp, err := core.NewRelativePattern("/ws", "**.go")
	require.NoError(t, err)
	got, err := p.FindFiles(rp, "vendor/**")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/ws/src/a.go", "/ws/src/a_test.go"}, got)
}

func TestBillyProviderSymlink(t *testing.T) {
	bfs := memfs.New()
	p := host.NewBillyProvider(bfs)
	require.NoError(t, p.WriteFile("/target.txt", []byte("x")))
	require.NoError(t, bfs.Symlink("/target.txt", "/link.txt"))

	st, err := p.Stat("/link.txt")
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeFile|core.FileTypeSymbolicLink, st.Type)
	assert.True(t, st.Type.IsFile())
	assert.True(t, st.Type.IsSymbolicLink())
}

func TestBillyProviderUnwrap(t *testing.T) {
	bfs := memfs.New()
	p := host.NewBillyProvider(bfs)
	assert.Same(t, bfs, p.Unwrap())
}
