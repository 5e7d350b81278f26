package watch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/watch"
)

func TestMultiplexerFanOut(t *testing.T) {
	m := watch.New(nil)
	defer m.Dispose()

	var created, changed, deleted []string
	m.OnDidCreate(func(path string) { created = append(created, path) })
	m.OnDidChange(func(path string) { changed = append(changed, path) })
	m.OnDidDelete(func(path string) { deleted = append(deleted, path) })

	m.EmitCreate("/a")
	m.EmitChange("/b")
	m.EmitChange("/c")
	m.EmitDelete("/d")

	// Each event kind reaches only its own listener set.
	assert.Equal(t, []string{"/a"}, created)
	assert.Equal(t, []string{"/b", "/c"}, changed)
	assert.Equal(t, []string{"/d"}, deleted)
}

func TestMultiplexerRegistrationOrder(t *testing.T) {
	m := watch.New(nil)
	defer m.Dispose()

	var order []int
	m.OnDidChange(func(string) { order = append(order, 1) })
	m.OnDidChange(func(string) { order = append(order, 2) })
	m.OnDidChange(func(string) { order = append(order, 3) })

	m.EmitChange("/x")
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMultiplexerListenerDisposal(t *testing.T) {
	m := watch.New(nil)
	defer m.Dispose()

	var first, second int
	sub := m.OnDidChange(func(string) { first++ })
	m.OnDidChange(func(string) { second++ })

	m.EmitChange("/x")
	sub.Dispose()
	m.EmitChange("/y")

	assert.Equal(t, 1, first, "a disposed listener must not be called again")
	assert.Equal(t, 2, second, "other listeners keep receiving")

	// Disposing the same registration twice is harmless.
	sub.Dispose()
	m.EmitChange("/z")
	assert.Equal(t, 3, second)
}

func TestMultiplexerNoReplay(t *testing.T) {
	m := watch.New(nil)
	defer m.Dispose()

	m.EmitCreate("/early")

	var got []string
	m.OnDidCreate(func(path string) { got = append(got, path) })
	assert.Empty(t, got, "events fired before registration are not replayed")
}

func TestMultiplexerDisposeDuringDelivery(t *testing.T) {
	m := watch.New(nil)

	var after int
	m.OnDidChange(func(string) { m.Dispose() })
	m.OnDidChange(func(string) { after++ })

	m.EmitChange("/x")
	assert.True(t, m.IsDisposed())
	assert.Equal(t, 0, after, "disposal mid-fan-out must stop the remaining deliveries")
}

func TestMultiplexerDispose(t *testing.T) {
	closes := 0
	m := watch.New(func() error {
		closes++
		return errors.New("close failed anyway")
	})

	var events int
	m.OnDidDelete(func(string) { events++ })

	require.False(t, m.IsDisposed())
	m.Dispose()
	assert.True(t, m.IsDisposed())
	assert.Equal(t, 1, closes)

	// Idempotent: the raw handle is closed exactly once.
	m.Dispose()
	assert.Equal(t, 1, closes)

	// Delivery halts permanently.
	m.EmitDelete("/after")
	assert.Equal(t, 0, events)
}
