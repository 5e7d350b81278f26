// Package watch provides the Multiplexer that fans a raw change
// notification stream out to independently disposable listener sets.
package watch

import (
	"sync"

	"github.com/Groupguanfang/vscode-fs/core"
)

// Multiplexer wraps a raw watch handle and exposes three independent
// listener sets for create, change, and delete events.
//
// Incoming events are fanned out synchronously to every registered
// listener in registration order. Events are not buffered: listeners
// registered after an event fired do not see it. Dispose closes the raw
// handle, permanently flips the disposed flag, and halts all delivery;
// calling it again is a no-op.
type Multiplexer struct {
	mu       sync.Mutex
	disposed bool
	closeRaw func() error

	create listenerSet
	change listenerSet
	delete listenerSet
}

// New creates a Multiplexer owning the raw handle released by closeRaw.
// closeRaw may be nil when there is no underlying resource to release.
func New(closeRaw func() error) *Multiplexer {
	return &Multiplexer{closeRaw: closeRaw}
}

// OnDidCreate registers a creation listener and returns its removal handle.
func (m *Multiplexer) OnDidCreate(listener func(path string)) core.Disposable {
	return m.subscribe(&m.create, listener)
}

// OnDidChange registers a change listener and returns its removal handle.
func (m *Multiplexer) OnDidChange(listener func(path string)) core.Disposable {
	return m.subscribe(&m.change, listener)
}

// OnDidDelete registers a deletion listener and returns its removal handle.
func (m *Multiplexer) OnDidDelete(listener func(path string)) core.Disposable {
	return m.subscribe(&m.delete, listener)
}

func (m *Multiplexer) subscribe(set *listenerSet, listener func(path string)) core.Disposable {
	m.mu.Lock()
	token := set.add(listener)
	m.mu.Unlock()
	return &subscription{mux: m, set: set, token: token}
}

// EmitCreate delivers a creation event to the creation listeners.
// It is called by the backend adapter wiring the raw stream.
func (m *Multiplexer) EmitCreate(path string) {
	m.emit(&m.create, path)
}

// EmitChange delivers a change event to the change listeners.
func (m *Multiplexer) EmitChange(path string) {
	m.emit(&m.change, path)
}

// EmitDelete delivers a deletion event to the deletion listeners.
func (m *Multiplexer) EmitDelete(path string) {
	m.emit(&m.delete, path)
}

func (m *Multiplexer) emit(set *listenerSet, path string) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	listeners := set.snapshot()
	m.mu.Unlock()

	// Delivery happens outside the lock so listeners may call back into
	// the multiplexer. Re-checking per listener lets a Dispose issued
	// mid-fan-out (from a listener or another goroutine) cut the
	// remaining deliveries short; a listener already running completes.
	for _, fn := range listeners {
		if m.IsDisposed() {
			return
		}
		fn(path)
	}
}

// IsDisposed reports whether Dispose has been called.
func (m *Multiplexer) IsDisposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}

// Dispose closes the underlying raw handle and stops all delivery,
// including the undelivered remainder of a fan-out in progress. A listener
// that is already executing completes. Subsequent calls are no-ops.
func (m *Multiplexer) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	closeRaw := m.closeRaw
	m.closeRaw = nil
	m.mu.Unlock()

	if closeRaw != nil {
		// The raw handle owns OS resources (inotify descriptors or
		// equivalent); release errors have no caller to go to.
		_ = closeRaw()
	}
}

// listenerSet is an ordered set of listeners removable by opaque token.
type listenerSet struct {
	entries []listenerEntry
	nextID  int
}

type listenerEntry struct {
	id int
	fn func(path string)
}

func (s *listenerSet) add(fn func(path string)) int {
	s.nextID++
	s.entries = append(s.entries, listenerEntry{id: s.nextID, fn: fn})
	return s.nextID
}

func (s *listenerSet) remove(token int) {
	for i, e := range s.entries {
		if e.id == token {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) snapshot() []func(path string) {
	out := make([]func(path string), len(s.entries))
	for i, e := range s.entries {
		out[i] = e.fn
	}
	return out
}

// subscription removes one listener from its owning set on Dispose.
type subscription struct {
	mux   *Multiplexer
	set   *listenerSet
	token int
}

func (s *subscription) Dispose() {
	s.mux.mu.Lock()
	s.set.remove(s.token)
	s.mux.mu.Unlock()
}

var _ core.Watcher = (*Multiplexer)(nil)
