package core

// Disposable is an opaque handle releasing exactly one registration or
// resource. Dispose is idempotent in effect: disposing twice is a no-op,
// not an error.
type Disposable interface {
	Dispose()
}

// Watcher is a disposable subscription delivering create, change, and
// delete notifications for paths matching the pattern it was created with.
//
// Listeners registered through the OnDid methods are invoked synchronously
// in registration order with the affected absolute path. There is no replay:
// a listener registered after an event fired never sees it. Disposing the
// Watcher releases the underlying notification resource, stops all further
// delivery, and flips IsDisposed permanently to true.
type Watcher interface {
	// OnDidCreate registers a listener for entry creation. The returned
	// Disposable removes exactly that listener.
	OnDidCreate(listener func(path string)) Disposable

	// OnDidChange registers a listener for content changes.
	OnDidChange(listener func(path string)) Disposable

	// OnDidDelete registers a listener for entry deletion.
	OnDidDelete(listener func(path string)) Disposable

	// IsDisposed reports whether Dispose has been called. The transition
	// is one-way; a disposed watcher never becomes active again.
	IsDisposed() bool

	// Dispose releases the underlying watch resource. Safe to call more
	// than once.
	Dispose()
}
