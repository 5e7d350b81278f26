package local

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/internal/pathutil"
	"github.com/Groupguanfang/vscode-fs/watch"
)

// CreateWatcher starts the change-notification engine rooted at
// pattern.Base and returns a multiplexer delivering create, change, and
// delete events for paths matching pattern.Pattern.
//
// All watches are established before CreateWatcher returns, so events for
// subsequent mutations are not missed. New subdirectories are added to the
// watch as they appear. The watcher runs until disposed; disposing it
// releases the underlying notification handles.
//
// Each event kind is gated by its own option: IgnoreCreateEvents
// suppresses create events, IgnoreChangeEvents change events, and
// IgnoreDeleteEvents delete events.
func (l *FS) CreateWatcher(pattern core.RelativePattern, opts core.WatchOptions) (core.Watcher, error) {
	matcher, err := compilePattern(pattern.Pattern, true)
	if err != nil {
		return nil, core.Normalize(err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, core.Normalize(err)
	}
	if err := addRecursive(fw, pattern.Base); err != nil {
		_ = fw.Close()
		return nil, core.Normalize(err)
	}

	mux := watch.New(fw.Close)
	go l.dispatchEvents(fw, mux, pattern.Base, matcher, opts)

	l.logger.Debug().
		Str("base", pattern.Base).
		Str("pattern", pattern.Pattern).
		Msg("watcher started")
	return mux, nil
}

// addRecursive watches root and every directory below it. The root itself
// must be watchable; unreadable subtrees are skipped.
func addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if aerr := fw.Add(path); aerr != nil && path == root {
			return aerr
		}
		return nil
	})
}

// dispatchEvents pumps the raw notification stream into the multiplexer
// until the raw watcher closes, which happens when the multiplexer is
// disposed.
func (l *FS) dispatchEvents(fw *fsnotify.Watcher, mux *watch.Multiplexer, base string, matcher glob.Glob, opts core.WatchOptions) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			l.routeEvent(fw, mux, base, matcher, opts, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			l.logger.Debug().Err(err).Str("base", base).Msg("watch error")
		}
	}
}

func (l *FS) routeEvent(fw *fsnotify.Watcher, mux *watch.Multiplexer, base string, matcher glob.Glob, opts core.WatchOptions, ev fsnotify.Event) {
	if ev.Op&fsnotify.Create != 0 {
		// A created directory starts a new subtree the engine is not yet
		// watching. Best effort: the subtree may already be gone.
		if info, err := os.Lstat(ev.Name); err == nil && info.IsDir() {
			_ = addRecursive(fw, ev.Name)
		}
	}

	rel, ok := pathutil.RelSlash(base, ev.Name)
	if !ok || !matcher.Match(rel) {
		return
	}
	switch {
	case ev.Op&fsnotify.Create != 0:
		if !opts.IgnoreCreateEvents {
			mux.EmitCreate(ev.Name)
		}
	case ev.Op&fsnotify.Write != 0:
		if !opts.IgnoreChangeEvents {
			mux.EmitChange(ev.Name)
		}
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if !opts.IgnoreDeleteEvents {
			mux.EmitDelete(ev.Name)
		}
	}
}
