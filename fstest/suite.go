// Package fstest provides a conformance test suite validating backend
// implementations against the core.FileSystem contract.
//
// Backend packages import this package and run the suite against a fresh
// instance:
//
//	func TestLocalFS(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
//	        return local.New(), t.TempDir()
//	    })
//	}
//
// The suite validates the shared contract (error normalization, probe
// semantics, rename and copy overwrite behavior), not backend-specific
// capabilities. Capabilities that differ across backends (symbolic links,
// watching, streaming) are gated by Config.
package fstest

import (
	"testing"

	"github.com/Groupguanfang/vscode-fs/core"
)

// Factory returns a fresh backend and an empty, writable root directory
// for one test. Tests create and destroy entries under the root.
type Factory func(t *testing.T) (core.FileSystem, string)

// Config gates capability-specific parts of the suite.
type Config struct {
	// SupportsSymlinks enables the symbolic-link resolution tests, which
	// create links directly on the OS under the root.
	SupportsSymlinks bool

	// SupportsWatch enables the watcher tests.
	SupportsWatch bool

	// SupportsStreams enables the stream tests. Disable when the backend's
	// stream delegate does not share a namespace with the root (e.g. an
	// in-memory provider).
	SupportsStreams bool

	// StrictDirectoryErrors asserts that listing a missing directory
	// fails. Virtual providers often report an empty listing instead.
	StrictDirectoryErrors bool

	// SkipTests lists subtest names to skip, e.g. "Copy/NoOverwrite".
	SkipTests []string
}

// LocalConfig enables everything; the local backend has the full
// capability surface.
func LocalConfig() Config {
	return Config{
		SupportsSymlinks:      true,
		SupportsWatch:         true,
		SupportsStreams:       true,
		StrictDirectoryErrors: true,
	}
}

// ProviderConfig fits host backends over virtual providers: no OS-level
// symlink creation, no watching, no shared stream namespace.
func ProviderConfig() Config {
	return Config{}
}

// TestSuite runs the conformance tests with LocalConfig.
func TestSuite(t *testing.T, newFS Factory) {
	TestSuiteWithConfig(t, newFS, LocalConfig())
}

// TestSuiteWithConfig runs the conformance tests gated by config.
func TestSuiteWithConfig(t *testing.T, newFS Factory, config Config) {
	skip := func(name string) bool {
		for _, s := range config.SkipTests {
			if s == name {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(t *testing.T, newFS Factory)) {
		t.Run(name, func(t *testing.T) {
			if skip(name) {
				t.Skip("skipped by backend configuration")
				return
			}
			fn(t, newFS)
		})
	}

	run("StatAndExists", testStatAndExists)
	run("Probes", testProbes)
	run("ReadWrite", testReadWrite)
	run("ReadDirectory", func(t *testing.T, newFS Factory) {
		testReadDirectory(t, newFS, config)
	})
	run("CreateDirectory", testCreateDirectory)
	run("Delete", testDelete)
	run("Rename", testRename)
	run("Copy", testCopy)
	run("Glob", testGlob)

	if config.SupportsSymlinks {
		run("Symlinks", testSymlinks)
	}
	if config.SupportsStreams {
		run("Streams", testStreams)
	}
	if config.SupportsWatch {
		run("Watcher", testWatcher)
		run("WatcherEventFilters", testWatcherEventFilters)
		run("ListenerRemoval", testListenerRemoval)
	}
}
