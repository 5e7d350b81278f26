package local

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/Groupguanfang/vscode-fs/core"
	"github.com/Groupguanfang/vscode-fs/internal/pathutil"
)

// Glob returns the absolute paths under pattern.Base whose base-relative
// path matches pattern.Pattern, filtered and bounded by opts. Results are
// sorted for determinism.
//
// Matching is delegated to the glob engine; this method only walks the
// tree and applies the option filters.
func (l *FS) Glob(pattern core.RelativePattern, opts core.GlobOptions) ([]string, error) {
	w, err := newGlobWalker(pattern, opts)
	if err != nil {
		return nil, core.Normalize(err)
	}
	if err := w.walk(pattern.Base, "", 0, false); err != nil {
		return nil, core.Normalize(err)
	}
	sort.Strings(w.results)
	return w.results, nil
}

type globWalker struct {
	opts    core.GlobOptions
	match   glob.Glob
	ignore  []glob.Glob
	ignPat  glob.Glob // compiled opts.IgnorePattern, matched against its own base
	ignBase string
	results []string
}

func newGlobWalker(pattern core.RelativePattern, opts core.GlobOptions) (*globWalker, error) {
	match, err := compilePattern(pattern.Pattern, opts.ExtGlob)
	if err != nil {
		return nil, err
	}
	w := &globWalker{opts: opts, match: match}
	for _, ig := range opts.Ignore {
		g, err := compilePattern(ig, opts.ExtGlob)
		if err != nil {
			return nil, err
		}
		w.ignore = append(w.ignore, g)
	}
	if opts.IgnorePattern != nil {
		g, err := compilePattern(opts.IgnorePattern.Pattern, opts.ExtGlob)
		if err != nil {
			return nil, err
		}
		w.ignPat = g
		w.ignBase = opts.IgnorePattern.Base
	}
	return w, nil
}

// compilePattern hands the pattern to the glob engine with '/' as the
// separator, so "*" never crosses directory boundaries while "**" does.
// Without extglob, brace alternation is escaped to match literally.
func compilePattern(pattern string, extglob bool) (glob.Glob, error) {
	if !extglob {
		pattern = escapeBraces(pattern)
	}
	return glob.Compile(pattern, '/')
}

func escapeBraces(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r == '{' || r == '}' || r == ',' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// walk lists dir (at relDir below the base, depth levels down) and
// recurses. inMatched marks a subtree rooted at a matched directory being
// expanded by ExpandDirectories.
func (w *globWalker) walk(dir, relDir string, depth int, inMatched bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if relDir == "" {
			return err // the base itself must be listable
		}
		return nil // deeper unreadable directories are skipped, not fatal
	}
	for _, e := range entries {
		name := e.Name()
		if !w.opts.Dot && strings.HasPrefix(name, ".") {
			continue
		}
		rel := name
		if relDir != "" {
			rel = relDir + "/" + name
		}
		abs := filepath.Join(dir, name)
		if w.ignored(rel, abs) {
			continue // ignored directories prune their whole subtree
		}

		isSymlink := e.Type()&iofs.ModeSymlink != 0
		isDir := e.IsDir()
		if isSymlink && w.opts.FollowSymbolicLinks {
			if ti, err := os.Stat(abs); err == nil {
				isDir = ti.IsDir()
			}
		}

		matched := inMatched || w.match.Match(rel)
		if matched && w.included(isDir) {
			w.results = append(w.results, abs)
		}

		if !isDir {
			continue
		}
		if isSymlink && !w.opts.FollowSymbolicLinks {
			continue
		}
		expanding := matched && w.opts.ExpandDirectories
		if w.opts.Deep > 0 && depth+1 >= w.opts.Deep && !expanding {
			continue
		}
		if err := w.walk(abs, rel, depth+1, inMatched || expanding); err != nil {
			return err
		}
	}
	return nil
}

func (w *globWalker) included(isDir bool) bool {
	if w.opts.OnlyFiles && isDir {
		return false
	}
	if w.opts.OnlyDirectories && !isDir {
		return false
	}
	return true
}

func (w *globWalker) ignored(rel, abs string) bool {
	for _, g := range w.ignore {
		if g.Match(rel) {
			return true
		}
	}
	if w.ignPat != nil {
		if relIgn, ok := pathutil.RelSlash(w.ignBase, abs); ok && w.ignPat.Match(relIgn) {
			return true
		}
	}
	return false
}
