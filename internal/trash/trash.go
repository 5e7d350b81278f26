// Package trash moves filesystem entries into the user trash can instead
// of removing them permanently.
//
// The shipped implementation follows the freedesktop.org Trash
// specification: entries are renamed into $XDG_DATA_HOME/Trash/files and a
// matching .trashinfo record is written under Trash/info so desktop
// environments can list and restore them.
package trash

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Trasher moves a single entry to the trash facility by absolute path.
type Trasher interface {
	Trash(path string) error
}

// XDG is a Trasher writing into a freedesktop.org trash directory.
type XDG struct {
	root string // the Trash directory holding files/ and info/
	now  func() time.Time
}

// NewXDG creates a Trasher rooted at the user's trash directory,
// $XDG_DATA_HOME/Trash (falling back to ~/.local/share/Trash).
func NewXDG() (*XDG, error) {
	data := os.Getenv("XDG_DATA_HOME")
	if data == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve trash directory: %w", err)
		}
		data = filepath.Join(home, ".local", "share")
	}
	return NewXDGAt(filepath.Join(data, "Trash")), nil
}

// NewXDGAt creates a Trasher rooted at an explicit trash directory.
// Used by tests and by callers with non-standard trash locations.
func NewXDGAt(root string) *XDG {
	return &XDG{root: root, now: time.Now}
}

// Trash moves the entry at path into the trash, writing its restore record
// first so a crash between the two steps leaves a stray record rather than
// an unrecorded file.
//
// The move is a rename, so trashing across filesystem boundaries fails the
// way rename(2) does.
func (t *XDG) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}

	filesDir := filepath.Join(t.root, "files")
	infoDir := filepath.Join(t.root, "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return err
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return err
	}

	name, infoFile, err := t.claimName(infoDir, filepath.Base(abs), abs)
	if err != nil {
		return err
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		_ = os.Remove(infoFile)
		return err
	}
	return nil
}

// claimName reserves a unique trash name by exclusively creating its
// .trashinfo record, suffixing the base name on collision.
func (t *XDG) claimName(infoDir, base, original string) (string, string, error) {
	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s.%d", base, i)
		}
		infoFile := filepath.Join(infoDir, name+".trashinfo")
		f, err := os.OpenFile(infoFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", "", err
		}
		record := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
			escapePath(original), t.now().Format("2006-01-02T15:04:05"))
		if _, err := f.WriteString(record); err != nil {
			_ = f.Close()
			_ = os.Remove(infoFile)
			return "", "", err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(infoFile)
			return "", "", err
		}
		return name, infoFile, nil
	}
}

// escapePath percent-encodes the original path as the trashinfo format
// requires.
func escapePath(p string) string {
	u := url.URL{Path: filepath.ToSlash(p)}
	return u.EscapedPath()
}
