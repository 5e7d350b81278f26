package local

import (
	"io"
	"os"

	"github.com/Groupguanfang/vscode-fs/core"
)

// CreateReadableStream opens the file at path for streaming reads.
func (l *FS) CreateReadableStream(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Normalize(err)
	}
	return f, nil
}

// CreateWritableStream opens the file at path for streaming writes. Zero
// options truncate or create the file with permission 0o644; open flags
// and permission pass through otherwise.
func (l *FS) CreateWritableStream(path string, opts core.WritableStreamOptions) (io.WriteCloser, error) {
	flags := opts.Flags
	if flags == 0 {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	perm := opts.Perm
	if perm == 0 {
		perm = 0o644
	}
	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return nil, core.Normalize(err)
	}
	return f, nil
}
