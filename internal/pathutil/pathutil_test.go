package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Groupguanfang/vscode-fs/internal/pathutil"
)

func TestRelSlash(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "ws")

	rel, ok := pathutil.RelSlash(base, filepath.Join(base, "src", "main.go"))
	assert.True(t, ok)
	assert.Equal(t, "src/main.go", rel)

	rel, ok = pathutil.RelSlash(base, base)
	assert.True(t, ok)
	assert.Equal(t, ".", rel)

	_, ok = pathutil.RelSlash(base, filepath.Join(string(filepath.Separator), "elsewhere", "f"))
	assert.False(t, ok, "paths outside the base are rejected")

	_, ok = pathutil.RelSlash(base, filepath.Dir(base))
	assert.False(t, ok, "the parent of the base is outside it")
}
