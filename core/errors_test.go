package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groupguanfang/vscode-fs/core"
)

func TestNewError(t *testing.T) {
	err := core.NewError(core.CodeFileNotFound, "no such entry")
	assert.Equal(t, core.CodeFileNotFound, err.Code())
	assert.Equal(t, "no such entry", err.Message())
	assert.Equal(t, "[FileNotFound] no such entry", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrapError(t *testing.T) {
	cause := errors.New("disk fell over")
	err := core.WrapError(cause, core.CodeUnavailable, "backend unreachable")
	require.NotNil(t, err)
	assert.Equal(t, "[Unavailable] backend unreachable: disk fell over", err.Error())
	assert.True(t, errors.Is(err, cause))

	assert.Nil(t, core.WrapError(nil, core.CodeUnknown, "ignored"))
}

func TestIsFileSystemError(t *testing.T) {
	assert.False(t, core.IsFileSystemError(nil))
	assert.False(t, core.IsFileSystemError(errors.New("plain")))
	assert.True(t, core.IsFileSystemError(core.NewError(core.CodeUnknown, "x")))

	// Detection works through wrapping.
	wrapped := fmt.Errorf("during sync: %w", core.NewError(core.CodeFileExists, "present"))
	assert.True(t, core.IsFileSystemError(wrapped))
	assert.Equal(t, core.CodeFileExists, core.CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, core.CodeUnknown, core.CodeOf(nil))
	assert.Equal(t, core.CodeUnknown, core.CodeOf(errors.New("foreign")))
	assert.Equal(t, core.CodeNoPermissions, core.CodeOf(core.NewError(core.CodeNoPermissions, "denied")))
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, core.Normalize(nil))
}

func TestNormalizeIdempotent(t *testing.T) {
	original := core.NewError(core.CodeFileIsADirectory, "is a directory")
	again := core.Normalize(original)
	assert.Same(t, original, again, "an already normalized error must pass through unchanged")
}

func TestNormalizeSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want core.ErrorCode
	}{
		{"NotExist", fs.ErrNotExist, core.CodeFileNotFound},
		{"Exist", fs.ErrExist, core.CodeFileExists},
		{"Permission", fs.ErrPermission, core.CodeNoPermissions},
		{"Foreign", errors.New("something native"), core.CodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.Normalize(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Code())
			assert.True(t, errors.Is(got, tc.err), "the native cause must stay reachable")
		})
	}
}

func TestNormalizePreservesMessage(t *testing.T) {
	err := core.Normalize(errors.New("EPROTO: protocol error, unheard of"))
	assert.Equal(t, core.CodeUnknown, err.Code())
	assert.Equal(t, "EPROTO: protocol error, unheard of", err.Message())
}

func TestNormalizeOSError(t *testing.T) {
	// A real failure from the OS carries an errno inside a *PathError.
	_, osErr := os.ReadFile("/definitely/not/present/anywhere.txt")
	require.Error(t, osErr)

	got := core.Normalize(osErr)
	assert.Equal(t, core.CodeFileNotFound, got.Code())
	assert.True(t, errors.Is(got, fs.ErrNotExist))
}
