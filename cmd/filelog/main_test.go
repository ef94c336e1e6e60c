package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Station-Manager/filelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWriteCmd(t *testing.T) {
	base := t.TempDir()

	out, err := run(t, "write", "my_app", "hello from cli", "--data-dir", base, "--level", "warn", "--record-level", "error")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(base, "my_app", "log"), filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from cli")
	assert.Contains(t, string(data), `"level":"error"`)
}

func TestWriteCmd_BelowFloor(t *testing.T) {
	base := t.TempDir()

	out, err := run(t, "write", "my_app", "quiet", "--data-dir", base, "--level", "error", "--record-level", "info")
	require.NoError(t, err)

	data, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
}

func TestWriteCmd_Errors(t *testing.T) {
	t.Run("bad level flag", func(t *testing.T) {
		_, err := run(t, "write", "my_app", "x", "--data-dir", t.TempDir(), "--level", "loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), filelog.ErrInvalidLogLevel.Error())
	})

	t.Run("invalid program name", func(t *testing.T) {
		_, err := run(t, "write", "a/b", "x", "--data-dir", t.TempDir())
		assert.ErrorIs(t, err, filelog.ErrInvalidProgramName)
	})

	t.Run("relative data dir", func(t *testing.T) {
		_, err := run(t, "write", "my_app", "x", "--data-dir", "relative")
		assert.ErrorIs(t, err, filelog.ErrLog)
	})
}

func TestPathCmd(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	t.Setenv("HOME", xdg)

	out, err := run(t, "path", "my_app")
	require.NoError(t, err)
	assert.Equal(t, "log", filepath.Base(strings.TrimSpace(out)))
	assert.Equal(t, "my_app", filepath.Base(filepath.Dir(strings.TrimSpace(out))))

	_, err = run(t, "path", "")
	assert.ErrorIs(t, err, filelog.ErrEmptyProgramName)
}
