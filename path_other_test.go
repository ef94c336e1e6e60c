//go:build !windows && !darwin

package filelog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformDataLocalDir_XDG(t *testing.T) {
	t.Run("XDG_DATA_HOME wins", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_DATA_HOME", xdg)
		t.Setenv("HOME", "/home/someone")

		dir, ok := platformDataLocalDir()
		assert.True(t, ok)
		assert.Equal(t, xdg, dir)
	})

	t.Run("relative XDG_DATA_HOME is ignored", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "relative/share")
		t.Setenv("HOME", "/home/someone")

		dir, ok := platformDataLocalDir()
		assert.True(t, ok)
		assert.Equal(t, filepath.Join("/home/someone", ".local", "share"), dir)
	})

	t.Run("no HOME", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", "")

		_, ok := platformDataLocalDir()
		assert.False(t, ok)
	})
}

func TestResolve_FollowsXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	dir, err := Resolve("my_app")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "my_app", "log"), dir)
}
