package filelog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestHandle starts a session for my_app below a fresh temp directory.
func newTestHandle(t testing.TB, cfg Config) *Handle {
	t.Helper()
	if cfg.ProgramName == emptyString {
		cfg.ProgramName = "my_app"
	}
	if cfg.DataDir == emptyString {
		cfg.DataDir = t.TempDir()
	}
	h, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func readLog(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// stubDataLocalDir makes the platform lookup return dir, or fail when ok is false.
func stubDataLocalDir(t *testing.T, dir string, ok bool) {
	t.Helper()
	prev := dataLocalDir
	dataLocalDir = func() (string, bool) { return dir, ok }
	t.Cleanup(func() { dataLocalDir = prev })
}
