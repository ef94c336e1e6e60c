//go:build !windows && !darwin

package filelog

import (
	"os"
	"path/filepath"
)

// platformDataLocalDir follows the XDG base directory specification. A
// relative $XDG_DATA_HOME is invalid and ignored.
func platformDataLocalDir() (string, bool) {
	if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
		return dir, true
	}
	home := os.Getenv("HOME")
	if home == emptyString {
		return emptyString, false
	}
	return filepath.Join(home, ".local", "share"), true
}
