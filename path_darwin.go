package filelog

import (
	"os"
	"path/filepath"
)

func platformDataLocalDir() (string, bool) {
	home := os.Getenv("HOME")
	if home == emptyString {
		return emptyString, false
	}
	return filepath.Join(home, "Library", "Application Support"), true
}
