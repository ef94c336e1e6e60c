package filelog

import (
	"os"

	"golang.org/x/sys/windows"
)

// platformDataLocalDir asks the shell for FOLDERID_LocalAppData and falls back
// to %LOCALAPPDATA% when the known folder is unavailable.
func platformDataLocalDir() (string, bool) {
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0); err == nil && dir != emptyString {
		return dir, true
	}
	if dir := os.Getenv("LOCALAPPDATA"); dir != emptyString {
		return dir, true
	}
	return emptyString, false
}
