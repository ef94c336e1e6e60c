package filelog

import (
	"path/filepath"

	smerrors "github.com/Station-Manager/errors"
)

// dataLocalDir looks up the platform's local application data directory.
// Tests replace it to simulate hosts without one.
var dataLocalDir = platformDataLocalDir

// Resolve returns the directory that log files for programName are written
// to: <local application data>/<programName>/log. It does not touch the
// filesystem.
//
//	Windows: %LOCALAPPDATA%\<programName>\log
//	Linux:   $XDG_DATA_HOME/<programName>/log
//	macOS:   $HOME/Library/Application Support/<programName>/log
func Resolve(programName string) (string, error) {
	const op smerrors.Op = "filelog.Resolve"
	return resolveLogDir(op, programName, emptyString)
}

func resolveLogDir(op smerrors.Op, programName, baseOverride string) (string, error) {
	if err := validateProgramName(op, programName); err != nil {
		return emptyString, err
	}

	base := baseOverride
	if base == emptyString {
		var ok bool
		if base, ok = dataLocalDir(); !ok || base == emptyString {
			return emptyString, &InitError{Kind: ErrNoLogPathFound, Op: op}
		}
	}

	return filepath.Join(base, programName, logDirName), nil
}
