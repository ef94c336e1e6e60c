package filelog

import (
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	const op errors.Op = "filelog.validateConfig"

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	if cfg.DataDir != emptyString && !filepath.IsAbs(cfg.DataDir) {
		return errors.New(op).Msg(errMsgDataDirRelative)
	}

	return nil
}

// reservedDeviceNames cannot be used as a file or directory name on Windows,
// with or without an extension.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

const reservedNameChars = `<>:"/\|?*`

// validateProgramName checks that name can be used verbatim as a single path
// segment on every supported OS.
func validateProgramName(op errors.Op, name string) error {
	if strings.TrimSpace(name) == emptyString {
		return &InitError{Kind: ErrEmptyProgramName, Op: op}
	}
	if !isPortableSegment(name) {
		return &InitError{Kind: ErrInvalidProgramName, Op: op, Input: name}
	}
	return nil
}

func isPortableSegment(name string) bool {
	if !utf8.ValidString(name) || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return false
	}
	stem, _, _ := strings.Cut(name, ".")
	if _, reserved := reservedDeviceNames[strings.ToUpper(strings.TrimSpace(stem))]; reserved {
		return false
	}
	return true
}
