package filelog

import (
	stderrs "errors"
	"strconv"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// Error kinds. Every error returned by Resolve, New and the Init family is an
// *InitError whose Kind is one of these, so callers can branch with errors.Is.
var (
	ErrEmptyProgramName   = stderrs.New("empty program name")
	ErrInvalidProgramName = stderrs.New("invalid program name")
	ErrInvalidLogLevel    = stderrs.New("invalid log level")
	ErrNoLogPathFound     = stderrs.New("application data folder could not be found")
	// ErrLog covers any failure of the logging backend: building its
	// configuration, creating the log directory, or opening the log file.
	ErrLog = stderrs.New("logging backend error")
)

// ErrAlreadyInitialized is the cause of the ErrLog returned when the global
// logger is initialized a second time without an intervening Shutdown.
var ErrAlreadyInitialized = stderrs.New("global logger already initialized")

// InitError is the single concrete error type of this package.
type InitError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	Op   smerrors.Op
	// Input is the offending program name or level text, when relevant.
	Input string
	// Err is the backend cause for ErrLog, nil otherwise.
	Err error
}

func (e *InitError) Error() string {
	var sb strings.Builder
	if e.Op != emptyString {
		sb.WriteString(string(e.Op))
		sb.WriteString(": ")
	}
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	}
	if e.Input != emptyString {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(e.Input))
	}
	if e.Err != nil {
		chain, _, _, _ := buildErrorChain(e.Err)
		sb.WriteString(": ")
		sb.WriteString(joinChain(chain))
	}
	return sb.String()
}

func (e *InitError) Unwrap() error { return e.Err }

// Is reports whether target is the error's Kind.
func (e *InitError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func newLogError(op smerrors.Op, cause error) error {
	return &InitError{Kind: ErrLog, Op: op, Err: cause}
}
