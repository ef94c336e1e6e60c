package filelog

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

var (
	globalMu       sync.Mutex
	globalHandle   atomic.Pointer[Handle]
	previousGlobal *zerolog.Logger
)

// Init activates process-wide file logging for programName at level. After
// it returns nil, the package-level event functions and
// github.com/rs/zerolog/log both write to
// <local application data>/<programName>/log/<programName>_<timestamp>.log.
//
// Calling Init again before Shutdown fails with ErrLog wrapping
// ErrAlreadyInitialized and leaves the active session untouched.
func Init(programName string, level Level) error {
	return InitWithConfig(Config{ProgramName: programName, Level: level})
}

// InitDefault is Init at DefaultLevel.
func InitDefault(programName string) error {
	return Init(programName, DefaultLevel)
}

// InitWithConfig is Init with full control over the session.
func InitWithConfig(cfg Config) error {
	const op errors.Op = "filelog.Init"

	// Input errors take precedence so that a bad call fails the same way
	// whether or not a session is active.
	if err := validateProgramName(op, cfg.ProgramName); err != nil {
		return err
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if globalHandle.Load() != nil {
		return newLogError(op, ErrAlreadyInitialized)
	}

	h, err := newHandle(op, cfg, timeNow())
	if err != nil {
		return err
	}

	backend, _ := h.backendLogger()
	prev := log.Logger
	previousGlobal = &prev
	log.Logger = backend
	globalHandle.Store(h)
	return nil
}

// Shutdown closes the global session and restores the previous
// github.com/rs/zerolog/log logger. It is a no-op when nothing is active.
func Shutdown() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	h := globalHandle.Swap(nil)
	if h == nil {
		return nil
	}
	if previousGlobal != nil {
		log.Logger = *previousGlobal
		previousGlobal = nil
	}
	return h.Close()
}

// Default returns the global session, or nil before Init.
func Default() *Handle {
	return globalHandle.Load()
}

// TraceWith starts a Trace-level event on the global session.
func TraceWith() LogEvent { return Default().TraceWith() }

// DebugWith starts a Debug-level event on the global session.
func DebugWith() LogEvent { return Default().DebugWith() }

// InfoWith starts an Info-level event on the global session.
func InfoWith() LogEvent { return Default().InfoWith() }

// WarnWith starts a Warn-level event on the global session.
func WarnWith() LogEvent { return Default().WarnWith() }

// ErrorWith starts an Error-level event on the global session.
func ErrorWith() LogEvent { return Default().ErrorWith() }

// Emit writes msg at level on the global session.
func Emit(level Level, msg string) { Default().Emit(level, msg) }
