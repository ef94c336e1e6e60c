package filelog

import (
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Handle is an active logging session writing to one file. It is safe for
// concurrent use; all methods are no-ops on a nil or closed Handle.
type Handle struct {
	cfg        Config
	dir        string
	path       string
	fileWriter *fileSink

	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	activeOps     atomic.Int32

	// mu orders event creation against Close; wg counts unfinished events.
	mu sync.RWMutex
	wg sync.WaitGroup
}

// timeNow stamps new log file names.
var timeNow = time.Now

// New validates cfg, resolves the log directory and opens a new log file in
// it. Failures leave no open file behind.
//
// The file is <dir>/<ProgramName>_<YYYY-MM-DDTHH-MM-SS>.log where dir is
// Resolve(ProgramName), or <DataDir>/<ProgramName>/log when DataDir is set.
func New(cfg Config) (*Handle, error) {
	const op errors.Op = "filelog.New"
	return newHandle(op, cfg, timeNow())
}

func newHandle(op errors.Op, cfg Config, now time.Time) (*Handle, error) {
	cfg.applyDefaults()

	if err := validateProgramName(op, cfg.ProgramName); err != nil {
		return nil, err
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, newLogError(op, err)
	}

	dir, err := resolveLogDir(op, cfg.ProgramName, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level.zerologLevel()
	if err != nil {
		return nil, err
	}

	h := &Handle{cfg: cfg, dir: dir}
	if err = h.activate(level, now); err != nil {
		return nil, newLogError(op, err)
	}
	return h, nil
}

// Path returns the log file this handle writes to.
func (h *Handle) Path() string {
	if h == nil {
		return emptyString
	}
	return h.path
}

// Dir returns the directory holding the log file.
func (h *Handle) Dir() string {
	if h == nil {
		return emptyString
	}
	return h.dir
}

// Level returns the severity floor.
func (h *Handle) Level() Level {
	if h == nil {
		return levelUnset
	}
	return h.cfg.Level
}

func (h *Handle) ProgramName() string {
	if h == nil {
		return emptyString
	}
	return h.cfg.ProgramName
}

// Close stops accepting records, waits up to ShutdownTimeoutMS for events
// already in flight and closes the log file. It's safe to call Close
// multiple times.
func (h *Handle) Close() error {
	const op errors.Op = "filelog.Handle.Close"
	if h == nil {
		return nil
	}

	h.mu.Lock()
	if !h.isInitialized.CompareAndSwap(true, false) {
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	timeout := time.Duration(h.cfg.ShutdownTimeoutMS) * time.Millisecond
	select {
	case <-done:
	case <-time.After(timeout):
		if logger := h.logger.Load(); logger != nil && h.cfg.ShutdownTimeoutWarning {
			logger.Warn().
				Int32("active_operations", h.activeOps.Load()).
				Dur("timeout", timeout).
				Msg("Logger shutdown timeout exceeded")
		}
	}

	h.logger.Store(nil)
	if h.fileWriter != nil {
		if err := h.fileWriter.Close(); err != nil {
			return newLogError(op, errors.New(op).Err(err).Msg(errMsgCloseLogFile))
		}
	}
	return nil
}

func (h *Handle) release() {
	h.activeOps.Add(-1)
	h.wg.Done()
}

// TraceWith returns a LogEvent for structured Trace-level logging.
func (h *Handle) TraceWith() LogEvent {
	return logEventBuilder(h, nil, zerolog.TraceLevel)
}

// DebugWith returns a LogEvent for structured Debug-level logging.
func (h *Handle) DebugWith() LogEvent {
	return logEventBuilder(h, nil, zerolog.DebugLevel)
}

// InfoWith returns a LogEvent for structured Info-level logging.
// Example: h.InfoWith().Str("user_id", id).Int("count", 5).Msg("User processed")
func (h *Handle) InfoWith() LogEvent {
	return logEventBuilder(h, nil, zerolog.InfoLevel)
}

// WarnWith returns a LogEvent for structured Warn-level logging.
func (h *Handle) WarnWith() LogEvent {
	return logEventBuilder(h, nil, zerolog.WarnLevel)
}

// ErrorWith returns a LogEvent for structured Error-level logging.
// Example: h.ErrorWith().Err(err).Str("operation", "database").Msg("Query failed")
func (h *Handle) ErrorWith() LogEvent {
	return logEventBuilder(h, nil, zerolog.ErrorLevel)
}

// Emit writes msg at level. Records below the floor, or with an invalid
// level, are discarded.
func (h *Handle) Emit(level Level, msg string) {
	zl, err := level.zerologLevel()
	if err != nil {
		return
	}
	logEventBuilder(h, nil, zl).Msg(msg)
}

// With returns a LogContext for creating a child logger with pre-populated fields.
// Example: reqLogger := h.With().Str("request_id", id).Logger()
func (h *Handle) With() LogContext {
	if h == nil || !h.isInitialized.Load() {
		return &noopLogContext{}
	}
	logger := h.logger.Load()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{context: logger.With(), handle: h}
}

// backendLogger returns a copy of the underlying logger for installation as the
// process-wide zerolog logger.
func (h *Handle) backendLogger() (zerolog.Logger, bool) {
	if h == nil {
		return zerolog.Nop(), false
	}
	logger := h.logger.Load()
	if logger == nil {
		return zerolog.Nop(), false
	}
	return *logger, true
}
