package filelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// fileSink serializes writes to the rotating file and drops them once the
// sink is closed. A closed lumberjack.Logger would otherwise reopen its file
// on the next write.
type fileSink struct {
	mu     sync.Mutex
	file   *lumberjack.Logger
	closed bool
}

func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.file.Write(p)
}

// open forces lumberjack to create the directory and the file now, so that
// permission and I/O problems surface during activation rather than on the
// first record.
func (s *fileSink) open() error {
	_, err := s.Write(nil)
	return err
}

func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}

// logFileName picks <dir>/<program>_<timestamp>.log, adding a _N suffix when
// an earlier activation in the same second already owns that name. A path
// that cannot be stat'ed is returned as is and the open reports the problem.
func logFileName(dir, programName string, now time.Time) string {
	stem := programName + "_" + now.Format(fileTimeFormat)
	path := filepath.Join(dir, stem+logFileExt)
	for i := 1; ; i++ {
		if _, err := os.Lstat(path); err != nil {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, logFileExt))
	}
}

func (h *Handle) initializeRollingFileLogger(path string) *fileSink {
	return &fileSink{file: &lumberjack.Logger{
		Filename:   path,
		MaxSize:    h.cfg.LogFileMaxSizeMB,
		MaxBackups: h.cfg.LogFileMaxBackups,
		MaxAge:     h.cfg.LogFileMaxAgeDays,
		Compress:   h.cfg.LogFileCompress,
	}}
}

func (h *Handle) initializeWriters(sink *fileSink) []io.Writer {
	writers := []io.Writer{sink}
	if h.cfg.ConsoleLogging {
		cw := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: h.cfg.ConsoleNoColor}
		if h.cfg.ConsoleTimeFormat != emptyString {
			cw.TimeFormat = h.cfg.ConsoleTimeFormat
		}
		writers = append(writers, cw)
	}
	return writers
}

// activate opens the log file and installs the zerolog logger. On failure
// nothing is retained and the file, if it was opened, is closed again.
func (h *Handle) activate(level zerolog.Level, now time.Time) error {
	const op errors.Op = "filelog.Handle.activate"

	path := logFileName(h.dir, h.cfg.ProgramName, now)
	sink := h.initializeRollingFileLogger(path)
	if err := sink.open(); err != nil {
		_ = sink.Close()
		return errors.New(op).Err(err).Msg(errMsgOpenLogFile)
	}

	logger := zerolog.New(io.MultiWriter(h.initializeWriters(sink)...)).
		Level(level).
		With().
		Timestamp().
		Str("program", h.cfg.ProgramName).
		Logger()
	if h.cfg.WithCaller {
		logger = logger.With().CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + eventWrapperFrames).Logger()
	}

	// zerolog filters on the stricter of the logger and global levels.
	if zerolog.GlobalLevel() > level {
		zerolog.SetGlobalLevel(level)
	}

	h.path = path
	h.fileWriter = sink
	h.logger.Store(&logger)
	h.isInitialized.Store(true)
	return nil
}
