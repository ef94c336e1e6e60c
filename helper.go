package filelog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// parseLevel parses a backend level token into a zerolog.Level.
// Returns zerolog.NoLevel and an error if parsing fails.
func parseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// The traversal prefers Station-Manager DetailedError.Cause() and then
// falls back to stdlib errors.Unwrap. It guards against excessive depth
// and repeated messages to avoid cycles.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxDepth {
		visited++

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// eventFor opens a zerolog event at level, or returns nil when the level is
// not one this package emits.
func eventFor(logger *zerolog.Logger, level zerolog.Level) *zerolog.Event {
	switch level {
	case zerolog.TraceLevel:
		return logger.Trace()
	case zerolog.DebugLevel:
		return logger.Debug()
	case zerolog.InfoLevel:
		return logger.Info()
	case zerolog.WarnLevel:
		return logger.Warn()
	case zerolog.ErrorLevel:
		return logger.Error()
	default:
		return nil
	}
}

// logEventBuilder creates a log event for the given level on logger, which
// is either the handle's own logger or a context logger derived from it.
// The in-flight counters are only taken while the handle is still open, so
// Close never waits on an event that was started after it began.
// If the level is below the floor, it returns a no-op LogEvent.
func logEventBuilder(h *Handle, logger *zerolog.Logger, level zerolog.Level) LogEvent {
	if h == nil || !h.isInitialized.Load() || level == zerolog.NoLevel {
		return newLogEvent(nil)
	}

	h.mu.RLock()
	if !h.isInitialized.Load() {
		h.mu.RUnlock()
		return newLogEvent(nil)
	}
	if logger == nil {
		logger = h.logger.Load()
	}
	if logger == nil || logger.GetLevel() > level {
		h.mu.RUnlock()
		return newLogEvent(nil)
	}
	h.activeOps.Add(1)
	h.wg.Add(1)
	h.mu.RUnlock()

	return newTrackedLogEvent(eventFor(logger, level), h)
}
