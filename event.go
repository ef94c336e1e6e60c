package filelog

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// LogContext builds a child logger with pre-populated fields.
type LogContext interface {
	Str(key, val string) LogContext
	Strs(key string, vals []string) LogContext
	Int(key string, val int) LogContext
	Int64(key string, val int64) LogContext
	Bool(key string, val bool) LogContext
	Time(key string, val time.Time) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	// Logger creates and returns the new context logger
	Logger() Logger
}

// LogEvent is a single record under construction. It wraps zerolog.Event.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint64(key string, val uint64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Dict(key string, dict func(LogEvent)) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent wraps a zerolog.Event. When it belongs to a Handle it holds one
// of the handle's in-flight slots, released exactly once when the event is
// finished by Msg, Msgf or Send.
type logEvent struct {
	event    *zerolog.Event
	handle   *Handle
	finished atomic.Bool
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

// newTrackedLogEvent wraps e for h. The caller has already taken an
// in-flight slot; it is released here if there is no event to finish.
func newTrackedLogEvent(e *zerolog.Event, h *Handle) LogEvent {
	if h == nil {
		return newLogEvent(e)
	}
	if e == nil {
		h.release()
		return newLogEvent(nil)
	}
	return &logEvent{event: e, handle: h}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Uint64(key string, val uint64) LogEvent {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

// Err adds the error and, for wrapped errors, its full history.
func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
		e.addChain("error", err)
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
		e.addChain(key, err)
	}
	return e
}

func (e *logEvent) addChain(prefix string, err error) {
	if err == nil {
		return
	}
	chain, ops, root, rootOp := buildErrorChain(err)
	if len(chain) == 0 {
		return
	}
	e.event.Strs(prefix+"_chain", chain)
	e.event.Str(prefix+"_root", root)
	e.event.Str(prefix+"_history", joinChain(chain))
	e.event.Strs(prefix+"_ops", ops)
	if rootOp != emptyString {
		e.event.Str(prefix+"_root_op", rootOp)
	}
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

// Dict for nested objects
func (e *logEvent) Dict(key string, dict func(LogEvent)) LogEvent {
	if e.event != nil {
		dictEvent := zerolog.Dict()
		dict(newLogEvent(dictEvent))
		e.event.Dict(key, dictEvent)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	e.finish(func() { e.event.Msg(msg) })
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	e.finish(func() { e.event.Msgf(format, v...) })
}

func (e *logEvent) Send() {
	e.finish(func() { e.event.Send() })
}

func (e *logEvent) finish(write func()) {
	if !e.finished.CompareAndSwap(false, true) {
		return
	}
	if e.handle != nil {
		defer e.handle.release()
	}
	if e.event != nil {
		write()
		// zerolog recycles finished events.
		e.event = nil
	}
}

type logContext struct {
	context zerolog.Context
	handle  *Handle
}

// contextLogger carries its own zerolog.Logger but shares the parent
// handle's lifecycle, so closing the handle silences it too.
type contextLogger struct {
	logger *zerolog.Logger
	parent *Handle
}

func (cl *contextLogger) TraceWith() LogEvent {
	return logEventBuilder(cl.parent, cl.logger, zerolog.TraceLevel)
}

func (cl *contextLogger) DebugWith() LogEvent {
	return logEventBuilder(cl.parent, cl.logger, zerolog.DebugLevel)
}

func (cl *contextLogger) InfoWith() LogEvent {
	return logEventBuilder(cl.parent, cl.logger, zerolog.InfoLevel)
}

func (cl *contextLogger) WarnWith() LogEvent {
	return logEventBuilder(cl.parent, cl.logger, zerolog.WarnLevel)
}

func (cl *contextLogger) ErrorWith() LogEvent {
	return logEventBuilder(cl.parent, cl.logger, zerolog.ErrorLevel)
}

func (cl *contextLogger) With() LogContext {
	if cl.logger == nil || cl.parent == nil || !cl.parent.isInitialized.Load() {
		return &noopLogContext{}
	}
	return &logContext{context: cl.logger.With(), handle: cl.parent}
}

func (c *logContext) Str(key, val string) LogContext {
	c.context = c.context.Str(key, val)
	return c
}

func (c *logContext) Strs(key string, vals []string) LogContext {
	c.context = c.context.Strs(key, vals)
	return c
}

func (c *logContext) Int(key string, val int) LogContext {
	c.context = c.context.Int(key, val)
	return c
}

func (c *logContext) Int64(key string, val int64) LogContext {
	c.context = c.context.Int64(key, val)
	return c
}

func (c *logContext) Bool(key string, val bool) LogContext {
	c.context = c.context.Bool(key, val)
	return c
}

func (c *logContext) Time(key string, val time.Time) LogContext {
	c.context = c.context.Time(key, val)
	return c
}

func (c *logContext) Err(err error) LogContext {
	c.context = c.context.Err(err)
	return c
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	c.context = c.context.Interface(key, val)
	return c
}

func (c *logContext) Logger() Logger {
	logger := c.context.Logger()
	return &contextLogger{logger: &logger, parent: c.handle}
}

// noopLogContext is a no-op implementation of LogContext
type noopLogContext struct{}

func (n *noopLogContext) Str(key, val string) LogContext                   { return n }
func (n *noopLogContext) Strs(key string, vals []string) LogContext        { return n }
func (n *noopLogContext) Int(key string, val int) LogContext               { return n }
func (n *noopLogContext) Int64(key string, val int64) LogContext           { return n }
func (n *noopLogContext) Bool(key string, val bool) LogContext             { return n }
func (n *noopLogContext) Time(key string, val time.Time) LogContext        { return n }
func (n *noopLogContext) Err(err error) LogContext                         { return n }
func (n *noopLogContext) Interface(key string, val interface{}) LogContext { return n }
func (n *noopLogContext) Logger() Logger                                   { return &noopLogger{} }

// noopLogger is a no-op implementation of Logger
type noopLogger struct{}

func (n *noopLogger) TraceWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) DebugWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) InfoWith() LogEvent  { return newLogEvent(nil) }
func (n *noopLogger) WarnWith() LogEvent  { return newLogEvent(nil) }
func (n *noopLogger) ErrorWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) With() LogContext    { return &noopLogContext{} }
