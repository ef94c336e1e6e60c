package filelog

// Logger is the emission surface shared by a Handle and the context loggers
// derived from it. Each method returns an event that is written when Msg,
// Msgf or Send is called; events below the severity floor are no-ops.
type Logger interface {
	TraceWith() LogEvent
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent

	// With creates a child logger whose fields are added to every record.
	// Example: reqLogger := logger.With().Str("request_id", id).Logger()
	With() LogContext
}
