// Package filelog sets up file logging for command-line and desktop
// applications with one call. Given a program name and a minimum level it
// resolves the per-user local application data directory, opens a
// timestamped log file below it and activates a zerolog logger writing to
// that file through lumberjack.
//
// Log file locations
//
//	Windows: %LOCALAPPDATA%\<name>\log\<name>_<timestamp>.log
//	Linux:   $XDG_DATA_HOME/<name>/log/<name>_<timestamp>.log
//	macOS:   $HOME/Library/Application Support/<name>/log/<name>_<timestamp>.log
//
// Typical usage with the process-wide session
//
//	if err := filelog.Init("my_app", filelog.LevelInfo); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//	defer filelog.Shutdown()
//
//	filelog.InfoWith().Str("user_id", id).Msg("processed")
//	log.Info().Msg("github.com/rs/zerolog/log is routed to the same file")
//
// Or with an explicit handle
//
//	h, err := filelog.New(filelog.Config{ProgramName: "my_app", Level: filelog.LevelDebug})
//	if err != nil { ... }
//	defer h.Close()
//	h.Emit(filelog.LevelWarn, "disk almost full")
//
// Every error is an *InitError; use errors.Is with ErrEmptyProgramName,
// ErrInvalidProgramName, ErrInvalidLogLevel, ErrNoLogPathFound or ErrLog to
// tell them apart. Whether a failure is fatal is up to the caller.
package filelog
