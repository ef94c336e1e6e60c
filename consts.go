package filelog

const (
	emptyString = ""

	// logDirName is the leaf directory appended below the program's data directory.
	logDirName     = "log"
	logFileExt     = ".log"
	fileTimeFormat = "2006-01-02T15-04-05"

	defaultShutdownTimeoutMS = 500

	// eventWrapperFrames is the number of frames logEvent adds between the
	// caller and zerolog (Msg, finish and the write closure).
	eventWrapperFrames = 3
)

const (
	errMsgConfigInvalid   = "Logging configuration is invalid."
	errMsgDataDirRelative = "DataDir must be an absolute path."
	errMsgOpenLogFile     = "Failed to open log file."
	errMsgCloseLogFile    = "Failed to close log file."
)
