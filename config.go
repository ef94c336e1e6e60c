package filelog

// Config describes one logging session. Only ProgramName is required; the
// zero value of every other field selects the default.
type Config struct {
	ProgramName string `json:"program_name" yaml:"program_name"`
	// Level is the severity floor. Left unset it becomes DefaultLevel.
	Level Level `json:"level,omitempty" yaml:"level,omitempty"`
	// DataDir replaces the platform's local application data directory.
	// It must be absolute.
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`

	ConsoleLogging    bool   `json:"console_logging" yaml:"console_logging"`
	ConsoleNoColor    bool   `json:"console_no_color" yaml:"console_no_color"`
	ConsoleTimeFormat string `json:"console_time_format,omitempty" yaml:"console_time_format,omitempty"`
	WithCaller        bool   `json:"with_caller" yaml:"with_caller"`

	// Rotation settings are handed to lumberjack unchanged; zero means the
	// lumberjack default.
	LogFileMaxSizeMB  int  `json:"log_file_max_size_mb" yaml:"log_file_max_size_mb" validate:"gte=0"`
	LogFileMaxBackups int  `json:"log_file_max_backups" yaml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int  `json:"log_file_max_age_days" yaml:"log_file_max_age_days" validate:"gte=0"`
	LogFileCompress   bool `json:"log_file_compress" yaml:"log_file_compress"`

	ShutdownTimeoutMS      int  `json:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms" validate:"gte=0"`
	ShutdownTimeoutWarning bool `json:"shutdown_timeout_warning" yaml:"shutdown_timeout_warning"`
}

// DefaultConfig returns the configuration used by InitDefault.
func DefaultConfig(programName string) Config {
	cfg := Config{ProgramName: programName}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Level == levelUnset {
		c.Level = DefaultLevel
	}
	if c.ShutdownTimeoutMS == 0 {
		c.ShutdownTimeoutMS = defaultShutdownTimeoutMS
	}
}
