package filelog

import (
	"strconv"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Level is the minimum severity written to the log file. Levels are ordered
// from most to least verbose. The zero value means "not specified" and is
// replaced by DefaultLevel when a Config is built.
type Level int8

const (
	levelUnset Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLevel is used when the caller does not choose a level.
const DefaultLevel = LevelInfo

var levelTokens = [...]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// Levels returns every valid level, most verbose first.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// IsValid reports whether l is one of the five named levels.
func (l Level) IsValid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the backend token for l: trace, debug, info, warn or error.
func (l Level) String() string {
	if !l.IsValid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelTokens[l]
}

// ParseLevel converts a level token into a Level. Matching ignores case and
// surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	const op smerrors.Op = "filelog.ParseLevel"
	token := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if levelTokens[l] == token {
			return l, nil
		}
	}
	return levelUnset, &InitError{Kind: ErrInvalidLogLevel, Op: op, Input: s}
}

// zerologLevel translates l into the backend's severity through its token.
func (l Level) zerologLevel() (zerolog.Level, error) {
	const op smerrors.Op = "filelog.Level.zerologLevel"
	if !l.IsValid() {
		return zerolog.NoLevel, &InitError{Kind: ErrInvalidLogLevel, Op: op, Input: l.String()}
	}
	zl, err := parseLevel(l.String())
	if err != nil {
		return zerolog.NoLevel, &InitError{Kind: ErrInvalidLogLevel, Op: op, Input: l.String(), Err: err}
	}
	return zl, nil
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, &InitError{Kind: ErrInvalidLogLevel, Op: "filelog.Level.MarshalText", Input: l.String()}
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Set implements pflag.Value so a Level can be bound directly as a flag.
func (l *Level) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "level"
}
