package filelog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLevel_TranslationIsTotalAndInjective(t *testing.T) {
	seen := map[zerolog.Level]Level{}
	for _, l := range Levels() {
		zl, err := l.zerologLevel()
		require.NoError(t, err, l.String())
		assert.Equal(t, l.String(), zl.String())

		prev, dup := seen[zl]
		assert.False(t, dup, "%s and %s map to the same backend level", prev, l)
		seen[zl] = l
	}
	assert.Len(t, seen, 5)
}

func TestLevel_Tokens(t *testing.T) {
	assert.Equal(t, "trace", LevelTrace.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, LevelInfo, DefaultLevel)
}

func TestLevel_Ordering(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
}

func TestLevel_InvalidIsNotSubstituted(t *testing.T) {
	for _, l := range []Level{levelUnset, Level(6), Level(-1), Level(42)} {
		assert.False(t, l.IsValid())
		_, err := l.zerologLevel()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLogLevel))
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("valid tokens", func(t *testing.T) {
		cases := map[string]Level{
			"trace":   LevelTrace,
			"DEBUG":   LevelDebug,
			" info ":  LevelInfo,
			"Warn":    LevelWarn,
			"error\n": LevelError,
		}
		for in, want := range cases {
			got, err := ParseLevel(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		for _, in := range []string{"", "verbose", "fatal", "warning", "inf"} {
			_, err := ParseLevel(in)
			require.Error(t, err, in)
			assert.True(t, errors.Is(err, ErrInvalidLogLevel), in)

			var initErr *InitError
			require.True(t, errors.As(err, &initErr))
			assert.Equal(t, in, initErr.Input)
		}
	})
}

func TestLevel_TextEncoding(t *testing.T) {
	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(struct{ Level Level }{LevelWarn})
		require.NoError(t, err)
		assert.JSONEq(t, `{"Level":"warn"}`, string(data))

		var out struct{ Level Level }
		require.NoError(t, json.Unmarshal([]byte(`{"Level":"trace"}`), &out))
		assert.Equal(t, LevelTrace, out.Level)
	})

	t.Run("marshal invalid", func(t *testing.T) {
		_, err := Level(9).MarshalText()
		assert.True(t, errors.Is(err, ErrInvalidLogLevel))
	})

	t.Run("yaml config", func(t *testing.T) {
		var cfg Config
		doc := "program_name: my_app\nlevel: debug\nlog_file_max_backups: 3\n"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))
		assert.Equal(t, "my_app", cfg.ProgramName)
		assert.Equal(t, LevelDebug, cfg.Level)
		assert.Equal(t, 3, cfg.LogFileMaxBackups)
	})

	t.Run("yaml rejects unknown level", func(t *testing.T) {
		var cfg Config
		err := yaml.Unmarshal([]byte("program_name: my_app\nlevel: loud\n"), &cfg)
		require.Error(t, err)
	})
}

func TestLevel_Flag(t *testing.T) {
	lvl := DefaultLevel
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&lvl, "level", "")

	require.NoError(t, fs.Parse([]string{"--level=error"}))
	assert.Equal(t, LevelError, lvl)
	assert.Equal(t, "level", fs.Lookup("level").Value.Type())

	assert.Error(t, fs.Parse([]string{"--level=nope"}))
	assert.Equal(t, LevelError, lvl)
}
