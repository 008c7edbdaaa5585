package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseLevel_RejectsUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)
}

func TestInit_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ripple.log")

	_, _, err := Init(Config{File: path, Level: "loud"})

	require.Error(t, err)
	assert.NoFileExists(t, path)

	_, _, err = Init(Config{File: Disabled, Level: "loud"})
	assert.Error(t, err, "level is checked even with logging disabled")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.DebugLevel)
	l.Debug().Msg("x")
	assert.Contains(t, buf.String(), `"caller":"logger/logger_test.go:`)
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ripple.log")

	l, closer, err := Init(Config{File: path, Level: "info"})
	require.NoError(t, err)
	l.Info().Str("component", "test").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestInit_Disabled(t *testing.T) {
	l, closer, err := Init(Config{File: Disabled})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NoError(t, closer.Close())
}
