// Package logger provides structured logging using zerolog.
//
// The TUI owns the terminal, so logs go to a file or nowhere.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Disabled is the File value that discards all output.
const Disabled = "-"

// Config represents logger configuration.
type Config struct {
	File  string // log file path, or "-" to disable
	Level string // zerolog level name such as "debug" or "warn", empty means info
}

// Init builds the application logger and installs it as the zerolog global.
// The returned closer releases the log file.
func Init(cfg Config) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if cfg.File == "" || cfg.File == Disabled {
		logger := zerolog.Nop()
		zlog.Logger = logger
		return logger, io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "open log file")
	}

	logger := New(f, lvl)
	zerolog.DefaultContextLogger = &logger
	zlog.Logger = logger
	return logger, f, nil
}

// New returns a JSON logger writing to w. Caller information is added at
// debug level.
func New(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		parts := strings.Split(file, string(filepath.Separator))
		if len(parts) > 1 {
			return filepath.Join(parts[len(parts)-2:]...) + ":" + strconv.Itoa(line)
		}
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if lvl == zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel parses a level name such as "debug" or "warn", case
// insensitively. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, errors.Newf("unknown log level %q", level)
	}
	return lvl, nil
}
