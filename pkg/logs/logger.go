// Package logs builds the zerolog logger used across arenatoken.
package logs

import (
	"io"
	"os"
	"strings"

	"github.com/bjartek/arenatoken/pkg/config"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates a console logger writing to out, and to the log file when enabled.
// The returned closer releases the log file and must be closed once logging is done.
func NewLogger(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Logger{}, nil, errors.Wrapf(err, "parsing log level %q", cfg.Level)
	}

	writer := out
	var closer io.Closer = nopCloser{}
	if cfg.File.Enabled {
		logFile, err := os.OpenFile(cfg.File.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, nil, errors.Wrapf(err, "opening log file %s", cfg.File.Path)
		}
		writer = io.MultiWriter(out, logFile)
		closer = logFile
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: cfg.TimestampFormat,
		NoColor:    !cfg.Color,
	}

	logger := zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}
