// Package logging sets up the application's structured file logger.
//
// The carousel runs full screen, so nothing is written to the terminal:
// log lines go to a file under the XDG state directory.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures Setup.
type Options struct {
	Level  string // zerolog level name, "disabled" turns logging off
	Format string // FormatJSON or FormatConsole
	File   string // empty uses DefaultPath
}

// DefaultPath returns the log file location, creating its directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("liquid", "liquid.log"))
}

// Setup opens the log file and returns a logger writing to it.
// The returned closer releases the file; it is never nil.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	path := opts.File
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var w io.Writer = f
	if opts.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return logger, f, nil
}

// Component returns a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
