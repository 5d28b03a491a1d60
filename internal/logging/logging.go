// Package logging builds the structured loggers used across the commands.
// The interactive visualizer owns the terminal, so its logs go to a
// rotating file or nowhere; the ssh server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	// File is the log file path. Empty writes to Writer instead.
	File string
	// Level is a level name such as "debug", "info" or "warn".
	Level string
	// Prefix is printed before every message.
	Prefix string
	// Writer is used when File is empty. Nil discards output.
	Writer io.Writer
}

// New creates a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		lj := &lumberjack.Logger{
			Filename:   expandHome(opts.File),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w, closer = lj, lj
	case opts.Writer != nil:
		w = opts.Writer
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Stderr returns the server logger style: timestamped, prefixed, on stderr.
func Stderr(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
