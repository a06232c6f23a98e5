// Package logflag wires the -loglevel and -logfile command line flags to slog.
package logflag

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"wireframe/wiregl"
)

// Level is a flag.Value over slog.Level.
type Level struct {
	value slog.Level
}

// NewLevel returns a Level preset to def.
func NewLevel(def slog.Level) *Level { return &Level{value: def} }

func (l *Level) String() string {
	if l == nil {
		return slog.LevelInfo.String()
	}
	return l.value.String()
}

func (l *Level) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}

// Level returns the parsed level.
func (l *Level) Level() slog.Level { return l.value }

// Setup installs a text logger at level as the slog default and as the
// wiregl package logger. Output goes to stderr, or to a rotating file when
// path is set. The returned closer flushes the file.
func Setup(level slog.Level, path string) io.Closer {
	var w io.Writer = os.Stderr
	var c io.Closer = nopCloser{}
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
		w, c = lj, lj
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	wiregl.SetLogger(logger.With("pkg", "wiregl"))
	return c
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
