package logflag

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/wiregl"
)

func TestLevelFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(new(discard))
			l := NewLevel(slog.LevelWarn)
			fs.Var(l, "loglevel", "")
			err := fs.Parse([]string{"-loglevel", tt.in})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestSetupLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		wiregl.SetLogger(nil)
	})

	path := filepath.Join(t.TempDir(), "wireframe.log")
	c := Setup(slog.LevelInfo, path)
	slog.Info("hello", "k", 1)
	slog.Debug("hidden")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=hello")
	assert.NotContains(t, string(b), "hidden")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
