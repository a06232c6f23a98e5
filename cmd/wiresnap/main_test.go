package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallScene = `
viewport:
  width: 120
  height: 80
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallScene), 0o644))
	return path
}

func TestRunSingle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, writeScene(t), out, 0))

	assert.FileExists(t, out)
	assert.Contains(t, buf.String(), "534 lines (0 skipped)")
}

func TestRunOrbit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "orbit")
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, writeScene(t), dir, 2))

	assert.FileExists(t, filepath.Join(dir, "orbit_000.png"))
	assert.FileExists(t, filepath.Join(dir, "orbit_001.png"))
	assert.Contains(t, buf.String(), "2 frames")
}

func TestRunMissingConfig(t *testing.T) {
	err := run(context.Background(), new(bytes.Buffer), filepath.Join(t.TempDir(), "nope.yaml"), "x.png", 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
