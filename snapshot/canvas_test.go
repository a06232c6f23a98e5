package snapshot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/scene"
	"wireframe/wiregl"
)

func TestCanvasDrawsOpaqueLine(t *testing.T) {
	c := NewCanvas(100, 40, wiregl.ColorWhite)
	defer c.Close()

	c.DrawLine(10, 20, 90, 20, wiregl.ColorBlack)
	require.NoError(t, c.Err())

	img := c.Image()
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	r, _, _, _ := img.At(50, 20).RGBA()
	assert.Less(t, r>>8, uint32(128), "line pixel should be dark")
	r, _, _, _ = img.At(50, 5).RGBA()
	assert.Equal(t, uint32(0xFF), r>>8, "background should stay white")
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(32, 16, wiregl.ColorLightGray)
	defer c.Close()

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestWriteFile(t *testing.T) {
	s, err := scene.New(scene.Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.png")
	st, err := WriteFile(s, path)
	require.NoError(t, err)
	assert.Equal(t, 534, st.Emitted)
	assert.Zero(t, st.Skipped)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestWriteFileBadPath(t *testing.T) {
	s, err := scene.New(scene.Default())
	require.NoError(t, err)

	_, err = WriteFile(s, filepath.Join(t.TempDir(), "missing", "scene.png"))
	assert.Error(t, err)
}
