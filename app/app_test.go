package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/hal"
	"wireframe/scene"
)

type fakeHAL struct {
	fb    *hal.MemFramebuffer
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    hal.NewFramebuffer(w, h),
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (f *fakeHAL) Display() hal.Display         { return f }
func (f *fakeHAL) Input() hal.Input             { return f }
func (f *fakeHAL) Time() hal.Time               { return f }
func (f *fakeHAL) Framebuffer() hal.Framebuffer { return f.fb }
func (f *fakeHAL) Keyboard() hal.Keyboard       { return f }
func (f *fakeHAL) Events() <-chan hal.KeyEvent  { return f.keys }
func (f *fakeHAL) Ticks() <-chan uint64         { return f.ticks }

func (f *fakeHAL) press(code hal.KeyCode, shift bool) {
	f.keys <- hal.KeyEvent{Code: code, Press: true, Shift: shift}
}

func testConfig() Config {
	c := scene.Default()
	c.Viewport.Width = 160
	c.Viewport.Height = 90
	return Config{Scene: c}
}

func newTestApp(t *testing.T, cfg Config) (*App, *fakeHAL) {
	t.Helper()
	h := newFakeHAL(cfg.Scene.Viewport.Width, cfg.Scene.Viewport.Height)
	a, err := New(h, cfg)
	require.NoError(t, err)
	return a, h
}

func TestNewRejectsSizeMismatch(t *testing.T) {
	_, err := New(newFakeHAL(10, 10), testConfig())
	assert.ErrorContains(t, err, "does not match viewport")
}

func TestNewRejectsInvalidScene(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Sphere.Subdivision = 0
	_, err := New(newFakeHAL(160, 90), cfg)
	assert.ErrorIs(t, err, scene.ErrInvalidConfig)
}

func TestStepRendersFrame(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	blank := a.Digest()

	require.NoError(t, a.Step())
	assert.Equal(t, 534, a.Stats().Emitted)
	assert.Len(t, a.Lines(), 534)
	assert.EqualValues(t, 1, a.Frames())
	assert.EqualValues(t, 1, h.fb.Frames())
	assert.NotEqual(t, blank, a.Digest())

	first := a.Digest()
	require.NoError(t, a.Step())
	assert.Equal(t, first, a.Digest(), "unchanged state renders the same pixels")
}

func TestEscapeExits(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	h.press(hal.KeyEscape, false)
	assert.ErrorIs(t, a.Step(), hal.ErrExit)
}

func TestDragAndReset(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	h.press(hal.KeyDown, false) // CameraTranslate.y
	h.press(hal.KeyRight, true)
	require.NoError(t, a.Step())

	assert.Equal(t, FieldCameraTranslateY, a.Editor().Field)
	assert.InDelta(t, 2.0, a.Scene().State.Camera.Translate.Y, 1e-5)

	h.press(hal.KeyHome, false)
	require.NoError(t, a.Step())
	assert.Equal(t, float32(1.9), a.Scene().State.Camera.Translate.Y)
}

func TestHeldKeyRepeats(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	h.ticks <- 1000
	h.press(hal.KeyRight, false) // CameraTranslate.x
	require.NoError(t, a.Step())
	assert.InDelta(t, 0.01, a.Scene().State.Camera.Translate.X, 1e-6)

	h.ticks <- 1000 + RepeatDelay + RepeatEvery
	require.NoError(t, a.Step())
	assert.InDelta(t, 0.03, a.Scene().State.Camera.Translate.X, 1e-6)

	h.keys <- hal.KeyEvent{Code: hal.KeyRight}
	h.ticks <- 5000
	require.NoError(t, a.Step())
	assert.InDelta(t, 0.03, a.Scene().State.Camera.Translate.X, 1e-6)
}

func TestToggleDiagonals(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	h.press(hal.KeyF2, false)
	require.NoError(t, a.Step())
	assert.Equal(t, 22+768, a.Stats().Emitted)
}

func TestHUDDrawsText(t *testing.T) {
	plain, _ := newTestApp(t, testConfig())
	require.NoError(t, plain.Step())

	cfg := testConfig()
	cfg.HUD = true
	withHUD, _ := newTestApp(t, cfg)
	require.NoError(t, withHUD.Step())

	assert.NotEqual(t, plain.Digest(), withHUD.Digest())
	assert.Equal(t, plain.Lines(), withHUD.Lines())
}

func TestHUDToggle(t *testing.T) {
	a, h := newTestApp(t, testConfig())
	require.NoError(t, a.Step())
	off := a.Digest()

	h.press(hal.KeyF1, false)
	require.NoError(t, a.Step())
	assert.NotEqual(t, off, a.Digest())

	h.press(hal.KeyF1, false)
	require.NoError(t, a.Step())
	assert.Equal(t, off, a.Digest())
}

func TestSnapshotKey(t *testing.T) {
	cfg := testConfig()
	cfg.SnapshotDir = t.TempDir()
	a, h := newTestApp(t, cfg)
	require.NoError(t, a.Step())

	h.press(hal.KeyF3, false)
	require.NoError(t, a.Step())

	info, err := os.Stat(filepath.Join(cfg.SnapshotDir, "wireframe_001.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestHUDLines(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	lines := hudLines(&a.Scene().State, FieldSphereRadius, a.Stats(), false)
	require.Len(t, lines, int(numFields)+2)
	assert.Contains(t, lines[FieldSphereRadius], ">")
	assert.Contains(t, lines[FieldSphereRadius], "SphereRadius")
	assert.Contains(t, lines[FieldCameraTranslateZ], "-6.490")
	assert.NotContains(t, lines[0], ">")
}
