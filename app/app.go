// Package app is the viewer's frame loop: it owns the scene, applies editor
// input, rasterizes the wireframe into the host framebuffer and overlays the
// HUD.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"wireframe/hal"
	"wireframe/scene"
	"wireframe/snapshot"
	"wireframe/wiregl"
)

// Config configures the viewer.
type Config struct {
	Scene       scene.Config
	SnapshotDir string // F3 writes wireframe_NNN.png here; "" uses the working directory
	HUD         bool
}

// App is one running viewer bound to a HAL.
type App struct {
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64

	scene  *scene.Scene
	editor Editor
	target *wiregl.RGB565Target
	rec    wiregl.LineRecorder
	stats  wiregl.Stats

	hud     bool
	snapDir string
	snaps   int
	now     uint64
	frames  uint64
	log     *slog.Logger
}

// New builds an App drawing into h's framebuffer. The framebuffer must match
// the configured viewport size.
func New(h hal.HAL, cfg Config) (*App, error) {
	s, err := scene.New(cfg.Scene)
	if err != nil {
		return nil, err
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}
	if w, hh := s.Size(); fb.Width() != w || fb.Height() != hh {
		return nil, fmt.Errorf("app: framebuffer %dx%d does not match viewport %dx%d", fb.Width(), fb.Height(), w, hh)
	}

	a := &App{
		fb:    fb,
		scene: s,
		target: &wiregl.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		hud:     cfg.HUD,
		snapDir: cfg.SnapshotDir,
		log:     slog.Default().With("component", "app"),
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	return a, nil
}

// Factory adapts New to the hal runners.
func Factory(cfg Config, ready func(*App)) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if ready != nil {
			ready(a)
		}
		return a.Step, nil
	}
}

// Scene returns the scene the app renders.
func (a *App) Scene() *scene.Scene { return a.scene }

// Editor returns the app's field editor.
func (a *App) Editor() *Editor { return &a.editor }

// Stats returns the counts of the last rendered frame.
func (a *App) Stats() wiregl.Stats { return a.stats }

// Frames returns how many frames Step has rendered.
func (a *App) Frames() uint64 { return a.frames }

// Lines returns the segments of the last rendered frame.
func (a *App) Lines() []wiregl.Line { return a.rec.Lines }

// Step drains pending input, renders one frame and presents it. It returns
// hal.ErrExit when the user asked to quit.
func (a *App) Step() error {
	a.drainTicks()
	if err := a.drainKeys(); err != nil {
		return err
	}
	a.editor.Tick(&a.scene.State, a.now)
	a.render()
	return a.fb.Present()
}

func (a *App) drainTicks() {
	for {
		select {
		case seq := <-a.ticks:
			a.now = seq
		default:
			return
		}
	}
}

func (a *App) drainKeys() error {
	for {
		select {
		case ev := <-a.keys:
			if err := a.apply(a.editor.HandleKey(&a.scene.State, ev, a.now)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) apply(act Action) error {
	switch act {
	case ActionExit:
		a.log.Info("exit requested", "frames", a.frames)
		return hal.ErrExit
	case ActionReset:
		a.scene.Reset()
		a.editor.Release()
		a.log.Debug("scene reset")
	case ActionToggleHUD:
		a.hud = !a.hud
	case ActionToggleDiagonals:
		a.scene.SphereMesh.Diagonals = !a.scene.SphereMesh.Diagonals
		a.log.Debug("sphere diagonals", "on", a.scene.SphereMesh.Diagonals)
	case ActionSnapshot:
		a.snaps++
		path := filepath.Join(a.snapDir, fmt.Sprintf("wireframe_%03d.png", a.snaps))
		if err := a.SaveSnapshot(path); err != nil {
			a.log.Error("snapshot failed", "path", path, "err", err)
		}
	}
	return nil
}

func (a *App) render() {
	a.target.Clear(a.scene.Background)
	a.rec.Reset()
	a.stats = a.scene.Render(wiregl.Tee{wiregl.RasterSink{Target: a.target}, &a.rec})
	if a.hud {
		drawHUD(a.target, hudLines(&a.scene.State, a.editor.Field, a.stats, a.scene.SphereMesh.Diagonals), a.editor.Field)
	}
	a.frames++
}

// Digest hashes the framebuffer contents.
func (a *App) Digest() uint64 { return xxhash.Sum64(a.fb.Buffer()) }

// SaveSnapshot writes the last rendered frame's segments, without the HUD, as
// an anti-aliased PNG.
func (a *App) SaveSnapshot(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("app: snapshot dir: %w", err)
		}
	}
	w, h := a.scene.Size()
	c := snapshot.NewCanvas(w, h, a.scene.Background)
	defer c.Close()
	a.rec.Replay(c)
	if err := c.SavePNG(path); err != nil {
		return err
	}
	a.log.Info("snapshot written", "path", path, "lines", len(a.rec.Lines))
	return nil
}
