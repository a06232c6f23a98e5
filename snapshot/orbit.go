package snapshot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wireframe/scene"
	"wireframe/wiregl"
)

// Frame describes one file written by Orbit.
type Frame struct {
	Path  string
	Angle float32
	Stats wiregl.Stats
	Sum64 uint64 // xxhash of the emitted lines
}

// Orbit renders frames views of c with the camera rig rotated evenly around the
// world Y axis and writes them to dir as orbit_NNN.png.
//
// Frames render concurrently; each worker builds its own Scene. The result is
// ordered by frame index.
func Orbit(ctx context.Context, c scene.Config, frames int, dir string) ([]Frame, error) {
	if frames <= 0 {
		return nil, errors.New("snapshot: orbit needs at least one frame")
	}
	out := make([]Frame, frames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < frames; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := scene.New(c)
			if err != nil {
				return err
			}
			angle := float32(2 * math.Pi * float64(i) / float64(frames))
			s.State = s.State.Orbit(angle)

			var rec wiregl.LineRecorder
			st := s.Render(&rec)

			w, h := s.Size()
			cv := NewCanvas(w, h, s.Background)
			defer cv.Close()
			rec.Replay(cv)

			path := filepath.Join(dir, fmt.Sprintf("orbit_%03d.png", i))
			if err := cv.SavePNG(path); err != nil {
				return err
			}
			out[i] = Frame{Path: path, Angle: angle, Stats: st, Sum64: rec.Sum64()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
