// Package scene loads the viewer configuration and owns the mutable per-frame
// scene state that the frame loop edits and renders.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"wireframe/wiregl"
)

// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
var ErrInvalidConfig = errors.New("scene: invalid config")

// Vec3 is a YAML-friendly triple.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) vector() wiregl.Vector3     { return wiregl.V3(v.X, v.Y, v.Z) }
func (v Vec3) angles() wiregl.EulerAngles { return wiregl.EulerAngles{X: v.X, Y: v.Y, Z: v.Z} }

// HexColor is a wiregl.Color written as "0xRRGGBBAA", "#RRGGBBAA" or "#RRGGBB".
type HexColor wiregl.Color

func (c HexColor) MarshalYAML() (any, error) {
	return wiregl.Color(c).String(), nil
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = HexColor(parsed)
	return nil
}

// ParseColor parses "0xRRGGBBAA", "#RRGGBBAA" or "#RRGGBB" (opaque).
func ParseColor(s string) (wiregl.Color, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	}
	if len(h) == 6 {
		h += "FF"
	}
	if len(h) != 8 {
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return wiregl.Color(v), nil
}

type ViewportConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MinDepth float32 `yaml:"min_depth"`
	MaxDepth float32 `yaml:"max_depth"`
}

type ProjectionConfig struct {
	FovY float32 `yaml:"fov_y"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type CameraConfig struct {
	Translate Vec3 `yaml:"translate"`
	Rotate    Vec3 `yaml:"rotate"` // radians
}

type SphereConfig struct {
	Center      Vec3     `yaml:"center"`
	Radius      float32  `yaml:"radius"`
	Subdivision int      `yaml:"subdivision"`
	Diagonals   bool     `yaml:"diagonals"`
	Color       HexColor `yaml:"color"`
}

type GridConfig struct {
	HalfWidth   float32  `yaml:"half_width"`
	Subdivision int      `yaml:"subdivision"`
	Color       HexColor `yaml:"color"`
}

// Config describes a scene file.
type Config struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Sphere     SphereConfig     `yaml:"sphere"`
	Grid       GridConfig       `yaml:"grid"`
	Background HexColor         `yaml:"background"`
}

// Default returns the built-in scene: a unit sphere resting on a 4x4 grid seen
// from slightly above, rendered at 1280x720.
func Default() Config {
	return Config{
		Viewport:   ViewportConfig{Width: 1280, Height: 720, MinDepth: 0, MaxDepth: 1},
		Projection: ProjectionConfig{FovY: 0.45, Near: 0.1, Far: 100},
		Camera: CameraConfig{
			Translate: Vec3{X: 0, Y: 1.9, Z: -6.49},
		},
		Sphere: SphereConfig{
			Center:      Vec3{X: 0, Y: 1, Z: 0},
			Radius:      1,
			Subdivision: 16,
			Color:       HexColor(wiregl.ColorBlack),
		},
		Grid: GridConfig{
			HalfWidth:   2,
			Subdivision: 10,
			Color:       HexColor(wiregl.ColorLightGray),
		},
		Background: HexColor(0xE6E6E6FF),
	}
}

// Load decodes a YAML scene on top of Default. Unknown keys are rejected and
// an empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("scene: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile loads a scene from path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: open %q: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return enc.Close()
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// Validate checks c for values that would make the pipeline degenerate.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		add("viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if !finite(c.Viewport.MinDepth, c.Viewport.MaxDepth) {
		add("viewport depth range")
	}
	p := c.Projection
	if !finite(p.FovY) || p.FovY <= 0 || p.FovY >= math.Pi {
		add("projection.fov_y %v outside (0, π)", p.FovY)
	}
	if !finite(p.Near, p.Far) || p.Near <= 0 || p.Far <= p.Near {
		add("projection near %v far %v", p.Near, p.Far)
	}
	cam := c.Camera
	if !finite(cam.Translate.X, cam.Translate.Y, cam.Translate.Z, cam.Rotate.X, cam.Rotate.Y, cam.Rotate.Z) {
		add("camera has non-finite values")
	}
	s := c.Sphere
	if !finite(s.Center.X, s.Center.Y, s.Center.Z, s.Radius) || s.Radius < 0 {
		add("sphere radius %v", s.Radius)
	}
	if s.Subdivision <= 0 {
		add("sphere.subdivision %d", s.Subdivision)
	}
	if !finite(c.Grid.HalfWidth) || c.Grid.HalfWidth <= 0 {
		add("grid.half_width %v", c.Grid.HalfWidth)
	}
	if c.Grid.Subdivision <= 0 {
		add("grid.subdivision %d", c.Grid.Subdivision)
	}
	return errors.Join(errs...)
}
