// Package hal is the boundary between the viewer and the host: a framebuffer
// to draw into, a keyboard to read and a tick stream to pace the frame loop.
package hal

import "errors"

// ErrExit is returned by a step function to stop the runner cleanly.
var ErrExit = errors.New("hal: exit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEscape
	KeyHome
	KeyF1
	KeyF2
	KeyF3
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyTab:     "tab",
	KeyEscape:  "escape",
	KeyHome:    "home",
	KeyF1:      "f1",
	KeyF2:      "f2",
	KeyF3:      "f3",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEvent is a keyboard edge. Shift reports the modifier state at the edge.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Shift bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Time delivers the milliseconds elapsed since the runner started. Only the
// newest value is buffered.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
}
