package app

import (
	"fmt"

	"wireframe/hal"
	"wireframe/scene"
)

// Field is one scalar of the scene state the editor can drag.
type Field int

const (
	FieldCameraTranslateX Field = iota
	FieldCameraTranslateY
	FieldCameraTranslateZ
	FieldCameraRotateX
	FieldCameraRotateY
	FieldCameraRotateZ
	FieldSphereCenterX
	FieldSphereCenterY
	FieldSphereCenterZ
	FieldSphereRadius

	numFields
)

var fieldNames = [numFields]string{
	"CameraTranslate.x",
	"CameraTranslate.y",
	"CameraTranslate.z",
	"CameraRotate.x",
	"CameraRotate.y",
	"CameraRotate.z",
	"SphereCenter.x",
	"SphereCenter.y",
	"SphereCenter.z",
	"SphereRadius",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Drag parameters. Holding an arrow repeats after RepeatDelay ms every
// RepeatEvery ms.
const (
	DragStep    float32 = 0.01
	ShiftFactor float32 = 10
	RepeatDelay uint64  = 300
	RepeatEvery uint64  = 50
)

// Action is a request from the editor to the frame loop.
type Action int

const (
	ActionNone Action = iota
	ActionExit
	ActionReset
	ActionToggleHUD
	ActionToggleDiagonals
	ActionSnapshot
)

// Editor drags the fields of a scene.State from key events.
type Editor struct {
	Field Field

	held       hal.KeyCode
	heldShift  bool
	heldSince  uint64
	lastRepeat uint64
}

func fieldPtr(st *scene.State, f Field) *float32 {
	switch f {
	case FieldCameraTranslateX:
		return &st.Camera.Translate.X
	case FieldCameraTranslateY:
		return &st.Camera.Translate.Y
	case FieldCameraTranslateZ:
		return &st.Camera.Translate.Z
	case FieldCameraRotateX:
		return &st.Camera.Rotate.X
	case FieldCameraRotateY:
		return &st.Camera.Rotate.Y
	case FieldCameraRotateZ:
		return &st.Camera.Rotate.Z
	case FieldSphereCenterX:
		return &st.Sphere.Center.X
	case FieldSphereCenterY:
		return &st.Sphere.Center.Y
	case FieldSphereCenterZ:
		return &st.Sphere.Center.Z
	case FieldSphereRadius:
		return &st.Sphere.Radius
	}
	return nil
}

// Value returns field f of st.
func Value(st *scene.State, f Field) float32 {
	if p := fieldPtr(st, f); p != nil {
		return *p
	}
	return 0
}

// Nudge adds delta to field f of st. The sphere radius stays >= 0.
func Nudge(st *scene.State, f Field, delta float32) {
	p := fieldPtr(st, f)
	if p == nil {
		return
	}
	*p += delta
	if f == FieldSphereRadius && *p < 0 {
		*p = 0
	}
}

func dragDelta(code hal.KeyCode, shift bool) float32 {
	d := DragStep
	if shift {
		d *= ShiftFactor
	}
	if code == hal.KeyLeft {
		return -d
	}
	return d
}

func (e *Editor) move(n int) {
	e.Field = Field((int(e.Field) + n + int(numFields)) % int(numFields))
}

// HandleKey applies ev to st at time now (milliseconds) and returns what the
// frame loop should do next.
func (e *Editor) HandleKey(st *scene.State, ev hal.KeyEvent, now uint64) Action {
	if !ev.Press {
		if ev.Code == e.held {
			e.held = hal.KeyUnknown
		}
		return ActionNone
	}
	switch ev.Code {
	case hal.KeyEscape:
		return ActionExit
	case hal.KeyHome:
		return ActionReset
	case hal.KeyF1:
		return ActionToggleHUD
	case hal.KeyF2:
		return ActionToggleDiagonals
	case hal.KeyF3:
		return ActionSnapshot
	case hal.KeyUp:
		e.move(-1)
	case hal.KeyDown:
		e.move(1)
	case hal.KeyTab:
		if ev.Shift {
			e.move(-1)
		} else {
			e.move(1)
		}
	case hal.KeyLeft, hal.KeyRight:
		Nudge(st, e.Field, dragDelta(ev.Code, ev.Shift))
		e.held = ev.Code
		e.heldShift = ev.Shift
		e.heldSince = now
		e.lastRepeat = now
	}
	return ActionNone
}

// Tick repeats the held drag key. It reports whether st changed.
func (e *Editor) Tick(st *scene.State, now uint64) bool {
	if e.held == hal.KeyUnknown || now < e.heldSince+RepeatDelay {
		return false
	}
	changed := false
	for now >= e.lastRepeat+RepeatEvery {
		e.lastRepeat += RepeatEvery
		if e.lastRepeat < e.heldSince+RepeatDelay {
			continue
		}
		Nudge(st, e.Field, dragDelta(e.held, e.heldShift))
		changed = true
	}
	return changed
}

// Release drops any held drag key.
func (e *Editor) Release() { e.held = hal.KeyUnknown }
