package app

import (
	"testing"

	"wireframe/hal"
	"wireframe/scene"
	"wireframe/wiregl"
)

func press(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: true} }

func TestEditorSelectionWraps(t *testing.T) {
	var e Editor
	var st scene.State

	e.HandleKey(&st, press(hal.KeyUp), 0)
	if e.Field != FieldSphereRadius {
		t.Fatalf("Up from first field = %v, want %v", e.Field, FieldSphereRadius)
	}
	e.HandleKey(&st, press(hal.KeyDown), 0)
	if e.Field != FieldCameraTranslateX {
		t.Fatalf("Down from last field = %v, want %v", e.Field, FieldCameraTranslateX)
	}
	e.HandleKey(&st, hal.KeyEvent{Code: hal.KeyTab, Press: true, Shift: true}, 0)
	if e.Field != FieldSphereRadius {
		t.Fatalf("shift-Tab = %v, want %v", e.Field, FieldSphereRadius)
	}
	e.HandleKey(&st, press(hal.KeyTab), 0)
	if e.Field != FieldCameraTranslateX {
		t.Fatalf("Tab = %v, want %v", e.Field, FieldCameraTranslateX)
	}
}

func TestEditorDragStep(t *testing.T) {
	tests := []struct {
		name  string
		ev    hal.KeyEvent
		field Field
		want  float32
	}{
		{"right", press(hal.KeyRight), FieldCameraRotateY, 0.01},
		{"left", press(hal.KeyLeft), FieldSphereCenterZ, -0.01},
		{"shift right", hal.KeyEvent{Code: hal.KeyRight, Press: true, Shift: true}, FieldCameraTranslateZ, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Editor{Field: tt.field}
			var st scene.State
			if act := e.HandleKey(&st, tt.ev, 0); act != ActionNone {
				t.Fatalf("HandleKey() = %v, want ActionNone", act)
			}
			if got := Value(&st, tt.field); absf(got-tt.want) > 1e-6 {
				t.Fatalf("%v = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestEditorActions(t *testing.T) {
	tests := []struct {
		code hal.KeyCode
		want Action
	}{
		{hal.KeyEscape, ActionExit},
		{hal.KeyHome, ActionReset},
		{hal.KeyF1, ActionToggleHUD},
		{hal.KeyF2, ActionToggleDiagonals},
		{hal.KeyF3, ActionSnapshot},
		{hal.KeyUnknown, ActionNone},
	}
	for _, tt := range tests {
		var e Editor
		var st scene.State
		if got := e.HandleKey(&st, press(tt.code), 0); got != tt.want {
			t.Fatalf("HandleKey(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}

	var e Editor
	var st scene.State
	if got := e.HandleKey(&st, hal.KeyEvent{Code: hal.KeyEscape}, 0); got != ActionNone {
		t.Fatalf("Escape release = %v, want ActionNone", got)
	}
}

func TestRadiusClampsAtZero(t *testing.T) {
	st := scene.State{Sphere: wiregl.Sphere{Radius: 0.005}}
	Nudge(&st, FieldSphereRadius, -0.01)
	if st.Sphere.Radius != 0 {
		t.Fatalf("radius = %v, want 0", st.Sphere.Radius)
	}
	Nudge(&st, FieldSphereCenterY, -0.5)
	if st.Sphere.Center.Y != -0.5 {
		t.Fatalf("center.y = %v, want -0.5", st.Sphere.Center.Y)
	}
}

func TestEditorRepeat(t *testing.T) {
	var e Editor
	var st scene.State
	e.HandleKey(&st, press(hal.KeyRight), 100)

	if e.Tick(&st, 100+RepeatDelay-1) {
		t.Fatal("repeat before delay")
	}
	if !e.Tick(&st, 100+RepeatDelay) {
		t.Fatal("no repeat at delay")
	}
	if !e.Tick(&st, 100+RepeatDelay+2*RepeatEvery) {
		t.Fatal("no repeat after interval")
	}
	if got := st.Camera.Translate.X; absf(got-0.04) > 1e-6 {
		t.Fatalf("x = %v, want 0.04", got)
	}

	e.HandleKey(&st, hal.KeyEvent{Code: hal.KeyRight}, 1000)
	if e.Tick(&st, 5000) {
		t.Fatal("repeat after release")
	}
}

func TestFieldString(t *testing.T) {
	if got := FieldSphereRadius.String(); got != "SphereRadius" {
		t.Fatalf("String() = %q", got)
	}
	if got := Field(42).String(); got != "Field(42)" {
		t.Fatalf("String() = %q", got)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
