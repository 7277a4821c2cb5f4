package core

import "testing"

func TestInputTracksKeys(t *testing.T) {
	in := NewInput()

	if in.IsKeyDown(KeyEscape) {
		t.Error("escape down before any event")
	}

	in.Handle(EventKey{Key: KeyEscape, Down: true})
	if !in.IsKeyDown(KeyEscape) {
		t.Error("escape not down after press")
	}

	in.Handle(EventKey{Key: KeyEscape, Down: false})
	if in.IsKeyDown(KeyEscape) {
		t.Error("escape still down after release")
	}
}

func TestInputTracksMouse(t *testing.T) {
	in := NewInput()

	in.Handle(EventMouseMove{X: 12, Y: 34})
	x, y := in.Mouse()
	if x != 12 || y != 34 {
		t.Errorf("mouse = (%v, %v), want (12, 34)", x, y)
	}

	// Unrelated events leave mouse state alone.
	in.Handle(EventResize{W: 640, H: 480})
	x, y = in.Mouse()
	if x != 12 || y != 34 {
		t.Errorf("mouse = (%v, %v) after resize, want (12, 34)", x, y)
	}
}
