package input

import "testing"

func TestTrackerPressedIsEdge(t *testing.T) {
	var tr Tracker

	tr.Apply(Event{Type: EventKeyDown, Key: KeyF})
	tr.Apply(Event{Type: EventKeyDown, Key: KeyF, Repeat: true})

	s := tr.Snapshot()
	if !s.Pressed(KeyF) || !s.Held(KeyF) {
		t.Fatalf("first snapshot: pressed=%v held=%v, want both", s.Pressed(KeyF), s.Held(KeyF))
	}

	s = tr.Snapshot()
	if s.Pressed(KeyF) {
		t.Error("pressed carried into the next tick")
	}
	if !s.Held(KeyF) {
		t.Error("held was dropped before key up")
	}

	tr.Apply(Event{Type: EventKeyUp, Key: KeyF})
	if s = tr.Snapshot(); s.Held(KeyF) {
		t.Error("held after key up")
	}
}

func TestTrackerResizeAndQuit(t *testing.T) {
	var tr Tracker

	tr.Apply(Event{Type: EventWindowResize, Width: 800, Height: 600})
	tr.Apply(Event{Type: EventWindowResize, Width: 1024, Height: 768})
	tr.Apply(Event{Type: EventQuit})

	s := tr.Snapshot()
	if !s.Resized || s.Width != 1024 || s.Height != 768 {
		t.Errorf("resize = %v %dx%d, want last size 1024x768", s.Resized, s.Width, s.Height)
	}
	if !s.Quit {
		t.Error("expected quit")
	}

	s = tr.Snapshot()
	if s.Resized || s.Quit {
		t.Error("resize/quit carried into the next tick")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUp, "up"},
		{KeyEscape, "escape"},
		{Key(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
