// Package input reduces window events into a per-tick snapshot.
package input

// EventType tells what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is a backend-independent key identifier.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyG
	KeyB
	KeyF
	KeyN
	KeySpace
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyR:       "r",
	KeyG:       "g",
	KeyB:       "b",
	KeyF:       "f",
	KeyN:       "n",
	KeySpace:   "space",
	KeyEscape:  "escape",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Event is one translated window event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
	Width  int
	Height int
}

// State is the input seen by one tick.
type State struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Held reports whether k is down at the end of the tick.
func (s State) Held(k Key) bool { return s.held[k] }

// Pressed reports whether k went down during the tick. Key repeats do not
// count.
func (s State) Pressed(k Key) bool { return s.pressed[k] }

// Tracker accumulates events between ticks.
type Tracker struct {
	state State
}

// Apply folds one event into the pending state.
func (t *Tracker) Apply(e Event) {
	switch e.Type {
	case EventQuit:
		t.state.Quit = true
	case EventWindowResize:
		t.state.Resized = true
		t.state.Width = e.Width
		t.state.Height = e.Height
	case EventKeyDown:
		if !e.Repeat && !t.state.held[e.Key] {
			t.state.pressed[e.Key] = true
		}
		t.state.held[e.Key] = true
	case EventKeyUp:
		t.state.held[e.Key] = false
	}
}

// Snapshot returns the state for this tick and clears the per-tick edges.
// Held keys carry over.
func (t *Tracker) Snapshot() State {
	s := t.state
	t.state.pressed = [keyCount]bool{}
	t.state.Resized = false
	t.state.Quit = false
	return s
}
