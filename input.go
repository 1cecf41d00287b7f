package fieldedit

// EventType identifies the kind of event processed by a pass.
type EventType uint8

const (
	EventIgnore EventType = iota
	EventRepaint
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventMouseDrag
	EventKeyDown
	EventValidateCommand
	EventExecuteCommand
	EventFocusGained
	EventFocusLost
	EventUsed // Consumed by a control earlier in the pass
)

var eventTypeNames = [...]string{
	EventIgnore:          "Ignore",
	EventRepaint:         "Repaint",
	EventMouseDown:       "MouseDown",
	EventMouseUp:         "MouseUp",
	EventMouseMove:       "MouseMove",
	EventMouseDrag:       "MouseDrag",
	EventKeyDown:         "KeyDown",
	EventValidateCommand: "ValidateCommand",
	EventExecuteCommand:  "ExecuteCommand",
	EventFocusGained:     "FocusGained",
	EventFocusLost:       "FocusLost",
	EventUsed:            "Used",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "?"
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a non-character keyboard key.
// Typed characters arrive as EventKeyDown with Key == KeyNone and Char set.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Event is the single input event a pass processes.
type Event struct {
	Type       EventType
	Pos        Vec2
	Button     MouseButton
	ClickCount int
	Key        Key
	Char       rune
	Mods       Modifiers

	// Command name and target control for command events.
	Command string
	Target  ID
}

// Use marks the event as consumed so later controls in the pass ignore it.
func (e *Event) Use() {
	e.Type = EventUsed
}

// Shift reports whether Shift is held.
func (e *Event) Shift() bool { return e.Mods&ModShift != 0 }

// Ctrl reports whether Ctrl (or Cmd) is held.
func (e *Event) Ctrl() bool { return e.Mods&(ModCtrl|ModSuper) != 0 }

// Alt reports whether Alt is held.
func (e *Event) Alt() bool { return e.Mods&ModAlt != 0 }

// IsChar reports whether the event is a typed character.
func (e *Event) IsChar() bool {
	return e.Type == EventKeyDown && e.Key == KeyNone && e.Char != 0
}

// MouseDownEvent builds a left-button press at pos.
func MouseDownEvent(pos Vec2, clicks int) Event {
	if clicks < 1 {
		clicks = 1
	}
	return Event{Type: EventMouseDown, Pos: pos, Button: MouseButtonLeft, ClickCount: clicks}
}

// MouseDragEvent builds a pointer move with the left button held.
func MouseDragEvent(pos Vec2) Event {
	return Event{Type: EventMouseDrag, Pos: pos, Button: MouseButtonLeft}
}

// MouseUpEvent builds a left-button release at pos.
func MouseUpEvent(pos Vec2) Event {
	return Event{Type: EventMouseUp, Pos: pos, Button: MouseButtonLeft}
}

// KeyEvent builds a key press.
func KeyEvent(k Key, mods Modifiers) Event {
	return Event{Type: EventKeyDown, Key: k, Mods: mods}
}

// CharEvent builds a typed character.
func CharEvent(r rune) Event {
	return Event{Type: EventKeyDown, Char: r}
}

// CommandEvent builds an execute-command event aimed at target.
// A zero target addresses whichever control currently owns the command.
func CommandEvent(name string, target ID) Event {
	return Event{Type: EventExecuteCommand, Command: name, Target: target}
}

// RepaintEvent builds a repaint pass.
func RepaintEvent() Event {
	return Event{Type: EventRepaint}
}

// EventQueue buffers events between passes.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
