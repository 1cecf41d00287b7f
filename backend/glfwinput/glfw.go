// Package glfwinput turns GLFW window callbacks into fieldedit events.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fieldedit"
)

// Multi-click detection thresholds.
const (
	DoubleClickTime   = 0.4 // Seconds between presses
	DoubleClickRadius = 4.0 // Pixels the pointer may move between presses
)

// Adapter collects GLFW input as a queue of events, one per pass.
type Adapter struct {
	window *glfw.Window
	events []fieldedit.Event

	pos       fieldedit.Vec2
	mouseDown bool

	lastClickTime float64
	lastClickPos  fieldedit.Vec2
	clicks        int

	// now is replaceable for tests.
	now func() float64
}

// New installs callbacks on window and returns the adapter.
func New(window *glfw.Window) *Adapter {
	a := &Adapter{
		window: window,
		now:    glfw.GetTime,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharModsCallback(a.charModsCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFocusCallback(a.focusCallback)

	return a
}

// Drain returns the events collected since the last call.
func (a *Adapter) Drain() []fieldedit.Event {
	evs := a.events
	a.events = nil
	return evs
}

func (a *Adapter) push(ev fieldedit.Event) {
	a.events = append(a.events, ev)
}

func (a *Adapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == fieldedit.KeyNone {
		return
	}
	a.push(fieldedit.Event{Type: fieldedit.EventKeyDown, Key: k, Mods: glfwMods(mods)})
}

func (a *Adapter) charModsCallback(w *glfw.Window, char rune, mods glfw.ModifierKey) {
	a.push(fieldedit.Event{Type: fieldedit.EventKeyDown, Char: char, Mods: glfwMods(mods)})
}

func (a *Adapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		ev := fieldedit.Event{Type: fieldedit.EventMouseDown, Pos: a.pos, Button: b, Mods: glfwMods(mods)}
		if b == fieldedit.MouseButtonLeft {
			a.mouseDown = true
			ev.ClickCount = a.countClick()
		} else {
			ev.ClickCount = 1
		}
		a.push(ev)
	case glfw.Release:
		if b == fieldedit.MouseButtonLeft {
			a.mouseDown = false
		}
		a.push(fieldedit.Event{Type: fieldedit.EventMouseUp, Pos: a.pos, Button: b, Mods: glfwMods(mods)})
	}
}

// countClick returns 1, 2 or 3 for single, double or triple clicks.
func (a *Adapter) countClick() int {
	t := a.now()
	if a.clicks > 0 && t-a.lastClickTime <= DoubleClickTime &&
		a.pos.Sub(a.lastClickPos).LenSq() <= DoubleClickRadius*DoubleClickRadius {
		a.clicks++
		if a.clicks > 3 {
			a.clicks = 1
		}
	} else {
		a.clicks = 1
	}
	a.lastClickTime = t
	a.lastClickPos = a.pos
	return a.clicks
}

func (a *Adapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.pos = fieldedit.Vec2{X: float32(xpos), Y: float32(ypos)}
	typ := fieldedit.EventMouseMove
	if a.mouseDown {
		typ = fieldedit.EventMouseDrag
	}
	a.push(fieldedit.Event{Type: typ, Pos: a.pos, Button: fieldedit.MouseButtonLeft})
}

func (a *Adapter) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		a.push(fieldedit.Event{Type: fieldedit.EventFocusGained})
		return
	}
	a.mouseDown = false
	a.push(fieldedit.Event{Type: fieldedit.EventFocusLost})
}

func glfwMods(m glfw.ModifierKey) fieldedit.Modifiers {
	var out fieldedit.Modifiers
	if m&glfw.ModShift != 0 {
		out |= fieldedit.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= fieldedit.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= fieldedit.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= fieldedit.ModSuper
	}
	return out
}

// glfwKeyToKey maps GLFW keys to editing keys.
func glfwKeyToKey(key glfw.Key) fieldedit.Key {
	switch key {
	case glfw.KeyTab:
		return fieldedit.KeyTab
	case glfw.KeyLeft:
		return fieldedit.KeyLeft
	case glfw.KeyRight:
		return fieldedit.KeyRight
	case glfw.KeyUp:
		return fieldedit.KeyUp
	case glfw.KeyDown:
		return fieldedit.KeyDown
	case glfw.KeyHome:
		return fieldedit.KeyHome
	case glfw.KeyEnd:
		return fieldedit.KeyEnd
	case glfw.KeyDelete:
		return fieldedit.KeyDelete
	case glfw.KeyBackspace:
		return fieldedit.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return fieldedit.KeyEnter
	case glfw.KeyEscape:
		return fieldedit.KeyEscape
	case glfw.KeyA:
		return fieldedit.KeyA
	case glfw.KeyC:
		return fieldedit.KeyC
	case glfw.KeyV:
		return fieldedit.KeyV
	case glfw.KeyX:
		return fieldedit.KeyX
	case glfw.KeyY:
		return fieldedit.KeyY
	case glfw.KeyZ:
		return fieldedit.KeyZ
	default:
		return fieldedit.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) (fieldedit.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return fieldedit.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return fieldedit.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return fieldedit.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
