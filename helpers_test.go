package fieldedit_test

import (
	"testing"

	"github.com/go-theft-auto/fieldedit"
)

// harness runs passes of a fixed draw function.
type harness struct {
	t    *testing.T
	ui   *fieldedit.GUI
	draw func(ctx *fieldedit.Context)
}

func newHarness(t *testing.T, draw func(ctx *fieldedit.Context), opts ...fieldedit.GUIOption) *harness {
	t.Helper()
	return &harness{t: t, ui: fieldedit.New(opts...), draw: draw}
}

func (h *harness) send(evs ...fieldedit.Event) {
	h.t.Helper()
	for _, ev := range evs {
		if err := h.ui.Frame(ev, h.draw); err != nil {
			h.t.Fatalf("Frame(%v) returned error: %v", ev.Type, err)
		}
	}
}

func (h *harness) click(x, y float32) {
	h.t.Helper()
	p := fieldedit.Vec2{X: x, Y: y}
	h.send(fieldedit.MouseDownEvent(p, 1), fieldedit.MouseUpEvent(p))
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.send(fieldedit.CharEvent(r))
	}
}

func (h *harness) key(k fieldedit.Key, mods fieldedit.Modifiers) {
	h.t.Helper()
	h.send(fieldedit.KeyEvent(k, mods))
}

func (h *harness) repaint() {
	h.t.Helper()
	h.send(fieldedit.RepaintEvent())
}

func (h *harness) ctx() *fieldedit.Context {
	return h.ui.Context()
}
