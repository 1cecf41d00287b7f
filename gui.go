package fieldedit

import "fmt"

// maxPumpEvents bounds how many queued events one Pump call processes, so
// a control that keeps posting commands cannot spin forever.
const maxPumpEvents = 1024

// GUI drives passes over a Context: one event per pass, the application's
// draw function re-issuing every field each time.
type GUI struct {
	ctx      *Context
	queue    EventQueue
	renderer Renderer
}

// New creates a new GUI instance.
func New(opts ...GUIOption) *GUI {
	g := &GUI{ctx: NewContext()}
	// Sized after options so WithConfig's StateCapacity applies.
	g.ctx.state = nil
	for _, opt := range opts {
		opt(g)
	}
	if g.ctx.log == nil {
		g.ctx.log = defaultLogger
	}
	if g.ctx.state == nil {
		g.ctx.state = NewLRUStateStore(g.ctx.cfg.StateCapacity)
	}
	return g
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Frame runs one pass: draw is called with the context while ev is the
// current event. Repaint passes hand the display list to the renderer.
func (g *GUI) Frame(ev Event, draw func(ctx *Context)) error {
	ctx := g.ctx
	ctx.beginPass(&ev)
	draw(ctx)
	ctx.endPass()

	if ev.Type == EventRepaint && g.renderer != nil {
		if err := g.renderer.Render(ctx.display); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// Post queues an event for the next Pump.
func (g *GUI) Post(ev Event) {
	g.queue.Push(ev)
}

// SendCommand queues a command event aimed at target.
func (g *GUI) SendCommand(name string, target ID) {
	g.queue.Push(CommandEvent(name, target))
}

// CommitPending asks the field holding the delayed session to commit.
func (g *GUI) CommitPending() {
	g.SendCommand(CommandDelayedControlShouldCommit, 0)
}

// Pump runs a pass for every queued event, then a repaint pass.
func (g *GUI) Pump(draw func(ctx *Context)) error {
	for n := 0; g.queue.Len() > 0; n++ {
		if n == maxPumpEvents {
			g.ctx.log.Warn("event queue not drained", "left", g.queue.Len())
			break
		}
		ev, _ := g.queue.Pop()
		if err := g.Frame(ev, draw); err != nil {
			return err
		}
	}
	return g.Frame(RepaintEvent(), draw)
}
