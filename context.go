package fieldedit

import "log/slog"

// Context holds the editing state shared by every control of a view.
// It replaces process-wide editor singletons: there is at most one active
// TextEditor and one DragSession per Context, addressed by owner ID.
//
// A Context is single-threaded; it must only be used from the goroutine
// that runs the passes.
type Context struct {
	cfg Config
	log *slog.Logger

	// Event is the event of the current pass. Controls consume it with Use.
	Event *Event

	// Pass counter, incremented by every Frame.
	Pass uint64

	viewFocused bool

	hotControl      ID // Control holding exclusive pointer capture
	keyboardControl ID // Control holding keyboard focus
	lastControl     ID // Last field issued, for LastControlID

	idStack    []ID
	seedCount  map[seedKey]uint32
	focusOrder []ID // FocusKeyboard controls in the order issued this pass

	editor       *TextEditor // Recycled editor for immediate fields
	activeEditor *TextEditor // The editor owning the single active session, or nil
	delayed      *DelayedEditor
	drag         DragSession

	changed     bool
	changeStack []bool
	undoGroup   uint64

	// WantCaptureKeyboard is true while a text session is active, telling
	// the application not to run its own shortcuts.
	WantCaptureKeyboard bool

	state     StateStore
	clipboard ClipboardProvider
	evaluator Evaluator
	display   *DisplayList
}

// NewContext creates a context with the default configuration.
func NewContext() *Context {
	cfg := DefaultConfig()
	ctx := &Context{
		cfg:         cfg,
		log:         defaultLogger,
		viewFocused: true,
		idStack:     make([]ID, 0, 16),
		seedCount:   make(map[seedKey]uint32),
		focusOrder:  make([]ID, 0, 16),
		state:       NewLRUStateStore(cfg.StateCapacity),
		clipboard:   &MemoryClipboard{},
		display:     &DisplayList{},
	}
	ctx.editor = newTextEditor(ctx)
	ctx.delayed = newDelayedEditor(ctx)
	return ctx
}

// Config returns the active configuration.
func (ctx *Context) Config() Config {
	return ctx.cfg
}

// Logger returns the context logger.
func (ctx *Context) Logger() *slog.Logger {
	return ctx.log
}

// Editor returns the recycled editor used by immediate text fields.
func (ctx *Context) Editor() *TextEditor {
	return ctx.editor
}

// ActiveEditor returns the editor with the active session, or nil.
func (ctx *Context) ActiveEditor() *TextEditor {
	return ctx.activeEditor
}

// Delayed returns the delayed-commit editor.
func (ctx *Context) Delayed() *DelayedEditor {
	return ctx.delayed
}

// LastControlID returns the ID of the most recently issued field.
func (ctx *Context) LastControlID() ID {
	return ctx.lastControl
}

// Drag returns the current drag session.
func (ctx *Context) Drag() DragSession {
	return ctx.drag
}

// Display returns the display list recorded by the last pass.
func (ctx *Context) Display() *DisplayList {
	return ctx.display
}

// HotControl returns the control holding pointer capture, or 0.
func (ctx *Context) HotControl() ID {
	return ctx.hotControl
}

// SetHotControl gives pointer capture to id. Zero releases it.
func (ctx *Context) SetHotControl(id ID) {
	ctx.hotControl = id
}

// KeyboardControl returns the control holding keyboard focus, or 0.
func (ctx *Context) KeyboardControl() ID {
	return ctx.keyboardControl
}

// SetKeyboardControl moves keyboard focus to id. Zero clears focus.
// A session owned by another control is detached when the pass ends.
func (ctx *Context) SetKeyboardControl(id ID) {
	if ctx.keyboardControl != id && verbose() {
		ctx.log.Debug("keyboard focus", "from", ctx.keyboardControl, "to", id)
	}
	ctx.keyboardControl = id
}

// HasViewFocus reports whether the view receives input.
func (ctx *Context) HasViewFocus() bool {
	return ctx.viewFocused
}

// UndoGroup returns the undo grouping counter. Every new editing session
// starts a new group.
func (ctx *Context) UndoGroup() uint64 {
	return ctx.undoGroup
}

// BeginChangeCheck starts a nested change-detection block.
func (ctx *Context) BeginChangeCheck() {
	ctx.changeStack = append(ctx.changeStack, ctx.changed)
	ctx.changed = false
}

// EndChangeCheck closes the innermost block and reports whether a control
// inside it changed a value. Outer blocks still see the change.
func (ctx *Context) EndChangeCheck() bool {
	n := len(ctx.changeStack)
	if n == 0 {
		ctx.log.Warn("EndChangeCheck without BeginChangeCheck")
		return ctx.changed
	}
	c := ctx.changed
	ctx.changed = ctx.changeStack[n-1] || c
	ctx.changeStack = ctx.changeStack[:n-1]
	return c
}

// Changed reports whether any control changed a value this pass.
func (ctx *Context) Changed() bool {
	return ctx.changed
}

// SetChanged raises the change flag.
func (ctx *Context) SetChanged() {
	ctx.changed = true
}

// beginPass prepares the context for one event.
func (ctx *Context) beginPass(ev *Event) {
	ctx.Pass++
	ctx.Event = ev
	ctx.idStack = ctx.idStack[:0]
	clear(ctx.seedCount)
	ctx.focusOrder = ctx.focusOrder[:0]
	ctx.changed = false
	ctx.changeStack = ctx.changeStack[:0]
	if ev.Type == EventRepaint {
		ctx.display.reset()
	}

	switch ev.Type {
	case EventFocusGained:
		ctx.viewFocused = true
	case EventFocusLost:
		ctx.viewFocused = false
		// Losing the view is focus moving away: sessions end, delayed
		// fields commit on the next pass that issues them.
		if ctx.activeEditor != nil {
			ctx.activeEditor.detach()
		}
		if ctx.hotControl != 0 {
			ctx.hotControl = 0
			ctx.drag.reset()
		}
	}
}

// endPass runs the bookkeeping no single control owns.
func (ctx *Context) endPass() {
	ev := ctx.Event
	if ev != nil {
		switch {
		case ev.Type == EventKeyDown && ev.Key == KeyTab && !ev.Ctrl():
			ctx.cycleFocus(ev.Shift())
			ev.Use()
		case ev.Type == EventMouseDown && ev.Button == MouseButtonLeft:
			// A press no control claimed clears focus, which commits
			// delayed edits like any other focus change.
			ctx.SetKeyboardControl(0)
		}
	}

	if ctx.activeEditor != nil && ctx.activeEditor.owner != ctx.keyboardControl {
		ctx.activeEditor.detach()
	}
	if ctx.activeEditor == nil {
		ctx.WantCaptureKeyboard = false
	}

	ctx.delayed.expire(ctx.Pass)
	if len(ctx.idStack) > 0 {
		ctx.log.Warn("unbalanced PushID at end of pass", "depth", len(ctx.idStack))
	}
	ctx.Event = nil
}

// cycleFocus moves keyboard focus to the next (or previous) FocusKeyboard
// control issued this pass.
func (ctx *Context) cycleFocus(backward bool) {
	n := len(ctx.focusOrder)
	if n == 0 {
		return
	}
	idx := -1
	for i, id := range ctx.focusOrder {
		if id == ctx.keyboardControl {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && backward:
		idx = n - 1
	case idx < 0:
		idx = 0
	case backward:
		idx = (idx - 1 + n) % n
	default:
		idx = (idx + 1) % n
	}
	ctx.SetKeyboardControl(ctx.focusOrder[idx])
}
