package fieldedit

import "strings"

// fieldResult is the outcome of one pass of doTextField.
type fieldResult struct {
	text   string    // Text after the pass
	action KeyAction // What the key event (if any) did
	began  bool      // A session started this pass
}

// fieldID derives the control ID of a field from its kind or WithID.
func (ctx *Context) fieldID(kind string, o options) ID {
	seed := kind
	if s := GetOpt(o, OptID); s != "" {
		seed = s
	}
	id := ctx.ControlID(seed, GetOpt(o, OptFocusType))
	ctx.lastControl = id
	return id
}

// charFilterOpt returns the filter set with WithCharFilter, or def.
func charFilterOpt(o options, def CharFilter) CharFilter {
	if f := GetOpt(o, OptCharFilter); f != nil {
		return *f
	}
	return def
}

// doTextField runs the text-entry protocol of control id for the current
// event, editing through ed. text is the value shown when not editing and
// the seed of a new session.
func (ctx *Context) doTextField(ed *TextEditor, id ID, rect Rect, text string, multiline, password bool, o options, filter CharFilter) fieldResult {
	res := fieldResult{text: text}
	ev := ctx.Event
	if ev == nil {
		return res
	}

	begin := func() {
		ed.BeginEditing(id, text, rect, multiline, password)
		ed.SetFilter(filter)
		ed.SetMaxLength(GetOpt(o, OptMaxLength))
		res.began = true
	}

	editing := ed.IsEditingControl(id)
	if editing {
		ed.bounds = rect
		ed.SetFilter(filter)
	}

	if GetOpt(o, OptDisabled) {
		if editing {
			ed.EndEditing()
		}
		ctx.recordField(ed, id, rect, maskIf(ctx, text, password), true)
		return res
	}

	switch ev.Type {
	case EventMouseDown:
		if ev.Button != MouseButtonLeft || !rect.Contains(ev.Pos) {
			break
		}
		ctx.SetKeyboardControl(id)
		if !editing {
			begin()
		}
		ed.SelectAtPoint(ev.Pos, ev.ClickCount, editing && ev.Shift())
		ctx.SetHotControl(id)
		ev.Use()

	case EventMouseDrag:
		if ctx.hotControl == id && ed.IsEditingControl(id) {
			ed.SetCursor(ed.PositionAt(ev.Pos), true)
			ev.Use()
		}

	case EventMouseUp:
		if ctx.hotControl == id {
			ctx.SetHotControl(0)
			ev.Use()
		}

	case EventKeyDown:
		if !editing {
			if ctx.keyboardControl != id || !ctx.viewFocused {
				break
			}
			// Focused but not editing: Enter opens a session, a typed
			// character opens one and replaces the seeded text.
			if ev.Key == KeyEnter {
				begin()
				ed.SelectAll()
				ev.Use()
				break
			}
			if !ev.IsChar() || (ev.Ctrl() && !ev.Alt()) {
				break
			}
			begin()
			ed.SelectAll()
		}

		res.action = ed.HandleKey(ev)
		switch res.action {
		case KeyEdited:
			res.text = ed.Text()
		case KeyCancelled:
			res.text = ed.Original()
		}
		if res.action != KeyIgnored {
			ev.Use()
		}
	}

	ctx.recordField(ed, id, rect, maskIf(ctx, res.text, password), false)
	return res
}

func maskIf(ctx *Context, text string, password bool) string {
	if !password {
		return text
	}
	return strings.Repeat(string(ctx.cfg.MaskRune), len([]rune(text)))
}

// TextField edits value in place: every keystroke is written back.
// Escape restores the text the session started with.
// Returns true if the value changed.
func (ctx *Context) TextField(rect Rect, value *string, opts ...Option) bool {
	return ctx.textField("TextField", rect, value, false, false, opts)
}

// PasswordField is a TextField that displays its text masked.
func (ctx *Context) PasswordField(rect Rect, value *string, opts ...Option) bool {
	return ctx.textField("PasswordField", rect, value, false, true, opts)
}

// TextArea is a multiline TextField. Enter inserts a newline; Ctrl+Enter
// or Alt+Enter ends editing.
func (ctx *Context) TextArea(rect Rect, value *string, opts ...Option) bool {
	return ctx.textField("TextArea", rect, value, true, false, opts)
}

func (ctx *Context) textField(kind string, rect Rect, value *string, multiline, password bool, opts []Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID(kind, o)
	res := ctx.doTextField(ctx.editor, id, rect, *value, multiline, password, o, charFilterOpt(o, AllowAny))
	if res.text == *value {
		return false
	}
	*value = res.text
	ctx.SetChanged()
	return true
}
