package fieldedit

// CommandDelayedControlShouldCommit asks a delayed field to commit its
// pending text. Target the field's ID, or 0 for whichever field holds
// the delayed session.
const CommandDelayedControlShouldCommit = "DelayedControlShouldCommit"

// pendingCommit is text left behind by a delayed session that ended
// because focus moved. The owning field commits it on its next pass.
type pendingCommit struct {
	text string
	pass uint64
}

// DelayedEditor wraps a second TextEditor for fields whose bound value must
// only change on commit: when focus leaves the field, on Enter, or on
// CommandDelayedControlShouldCommit. Keystrokes only touch its buffer.
type DelayedEditor struct {
	ctx    *Context
	editor *TextEditor

	focused ID     // Control that has (or last had) the delayed session
	text    string // Last known buffer of that control
	dirty   bool   // Text was typed since the session began

	pending map[ID]pendingCommit
}

func newDelayedEditor(ctx *Context) *DelayedEditor {
	d := &DelayedEditor{
		ctx:     ctx,
		editor:  newTextEditor(ctx),
		pending: make(map[ID]pendingCommit),
	}
	d.editor.onDetach = d.stash
	return d
}

// Editor returns the text editor used by delayed fields.
func (d *DelayedEditor) Editor() *TextEditor { return d.editor }

// FocusedControl returns the control holding the delayed session, or 0.
func (d *DelayedEditor) FocusedControl() ID { return d.focused }

// Text returns the uncommitted buffer.
func (d *DelayedEditor) Text() string { return d.text }

// Dirty reports whether the session has uncommitted typing.
func (d *DelayedEditor) Dirty() bool { return d.dirty }

// HasPendingCommit reports whether id has text waiting to be committed.
func (d *DelayedEditor) HasPendingCommit(id ID) bool {
	_, ok := d.pending[id]
	return ok
}

func (d *DelayedEditor) clear() {
	d.focused = 0
	d.text = ""
	d.dirty = false
}

// stash keeps the text of a session ended from outside.
func (d *DelayedEditor) stash(owner ID, text string) {
	if d.dirty && owner == d.focused {
		d.pending[owner] = pendingCommit{text: text, pass: d.ctx.Pass}
		d.ctx.log.Debug("delayed edit awaiting commit", "id", owner)
	}
	d.clear()
}

// expire drops pending text whose field was not issued in the pass after
// the one that stashed it.
func (d *DelayedEditor) expire(pass uint64) {
	for id, p := range d.pending {
		if pass > p.pass+1 {
			delete(d.pending, id)
			d.ctx.log.Debug("dropped delayed edit of vanished field", "id", id)
		}
	}
}

// doDelayedField runs one pass of a delayed field. It returns the text to
// commit and whether a commit happened this pass.
func (ctx *Context) doDelayedField(id ID, rect Rect, display string, o options, filter CharFilter) (string, bool) {
	d := ctx.delayed
	ev := ctx.Event
	if ev == nil {
		return "", false
	}

	if GetOpt(o, OptDisabled) {
		// A disabled field drops its session and whatever was typed into it.
		delete(d.pending, id)
		if d.focused == id {
			if d.editor.owner == id {
				d.editor.EndEditing()
			}
			d.clear()
			ctx.log.Debug("delayed edit discarded by disabled field", "id", id)
		}
	}

	commitText, commit := "", false
	if p, ok := d.pending[id]; ok {
		delete(d.pending, id)
		commitText, commit = p.text, true
	}

	if ev.Type == EventExecuteCommand || ev.Type == EventValidateCommand {
		if ev.Command == CommandDelayedControlShouldCommit && d.focused == id && d.editor.IsEditingControl(id) &&
			(ev.Target == id || ev.Target == 0) {
			if ev.Type == EventExecuteCommand {
				if d.dirty {
					commitText, commit = d.text, true
				}
				d.editor.EndEditing()
				d.clear()
			}
			ev.Use()
		}
	}

	res := ctx.doTextField(d.editor, id, rect, display, false, false, o, filter)
	if res.began {
		d.focused = id
		d.text = display
		d.dirty = false
	}
	switch res.action {
	case KeyEdited:
		d.text = res.text
		d.dirty = true
	case KeyCommitted:
		if d.dirty {
			commitText, commit = d.text, true
		}
		d.clear()
	case KeyCancelled:
		d.clear()
	}

	if commit {
		ctx.log.Debug("delayed commit", "id", id, "text", commitText)
	}
	return commitText, commit
}

// DelayedTextField edits value but only writes it back on commit.
// Returns true if the value changed.
func (ctx *Context) DelayedTextField(rect Rect, value *string, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID("DelayedTextField", o)
	text, commit := ctx.doDelayedField(id, rect, *value, o, charFilterOpt(o, AllowAny))
	if !commit || text == *value {
		return false
	}
	*value = text
	ctx.SetChanged()
	return true
}

// DelayedFloatField is a FloatField whose typed text is applied only on
// commit. Text that does not parse is discarded. Drags apply immediately;
// a drag that takes focus from typed text commits that text first and
// scrubs from it.
func (ctx *Context) DelayedFloatField(rect, dragZone Rect, value *float64, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID("DelayedFloatField", o)
	nv, changed := delayedNumberField(ctx, id, rect, dragZone, *value, o)
	if changed {
		*value = nv
		ctx.SetChanged()
	}
	return changed
}

// DelayedIntField is the integer DelayedFloatField.
func (ctx *Context) DelayedIntField(rect, dragZone Rect, value *int64, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID("DelayedIntField", o)
	nv, changed := delayedNumberField(ctx, id, rect, dragZone, *value, o)
	if changed {
		*value = nv
		ctx.SetChanged()
	}
	return changed
}

func delayedNumberField[T number](ctx *Context, id ID, rect, dragZone Rect, value T, o options) (T, bool) {
	d := ctx.delayed
	rng := GetOpt(o, OptRange)
	start := value

	if !GetOpt(o, OptDisabled) && !dragZone.Empty() {
		wasDragging := ctx.drag.Owner == id && ctx.drag.State == DragDragging
		value, _ = dragNumber(ctx, id, dragZone, value, rng)
		if !wasDragging && ctx.drag.Owner == id && ctx.drag.State == DragDragging {
			// Taking focus for the drag stashed the typed text.
			if p, ok := d.pending[id]; ok {
				delete(d.pending, id)
				value = start
				if v, ok := parseNumber[T](ctx, p.text); ok {
					value = clampNumber(v, rng)
				}
				restartDrag(&ctx.drag, value, ctx.Event.Pos)
				ctx.log.Debug("drag continues from typed value", "id", id, "value", value)
			}
		}
	}

	text, commit := ctx.doDelayedField(id, rect, formatNumber(value, GetOpt(o, OptFormat)), o, charFilterOpt(o, numberFilter[T]()))
	if commit {
		if v, ok := parseNumber[T](ctx, text); ok {
			value = clampNumber(v, rng)
		}
	}
	return value, !sameNumber(value, start)
}
