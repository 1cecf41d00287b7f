package fieldedit

import (
	"strings"
	"unicode/utf8"
)

// KeyAction reports what HandleKey did with a key event.
type KeyAction uint8

const (
	KeyIgnored   KeyAction = iota // Not handled; the event stays available
	KeyHandled                    // Consumed without changing the text
	KeyEdited                     // The buffer changed
	KeyCommitted                  // The session ended, keeping the buffer
	KeyCancelled                  // The session ended, original text restored
)

// TextEditor is the editing buffer attached to whichever control holds the
// active session. A Context owns two of them (immediate and delayed
// fields), and at most one is active at a time.
//
// Operations on a stale or mismatched owner are no-ops.
type TextEditor struct {
	ctx   *Context
	owner ID

	runes    []rune
	original string

	// Selection is [min(anchor, cursor), max(anchor, cursor)).
	cursor int
	anchor int

	multiline bool
	password  bool
	bounds    Rect
	filter    CharFilter
	maxLength int

	history *editHistory

	// onDetach is called when the session is ended by something other than
	// the owner (focus moved, another control began editing).
	onDetach func(owner ID, text string)
}

func newTextEditor(ctx *Context) *TextEditor {
	return &TextEditor{ctx: ctx}
}

// BeginEditing opens a session for id seeded with initialText.
//
// It does nothing if id already owns the active session. A session held by
// another control, in this or the other editor, is ended first without
// committing it.
func (e *TextEditor) BeginEditing(id ID, initialText string, bounds Rect, multiline, isPassword bool) {
	if id == 0 {
		return
	}
	if e.ctx.activeEditor == e && e.owner == id {
		return
	}
	if active := e.ctx.activeEditor; active != nil {
		active.detach()
	}

	e.owner = id
	e.runes = []rune(initialText)
	e.original = initialText
	e.cursor = len(e.runes)
	e.anchor = e.cursor
	e.bounds = bounds
	e.multiline = multiline
	e.password = isPassword
	e.filter = AllowAny
	e.maxLength = 0
	e.history = GetState(e.ctx, subID(id, "history"), &editHistory{})

	e.ctx.activeEditor = e
	e.ctx.undoGroup++
	e.ctx.WantCaptureKeyboard = true
	e.ctx.log.Debug("begin editing", "id", id, "group", e.ctx.undoGroup, "multiline", multiline)
}

// EndEditing closes the session if this editor holds the active one.
func (e *TextEditor) EndEditing() {
	if e.ctx.activeEditor != e {
		return
	}
	if e.history != nil {
		SetState(e.ctx, subID(e.owner, "history"), e.history)
	}
	e.ctx.activeEditor = nil
	e.ctx.WantCaptureKeyboard = false
	e.ctx.log.Debug("end editing", "id", e.owner)
}

// detach ends the session on behalf of someone other than the owner.
func (e *TextEditor) detach() {
	if e.ctx.activeEditor != e {
		return
	}
	if e.onDetach != nil {
		e.onDetach(e.owner, string(e.runes))
	}
	e.EndEditing()
}

// IsEditingControl reports whether id owns the active session and the view
// has input focus.
func (e *TextEditor) IsEditingControl(id ID) bool {
	return id != 0 && e.ctx.activeEditor == e && e.owner == id && e.ctx.viewFocused
}

// Owner returns the control of the current or last session.
func (e *TextEditor) Owner() ID { return e.owner }

// Text returns the buffer.
func (e *TextEditor) Text() string { return string(e.runes) }

// Original returns the text the session started with.
func (e *TextEditor) Original() string { return e.original }

// Cursor returns the cursor position in runes.
func (e *TextEditor) Cursor() int { return e.cursor }

// Multiline reports whether Enter inserts newlines.
func (e *TextEditor) Multiline() bool { return e.multiline }

// Password reports whether the buffer is masked.
func (e *TextEditor) Password() bool { return e.password }

// Bounds returns the rect of the edited field.
func (e *TextEditor) Bounds() Rect { return e.bounds }

// SetFilter sets the allow-list applied to typed and pasted characters.
func (e *TextEditor) SetFilter(f CharFilter) { e.filter = f }

// SetMaxLength limits the buffer length in runes. Zero is unlimited.
func (e *TextEditor) SetMaxLength(n int) { e.maxLength = n }

// HasSelection reports whether a non-empty range is selected.
func (e *TextEditor) HasSelection() bool { return e.cursor != e.anchor }

// Selection returns the selected range in runes, start <= end.
func (e *TextEditor) Selection() (start, end int) {
	if e.anchor < e.cursor {
		return e.anchor, e.cursor
	}
	return e.cursor, e.anchor
}

// SelectedText returns the selected part of the buffer.
func (e *TextEditor) SelectedText() string {
	start, end := e.Selection()
	return string(e.runes[start:end])
}

// DisplayText returns the buffer as it should be shown.
func (e *TextEditor) DisplayText() string {
	if e.password {
		return strings.Repeat(string(e.ctx.cfg.MaskRune), len(e.runes))
	}
	return string(e.runes)
}

// SetCursor moves the cursor, extending the selection if extend is set.
func (e *TextEditor) SetCursor(pos int, extend bool) {
	e.cursor = min(max(pos, 0), len(e.runes))
	if !extend {
		e.anchor = e.cursor
	}
}

// SelectAll selects the whole buffer.
func (e *TextEditor) SelectAll() {
	e.anchor = 0
	e.cursor = len(e.runes)
}

// SelectWordAt selects the word segment containing pos.
func (e *TextEditor) SelectWordAt(pos int) {
	start, end := wordAt(string(e.runes), pos)
	e.anchor, e.cursor = start, end
}

// SelectParagraphAt selects the line containing pos.
func (e *TextEditor) SelectParagraphAt(pos int) {
	start, end := paragraphAt(e.runes, pos)
	e.anchor, e.cursor = start, end
}

// PositionAt maps a point to a cursor position using the monospace metrics
// of the configuration.
func (e *TextEditor) PositionAt(p Vec2) int {
	cfg := e.ctx.cfg
	line := 0
	if e.multiline && cfg.LineHeight > 0 {
		line = int((p.Y - e.bounds.Y - cfg.Padding) / cfg.LineHeight)
	}
	col := 0
	if cfg.CharWidth > 0 {
		col = int((p.X-e.bounds.X-cfg.Padding)/cfg.CharWidth + 0.5)
	}

	start := 0
	for ; line > 0; line-- {
		nl := indexRune(e.runes, start, '\n')
		if nl < 0 {
			break
		}
		start = nl + 1
	}
	end := indexRune(e.runes, start, '\n')
	if end < 0 {
		end = len(e.runes)
	}
	return min(start+max(col, 0), end)
}

// SelectAtPoint handles a press inside the field: one click places the
// cursor, two select a word, three select a paragraph.
func (e *TextEditor) SelectAtPoint(p Vec2, clicks int, extend bool) {
	pos := e.PositionAt(p)
	switch {
	case clicks == 2:
		e.SelectWordAt(pos)
	case clicks >= 3:
		e.SelectParagraphAt(pos)
	default:
		e.SetCursor(pos, extend)
	}
}

// HandleKey applies a key event to the active session.
func (e *TextEditor) HandleKey(ev *Event) KeyAction {
	if e.ctx.activeEditor != e || ev.Type != EventKeyDown {
		return KeyIgnored
	}
	if ev.IsChar() {
		// Ctrl+Alt is AltGr on some layouts and still types characters.
		if ev.Ctrl() && !ev.Alt() {
			return KeyIgnored
		}
		if !e.filter.Allows(ev.Char) {
			return KeyHandled
		}
		if e.insert(string(ev.Char)) {
			return KeyEdited
		}
		return KeyHandled
	}

	switch ev.Key {
	case KeyEscape:
		e.ctx.log.Debug("session ended by key", "id", e.owner, "key", KeyName(ev.Key))
		e.runes = []rune(e.original)
		e.SetCursor(len(e.runes), false)
		e.EndEditing()
		return KeyCancelled

	case KeyEnter:
		if e.multiline && !ev.Ctrl() && !ev.Alt() {
			if e.insertRunes([]rune{'\n'}) {
				return KeyEdited
			}
			return KeyHandled
		}
		e.ctx.log.Debug("session ended by key", "id", e.owner, "key", KeyName(ev.Key))
		e.EndEditing()
		return KeyCommitted

	case KeyBackspace:
		if e.deleteSelection() {
			return KeyEdited
		}
		if e.cursor == 0 {
			return KeyHandled
		}
		from := e.cursor - 1
		if ev.Ctrl() {
			from = prevWordStart(string(e.runes), e.cursor)
		}
		e.deleteRange(from, e.cursor)
		return KeyEdited

	case KeyDelete:
		if e.deleteSelection() {
			return KeyEdited
		}
		if e.cursor == len(e.runes) {
			return KeyHandled
		}
		to := e.cursor + 1
		if ev.Ctrl() {
			to = nextWordEnd(string(e.runes), e.cursor)
		}
		e.deleteRange(e.cursor, to)
		return KeyEdited

	case KeyLeft:
		pos := e.cursor - 1
		switch {
		case ev.Ctrl():
			pos = prevWordStart(string(e.runes), e.cursor)
		case e.HasSelection() && !ev.Shift():
			pos, _ = e.Selection()
		}
		e.SetCursor(pos, ev.Shift())
		return KeyHandled

	case KeyRight:
		pos := e.cursor + 1
		switch {
		case ev.Ctrl():
			pos = nextWordEnd(string(e.runes), e.cursor)
		case e.HasSelection() && !ev.Shift():
			_, pos = e.Selection()
		}
		e.SetCursor(pos, ev.Shift())
		return KeyHandled

	case KeyUp, KeyDown:
		e.SetCursor(e.verticalMove(ev.Key == KeyUp), ev.Shift())
		return KeyHandled

	case KeyHome:
		pos := 0
		if e.multiline && !ev.Ctrl() {
			pos, _ = paragraphAt(e.runes, e.cursor)
		}
		e.SetCursor(pos, ev.Shift())
		return KeyHandled

	case KeyEnd:
		pos := len(e.runes)
		if e.multiline && !ev.Ctrl() {
			_, pos = paragraphAt(e.runes, e.cursor)
		}
		e.SetCursor(pos, ev.Shift())
		return KeyHandled
	}

	if !ev.Ctrl() {
		return KeyIgnored
	}
	switch ev.Key {
	case KeyA:
		e.SelectAll()
		return KeyHandled
	case KeyC:
		e.Copy()
		return KeyHandled
	case KeyX:
		if e.Cut() {
			return KeyEdited
		}
		return KeyHandled
	case KeyV:
		if e.Paste() {
			return KeyEdited
		}
		return KeyHandled
	case KeyZ:
		if ev.Shift() {
			return e.redo()
		}
		return e.undo()
	case KeyY:
		return e.redo()
	}
	return KeyIgnored
}

// Copy writes the selection to the clipboard. Password fields never copy.
func (e *TextEditor) Copy() {
	if e.password || !e.HasSelection() || e.ctx.clipboard == nil {
		return
	}
	if err := e.ctx.clipboard.WriteText(e.SelectedText()); err != nil {
		e.ctx.log.Debug("copy failed", "err", err)
	}
}

// Cut copies and deletes the selection. Password fields never cut.
func (e *TextEditor) Cut() bool {
	if e.password || !e.HasSelection() {
		return false
	}
	e.Copy()
	return e.deleteSelection()
}

// Paste inserts clipboard text, dropping characters the filter rejects.
func (e *TextEditor) Paste() bool {
	if e.ctx.clipboard == nil {
		return false
	}
	text, err := e.ctx.clipboard.ReadText()
	if err != nil {
		e.ctx.log.Debug("paste failed", "err", err)
		return false
	}
	if !e.multiline {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	filtered := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if (r == '\n' && e.multiline) || e.filter.Allows(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return false
	}
	return e.insertRunes(filtered)
}

func (e *TextEditor) insert(s string) bool {
	return e.insertRunes([]rune(s))
}

// insertRunes replaces the selection with rs, honoring the max length.
func (e *TextEditor) insertRunes(rs []rune) bool {
	start, end := e.Selection()
	if e.maxLength > 0 {
		room := e.maxLength - (len(e.runes) - (end - start))
		if room <= 0 {
			return false
		}
		if len(rs) > room {
			rs = rs[:room]
		}
	}

	e.pushUndo()
	out := make([]rune, 0, len(e.runes)-(end-start)+len(rs))
	out = append(out, e.runes[:start]...)
	out = append(out, rs...)
	out = append(out, e.runes[end:]...)
	e.runes = out
	e.SetCursor(start+len(rs), false)
	return true
}

func (e *TextEditor) deleteSelection() bool {
	if !e.HasSelection() {
		return false
	}
	start, end := e.Selection()
	e.deleteRange(start, end)
	return true
}

func (e *TextEditor) deleteRange(from, to int) {
	from = max(from, 0)
	to = min(to, len(e.runes))
	if from >= to {
		return
	}
	e.pushUndo()
	e.runes = append(e.runes[:from:from], e.runes[to:]...)
	e.SetCursor(from, false)
}

func (e *TextEditor) pushUndo() {
	if e.history == nil {
		e.history = &editHistory{}
	}
	e.history.push(string(e.runes), e.ctx.cfg.MaxUndo)
}

func (e *TextEditor) undo() KeyAction {
	if e.history == nil {
		return KeyHandled
	}
	text, ok := e.history.undo(string(e.runes))
	if !ok {
		return KeyHandled
	}
	e.runes = []rune(text)
	e.SetCursor(len(e.runes), false)
	return KeyEdited
}

func (e *TextEditor) redo() KeyAction {
	if e.history == nil {
		return KeyHandled
	}
	text, ok := e.history.redo()
	if !ok {
		return KeyHandled
	}
	e.runes = []rune(text)
	e.SetCursor(len(e.runes), false)
	return KeyEdited
}

// verticalMove returns the cursor position one line up or down, keeping
// the column where possible. Single-line fields jump to the ends.
func (e *TextEditor) verticalMove(up bool) int {
	if !e.multiline {
		if up {
			return 0
		}
		return len(e.runes)
	}
	lineStart, _ := paragraphAt(e.runes, e.cursor)
	col := e.cursor - lineStart
	if up {
		if lineStart == 0 {
			return 0
		}
		prevStart, prevEnd := paragraphAt(e.runes, lineStart-1)
		return min(prevStart+col, prevEnd)
	}
	_, lineEnd := paragraphAt(e.runes, e.cursor)
	if lineEnd == len(e.runes) {
		return len(e.runes)
	}
	nextStart, nextEnd := paragraphAt(e.runes, lineEnd+1)
	return min(nextStart+col, nextEnd)
}

func indexRune(rs []rune, from int, r rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
