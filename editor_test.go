package fieldedit

import "testing"

func press(e *TextEditor, k Key, mods Modifiers) KeyAction {
	ev := Event{Type: EventKeyDown, Key: k, Mods: mods}
	return e.HandleKey(&ev)
}

func typeRunes(e *TextEditor, s string) {
	for _, r := range s {
		ev := Event{Type: EventKeyDown, Char: r}
		e.HandleKey(&ev)
	}
}

func TestBeginEditing_SingleActiveSession(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	d := ctx.Delayed().Editor()

	e.BeginEditing(1, "one", Rect{}, false, false)
	if !e.IsEditingControl(1) || ctx.ActiveEditor() != e {
		t.Fatal("expected control 1 to be editing")
	}

	d.BeginEditing(2, "two", Rect{}, false, false)
	if e.IsEditingControl(1) {
		t.Error("control 1 still editing after control 2 began")
	}
	if !d.IsEditingControl(2) || ctx.ActiveEditor() != d {
		t.Error("expected control 2 to own the session")
	}
	if got := press(e, KeyBackspace, 0); got != KeyIgnored {
		t.Errorf("inactive editor handled a key: %v", got)
	}

	e.BeginEditing(3, "three", Rect{}, false, false)
	if d.IsEditingControl(2) || !e.IsEditingControl(3) {
		t.Error("expected control 3 to own the session")
	}
	if e.Text() != "three" {
		t.Errorf("recycled editor text = %q", e.Text())
	}
}

func TestBeginEditing_SameControlIsNoop(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()

	e.BeginEditing(1, "a", Rect{}, false, false)
	group := ctx.UndoGroup()
	typeRunes(e, "b")
	e.BeginEditing(1, "zzz", Rect{}, false, false)

	if e.Text() != "ab" {
		t.Errorf("text = %q, want %q", e.Text(), "ab")
	}
	if ctx.UndoGroup() != group {
		t.Error("re-beginning the same control started a new undo group")
	}

	e.BeginEditing(0, "zero", Rect{}, false, false)
	if e.Owner() != 1 {
		t.Error("control 0 must never own a session")
	}
}

func TestEndEditing_StaleIsNoop(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	d := ctx.Delayed().Editor()

	e.BeginEditing(1, "a", Rect{}, false, false)
	d.BeginEditing(2, "b", Rect{}, false, false)
	e.EndEditing()
	if ctx.ActiveEditor() != d {
		t.Error("ending a stale session closed the active one")
	}
	if !ctx.WantCaptureKeyboard {
		t.Error("expected keyboard capture while editing")
	}
	d.EndEditing()
	if ctx.ActiveEditor() != nil || ctx.WantCaptureKeyboard {
		t.Error("expected no session")
	}
}

func TestHandleKey_EscapeRestoresOriginal(t *testing.T) {
	seqs := []func(e *TextEditor){
		func(e *TextEditor) { typeRunes(e, "xyz") },
		func(e *TextEditor) { press(e, KeyHome, 0); press(e, KeyDelete, 0); typeRunes(e, "J") },
		func(e *TextEditor) { press(e, KeyA, ModCtrl); press(e, KeyBackspace, 0) },
		func(e *TextEditor) { press(e, KeyLeft, ModShift); press(e, KeyLeft, ModShift); typeRunes(e, "__") },
		func(e *TextEditor) { press(e, KeyDelete, ModCtrl); press(e, KeyBackspace, ModCtrl) },
		func(e *TextEditor) { typeRunes(e, "1"); press(e, KeyZ, ModCtrl); press(e, KeyZ, ModCtrl|ModShift); typeRunes(e, "2") },
	}
	for i, seq := range seqs {
		ctx := NewContext()
		e := ctx.Editor()
		e.BeginEditing(1, "hello world", Rect{}, false, false)
		seq(e)
		if e.Text() == "hello world" {
			t.Errorf("seq %d: did not edit", i)
		}
		if got := press(e, KeyEscape, 0); got != KeyCancelled {
			t.Errorf("seq %d: Escape returned %v", i, got)
		}
		if e.Text() != "hello world" {
			t.Errorf("seq %d: text = %q after Escape", i, e.Text())
		}
		if ctx.ActiveEditor() != nil {
			t.Errorf("seq %d: session still active", i)
		}
	}
}

func TestHandleKey_Filter(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "", Rect{}, false, false)
	e.SetFilter(AllowInt)

	typeRunes(e, "1a2.3")
	if e.Text() != "123" {
		t.Errorf("text = %q, want %q", e.Text(), "123")
	}
}

func TestHandleKey_CtrlCharIgnored(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "", Rect{}, false, false)

	ev := Event{Type: EventKeyDown, Char: 'q', Mods: ModCtrl}
	if got := e.HandleKey(&ev); got != KeyIgnored {
		t.Errorf("Ctrl+q = %v, want ignored", got)
	}
	// AltGr arrives as Ctrl+Alt and still types.
	ev = Event{Type: EventKeyDown, Char: '@', Mods: ModCtrl | ModAlt}
	if got := e.HandleKey(&ev); got != KeyEdited || e.Text() != "@" {
		t.Errorf("Ctrl+Alt+@ = %v, text %q", got, e.Text())
	}
}

func TestHandleKey_WordMotion(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "hello world", Rect{}, false, false)

	press(e, KeyLeft, ModCtrl)
	if e.Cursor() != 6 {
		t.Errorf("Ctrl+Left: cursor %d, want 6", e.Cursor())
	}
	press(e, KeyLeft, ModCtrl)
	if e.Cursor() != 0 {
		t.Errorf("Ctrl+Left: cursor %d, want 0", e.Cursor())
	}
	press(e, KeyRight, ModCtrl|ModShift)
	if got := e.SelectedText(); got != "hello" {
		t.Errorf("Ctrl+Shift+Right selected %q", got)
	}
	press(e, KeyRight, 0)
	if e.HasSelection() || e.Cursor() != 5 {
		t.Errorf("Right collapsed to %d", e.Cursor())
	}

	press(e, KeyEnd, 0)
	press(e, KeyBackspace, ModCtrl)
	if e.Text() != "hello " {
		t.Errorf("Ctrl+Backspace: %q", e.Text())
	}
}

func TestSelectWordAndParagraph(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "line one\nline two", Rect{}, true, false)

	e.SelectWordAt(6)
	if got := e.SelectedText(); got != "one" {
		t.Errorf("word = %q, want %q", got, "one")
	}
	e.SelectParagraphAt(12)
	if got := e.SelectedText(); got != "line two" {
		t.Errorf("paragraph = %q, want %q", got, "line two")
	}
	e.SelectAtPoint(Vec2{X: 2, Y: 2}, 3, false)
	if got := e.SelectedText(); got != "line one" {
		t.Errorf("triple click = %q, want %q", got, "line one")
	}
}

func TestHandleKey_Multiline(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "ab\ncd", Rect{}, true, false)
	e.SetCursor(1, false)

	press(e, KeyDown, 0)
	if e.Cursor() != 4 {
		t.Errorf("Down: cursor %d, want 4", e.Cursor())
	}
	press(e, KeyUp, 0)
	if e.Cursor() != 1 {
		t.Errorf("Up: cursor %d, want 1", e.Cursor())
	}
	press(e, KeyEnd, 0)
	if e.Cursor() != 2 {
		t.Errorf("End: cursor %d, want 2", e.Cursor())
	}
	if got := press(e, KeyEnter, 0); got != KeyEdited || e.Text() != "ab\n\ncd" {
		t.Errorf("Enter = %v, text %q", got, e.Text())
	}
	if got := press(e, KeyEnter, ModAlt); got != KeyCommitted {
		t.Errorf("Alt+Enter = %v, want committed", got)
	}
}

func TestUndoRedo_SurvivesSessions(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()

	e.BeginEditing(1, "", Rect{}, false, false)
	typeRunes(e, "ab")
	e.EndEditing()

	e.BeginEditing(1, "ab", Rect{}, false, false)
	if got := press(e, KeyZ, ModCtrl); got != KeyEdited || e.Text() != "a" {
		t.Fatalf("undo = %v, text %q", got, e.Text())
	}
	press(e, KeyZ, ModCtrl)
	if e.Text() != "" {
		t.Errorf("second undo: %q", e.Text())
	}
	if got := press(e, KeyZ, ModCtrl); got != KeyHandled {
		t.Errorf("undo past start = %v", got)
	}
	press(e, KeyY, ModCtrl)
	press(e, KeyZ, ModCtrl|ModShift)
	if e.Text() != "ab" {
		t.Errorf("redo: %q, want %q", e.Text(), "ab")
	}
}

func TestClipboard(t *testing.T) {
	ctx := NewContext()
	clip := &MemoryClipboard{}
	ctx.clipboard = clip
	e := ctx.Editor()

	e.BeginEditing(1, "copy me", Rect{}, false, false)
	e.SelectWordAt(0)
	press(e, KeyC, ModCtrl)
	if got, _ := clip.ReadText(); got != "copy" {
		t.Errorf("clipboard = %q", got)
	}

	clip.WriteText("1\n2x3")
	e.BeginEditing(2, "", Rect{}, false, false)
	e.SetFilter(AllowInt)
	press(e, KeyV, ModCtrl)
	if e.Text() != "123" {
		t.Errorf("filtered paste = %q, want %q", e.Text(), "123")
	}

	e.BeginEditing(3, "", Rect{}, false, false)
	press(e, KeyV, ModCtrl)
	if e.Text() != "1 2x3" {
		t.Errorf("single-line paste = %q", e.Text())
	}

	e.BeginEditing(4, "pw", Rect{}, false, true)
	e.SelectAll()
	if e.Cut() {
		t.Error("password field allowed cut")
	}
	if e.DisplayText() != "**" {
		t.Errorf("masked text = %q", e.DisplayText())
	}
}

func TestMaxLength_TruncatesPaste(t *testing.T) {
	ctx := NewContext()
	ctx.clipboard = &MemoryClipboard{text: "abcdef"}
	e := ctx.Editor()
	e.BeginEditing(1, "x", Rect{}, false, false)
	e.SetMaxLength(4)

	press(e, KeyV, ModCtrl)
	if e.Text() != "xabc" {
		t.Errorf("text = %q, want %q", e.Text(), "xabc")
	}
}

func TestPositionAt(t *testing.T) {
	ctx := NewContext()
	e := ctx.Editor()
	e.BeginEditing(1, "abc\ndefgh", Rect{X: 10, Y: 10, W: 100, H: 40}, true, false)

	tests := []struct {
		p    Vec2
		want int
	}{
		{Vec2{X: 0, Y: 0}, 0},
		{Vec2{X: 12 + 7, Y: 12}, 1},
		{Vec2{X: 200, Y: 12}, 3},
		{Vec2{X: 12 + 14, Y: 12 + 14}, 6},
		{Vec2{X: 200, Y: 200}, 9},
	}
	for _, tt := range tests {
		if got := e.PositionAt(tt.p); got != tt.want {
			t.Errorf("PositionAt(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}
