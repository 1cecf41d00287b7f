package fieldedit

// Renderer draws the field visuals recorded during a repaint pass.
type Renderer interface {
	Render(dl *DisplayList) error
}

// FieldState is the interaction state shown by a field.
type FieldState uint8

const (
	FieldIdle FieldState = iota
	FieldFocused
	FieldEditing
	FieldDragging
	FieldDisabled
)

// FieldVisual is what a renderer needs to draw one field.
type FieldVisual struct {
	ID    ID
	Rect  Rect
	Text  string // Display text, already masked for password fields
	State FieldState

	// Cursor and selection in runes, valid while State is FieldEditing.
	Cursor         int
	SelectionStart int
	SelectionEnd   int
}

// DisplayList collects field visuals in issue order.
type DisplayList struct {
	Fields []FieldVisual
}

func (dl *DisplayList) reset() {
	dl.Fields = dl.Fields[:0]
}

// Find returns the visual recorded for id.
func (dl *DisplayList) Find(id ID) (FieldVisual, bool) {
	for _, f := range dl.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldVisual{}, false
}

// recordField adds a visual for id during repaint passes.
func (ctx *Context) recordField(ed *TextEditor, id ID, rect Rect, text string, disabled bool) {
	if ctx.Event == nil || ctx.Event.Type != EventRepaint {
		return
	}
	v := FieldVisual{ID: id, Rect: rect, Text: text}
	switch {
	case disabled:
		v.State = FieldDisabled
	case ctx.drag.Owner == id && ctx.drag.State == DragDragging:
		v.State = FieldDragging
	case ed.IsEditingControl(id):
		v.State = FieldEditing
		v.Text = ed.DisplayText()
		v.Cursor = ed.Cursor()
		v.SelectionStart, v.SelectionEnd = ed.Selection()
	case ctx.keyboardControl == id:
		v.State = FieldFocused
	}
	ctx.display.Fields = append(ctx.display.Fields, v)
}
