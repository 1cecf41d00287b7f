package fieldedit

import "testing"

func TestLRUStateStore_Evicts(t *testing.T) {
	s := NewLRUStateStore(2)
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if _, ok := s.Get(1); ok {
		t.Error("expected least recently used entry to be evicted")
	}
	if v, ok := s.Get(3); !ok || v != "c" {
		t.Errorf("Get(3) = %v, %v", v, ok)
	}
	s.Delete(3)
	if _, ok := s.Get(3); ok {
		t.Error("expected entry to be deleted")
	}
}

func TestGetState_TypeMismatch(t *testing.T) {
	ctx := NewContext()
	SetState(ctx, 7, numberFieldState[float64]{StartValue: 3})

	if got := GetState(ctx, 7, 0); got != 0 {
		t.Errorf("mismatched type returned %v", got)
	}
	if got := GetState(ctx, 7, numberFieldState[float64]{}); got.StartValue != 3 {
		t.Errorf("StartValue = %v", got.StartValue)
	}
	DeleteState(ctx, 7)
	if got := GetState(ctx, 7, numberFieldState[float64]{StartValue: -1}); got.StartValue != -1 {
		t.Error("expected default after delete")
	}
}

func TestEditHistory_Bounded(t *testing.T) {
	h := &editHistory{}
	for _, s := range []string{"a", "b", "b", "c", "d"} {
		h.push(s, 3)
	}
	if len(h.UndoStack) != 3 || h.UndoStack[0] != "b" {
		t.Errorf("stack = %v", h.UndoStack)
	}

	text, ok := h.undo("e")
	if !ok || text != "d" {
		t.Errorf("undo = %q, %v", text, ok)
	}
	// A new edit drops the redo tail.
	h.push("x", 3)
	if _, ok := h.redo(); ok {
		t.Error("redo after a new edit")
	}
}
