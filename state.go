package fieldedit

import "github.com/dboslee/lru"

// StateStore persists per-control state between passes.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// LRUStateStore is a StateStore that keeps the most recently used entries
// and evicts the rest once capacity is reached.
type LRUStateStore struct {
	cache *lru.Cache[ID, any]
}

// NewLRUStateStore creates a store holding at most capacity entries.
func NewLRUStateStore(capacity int) *LRUStateStore {
	if capacity <= 0 {
		capacity = DefaultConfig().StateCapacity
	}
	return &LRUStateStore{cache: lru.New[ID, any](lru.WithCapacity(capacity))}
}

// Get retrieves a value from the store.
func (s *LRUStateStore) Get(id ID) (any, bool) {
	return s.cache.Get(id)
}

// Set stores a value in the store.
func (s *LRUStateStore) Set(id ID, value any) {
	s.cache.Set(id, value)
}

// Delete removes a value from the store.
func (s *LRUStateStore) Delete(id ID) {
	s.cache.Delete(id)
}

// Len returns the number of stored entries.
func (s *LRUStateStore) Len() int {
	return s.cache.Len()
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.state.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.state.Set(id, value)
}

// DeleteState removes state from the context.
func DeleteState(ctx *Context, id ID) {
	ctx.state.Delete(id)
}

// editHistory is the undo/redo history of one control. It outlives a single
// editing session so undo keeps working after the field is refocused.
type editHistory struct {
	UndoStack []string
	UndoIndex int
}

func (h *editHistory) push(text string, maxSize int) {
	if h.UndoIndex < len(h.UndoStack) {
		h.UndoStack = h.UndoStack[:h.UndoIndex]
	}
	if len(h.UndoStack) > 0 && h.UndoStack[len(h.UndoStack)-1] == text {
		return
	}

	h.UndoStack = append(h.UndoStack, text)
	h.UndoIndex = len(h.UndoStack)

	if maxSize > 0 && len(h.UndoStack) > maxSize {
		h.UndoStack = h.UndoStack[1:]
		h.UndoIndex--
	}
}

func (h *editHistory) undo(current string) (string, bool) {
	// Save current state so redo can return to it.
	if h.UndoIndex == len(h.UndoStack) && len(h.UndoStack) > 0 {
		if h.UndoStack[len(h.UndoStack)-1] != current {
			h.UndoStack = append(h.UndoStack, current)
		}
	}

	if h.UndoIndex > 0 {
		h.UndoIndex--
		return h.UndoStack[h.UndoIndex], true
	}
	return "", false
}

func (h *editHistory) redo() (string, bool) {
	if h.UndoIndex < len(h.UndoStack)-1 {
		h.UndoIndex++
		return h.UndoStack[h.UndoIndex], true
	}
	return "", false
}
