package fieldedit

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID uniquely identifies a control within a pass.
// IDs are stable across passes for the same call sequence. Zero means no control.
type ID uint64

// FocusType is the keyboard-focus policy of a control.
type FocusType uint8

const (
	FocusNone     FocusType = iota // Never takes keyboard focus
	FocusPassive                   // Takes focus only when clicked
	FocusKeyboard                  // Also reachable with Tab
)

type seedKey struct {
	parent ID
	seed   string
}

// ControlID returns a stable ID for a control created with seed.
//
// The ID mixes the enclosing PushID scope, the seed and how many times the
// seed was already used in the scope this pass. Controls with other seeds
// do not shift it.
func (ctx *Context) ControlID(seed string, focus FocusType) ID {
	parent := ctx.CurrentID()
	key := seedKey{parent: parent, seed: seed}
	n := ctx.seedCount[key]
	ctx.seedCount[key] = n + 1

	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(parent))
	binary.LittleEndian.PutUint32(buf[8:], n)

	d := xxhash.New()
	d.Write(buf[:])
	d.WriteString(seed)
	id := ID(d.Sum64())
	if id == 0 {
		id = 1
	}

	if focus == FocusKeyboard {
		ctx.focusOrder = append(ctx.focusOrder, id)
	}
	return id
}

// ControlIDInt is ControlID for integer seeds (array indices and the like).
func (ctx *Context) ControlIDInt(n int, focus FocusType) ID {
	return ctx.ControlID("\x00"+strconv.Itoa(n), focus)
}

// PushID opens an ID scope. Controls created until PopID hash against it.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.ControlID(label, FocusNone))
}

// PushIDInt opens an integer-keyed ID scope.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.ControlIDInt(n, FocusNone))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current scope ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// subID derives the ID of state attached to control id under tag, so a
// control can persist more than one value.
func subID(id ID, tag string) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d := xxhash.New()
	d.Write(buf[:])
	d.WriteString(tag)
	return ID(d.Sum64())
}
