/*
Package fieldedit implements the editing core of immediate-mode text and
numeric fields: stable control IDs, a single active text-editing session,
fields that commit only when focus leaves them, and drag-to-scrub numbers.

# Overview

The application calls its draw function once per event. Every call
re-issues every field; fields compare their ID against the session state
kept on the Context and react to the current Event.

	ui := fieldedit.New()
	for ev := range events {
	    ui.Frame(ev, func(ctx *fieldedit.Context) {
	        ctx.TextField(nameRect, &name)
	        ctx.DelayedIntField(sizeRect, sizeLabel, &size)
	    })
	}

A field that handles the event calls Event.Use, so later fields in the same
pass see EventUsed.

# Sessions

The Context owns two TextEditors, one for immediate fields and one for
delayed fields. At most one of them holds an active session, owned by one
control ID. Starting a session for another control ends the current one
without committing it. Operations addressed to a stale ID do nothing.

Immediate fields write the buffer back on every keystroke. Delayed fields
keep the buffer to themselves until a commit: Enter, keyboard focus moving
elsewhere (including the view losing focus), or an EventExecuteCommand named
CommandDelayedControlShouldCommit. Text that does not parse is discarded on
commit and the bound value stays as it was.

# Keyboard

	Escape           Restore the text the session started with
	Enter            End editing (single line), newline (TextArea)
	Ctrl+Enter       End editing in a TextArea
	Tab, Shift+Tab   Move focus between fields
	Ctrl+Left/Right  Move by word
	Ctrl+A           Select all
	Ctrl+C/X/V       Copy, cut, paste (not in password fields)
	Ctrl+Z, Ctrl+Y   Undo, redo

Double click selects a word (Unicode word boundaries), triple click the line.

# Dragging

Numeric fields take a drag zone next to the text box. Pressing in it and
moving more than the deadzone scrubs the value by
max(1, sqrt(|start|)) * DragSensitivity per pixel of vertical movement.
Escape during a drag restores the start value.
*/
package fieldedit
