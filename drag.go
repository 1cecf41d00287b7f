package fieldedit

import "math"

// DragState is the phase of a scrub drag.
type DragState uint8

const (
	DragIdle      DragState = iota
	DragCandidate           // Pressed, not yet past the deadzone
	DragDragging            // Past the deadzone, value follows the pointer
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragCandidate:
		return "candidate"
	case DragDragging:
		return "dragging"
	}
	return "?"
}

// DragSession tracks the scrub drag of a numeric field.
// A Context holds one, mirroring the single pointer.
type DragSession struct {
	Owner      ID
	State      DragState
	StartValue float64
	StartPos   Vec2

	startInt int64 // Exact start of an integer field
}

// reset returns the session to idle.
func (d *DragSession) reset() {
	*d = DragSession{}
}

// DragSensitivity returns the value change per pixel for a drag that
// started at value. Large magnitudes move faster.
func DragSensitivity(value, k float64) float64 {
	return math.Max(1, math.Sqrt(math.Abs(value))) * k
}

// DragValue returns the value of a drag after the pointer moved from start
// to cur. Moving up increases the value.
func DragValue(startValue float64, start, cur Vec2, k float64) float64 {
	return startValue + float64(start.Y-cur.Y)*DragSensitivity(startValue, k)
}

// restartDrag makes v at pos the origin of the drag.
func restartDrag[T number](d *DragSession, v T, pos Vec2) {
	d.StartValue = float64(v)
	d.StartPos = pos
	if n, ok := any(v).(int64); ok {
		d.startInt = n
	}
}

func dragStart[T number](d *DragSession) T {
	var v T
	switch p := any(&v).(type) {
	case *int64:
		*p = d.startInt
	case *float64:
		*p = d.StartValue
	}
	return v
}

// dragTarget returns the value under the pointer at cur. Integer fields
// add the rounded offset to their exact start value.
func dragTarget[T number](d *DragSession, cur Vec2, k float64) T {
	var v T
	switch p := any(&v).(type) {
	case *int64:
		offset := float64(d.StartPos.Y-cur.Y) * DragSensitivity(d.StartValue, k)
		*p = addRounded(d.startInt, offset)
	case *float64:
		*p = DragValue(d.StartValue, d.StartPos, cur, k)
	}
	return v
}

// addRounded returns n plus the rounded offset, saturating at the int64
// limits.
func addRounded(n int64, offset float64) int64 {
	delta, _ := floatToInt64(math.Round(offset))
	sum := n + delta
	switch {
	case delta > 0 && sum < n:
		return math.MaxInt64
	case delta < 0 && sum > n:
		return math.MinInt64
	}
	return sum
}

// dragNumber runs the scrub handler of control id over hot zone zone.
// It returns the new value and whether it differs from value.
func dragNumber[T number](ctx *Context, id ID, zone Rect, value T, rng RangeValue) (T, bool) {
	ev := ctx.Event
	if ev == nil {
		return value, false
	}
	d := &ctx.drag

	switch ev.Type {
	case EventMouseDown:
		if ev.Button != MouseButtonLeft || !zone.Contains(ev.Pos) || ctx.hotControl != 0 {
			return value, false
		}
		*d = DragSession{Owner: id, State: DragCandidate}
		restartDrag(d, value, ev.Pos)
		ctx.SetHotControl(id)
		ev.Use()
		ctx.log.Debug("drag candidate", "id", id, "value", value)

	case EventMouseDrag, EventMouseMove:
		if ctx.hotControl != id || d.Owner != id {
			return value, false
		}
		if d.State == DragCandidate {
			if ev.Pos.Sub(d.StartPos).LenSq() <= ctx.cfg.DragDeadzone {
				ev.Use()
				return value, false
			}
			d.State = DragDragging
			ctx.SetKeyboardControl(id)
			if ctx.activeEditor != nil {
				ctx.activeEditor.detach()
			}
			ctx.log.Debug("drag started", "id", id, "start", d.StartValue)
		}
		ev.Use()

		nv := clampNumber(dragTarget[T](d, ev.Pos, ctx.cfg.DragSensitivity), rng)
		if !sameNumber(nv, value) {
			return nv, true
		}

	case EventMouseUp:
		if ctx.hotControl != id || d.Owner != id {
			return value, false
		}
		ctx.SetHotControl(0)
		ctx.log.Debug("drag ended", "id", id, "state", d.State, "value", value)
		d.reset()
		ev.Use()

	case EventKeyDown:
		if ev.Key != KeyEscape || d.Owner != id || d.State != DragDragging {
			return value, false
		}
		start := dragStart[T](d)
		ctx.SetHotControl(0)
		d.reset()
		ev.Use()
		ctx.log.Debug("drag cancelled", "id", id, "restored", start)
		if !sameNumber(start, value) {
			return start, true
		}
	}
	return value, false
}
