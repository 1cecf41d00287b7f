package fieldedit

import "math"

// number is a value type numeric fields edit. Integers never pass through
// float64 except for drag offsets, so every int64 round-trips exactly.
type number interface {
	int64 | float64
}

// numberFieldState remembers the value a numeric session started from,
// so Escape can restore it exactly rather than re-parsing formatted text.
type numberFieldState[T number] struct {
	StartValue T
}

// FloatField edits a float with typing and drag-to-scrub. Typed text is
// applied on every keystroke that parses. Pressing inside dragZone and
// moving vertically scrubs the value; Escape during a drag restores it.
// Returns true if the value changed.
//
// Usage:
//
//	label := fieldedit.Rect{X: 0, Y: 0, W: 60, H: 18}
//	box := fieldedit.Rect{X: 60, Y: 0, W: 80, H: 18}
//	if ctx.FloatField(box, label, &speed, fieldedit.WithRange(0, 100)) {
//	    applySpeed(speed)
//	}
func (ctx *Context) FloatField(rect, dragZone Rect, value *float64, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID("FloatField", o)
	nv, changed := numberField(ctx, id, rect, dragZone, *value, o)
	if changed {
		*value = nv
		ctx.SetChanged()
	}
	return changed
}

// IntField is FloatField for integers. Drags round to the nearest integer.
func (ctx *Context) IntField(rect, dragZone Rect, value *int64, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.fieldID("IntField", o)
	nv, changed := numberField(ctx, id, rect, dragZone, *value, o)
	if changed {
		*value = nv
		ctx.SetChanged()
	}
	return changed
}

func numberField[T number](ctx *Context, id ID, rect, dragZone Rect, value T, o options) (T, bool) {
	rng := GetOpt(o, OptRange)
	start := value

	if !GetOpt(o, OptDisabled) && !dragZone.Empty() {
		value, _ = dragNumber(ctx, id, dragZone, value, rng)
	}

	res := ctx.doTextField(ctx.editor, id, rect, formatNumber(value, GetOpt(o, OptFormat)), false, false, o, charFilterOpt(o, numberFilter[T]()))
	if res.began {
		SetState(ctx, id, numberFieldState[T]{StartValue: value})
	}

	switch res.action {
	case KeyEdited:
		if v, ok := parseNumber[T](ctx, res.text); ok {
			value = clampNumber(v, rng)
		}
	case KeyCancelled:
		value = GetState(ctx, id, numberFieldState[T]{StartValue: value}).StartValue
	}
	return value, !sameNumber(value, start)
}

// numberFilter returns the default character filter for T.
func numberFilter[T number]() CharFilter {
	var zero T
	if _, ok := any(zero).(int64); ok {
		return AllowInt
	}
	return AllowFloat
}

// parseNumber parses typed text, logging and rejecting failures.
func parseNumber[T number](ctx *Context, text string) (T, bool) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *int64:
		*p, err = ctx.parseInt(text)
	case *float64:
		*p, err = ctx.parseFloat(text)
	}
	if err != nil {
		ctx.log.Debug("ignoring unparsable input", "text", text, "err", err)
		var zero T
		return zero, false
	}
	return v, true
}

func formatNumber[T number](v T, format string) string {
	switch x := any(v).(type) {
	case int64:
		return FormatInt(x, format)
	case float64:
		return FormatFloat(x, format)
	}
	return ""
}

// fromFloat converts f to T, rounding and saturating for integers.
func fromFloat[T number](f float64) T {
	var v T
	switch p := any(&v).(type) {
	case *int64:
		*p, _ = floatToInt64(math.Round(f))
	case *float64:
		*p = f
	}
	return v
}

// clampNumber limits v to rng. Integer bounds are the integers inside it.
func clampNumber[T number](v T, rng RangeValue) T {
	if !rng.HasRange {
		return v
	}
	lo, hi := rng.Min, rng.Max
	if _, ok := any(v).(int64); ok {
		lo, hi = math.Ceil(lo), math.Floor(hi)
	}
	switch f := float64(v); {
	case f < lo:
		return fromFloat[T](lo)
	case f > hi:
		return fromFloat[T](hi)
	}
	return v
}

// sameNumber is == with NaN equal to itself, so a NaN field does not report
// a change on every pass.
func sameNumber[T number](a, b T) bool {
	return a == b || (isNaN(a) && isNaN(b))
}

func isNaN[T number](v T) bool {
	f, ok := any(v).(float64)
	return ok && math.IsNaN(f)
}
