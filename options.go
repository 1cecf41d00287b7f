package fieldedit

// Option configures a field widget.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Packages wrapping fields declare their own keys and read them back with
// ApplyAndGet:
//
//	var OptUnit = fieldedit.NewOptKey("unit", "")
//
//	func LengthField(ctx *fieldedit.Context, r fieldedit.Rect, v *float64, opts ...fieldedit.Option) bool {
//	    unit := fieldedit.ApplyAndGet(opts, OptUnit)
//	    return ctx.FloatField(r, labelRect(r, unit), v, opts...)
//	}
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom fields.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// RangeValue holds the min/max clamp for numeric fields.
type RangeValue struct {
	Min, Max float64
	HasRange bool
}

// Built-in option keys.
var (
	OptID         = NewOptKey("id", "")
	OptDisabled   = NewOptKey("disabled", false)
	OptFormat     = NewOptKey("format", "")
	OptRange      = NewOptKey("range", RangeValue{})
	OptCharFilter = NewOptKey[*CharFilter]("charFilter", nil)
	OptMaxLength  = NewOptKey("maxLength", 0)
	OptFocusType  = NewOptKey("focusType", FocusKeyboard)
)

// WithID seeds the control ID with an explicit string instead of the widget name.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables input handling; the field still displays.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithFormat sets a fmt verb for displaying numeric values (e.g. "%.2f").
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithRange clamps numeric values to [minVal, maxVal].
func WithRange(minVal, maxVal float64) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithCharFilter overrides the allow-list of typed characters.
func WithCharFilter(f CharFilter) Option { return WithOpt(OptCharFilter, &f) }

// WithMaxLength limits the text length in runes. Zero means unlimited.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithFocusType overrides the keyboard-focus policy of the field.
func WithFocusType(ft FocusType) Option { return WithOpt(OptFocusType, ft) }
