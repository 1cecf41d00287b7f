package fieldedit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrParse is wrapped by every numeric parse failure.
var ErrParse = errors.New("parse number")

// CharFilter is an allow-list of characters a field accepts while typing.
// The empty filter accepts any printable character.
type CharFilter string

// Character sets of numeric fields. Besides digits, sign and separators they
// admit arithmetic symbols so an Evaluator can handle typed expressions, and
// the letters of "inf", "infinity" and "nan".
const (
	AllowAny   CharFilter = ""
	AllowInt   CharFilter = "0123456789-*/+%^()"
	AllowFloat CharFilter = "inftynaeINFTYNAE0123456789.,-*/+%^()"
)

// Allows reports whether r may be typed into a field using this filter.
func (f CharFilter) Allows(r rune) bool {
	if r == '\n' || !unicode.IsPrint(r) {
		return false
	}
	if f == AllowAny {
		return true
	}
	return strings.ContainsRune(string(f), r)
}

// Evaluator computes the value of a typed expression such as "2*8".
// No grammar ships with this package; applications plug their own.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(expr string) (float64, error)

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(expr string) (float64, error) { return f(expr) }

// ParseFloat parses a float field's text. A comma is accepted as the
// decimal separator, as are inf, -inf and nan.
func ParseFloat(s string) (float64, error) {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, ",", ".")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}

// ParseInt parses an int field's text.
func ParseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}

// FormatFloat renders v for display. An empty format uses the shortest
// representation with up to 7 significant digits.
func FormatFloat(v float64, format string) string {
	if format != "" {
		return fmt.Sprintf(format, v)
	}
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 7, 64)
}

// FormatInt renders v for display.
func FormatInt(v int64, format string) string {
	if format != "" {
		return fmt.Sprintf(format, v)
	}
	return strconv.FormatInt(v, 10)
}

// parseFloat tries a plain parse, then the configured evaluator.
func (ctx *Context) parseFloat(s string) (float64, error) {
	v, err := ParseFloat(s)
	if err == nil || ctx.evaluator == nil {
		return v, err
	}
	v, evalErr := ctx.evaluator.Evaluate(strings.TrimSpace(s))
	if evalErr != nil {
		return 0, fmt.Errorf("%w: %w", err, evalErr)
	}
	return v, nil
}

// parseInt tries a plain parse, then the configured evaluator rounded to
// the nearest integer.
func (ctx *Context) parseInt(s string) (int64, error) {
	v, err := ParseInt(s)
	if err == nil || ctx.evaluator == nil {
		return v, err
	}
	f, evalErr := ctx.evaluator.Evaluate(strings.TrimSpace(s))
	if evalErr != nil {
		return 0, fmt.Errorf("%w: %w", err, evalErr)
	}
	n, ok := floatToInt64(math.Round(f))
	if !ok {
		return 0, fmt.Errorf("%w: %q evaluates to %v, outside the int64 range", ErrParse, s, f)
	}
	return n, nil
}

// floatToInt64 converts an integral f, saturating at the int64 limits.
// ok is false when f was NaN or out of range.
func floatToInt64(f float64) (n int64, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= 1<<63:
		return math.MaxInt64, false
	case f < -(1 << 63):
		return math.MinInt64, false
	}
	return int64(f), true
}
