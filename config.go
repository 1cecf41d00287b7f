package fieldedit

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package loggers.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for field editing.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// defaultLogger is used by contexts created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Config holds the tunables of the editing core.
type Config struct {
	// DragDeadzone is the squared pointer distance a press must exceed
	// before it becomes a scrub drag.
	DragDeadzone float32

	// DragSensitivity is the k in max(1, sqrt(|v|)) * k.
	DragSensitivity float64

	// MaxUndo bounds the per-control undo history.
	MaxUndo int

	// StateCapacity bounds the number of controls with persisted state.
	StateCapacity int

	// MaskRune replaces characters of password fields.
	MaskRune rune

	// CharWidth and LineHeight are the monospace metrics used to map
	// pointer positions to cursor positions.
	CharWidth  float32
	LineHeight float32

	// Padding is the inset of text inside a field rect.
	Padding float32
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		DragDeadzone:    16,
		DragSensitivity: 0.03,
		MaxUndo:         50,
		StateCapacity:   256,
		MaskRune:        '*',
		CharWidth:       7,
		LineHeight:      14,
		Padding:         2,
	}
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) GUIOption {
	return func(g *GUI) { g.ctx.cfg = cfg }
}

// WithLogger sets the logger used by the context.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.ctx.log = l }
}

// WithClipboard sets the clipboard used by copy, cut and paste.
func WithClipboard(cp ClipboardProvider) GUIOption {
	return func(g *GUI) { g.ctx.clipboard = cp }
}

// WithEvaluator sets the fallback used when a numeric field's text does not
// parse as a plain number.
func WithEvaluator(ev Evaluator) GUIOption {
	return func(g *GUI) { g.ctx.evaluator = ev }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.ctx.state = store }
}

// WithRenderer sets the renderer that receives the display list on repaint.
func WithRenderer(r Renderer) GUIOption {
	return func(g *GUI) { g.renderer = r }
}
