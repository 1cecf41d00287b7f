// Example opens a GLFW window and edits a few fields with the keyboard and
// mouse, logging every committed value. Nothing is drawn; set -v to watch
// the editing sessions in the log.
//
//	go run ./example/ -v
//
// Layout (window coordinates):
//
//	name     text field        y 10..28
//	speed    float field       y 40..58, drag the label at x 10..70
//	count    delayed int field y 70..88, drag the label at x 10..70
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fieldedit"
	"github.com/go-theft-auto/fieldedit/backend/glfwinput"
)

const (
	windowWidth  = 400
	windowHeight = 120
	windowTitle  = "fieldedit example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log editing sessions")
	flag.Parse()
	fieldedit.SetVerbose(*verbose)

	if err := run(*verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logRenderer prints the field visuals of each repaint.
type logRenderer struct {
	log *slog.Logger
}

func (r logRenderer) Render(dl *fieldedit.DisplayList) error {
	for _, f := range dl.Fields {
		if f.State == fieldedit.FieldEditing {
			r.log.Debug("field", "id", f.ID, "text", f.Text, "cursor", f.Cursor)
		}
	}
	return nil
}

func run(verbose bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ui := fieldedit.New(
		fieldedit.WithLogger(logger),
		fieldedit.WithClipboard(fieldedit.SystemClipboard{}),
		fieldedit.WithRenderer(logRenderer{log: logger}),
	)
	input := glfwinput.New(window)

	// Application state.
	name := "player"
	speed := 12.5
	count := int64(3)

	draw := func(ctx *fieldedit.Context) {
		if ctx.TextField(fieldedit.Rect{X: 80, Y: 10, W: 300, H: 18}, &name, fieldedit.WithMaxLength(32)) {
			logger.Info("name", "value", name)
		}
		ctx.BeginChangeCheck()
		ctx.FloatField(
			fieldedit.Rect{X: 80, Y: 40, W: 120, H: 18},
			fieldedit.Rect{X: 10, Y: 40, W: 60, H: 18},
			&speed, fieldedit.WithRange(0, 1000))
		if ctx.EndChangeCheck() {
			logger.Info("speed", "value", speed)
		}
		if ctx.DelayedIntField(
			fieldedit.Rect{X: 80, Y: 70, W: 120, H: 18},
			fieldedit.Rect{X: 10, Y: 70, W: 60, H: 18},
			&count) {
			logger.Info("count", "value", count)
		}
	}

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)
		for _, ev := range input.Drain() {
			ui.Post(ev)
		}
		if err := ui.Pump(draw); err != nil {
			return err
		}
	}

	// Closing the window commits whatever the delayed field holds.
	ui.Post(fieldedit.Event{Type: fieldedit.EventFocusLost})
	return ui.Pump(draw)
}

