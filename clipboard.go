package fieldedit

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is returned when no system clipboard utility is available.
var ErrNoClipboard = errors.New("clipboard unavailable")

// ClipboardProvider abstracts clipboard access for copy, cut and paste.
type ClipboardProvider interface {
	// ReadText retrieves text from the clipboard.
	ReadText() (string, error)

	// WriteText copies text to the clipboard.
	WriteText(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// ReadText implements ClipboardProvider.
func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrNoClipboard
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

// WriteText implements ClipboardProvider.
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// MemoryClipboard keeps clipboard text in process. It is the default, so
// headless sessions never touch the system clipboard.
type MemoryClipboard struct {
	text string
}

// ReadText implements ClipboardProvider.
func (m *MemoryClipboard) ReadText() (string, error) {
	return m.text, nil
}

// WriteText implements ClipboardProvider.
func (m *MemoryClipboard) WriteText(text string) error {
	m.text = text
	return nil
}
