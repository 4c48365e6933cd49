// Package clipboard writes text to the host clipboard on a best-effort basis.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable wraps every failure to reach the host clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the host clipboard writer.
func NewSystem() System {
	return System{}
}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteText implements Writer.
func (f WriterFunc) WriteText(text string) error {
	return f(text)
}
