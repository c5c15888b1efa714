// Package clipboard writes generated links to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard not supported")

type System struct{}

func NewSystem() *System {
	return &System{}
}

// WriteText copies text to the system clipboard. It gives up when ctx is done,
// though the underlying write may still complete.
func (s *System) WriteText(ctx context.Context, text string) error {
	const op = "adapter.clipboard.System.WriteText"

	if clipboard.Unsupported {
		return fmt.Errorf("%s: %w", op, ErrUnsupported)
	}

	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: failed to write clipboard: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}
