package action

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable means no clipboard utility could be used on
// this system. Callers treat it as informational, not fatal.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// CopyText places text on the system clipboard.
func CopyText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}
