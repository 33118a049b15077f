// Package desktop covers the best-effort integrations after a capture:
// notification, clipboard, and opening the result.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/oroddlokken/selca/internal/run"
)

var (
	ErrNotify    = errors.New("desktop notification failed")
	ErrClipboard = errors.New("set clipboard failed")
	ErrOpen      = errors.New("open failed")
)

// lookPath is a var so tests can force the qdbus/fallback branch.
var lookPath = exec.LookPath

// Notify sends a desktop notification with title (the screenshot basename)
// and body (URL or path).
func Notify(ctx context.Context, r run.Runner, title, body string) error {
	if err := r.Run(ctx, "notify-send", title, body); err != nil {
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}
	return nil
}

// SetClipboard places text on the clipboard, through klipper when qdbus is
// available (KDE, as the tool was written for) and through the generic
// clipboard layer otherwise. Declared as a var so orchestration tests can
// stub it out without a display server.
var SetClipboard = func(ctx context.Context, r run.Runner, text string) error {
	if _, err := lookPath("qdbus"); err != nil {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("%w: %v", ErrClipboard, err)
		}
		return nil
	}

	err := r.Run(ctx, "qdbus",
		"org.kde.klipper", "/klipper", "setClipboardContents", text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// Open hands target (a URL or local path) to the default handler.
func Open(ctx context.Context, r run.Runner, target string) error {
	if err := r.Run(ctx, "xdg-open", target); err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return nil
}
