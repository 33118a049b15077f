// Package run wraps external command execution so call sites depend on a
// small interface instead of os/exec directly.
package run

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Runner executes external commands. Output captures stdout (screenshot
// bytes); Run is for commands whose output is only interesting to the user.
// Both block until the command exits and report non-zero exits as errors.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, name string, args ...string) error
}

// Exec is the real Runner. External tool stderr passes straight through to
// the terminal so ssh/rsync/flameshot diagnostics stay visible.
type Exec struct {
	Logger *slog.Logger
}

func (e *Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	e.Logger.Debug("running command", "cmd", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	e.Logger.Debug("running command", "cmd", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
