// Package capture invokes the external screenshot tool.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/oroddlokken/selca/internal/run"
)

// Tool is the screenshot command. flameshot in region-select mode prints the
// captured image to stdout when invoked with gui -r.
const Tool = "flameshot"

var toolArgs = []string{"gui", "-r"}

var ErrCaptureFailed = errors.New("screenshot capture failed")

// Region runs the screenshot tool interactively and returns the raw image
// bytes from its stdout. Blocks until the user finishes selecting a region.
func Region(ctx context.Context, r run.Runner) ([]byte, error) {
	data, err := r.Output(ctx, Tool, toolArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return data, nil
}
