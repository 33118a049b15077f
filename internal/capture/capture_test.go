package capture

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output for Output and records what was invoked.
type fakeRunner struct {
	output []byte
	err    error

	name string
	args []string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.output, f.err
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	return fmt.Errorf("unexpected Run call: %s", name)
}

func TestRegion(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	r := &fakeRunner{output: png}

	data, err := Region(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, png, data)
	assert.Equal(t, "flameshot", r.name)
	assert.Equal(t, []string{"gui", "-r"}, r.args)
}

func TestRegion_Failure(t *testing.T) {
	r := &fakeRunner{err: fmt.Errorf("exit status 1")}

	_, err := Region(context.Background(), r)
	assert.ErrorIs(t, err, ErrCaptureFailed)
}
