// Package publish uploads a saved screenshot to the configured remote host:
// ssh creates the remote directory, rsync transfers the file.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/oroddlokken/selca/internal/config"
	"github.com/oroddlokken/selca/internal/paths"
	"github.com/oroddlokken/selca/internal/run"
)

var (
	ErrMkdir    = errors.New("remote mkdir failed")
	ErrTransfer = errors.New("remote transfer failed")
)

// MkdirCmd builds the ssh invocation that creates dir on the remote host.
func MkdirCmd(s *config.SFTP, dir string) []string {
	return []string{
		"ssh",
		"-i", s.Key,
		"-p", strconv.Itoa(s.Port),
		fmt.Sprintf("%s@%s", s.User, s.Host),
		fmt.Sprintf("mkdir -p %s", dir),
	}
}

// RsyncCmd builds the rsync invocation that uploads localPath to target.
// The flags flatten the transfer to the explicit destination (no implied
// directory structure), fix the remote file mode to 775, and keep partial
// transfers resumable.
func RsyncCmd(localPath, target string) []string {
	return []string{
		"rsync",
		"-Pr",
		"--no-R", "--no-implied-dirs",
		"-p", "--chmod=F775",
		localPath, target,
	}
}

// Publisher runs the two-step upload.
type Publisher struct {
	Runner run.Runner
	Logger *slog.Logger
}

// Publish creates the remote directory and uploads the local file. Either
// step failing aborts the run; the already-written local file stays behind.
func (p *Publisher) Publish(ctx context.Context, s *config.SFTP, pp *paths.Paths) error {
	mkdir := MkdirCmd(s, pp.RemoteDir)
	p.Logger.Info("creating remote directory", "dir", pp.RemoteDir)
	if err := p.Runner.Run(ctx, mkdir[0], mkdir[1:]...); err != nil {
		return fmt.Errorf("%w: %v", ErrMkdir, err)
	}

	rsync := RsyncCmd(pp.LocalPath, pp.RemoteTarget)
	p.Logger.Info("uploading screenshot", "target", pp.RemoteTarget)
	if err := p.Runner.Run(ctx, rsync[0], rsync[1:]...); err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	return nil
}
