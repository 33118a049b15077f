// Package app sequences one screenshot run: capture, derive paths, write
// locally, optionally publish remotely, then the desktop integrations.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/oroddlokken/selca/internal/capture"
	"github.com/oroddlokken/selca/internal/config"
	"github.com/oroddlokken/selca/internal/desktop"
	"github.com/oroddlokken/selca/internal/paths"
	"github.com/oroddlokken/selca/internal/publish"
	"github.com/oroddlokken/selca/internal/run"
	"github.com/oroddlokken/selca/internal/storage"
)

// App carries everything a run needs. It is built once in cmd and threaded
// through explicitly; there is no package-level state.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Runner run.Runner
	Fs     afero.Fs
	Now    func() time.Time
}

// New builds an App with the real clock.
func New(cfg *config.Config, logger *slog.Logger, runner run.Runner, fs afero.Fs) *App {
	return &App{
		Config: cfg,
		Logger: logger,
		Runner: runner,
		Fs:     fs,
		Now:    time.Now,
	}
}

// Run performs a single capture-and-publish cycle. The first failing step
// aborts the whole run; there is no retry and no rollback of earlier steps.
func (a *App) Run(ctx context.Context) error {
	cfg := a.Config

	// The timestamp is fixed before the interactive capture starts, so all
	// derived paths refer to the instant the run began.
	ts := a.Now()
	a.Logger.Info("starting run", "timestamp", ts.Format(time.DateTime))

	a.Logger.Info("taking screenshot", "tool", capture.Tool)
	data, err := capture.Region(ctx, a.Runner)
	if err != nil {
		return err
	}
	a.Logger.Info("capture finished", "bytes", len(data))

	p, err := paths.Derive(cfg, ts)
	if err != nil {
		return err
	}

	a.Logger.Info("saving screenshot", "path", p.LocalPath)
	if err := storage.Write(a.Fs, p.LocalPath, data); err != nil {
		return err
	}

	// Defaults for the local-only case; remote publishing rewrites them.
	notifyTitle := p.Basename()
	notifyBody := p.LocalPath
	openTarget := p.LocalPath

	if cfg.SFTPEnabled() {
		a.Logger.Info("remote publishing is enabled")

		pub := &publish.Publisher{Runner: a.Runner, Logger: a.Logger}
		if err := pub.Publish(ctx, cfg.SFTP, p); err != nil {
			return err
		}

		if cfg.SFTP.Clipboard && p.RemoteURL != "" {
			a.Logger.Info("copying URL to clipboard", "url", p.RemoteURL)
			if err := desktop.SetClipboard(ctx, a.Runner, p.RemoteURL); err != nil {
				return err
			}
		}

		if p.RemoteURL != "" {
			notifyBody = p.RemoteURL
			openTarget = p.RemoteURL
		} else {
			// Uploaded but not web-reachable: notify with the remote path,
			// and there is nothing sensible to open.
			notifyBody = p.RemotePath
			openTarget = ""
		}
	} else {
		a.Logger.Info("remote publishing is not configured")
	}

	if cfg.Notify {
		a.Logger.Info("sending notification", "title", notifyTitle, "body", notifyBody)
		if err := desktop.Notify(ctx, a.Runner, notifyTitle, notifyBody); err != nil {
			return err
		}
	}

	if cfg.Open && openTarget != "" {
		a.Logger.Info("opening result", "target", openTarget)
		if err := desktop.Open(ctx, a.Runner, openTarget); err != nil {
			return err
		}
	}

	return nil
}
