// Package tool probes for the external tools downloads depend on and
// installs them when the environment allows it.
package tool

import (
	"context"
	"fmt"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.ToolManager. Probing and installing both go
// through the command runner so tests can observe every invocation.
type Manager struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewManager creates a Manager using runner for probes and installs.
func NewManager(runner ports.CommandRunner, logger ports.Logger) *Manager {
	return &Manager{runner: runner, logger: logger}
}

// Ensure returns nil when tool is available, installing it first if possible.
func (m *Manager) Ensure(ctx context.Context, tool ports.Tool) error {
	if m.probe(ctx, tool) {
		return nil
	}

	if m.logger != nil {
		m.logger.Info(fmt.Sprintf("%s not found, attempting installation", tool))
	}

	if err := m.install(ctx, tool); err != nil {
		return err
	}

	if !m.probe(ctx, tool) {
		return zerr.With(domain.ErrToolInstallFailed, "tool", string(tool))
	}
	return nil
}

// probe runs the tool's version command and reports a clean exit.
func (m *Manager) probe(ctx context.Context, tool ports.Tool) bool {
	var argv []string
	switch tool {
	case ports.ToolYtDlp:
		argv = []string{"yt-dlp", "--version"}
	case ports.ToolFFmpeg:
		argv = []string{"ffmpeg", "-version"}
	default:
		argv = []string{string(tool), "--version"}
	}

	res, err := m.runner.Run(ctx, argv, nil)
	return err == nil && res.Ok()
}

func (m *Manager) install(ctx context.Context, tool ports.Tool) error {
	switch tool {
	case ports.ToolYtDlp:
		return m.installYtDlp(ctx)
	case ports.ToolFFmpeg:
		return m.installFFmpeg(ctx)
	default:
		return zerr.With(domain.ErrToolMissing, "tool", string(tool))
	}
}

func (m *Manager) installYtDlp(ctx context.Context) error {
	res, err := m.runner.Run(ctx, []string{"pip", "install", "--upgrade", "yt-dlp"}, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrToolInstallFailed.Error())
	}
	if !res.Ok() {
		return zerr.With(domain.ErrToolInstallFailed,
			"tool", "yt-dlp",
			"exit_code", res.ExitCode,
		)
	}
	return nil
}

// installFFmpeg uses apt and therefore needs passwordless sudo. The sudo
// probe runs first so the install never hangs on a password prompt.
func (m *Manager) installFFmpeg(ctx context.Context) error {
	res, err := m.runner.Run(ctx, []string{"sudo", "-n", "true"}, nil)
	if err != nil || !res.Ok() {
		return zerr.With(domain.ErrToolInstallFailed,
			"tool", "ffmpeg",
			"reason", "sudo unavailable, install ffmpeg manually",
		)
	}

	res, err = m.runner.Run(ctx, []string{"sudo", "-n", "apt-get", "install", "-y", "ffmpeg"}, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrToolInstallFailed.Error())
	}
	if !res.Ok() {
		return zerr.With(domain.ErrToolInstallFailed,
			"tool", "ffmpeg",
			"exit_code", res.ExitCode,
		)
	}
	return nil
}
