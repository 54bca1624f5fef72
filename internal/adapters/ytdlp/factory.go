// Package ytdlp builds and runs the yt-dlp invocations behind each task.
package ytdlp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.ActionFactory. Each produced action wraps one
// yt-dlp command line plus, for combined downloads, the ffmpeg post-steps.
type Factory struct {
	runner    ports.CommandRunner
	converter ports.MediaConverter
	logger    ports.Logger
	cfg       domain.Config
	// out receives the live tool output; nil keeps it off the terminal.
	out io.Writer
}

// NewFactory creates a Factory bound to the given configuration.
func NewFactory(
	runner ports.CommandRunner,
	converter ports.MediaConverter,
	logger ports.Logger,
	cfg domain.Config,
	out io.Writer,
) *Factory {
	return &Factory{
		runner:    runner,
		converter: converter,
		logger:    logger,
		cfg:       cfg,
		out:       out,
	}
}

// NewAction builds the action for task according to kind.
func (f *Factory) NewAction(task domain.Task, kind domain.DownloadKind) (ports.Action, error) {
	switch kind {
	case domain.KindVideo:
		return &action{
			factory: f,
			argv:    f.videoArgs(task),
			artifacts: map[domain.ArtifactKind]string{
				domain.ArtifactVideo: f.cfg.VideoPath(task.Name),
			},
		}, nil

	case domain.KindAudio:
		return &action{
			factory: f,
			argv:    f.audioArgs(task),
			artifacts: map[domain.ArtifactKind]string{
				domain.ArtifactAudio: f.cfg.AudioPath(task.Name),
			},
		}, nil

	case domain.KindTranscript:
		base := f.cfg.TranscriptBase(task.Name)
		return &action{
			factory: f,
			argv:    f.transcriptArgs(task),
			subsDir: f.normalizeDir(filepath.Dir(base)),
			artifacts: map[domain.ArtifactKind]string{
				domain.ArtifactTranscript: base,
			},
		}, nil

	case domain.KindAll:
		// Subtitles land next to the video output, so that is where the
		// normalization pass looks.
		video := f.cfg.VideoPath(task.Name)
		return &action{
			factory:      f,
			argv:         f.allArgs(task),
			extractAudio: f.cfg.Video.ConvertAudio,
			subsDir:      f.normalizeDir(filepath.Dir(video)),
			artifacts: map[domain.ArtifactKind]string{
				domain.ArtifactVideo:      video,
				domain.ArtifactAudio:      f.cfg.AudioPath(task.Name),
				domain.ArtifactTranscript: filepath.Join(filepath.Dir(video), task.Name),
			},
		}, nil
	}

	return nil, zerr.With(domain.ErrInvalidKind, "kind", string(kind))
}

// normalizeDir returns dir when the configured output formats ask for SRT,
// empty otherwise, which disables the conversion pass.
func (f *Factory) normalizeDir(dir string) string {
	for _, format := range f.cfg.Transcript.Formats {
		if format == "srt" {
			return dir
		}
	}
	return ""
}

func (f *Factory) videoArgs(task domain.Task) []string {
	return []string{
		"yt-dlp",
		"--no-warnings",
		"--format", f.cfg.Video.Format,
		"--output", f.cfg.VideoPath(task.Name),
		task.Source,
	}
}

func (f *Factory) audioArgs(task domain.Task) []string {
	// The audio path hands yt-dlp an extension template so the post-extract
	// container decides the final suffix.
	template := filepath.Join(
		f.cfg.Downloads.BaseDir, f.cfg.Downloads.AudioDir, task.Name+".%(ext)s")

	return []string{
		"yt-dlp",
		"--no-warnings",
		"--extract-audio",
		"--audio-format", f.cfg.Video.AudioFormat,
		"--audio-quality", f.cfg.Video.AudioQuality,
		"--output", template,
		task.Source,
	}
}

func (f *Factory) transcriptArgs(task domain.Task) []string {
	return []string{
		"yt-dlp",
		"--no-warnings",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", f.cfg.Transcript.Languages,
		"--skip-download",
		"--output", f.cfg.TranscriptBase(task.Name),
		task.Source,
	}
}

func (f *Factory) allArgs(task domain.Task) []string {
	return []string{
		"yt-dlp",
		"--no-warnings",
		"--format", f.cfg.Video.Format,
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", f.cfg.Transcript.Languages,
		"--output", f.cfg.VideoPath(task.Name),
		task.Source,
	}
}

// action runs one yt-dlp command and the configured post-processing.
type action struct {
	factory      *Factory
	argv         []string
	artifacts    map[domain.ArtifactKind]string
	extractAudio bool
	// subsDir is where subtitle files land; empty disables normalization.
	subsDir string
}

// Run performs the download and, on a clean exit, the post-steps. Post-step
// failures degrade to warnings: the primary artifact already exists and a
// re-run would download it again.
func (a *action) Run(ctx context.Context) (*domain.ActionResult, error) {
	res, err := a.factory.runner.Run(ctx, a.argv, a.factory.out)
	if err != nil {
		return nil, err
	}
	if !res.Ok() {
		return res, nil
	}

	if a.extractAudio {
		a.runExtract(ctx)
	}
	if a.subsDir != "" {
		a.normalize()
	}

	return res, nil
}

// Artifacts declares the expected output paths.
func (a *action) Artifacts() map[domain.ArtifactKind]string {
	return a.artifacts
}

func (a *action) runExtract(ctx context.Context) {
	video := a.artifacts[domain.ArtifactVideo]
	audio := a.artifacts[domain.ArtifactAudio]
	if video == "" || audio == "" {
		return
	}

	if _, err := os.Stat(video); err != nil {
		return
	}

	if err := a.factory.converter.ExtractAudio(ctx, video, audio); err != nil {
		a.warn(fmt.Sprintf("audio extraction failed: %v", err))
	}
}

func (a *action) normalize() {
	if _, err := a.factory.converter.NormalizeTranscripts(a.subsDir); err != nil {
		a.warn(fmt.Sprintf("transcript normalization failed: %v", err))
	}
}

func (a *action) warn(msg string) {
	if a.factory.logger != nil {
		a.factory.logger.Warn(msg)
	}
}
