// Package config provides the configuration loader for zoomgrab.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. When path is empty, the file is
// discovered by walking up from the working directory; a missing file yields
// the defaults. Overrides are applied field by field onto the typed default
// value, never as an untyped map merge.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		found, err := l.discover()
		if err != nil || found == "" {
			return cfg, err
		}
		path = found
	}

	data, err := os.ReadFile(path) //nolint:gosec // user provided config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, zerr.With(domain.ErrConfigReadFailed, "file", path)
		}
		return cfg, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()),
			"file", path,
		)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()),
			"file", path,
		)
	}

	apply(&cfg, &file)
	return cfg, nil
}

// discover walks up from the working directory looking for zoomgrab.yaml.
func (l *Loader) discover() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}

	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// apply copies the file's present fields onto the defaults.
func apply(cfg *domain.Config, file *File) {
	if d := file.Downloads; d != nil {
		if d.BaseDir != "" {
			cfg.Downloads.BaseDir = d.BaseDir
		}
		if d.VideoDir != "" {
			cfg.Downloads.VideoDir = d.VideoDir
		}
		if d.AudioDir != "" {
			cfg.Downloads.AudioDir = d.AudioDir
		}
		if d.TranscriptDir != "" {
			cfg.Downloads.TranscriptDir = d.TranscriptDir
		}
	}

	if v := file.Video; v != nil {
		if v.Format != "" {
			cfg.Video.Format = v.Format
		}
		if v.ConvertAudio != nil {
			cfg.Video.ConvertAudio = *v.ConvertAudio
		}
		if v.AudioFormat != "" {
			cfg.Video.AudioFormat = v.AudioFormat
		}
		if v.AudioQuality != "" {
			cfg.Video.AudioQuality = v.AudioQuality
		}
	}

	if tr := file.Transcript; tr != nil {
		if tr.Languages != "" {
			cfg.Transcript.Languages = tr.Languages
		}
		if len(tr.Formats) > 0 {
			cfg.Transcript.Formats = tr.Formats
		}
	}

	if r := file.Retry; r != nil {
		if r.MaxAttempts > 0 {
			cfg.Retry.MaxAttempts = r.MaxAttempts
		}
		if r.BaseIntervalSeconds != nil && *r.BaseIntervalSeconds > 0 {
			cfg.Retry.BaseInterval = time.Duration(*r.BaseIntervalSeconds * float64(time.Second))
		}
		if r.RetryFailed != nil {
			cfg.Retry.RetryFailed = *r.RetryFailed
		}
	}

	if lg := file.Logging; lg != nil {
		if lg.File != "" {
			cfg.Logging.File = lg.File
		}
		if lg.JSON != nil {
			cfg.Logging.JSON = *lg.JSON
		}
	}
}
