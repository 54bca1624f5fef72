package domain

import (
	"path/filepath"
	"time"
)

// Config is the typed runtime configuration. Every field has an explicit
// default; the loader overrides fields one by one from the optional YAML
// file, so an unknown or missing key can never silently change the shape
// of the configuration.
type Config struct {
	Downloads  DownloadsConfig
	Video      VideoConfig
	Transcript TranscriptConfig
	Retry      RetryConfig
	Logging    LoggingConfig
}

// DownloadsConfig controls where artifacts are placed.
type DownloadsConfig struct {
	BaseDir       string
	VideoDir      string
	AudioDir      string
	TranscriptDir string
}

// VideoConfig controls the video download and the optional audio extraction.
type VideoConfig struct {
	Format       string
	ConvertAudio bool
	AudioFormat  string
	AudioQuality string
}

// TranscriptConfig controls subtitle downloads.
type TranscriptConfig struct {
	Languages string
	Formats   []string
}

// RetryConfig controls the backoff executor and the second-pass sweep.
type RetryConfig struct {
	MaxAttempts  int
	BaseInterval time.Duration
	RetryFailed  bool
}

// LoggingConfig controls the log file copy and output encoding.
type LoggingConfig struct {
	File string
	JSON bool
}

// DefaultConfig returns the configuration used when no zoomgrab.yaml exists.
func DefaultConfig() Config {
	return Config{
		Downloads: DownloadsConfig{
			BaseDir:       DownloadsDirName,
			VideoDir:      VideoDirName,
			AudioDir:      AudioDirName,
			TranscriptDir: TranscriptDirName,
		},
		Video: VideoConfig{
			Format:       "best[ext=mp4]/best",
			ConvertAudio: true,
			AudioFormat:  "mp3",
			AudioQuality: "0",
		},
		Transcript: TranscriptConfig{
			Languages: "all",
			Formats:   []string{"vtt", "srt"},
		},
		Retry: RetryConfig{
			MaxAttempts:  3,
			BaseInterval: 5 * time.Second,
			RetryFailed:  true,
		},
		Logging: LoggingConfig{
			File: DefaultLogPath(),
		},
	}
}

// BackoffPolicy derives the executor policy from the retry section.
func (c Config) BackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts:  c.Retry.MaxAttempts,
		BaseInterval: c.Retry.BaseInterval,
	}
}

// VideoPath returns the output path for a task's MP4 artifact.
func (c Config) VideoPath(name string) string {
	return filepath.Join(c.Downloads.BaseDir, c.Downloads.VideoDir, name+".mp4")
}

// AudioPath returns the output path for a task's audio artifact.
func (c Config) AudioPath(name string) string {
	return filepath.Join(c.Downloads.BaseDir, c.Downloads.AudioDir, name+"."+c.Video.AudioFormat)
}

// TranscriptBase returns the output template base for a task's transcripts.
func (c Config) TranscriptBase(name string) string {
	return filepath.Join(c.Downloads.BaseDir, c.Downloads.TranscriptDir, name)
}

// ArtifactDirs returns the download directories that must exist before a
// run, keyed by artifact kind.
func (c Config) ArtifactDirs() map[ArtifactKind]string {
	return map[ArtifactKind]string{
		ArtifactVideo:      filepath.Join(c.Downloads.BaseDir, c.Downloads.VideoDir),
		ArtifactAudio:      filepath.Join(c.Downloads.BaseDir, c.Downloads.AudioDir),
		ArtifactTranscript: filepath.Join(c.Downloads.BaseDir, c.Downloads.TranscriptDir),
	}
}

// LedgerPath returns the ledger location under the configured base dir.
func (c Config) LedgerPath() string {
	return filepath.Join(c.Downloads.BaseDir, LedgerFileName)
}
