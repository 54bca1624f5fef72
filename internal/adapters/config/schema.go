package config

// File represents the structure of the zoomgrab.yaml configuration file.
// Every field is a pointer or zero-checked value so that only keys actually
// present in the file override the typed defaults.
type File struct {
	Downloads  *DownloadsDTO  `yaml:"downloads"`
	Video      *VideoDTO      `yaml:"video"`
	Transcript *TranscriptDTO `yaml:"transcript"`
	Retry      *RetryDTO      `yaml:"retry"`
	Logging    *LoggingDTO    `yaml:"logging"`
}

// DownloadsDTO configures artifact directories.
type DownloadsDTO struct {
	BaseDir       string `yaml:"base_dir"`
	VideoDir      string `yaml:"video_dir"`
	AudioDir      string `yaml:"audio_dir"`
	TranscriptDir string `yaml:"transcript_dir"`
}

// VideoDTO configures the video download and audio extraction.
type VideoDTO struct {
	Format       string `yaml:"format"`
	ConvertAudio *bool  `yaml:"convert_audio"`
	AudioFormat  string `yaml:"audio_format"`
	AudioQuality string `yaml:"audio_quality"`
}

// TranscriptDTO configures subtitle downloads.
type TranscriptDTO struct {
	Languages string   `yaml:"languages"`
	Formats   []string `yaml:"formats"`
}

// RetryDTO configures the backoff executor and the retry sweep.
type RetryDTO struct {
	MaxAttempts         int      `yaml:"max_attempts"`
	BaseIntervalSeconds *float64 `yaml:"base_interval_seconds"`
	RetryFailed         *bool    `yaml:"retry_failed"`
}

// LoggingDTO configures the log file and encoding.
type LoggingDTO struct {
	File string `yaml:"file"`
	JSON *bool  `yaml:"json"`
}
