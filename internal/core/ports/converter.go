package ports

import "context"

// MediaConverter performs the ffmpeg-backed post-processing steps.
//
//go:generate mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks
type MediaConverter interface {
	// ExtractAudio writes the audio track of videoPath to audioPath.
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error

	// NormalizeTranscripts converts any VTT files under dir to SRT and
	// returns the paths of the files it created.
	NormalizeTranscripts(dir string) ([]string, error)
}
