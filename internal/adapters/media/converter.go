// Package media performs the ffmpeg-backed post-processing steps: audio
// extraction from downloaded videos and transcript format normalization.
package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentConversions bounds parallel transcript rewrites.
const maxConcurrentConversions = 4

var (
	// vttTimestamp matches hh:mm:ss.mmm cue times, which SRT writes with a
	// comma separator instead.
	vttTimestamp = regexp.MustCompile(`(\d{2}:\d{2}:\d{2})\.(\d{3})`)
	arrowSpacing = regexp.MustCompile(`-->\s*`)
)

// Converter implements ports.MediaConverter.
type Converter struct {
	runner       ports.CommandRunner
	logger       ports.Logger
	audioQuality string
}

// NewConverter creates a Converter. audioQuality is the ffmpeg -q:a value.
func NewConverter(runner ports.CommandRunner, logger ports.Logger, audioQuality string) *Converter {
	return &Converter{
		runner:       runner,
		logger:       logger,
		audioQuality: audioQuality,
	}
}

// ExtractAudio writes the audio track of videoPath to audioPath via ffmpeg.
func (c *Converter) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	argv := []string{
		"ffmpeg",
		"-i", videoPath,
		"-q:a", c.audioQuality,
		"-map", "a",
		"-y", audioPath,
	}

	res, err := c.runner.Run(ctx, argv, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConversionFailed.Error())
	}
	if !res.Ok() {
		return zerr.With(domain.ErrConversionFailed,
			"video", videoPath,
			"exit_code", res.ExitCode,
			"output", res.Output,
		)
	}

	if c.logger != nil {
		c.logger.Info(fmt.Sprintf("extracted audio: %s", audioPath))
	}
	return nil
}

// NormalizeTranscripts converts every .vtt file under dir to a sibling .srt
// file and returns the created paths. Conversions are independent and run
// concurrently. Files that fail to convert are skipped with a warning; the
// remaining files still convert.
func (c *Converter) NormalizeTranscripts(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return nil, zerr.Wrap(err, "bad transcript glob")
	}

	created := make([]string, len(matches))
	var g errgroup.Group
	g.SetLimit(maxConcurrentConversions)
	for i, vtt := range matches {
		g.Go(func() error {
			srt, err := c.convert(vtt)
			if err != nil {
				if c.logger != nil {
					c.logger.Warn(fmt.Sprintf("cannot convert %s: %v", vtt, err))
				}
				return nil
			}
			created[i] = srt
			return nil
		})
	}
	_ = g.Wait()

	return slices.DeleteFunc(created, func(s string) bool { return s == "" }), nil
}

func (c *Converter) convert(vttPath string) (string, error) {
	data, err := os.ReadFile(vttPath) //nolint:gosec // path comes from a directory glob
	if err != nil {
		return "", err
	}

	srtPath := strings.TrimSuffix(vttPath, ".vtt") + ".srt"
	if err := os.WriteFile(srtPath, []byte(VTTToSRT(string(data))), domain.FilePerm); err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.Info(fmt.Sprintf("converted: %s -> %s", vttPath, srtPath))
	}
	return srtPath, nil
}

// VTTToSRT rewrites WebVTT cue syntax as SubRip: the header goes away, cue
// times switch to comma-separated milliseconds and arrow spacing is
// normalized. Cue numbering is preserved as-is.
func VTTToSRT(content string) string {
	content = strings.ReplaceAll(content, "WEBVTT", "")
	content = vttTimestamp.ReplaceAllString(content, "$1,$2")
	content = arrowSpacing.ReplaceAllString(content, " --> ")
	return strings.TrimLeft(content, "\n")
}
