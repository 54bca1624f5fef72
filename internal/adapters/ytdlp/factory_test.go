package ytdlp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/ytdlp"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(base string) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Downloads.BaseDir = base
	return cfg
}

func task() domain.Task {
	return domain.Task{Name: "lecture", Source: "https://zoom.us/rec/play/abc"}
}

func TestFactory_VideoArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	cfg := testConfig("dl")

	f := ytdlp.NewFactory(runner, nil, nil, cfg, nil)
	a, err := f.NewAction(task(), domain.KindVideo)
	require.NoError(t, err)

	want := []string{
		"yt-dlp",
		"--no-warnings",
		"--format", "best[ext=mp4]/best",
		"--output", filepath.Join("dl", "MP4", "lecture.mp4"),
		"https://zoom.us/rec/play/abc",
	}
	runner.EXPECT().
		Run(gomock.Any(), want, gomock.Nil()).
		Return(&domain.ActionResult{ExitCode: 0}, nil)

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Ok())

	assert.Equal(t, map[domain.ArtifactKind]string{
		domain.ArtifactVideo: filepath.Join("dl", "MP4", "lecture.mp4"),
	}, a.Artifacts())
}

func TestFactory_AudioArgsUseExtensionTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	cfg := testConfig("dl")

	f := ytdlp.NewFactory(runner, nil, nil, cfg, nil)
	a, err := f.NewAction(task(), domain.KindAudio)
	require.NoError(t, err)

	want := []string{
		"yt-dlp",
		"--no-warnings",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--output", filepath.Join("dl", "MP3", "lecture.%(ext)s"),
		"https://zoom.us/rec/play/abc",
	}
	runner.EXPECT().
		Run(gomock.Any(), want, gomock.Nil()).
		Return(&domain.ActionResult{ExitCode: 0}, nil)

	_, err = a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("dl", "MP3", "lecture.mp3"),
		a.Artifacts()[domain.ArtifactAudio])
}

func TestFactory_TranscriptArgsAndNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	converter := mocks.NewMockMediaConverter(ctrl)
	cfg := testConfig("dl")

	f := ytdlp.NewFactory(runner, converter, nil, cfg, nil)
	a, err := f.NewAction(task(), domain.KindTranscript)
	require.NoError(t, err)

	want := []string{
		"yt-dlp",
		"--no-warnings",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", "all",
		"--skip-download",
		"--output", filepath.Join("dl", "SRT", "lecture"),
		"https://zoom.us/rec/play/abc",
	}
	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), want, gomock.Nil()).
			Return(&domain.ActionResult{ExitCode: 0}, nil),
		converter.EXPECT().
			NormalizeTranscripts(filepath.Join("dl", "SRT")).
			Return([]string{filepath.Join("dl", "SRT", "lecture.srt")}, nil),
	)

	_, err = a.Run(context.Background())
	require.NoError(t, err)
}

func TestFactory_AllRunsPostSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	converter := mocks.NewMockMediaConverter(ctrl)

	base := t.TempDir()
	cfg := testConfig(base)

	// The extraction post-step only fires when the video file exists.
	videoDir := filepath.Join(base, "MP4")
	require.NoError(t, os.MkdirAll(videoDir, 0o750))
	videoPath := filepath.Join(videoDir, "lecture.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("video"), 0o644))

	f := ytdlp.NewFactory(runner, converter, nil, cfg, nil)
	a, err := f.NewAction(task(), domain.KindAll)
	require.NoError(t, err)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(&domain.ActionResult{ExitCode: 0}, nil)
	converter.EXPECT().
		ExtractAudio(gomock.Any(), videoPath, filepath.Join(base, "MP3", "lecture.mp3")).
		Return(nil)
	converter.EXPECT().
		NormalizeTranscripts(videoDir).
		Return(nil, nil)

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Ok())
}

func TestFactory_NonZeroExitSkipsPostSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	converter := mocks.NewMockMediaConverter(ctrl)
	cfg := testConfig("dl")

	f := ytdlp.NewFactory(runner, converter, nil, cfg, nil)
	a, err := f.NewAction(task(), domain.KindAll)
	require.NoError(t, err)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(&domain.ActionResult{ExitCode: 1, Output: "HTTP 403"}, nil)

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Ok())
	assert.Contains(t, res.Output, "403")
}

func TestFactory_InvalidKind(t *testing.T) {
	f := ytdlp.NewFactory(nil, nil, nil, testConfig("dl"), nil)

	_, err := f.NewAction(task(), domain.DownloadKind("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}
