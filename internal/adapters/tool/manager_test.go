package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/tool"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"github.com/zoomgrab/zoomgrab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func ok() (*domain.ActionResult, error) {
	return &domain.ActionResult{ExitCode: 0}, nil
}

func fail(code int) (*domain.ActionResult, error) {
	return &domain.ActionResult{ExitCode: code}, nil
}

func TestManager_EnsurePresentTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), []string{"yt-dlp", "--version"}, gomock.Nil()).
		Return(ok())

	m := tool.NewManager(runner, nil)
	require.NoError(t, m.Ensure(context.Background(), ports.ToolYtDlp))
}

func TestManager_InstallsYtDlpWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), []string{"yt-dlp", "--version"}, gomock.Nil()).
			Return(fail(127)),
		runner.EXPECT().
			Run(gomock.Any(), []string{"pip", "install", "--upgrade", "yt-dlp"}, gomock.Nil()).
			Return(ok()),
		runner.EXPECT().
			Run(gomock.Any(), []string{"yt-dlp", "--version"}, gomock.Nil()).
			Return(ok()),
	)

	m := tool.NewManager(runner, nil)
	require.NoError(t, m.Ensure(context.Background(), ports.ToolYtDlp))
}

func TestManager_InstallFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), []string{"yt-dlp", "--version"}, gomock.Nil()).
			Return(fail(127)),
		runner.EXPECT().
			Run(gomock.Any(), []string{"pip", "install", "--upgrade", "yt-dlp"}, gomock.Nil()).
			Return(fail(1)),
	)

	m := tool.NewManager(runner, nil)
	err := m.Ensure(context.Background(), ports.ToolYtDlp)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolInstallFailed)
}

func TestManager_FFmpegNeedsPasswordlessSudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), []string{"ffmpeg", "-version"}, gomock.Nil()).
			Return(fail(127)),
		runner.EXPECT().
			Run(gomock.Any(), []string{"sudo", "-n", "true"}, gomock.Nil()).
			Return(fail(1)),
	)

	m := tool.NewManager(runner, nil)
	err := m.Ensure(context.Background(), ports.ToolFFmpeg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolInstallFailed)
}

func TestManager_FFmpegInstallPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), []string{"ffmpeg", "-version"}, gomock.Nil()).
			Return(fail(127)),
		runner.EXPECT().
			Run(gomock.Any(), []string{"sudo", "-n", "true"}, gomock.Nil()).
			Return(ok()),
		runner.EXPECT().
			Run(gomock.Any(), []string{"sudo", "-n", "apt-get", "install", "-y", "ffmpeg"}, gomock.Nil()).
			Return(ok()),
		runner.EXPECT().
			Run(gomock.Any(), []string{"ffmpeg", "-version"}, gomock.Nil()).
			Return(ok()),
	)

	m := tool.NewManager(runner, nil)
	require.NoError(t, m.Ensure(context.Background(), ports.ToolFFmpeg))
}
