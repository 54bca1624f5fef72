package ports

import "context"

// Tool names an external tool the downloader depends on.
type Tool string

const (
	// ToolYtDlp performs the actual recording downloads.
	ToolYtDlp Tool = "yt-dlp"
	// ToolFFmpeg extracts audio tracks from downloaded videos.
	ToolFFmpeg Tool = "ffmpeg"
)

// ToolManager probes for external tools and attempts installation when one
// is absent.
//
//go:generate mockgen -source=tool.go -destination=mocks/mock_tool.go -package=mocks
type ToolManager interface {
	// Ensure returns nil when the tool is available, installing it first
	// if possible. A tool that is absent and could not be installed yields
	// domain.ErrToolMissing or domain.ErrToolInstallFailed.
	Ensure(ctx context.Context, tool Tool) error
}
