package domain

import "path/filepath"

const (
	// InputDirName is the directory scanned for URL list files.
	InputDirName = "input"

	// DownloadsDirName is the root directory for all downloaded artifacts.
	DownloadsDirName = "downloads"

	// VideoDirName holds downloaded MP4 files, under the downloads root.
	VideoDirName = "MP4"

	// AudioDirName holds extracted MP3 files, under the downloads root.
	AudioDirName = "MP3"

	// TranscriptDirName holds subtitle/transcript files, under the downloads root.
	TranscriptDirName = "SRT"

	// LedgerFileName is the persisted run ledger, under the downloads root.
	LedgerFileName = "ledger.json"

	// LogFileName is the download log, under the downloads root.
	LogFileName = "zoomgrab.log"

	// ConfigFileName is the optional configuration file discovered from cwd.
	ConfigFileName = "zoomgrab.yaml"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for written files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLogPath returns the default location of the download log file.
func DefaultLogPath() string {
	return filepath.Join(DownloadsDirName, LogFileName)
}
