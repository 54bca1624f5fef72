package domain

import "go.trai.ch/zerr"

var (
	// ErrInputUnreadable is returned when the input list file cannot be read.
	ErrInputUnreadable = zerr.New("failed to read input file")

	// ErrNoValidTasks is returned when an input file yields zero accepted tasks.
	ErrNoValidTasks = zerr.New("no valid recording URLs found in input file")

	// ErrInvalidKind is returned when an unknown download kind is requested.
	ErrInvalidKind = zerr.New("invalid download kind, expected 'video', 'audio', 'transcript' or 'all'")

	// ErrAllTasksFailed is returned when a non-empty run completes with zero successes.
	ErrAllTasksFailed = zerr.New("all downloads failed")

	// ErrActionExhausted is returned when every retry attempt of an action failed.
	ErrActionExhausted = zerr.New("all retry attempts failed")

	// ErrActionReportedFailure is returned when the external tool exited non-zero.
	ErrActionReportedFailure = zerr.New("external tool reported failure")

	// ErrToolMissing is returned when a required external tool is absent.
	ErrToolMissing = zerr.New("required tool not found")

	// ErrToolInstallFailed is returned when automatic installation of a tool failed.
	ErrToolInstallFailed = zerr.New("failed to install tool")

	// ErrLedgerReadFailed is returned when the ledger document cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read ledger")

	// ErrLedgerUnmarshalFailed is returned when the ledger document cannot be decoded.
	ErrLedgerUnmarshalFailed = zerr.New("failed to decode ledger")

	// ErrLedgerMarshalFailed is returned when the ledger document cannot be encoded.
	ErrLedgerMarshalFailed = zerr.New("failed to encode ledger")

	// ErrLedgerWriteFailed is returned when the ledger document cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write ledger")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDirectoryCreateFailed is returned when a download directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create directory")

	// ErrConversionFailed is returned when an ffmpeg conversion exits non-zero.
	ErrConversionFailed = zerr.New("media conversion failed")

	// ErrRunAborted is returned when the user declines the confirmation prompt.
	ErrRunAborted = zerr.New("download cancelled")
)
