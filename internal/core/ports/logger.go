package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects the log stream, e.g. to tee into the download log.
	SetOutput(w io.Writer)

	// SetVerbose lowers the minimum level to debug.
	SetVerbose(enable bool)

	// SetJSON switches between pretty and JSON output.
	SetJSON(enable bool)
}
