// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the progress rendering mode.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeBar forces the single-line redrawn progress bar.
	ModeBar
	// ModePlain forces per-task lines suitable for logs and CI.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the
// environment. Carriage-return redraws need a real terminal and garble
// CI logs, so anything non-interactive falls back to plain lines.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI || os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeBar
}

// Interactive reports whether stdin is attached to a terminal, which gates
// the pre-run confirmation prompt.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "bar", "plain", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "bar":
		return ModeBar
	case "plain", "ci":
		return ModePlain
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
