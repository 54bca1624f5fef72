package domain

import (
	"regexp"
	"strings"
)

// RequiredSourcePrefix is the literal prefix a locator must carry to be
// accepted as a task. The downloader only knows Zoom cloud recordings.
const RequiredSourcePrefix = "https://zoom.us/rec/"

// maxNameLength bounds sanitized labels to avoid filesystem limits.
const maxNameLength = 50

var (
	invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	collapseSpaces   = regexp.MustCompile(`\s+`)
	recordingIDRe    = regexp.MustCompile(`/rec/play/([^?]+)`)
)

// SanitizeName turns an arbitrary label into a filesystem-safe, length-bounded
// file name. Characters invalid on common filesystems become underscores and
// runs of whitespace collapse to a single space. An empty result falls back
// to a fixed placeholder.
func SanitizeName(name string) string {
	s := invalidNameChars.ReplaceAllString(name, "_")
	s = strings.TrimSpace(collapseSpaces.ReplaceAllString(s, " "))

	if len(s) > maxNameLength {
		s = strings.TrimSpace(s[:maxNameLength])
	}

	if s == "" {
		return "recording"
	}
	return s
}

// ValidSource reports whether the locator carries the required prefix with a
// non-empty remainder. Nothing beyond the prefix is validated; the external
// tool owns the rest of the URL's meaning.
func ValidSource(source string) bool {
	return strings.HasPrefix(source, RequiredSourcePrefix) &&
		len(source) > len(RequiredSourcePrefix)
}

// RecordingID extracts the opaque recording identifier from a play URL.
// Returns the empty string when the URL carries no /rec/play/ segment.
func RecordingID(source string) string {
	m := recordingIDRe.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}
