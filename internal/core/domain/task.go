package domain

// DownloadKind selects which artifacts a task should produce.
type DownloadKind string

const (
	// KindVideo downloads the recording as an MP4 file.
	KindVideo DownloadKind = "video"
	// KindAudio extracts the audio track as an MP3 file.
	KindAudio DownloadKind = "audio"
	// KindTranscript downloads only the subtitle/transcript files.
	KindTranscript DownloadKind = "transcript"
	// KindAll downloads the video, extracts the audio and fetches transcripts.
	KindAll DownloadKind = "all"
)

// ValidKind reports whether s names a supported download kind.
func ValidKind(s string) bool {
	switch DownloadKind(s) {
	case KindVideo, KindAudio, KindTranscript, KindAll:
		return true
	}
	return false
}

// Task is one unit of work derived from one input record.
// Name is a filesystem-safe label; Source is the raw recording locator
// handed to the external tool unmodified.
//
// Tasks are immutable once produced by the parser. Name uniqueness is not
// enforced: duplicate names collide in output paths and the last download
// wins. This mirrors the input file, which carries no identity beyond the
// label column.
type Task struct {
	Name   string
	Source string
}

// Outcome is the terminal state of a task within one pass.
type Outcome string

const (
	// OutcomeSucceeded means the external action ran and reported success.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed means every attempt failed or the tool reported failure.
	OutcomeFailed Outcome = "failed"
)

// ArtifactKind names one output a task may produce.
type ArtifactKind string

const (
	// ArtifactVideo is the downloaded MP4 file.
	ArtifactVideo ArtifactKind = "video"
	// ArtifactAudio is the extracted MP3 file.
	ArtifactAudio ArtifactKind = "audio"
	// ArtifactTranscript is the subtitle/transcript file.
	ArtifactTranscript ArtifactKind = "transcript"
)

// ActionResult carries the content-level outcome of one external tool
// invocation. The backoff executor treats any non-nil result as a completed
// execution; whether the tool itself succeeded is answered by Ok.
type ActionResult struct {
	ExitCode int
	// Output holds the tail of the tool's combined output, kept for error
	// reporting when the tool exits non-zero.
	Output string
}

// Ok reports whether the tool exited cleanly.
func (r *ActionResult) Ok() bool {
	return r != nil && r.ExitCode == 0
}

// TaskResult records the outcome of one task within one pass. A task that
// fails the initial pass and is retried produces a second TaskResult which
// supersedes the first in the summary.
type TaskResult struct {
	Task      Task
	Outcome   Outcome
	Attempts  int
	Artifacts map[ArtifactKind]string
}

// Summary aggregates per-task outcomes for user-facing reporting.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	// FailedTasks lists the tasks that were still failing after the
	// optional retry sweep, in input order.
	FailedTasks []Task
}
