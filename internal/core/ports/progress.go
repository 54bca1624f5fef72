package ports

// ProgressReporter renders batch progress. It is purely observational: no
// method returns an error and implementations must never block control flow.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressReporter interface {
	// Begin resets the reporter for a pass over total tasks.
	Begin(total int)

	// Update re-renders after a task completes. label names the task that
	// just finished.
	Update(completed int, label string)

	// Finish terminates the progress line and prints an optional message.
	Finish(message string)
}
