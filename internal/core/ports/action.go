// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

// Action is one concrete external-tool invocation bound to a task.
//
// Run returns an error only when the invocation itself failed (tool missing,
// process could not start, context cancelled). A tool that ran and exited
// non-zero is reported through the result's exit code instead; distinguishing
// the two is what lets the backoff executor retry crashes without re-running
// invocations the tool itself rejected.
//
//go:generate mockgen -source=action.go -destination=mocks/mock_action.go -package=mocks
type Action interface {
	// Run performs the invocation and blocks until it completes.
	Run(ctx context.Context) (*domain.ActionResult, error)

	// Artifacts declares the output paths this action is expected to
	// produce on success, keyed by artifact kind.
	Artifacts() map[domain.ArtifactKind]string
}

// ActionFactory builds the external action for a task. This is where
// per-download-kind tool argument construction lives; the orchestrator never
// sees a command line.
type ActionFactory interface {
	NewAction(task domain.Task, kind domain.DownloadKind) (Action, error)
}
