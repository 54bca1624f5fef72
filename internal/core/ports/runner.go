package ports

import (
	"context"
	"io"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

// CommandRunner executes an external command and streams its combined output.
//
// The returned error covers spawn-level failures only; a command that ran to
// completion yields a result carrying its exit code, whatever that code is.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run starts argv[0] with argv[1:] as arguments, copies the process
	// output to out (which may be nil) and waits for completion.
	Run(ctx context.Context, argv []string, out io.Writer) (*domain.ActionResult, error)
}
