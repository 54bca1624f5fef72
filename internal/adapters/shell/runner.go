// Package shell runs external commands, streaming their combined output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// tailLimit bounds how much combined output is retained for error reporting.
const tailLimit = 4096

// Runner implements ports.CommandRunner using os/exec and a pty, so tools
// like yt-dlp keep their live progress output.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts argv in a pty, copies its output to out and waits for exit.
// A process that ran to completion never returns an error: its exit code is
// reported through the result. Errors are reserved for spawn failures.
func (r *Runner) Run(ctx context.Context, argv []string, out io.Writer) (*domain.ActionResult, error) {
	if len(argv) == 0 {
		return nil, zerr.New("empty command")
	}

	tail := &tailBuffer{limit: tailLimit}
	logw := &logWriter{logger: r.logger}

	writers := []io.Writer{tail, logw}
	if out != nil {
		writers = append(writers, out)
	}
	sink := io.MultiWriter(writers...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // tool invocation built by the action factory
	cmd.Env = os.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, zerr.With(domain.ErrToolMissing, "tool", argv[0])
		}
		return nil, zerr.Wrap(err, "failed to start command")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = logw.Close() }()

		// The pty merges stdout and stderr into one stream.
		_, _ = io.Copy(sink, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.ActionResult{
				ExitCode: exitErr.ExitCode(),
				Output:   tail.String(),
			}, nil
		}
		return nil, zerr.Wrap(err, "command failed")
	}

	return &domain.ActionResult{ExitCode: 0, Output: tail.String()}, nil
}

// tailBuffer keeps only the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if len(t.buf) > t.limit {
		t.buf = t.buf[len(t.buf)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

// logWriter forwards complete output lines to the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	if w.logger == nil {
		return
	}
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg != "" {
		w.logger.Debug(msg)
	}
}
