package progress

import (
	"fmt"
	"io"
)

// Plain implements ports.ProgressReporter as one line per completed task.
// It is the fallback for non-interactive output where carriage-return
// redraws would garble logs.
type Plain struct {
	w     io.Writer
	total int
}

// NewPlain creates a Plain reporter writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

// Begin records the pass size.
func (p *Plain) Begin(total int) {
	p.total = total
}

// Update prints one completion line.
func (p *Plain) Update(completed int, label string) {
	if label == "" {
		fmt.Fprintf(p.w, "[%d/%d]\n", completed, p.total)
		return
	}
	fmt.Fprintf(p.w, "[%d/%d] %s\n", completed, p.total, label)
}

// Finish prints the optional message.
func (p *Plain) Finish(message string) {
	if message != "" {
		fmt.Fprintln(p.w, message)
	}
}
