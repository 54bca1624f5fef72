// Package progress renders batch progress, either as a single redrawn bar
// for interactive terminals or as plain per-task lines for logs and CI.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/zoomgrab/zoomgrab/internal/ui/output"
	"github.com/zoomgrab/zoomgrab/internal/ui/style"
)

// barWidth is the number of cells in the rendered bar.
const barWidth = 40

// Bar implements ports.ProgressReporter as one carriage-return redrawn line:
// bar, percentage, completed counter and a rate-based completion estimate.
type Bar struct {
	out   *termenv.Output
	now   func() time.Time
	start time.Time
	total int
	// lastLen pads shorter redraws so stale cells never linger.
	lastLen int
}

// BarOption customizes a Bar.
type BarOption func(*Bar)

// WithClock overrides the time source, used by the estimate.
func WithClock(now func() time.Time) BarOption {
	return func(b *Bar) { b.now = now }
}

// NewBar creates a Bar writing to w.
func NewBar(w io.Writer, opts ...BarOption) *Bar {
	b := &Bar{
		out: output.New(w),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin resets the bar for a pass over total tasks.
func (b *Bar) Begin(total int) {
	b.total = total
	b.start = b.now()
	b.lastLen = 0
	b.render(0, "")
}

// Update re-renders the line after a task completes.
func (b *Bar) Update(completed int, label string) {
	b.render(completed, label)
}

// Finish terminates the progress line and prints an optional message.
func (b *Bar) Finish(message string) {
	fmt.Fprint(b.out, "\n")
	if message != "" {
		fmt.Fprintln(b.out, message)
	}
}

func (b *Bar) render(completed int, label string) {
	if b.total <= 0 {
		return
	}

	frac := float64(completed) / float64(b.total)
	filled := int(math.Ceil(frac * barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	bar := b.out.String(strings.Repeat(style.BarFilled, filled)).
		Foreground(b.out.Color(string(style.Blue))).String() +
		b.out.String(strings.Repeat(style.BarEmpty, barWidth-filled)).
			Foreground(b.out.Color(string(style.Slate))).String()

	line := fmt.Sprintf("%s %3.0f%% (%d/%d) eta %s",
		bar, frac*100, completed, b.total, b.estimate(completed))
	if label != "" {
		line += " " + b.out.String(label).
			Foreground(b.out.Color(string(style.Slate))).String()
	}

	// Visible width excludes escape sequences; padding uses the raw length,
	// which only ever overshoots and still clears the previous draw.
	pad := ""
	if n := len(line); n < b.lastLen {
		pad = strings.Repeat(" ", b.lastLen-n)
	} else {
		b.lastLen = len(line)
	}

	fmt.Fprint(b.out, "\r"+line+pad)
}

// estimate projects the remaining duration from the observed completion rate.
func (b *Bar) estimate(completed int) string {
	if completed <= 0 {
		return "?"
	}

	elapsed := b.now().Sub(b.start)
	if elapsed <= 0 {
		return "?"
	}

	rate := float64(completed) / elapsed.Seconds()
	remaining := time.Duration(float64(b.total-completed)/rate) * time.Second
	return remaining.Round(time.Second).String()
}
