package check

import (
	"fmt"
	"io"

	"github.com/mouse-blink/propcheck/pkg/gen"
	"github.com/mouse-blink/propcheck/pkg/prop"
)

// Reporter writes incremental progress during a run and a one-line
// summary when it finishes.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Inspect is an Inspector that overwrites a single progress line.
func (r *Reporter) Inspect(_ *prop.Result, succeeded, discarded int) {
	_, _ = fmt.Fprintf(r.w, "\rPassed %d tests; %d discarded", succeeded, discarded)
}

// Summarize writes the final verdict line for a finished run.
func (r *Reporter) Summarize(stats Stats) {
	switch stats.Status {
	case Failed:
		_, _ = fmt.Fprintf(r.w, "\r! Falsified after %d passed tests:\n", stats.Succeeded)

		for _, arg := range stats.Failure.Args {
			_, _ = fmt.Fprintf(r.w, "> %s\n", arg)
		}
	case Exhausted:
		_, _ = fmt.Fprintf(r.w, "\r! Gave up after %d discarded and %d passed tests.\n",
			stats.Discarded, stats.Succeeded)
	case Passed:
		_, _ = fmt.Fprintf(r.w, "\r+ OK, passed %d tests.\n", stats.Succeeded)
	}
}

// Quick checks p with default parameters, a time-seeded source and a
// console reporter on w.
func Quick(w io.Writer, p prop.Prop) Stats {
	reporter := NewReporter(w)
	runner := &Runner{params: DefaultParams(), rand: gen.NewSource(0)}

	stats := runner.CheckWith(p, reporter.Inspect)
	reporter.Summarize(stats)

	return stats
}
