// Package check runs properties through the iterative test loop and
// classifies the outcome as passed, failed or exhausted.
package check

import (
	"fmt"

	"github.com/mouse-blink/propcheck/pkg/gen"
	"github.com/mouse-blink/propcheck/pkg/prop"
)

// Params configures a test run. All three fields must be positive.
type Params struct {
	MinSuccessfulTests int
	MaxDiscardedTests  int
	MaxSize            int
}

// DefaultParams returns the standard run configuration.
func DefaultParams() Params {
	return Params{
		MinSuccessfulTests: 100,
		MaxDiscardedTests:  50000,
		MaxSize:            100,
	}
}

func (p Params) validate() error {
	if p.MinSuccessfulTests <= 0 {
		return fmt.Errorf("min successful tests must be positive, got %d", p.MinSuccessfulTests)
	}

	if p.MaxDiscardedTests <= 0 {
		return fmt.Errorf("max discarded tests must be positive, got %d", p.MaxDiscardedTests)
	}

	if p.MaxSize <= 0 {
		return fmt.Errorf("max size must be positive, got %d", p.MaxSize)
	}

	return nil
}

// Status classifies a finished run.
type Status int

// Available Status values.
const (
	// Passed means the run reached its successful-test target.
	Passed Status = iota
	// Failed means a trial produced a genuine counterexample.
	Failed
	// Exhausted means the discard budget was spent before enough
	// successful trials accumulated.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats is the immutable summary of a finished run. Failure is set
// only when Status is Failed and holds the counterexample verdict.
type Stats struct {
	Status    Status
	Failure   *prop.Result
	Succeeded int
	Discarded int
}

// Inspector observes every loop iteration: the verdict (nil for a
// discarded trial) and the counters after the iteration. Inspectors
// must not affect control flow.
type Inspector func(res *prop.Result, succeeded, discarded int)

// Runner drives repeated evaluation of a property under a size-growth
// schedule. The random source is injected explicitly so runs stay
// independently reproducible.
type Runner struct {
	params Params
	rand   gen.Source
}

// NewRunner creates a Runner, rejecting degenerate configuration up
// front instead of looping on it.
func NewRunner(params Params, rand gen.Source) (*Runner, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid test parameters: %w", err)
	}

	if rand == nil {
		return nil, fmt.Errorf("random source is required")
	}

	return &Runner{params: params, rand: rand}, nil
}

// Check runs p silently and returns the summary.
func (r *Runner) Check(p prop.Prop) Stats {
	return r.CheckWith(p, func(*prop.Result, int, int) {})
}

// CheckWith runs p, invoking inspect after every iteration.
//
// Each iteration evaluates p against a fresh context whose size grows
// linearly with accumulated successes, from 0 toward MaxSize as the
// success target is approached, plus one for every ten discards so a
// run can escape input regions that are mostly rejected at small
// sizes.
func (r *Runner) CheckWith(p prop.Prop, inspect Inspector) Stats {
	var succeeded, discarded int

	var failure *prop.Result

	for failure == nil &&
		discarded < r.params.MaxDiscardedTests &&
		succeeded < r.params.MinSuccessfulTests {
		size := succeeded*r.params.MaxSize/r.params.MinSuccessfulTests + discarded/10
		if size > r.params.MaxSize {
			size = r.params.MaxSize
		}

		ctx := gen.Context{Size: size, Rand: r.rand}

		res, ok := p(ctx)
		switch {
		case !ok:
			discarded++

			inspect(nil, succeeded, discarded)
		case res.OK:
			succeeded++

			inspect(&res, succeeded, discarded)
		default:
			failure = &res

			inspect(&res, succeeded, discarded)
		}
	}

	switch {
	case failure != nil:
		return Stats{Status: Failed, Failure: failure, Succeeded: succeeded, Discarded: discarded}
	case succeeded >= r.params.MinSuccessfulTests:
		return Stats{Status: Passed, Succeeded: succeeded, Discarded: discarded}
	default:
		return Stats{Status: Exhausted, Succeeded: succeeded, Discarded: discarded}
	}
}
