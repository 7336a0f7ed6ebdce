// Package prop builds pass/fail properties on top of generators.
//
// A property is itself a generator whose produced values are verdicts,
// so the full combinator algebra applies: a property can be mapped,
// resized or rejected like any other generator. Rejection of a
// property means the trial is discarded, never that it failed.
package prop

import (
	"fmt"

	"github.com/mouse-blink/propcheck/pkg/gen"
)

// Result is the verdict of one property evaluation. Args holds the
// textual form of every generated argument that contributed to it,
// first-bound argument first.
type Result struct {
	OK   bool
	Args []string
}

// Prop is a generator of verdicts.
type Prop = gen.Gen[Result]

// Rejected returns a property that discards every trial.
func Rejected() Prop {
	return gen.Fail[Result]()
}

// Bool converts a bare boolean into a property with no recorded
// arguments.
func Bool(b bool) Prop {
	return gen.Const(Result{OK: b})
}

// Implies guards p with a precondition. A false condition discards
// the trial rather than passing or failing it; a true condition
// leaves p untouched.
func Implies(cond bool, p Prop) Prop {
	if !cond {
		return Rejected()
	}

	return p
}

// ForAll draws a value from g and evaluates the property body built
// from it. When the body's evaluation produces a verdict, the drawn
// value's textual form is recorded in front of the verdict's existing
// arguments. Rejection of either the draw or the body discards the
// trial and records nothing.
func ForAll[T any](g gen.Gen[T], body func(x T) Prop) Prop {
	return gen.FlatMap(g, func(x T) Prop {
		return gen.Map(body(x), func(res Result) Result {
			args := make([]string, 0, len(res.Args)+1)
			args = append(args, fmt.Sprintf("%v", x))
			args = append(args, res.Args...)

			return Result{OK: res.OK, Args: args}
		})
	})
}
