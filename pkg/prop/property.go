package prop

import (
	"github.com/mouse-blink/propcheck/pkg/arb"
)

// Property1 binds one argument to its default generator and evaluates
// f on the drawn value. Arguments are recorded left to right: the
// first parameter of f appears first in the verdict's Args.
func Property1[A any](a arb.Arbitrary[A], f func(A) Prop) Prop {
	return ForAll(a.Gen, f)
}

// Property2 binds two arguments to their default generators,
// left to right.
func Property2[A, B any](a arb.Arbitrary[A], b arb.Arbitrary[B], f func(A, B) Prop) Prop {
	return ForAll(a.Gen, func(x A) Prop {
		return ForAll(b.Gen, func(y B) Prop {
			return f(x, y)
		})
	})
}

// Property3 binds three arguments to their default generators,
// left to right.
func Property3[A, B, C any](
	a arb.Arbitrary[A],
	b arb.Arbitrary[B],
	c arb.Arbitrary[C],
	f func(A, B, C) Prop,
) Prop {
	return ForAll(a.Gen, func(x A) Prop {
		return ForAll(b.Gen, func(y B) Prop {
			return ForAll(c.Gen, func(z C) Prop {
				return f(x, y, z)
			})
		})
	})
}

// Property4 binds four arguments to their default generators,
// left to right.
func Property4[A, B, C, D any](
	a arb.Arbitrary[A],
	b arb.Arbitrary[B],
	c arb.Arbitrary[C],
	d arb.Arbitrary[D],
	f func(A, B, C, D) Prop,
) Prop {
	return ForAll(a.Gen, func(x A) Prop {
		return ForAll(b.Gen, func(y B) Prop {
			return ForAll(c.Gen, func(z C) Prop {
				return ForAll(d.Gen, func(w D) Prop {
					return f(x, y, z, w)
				})
			})
		})
	})
}
