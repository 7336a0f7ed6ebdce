// Package gen provides size- and randomness-parameterized generator
// combinators for property-based testing.
package gen

// Context carries the inputs for a single generator evaluation: the
// size budget and the random source. Contexts are immutable values;
// resizing returns a copy. The Source it holds is stateful across
// draws and must only be used from one run at a time.
type Context struct {
	Size int
	Rand Source
}

// Resize returns a copy of the context with the given size budget.
// The random source is shared unchanged.
func (c Context) Resize(size int) Context {
	c.Size = size

	return c
}

// Gen produces a value of T from a Context, or rejects the trial by
// returning false. Rejection means "this trial does not count" and is
// never an error. Given an identical draw sequence from the source, a
// generator always produces the same result.
type Gen[T any] func(ctx Context) (T, bool)

// Const returns a generator that always produces x. It consumes no
// randomness.
func Const[T any](x T) Gen[T] {
	return func(Context) (T, bool) {
		return x, true
	}
}

// Fail returns a generator that rejects every trial. It consumes no
// randomness.
func Fail[T any]() Gen[T] {
	return func(Context) (T, bool) {
		var zero T

		return zero, false
	}
}

// Choose produces a uniformly distributed integer in [low, high],
// both bounds inclusive. An inverted range rejects the trial.
func Choose(low, high int) Gen[int] {
	return func(ctx Context) (int, bool) {
		if low > high {
			return 0, false
		}

		return ctx.Rand.IntRange(low, high), true
	}
}

// Parameterized builds the generator to evaluate from the full
// context, then evaluates it against that same context. It gives
// combinators read access to the size budget and the random source.
func Parameterized[T any](f func(ctx Context) Gen[T]) Gen[T] {
	return func(ctx Context) (T, bool) {
		return f(ctx)(ctx)
	}
}

// Sized builds the generator to evaluate from the current size budget.
func Sized[T any](f func(size int) Gen[T]) Gen[T] {
	return Parameterized(func(ctx Context) Gen[T] {
		return f(ctx.Size)
	})
}

// Resize evaluates g against a copy of the context with the given
// size budget.
func (g Gen[T]) Resize(size int) Gen[T] {
	return func(ctx Context) (T, bool) {
		return g(ctx.Resize(size))
	}
}

// SuchThat keeps a produced value only if pred holds for it and
// rejects the trial otherwise. There is no resampling here; repeated
// attempts to satisfy a predicate belong to the runner's discard
// accounting.
func (g Gen[T]) SuchThat(pred func(T) bool) Gen[T] {
	return func(ctx Context) (T, bool) {
		x, ok := g(ctx)
		if !ok || !pred(x) {
			var zero T

			return zero, false
		}

		return x, true
	}
}
