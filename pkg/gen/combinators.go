package gen

// Map produces f(x) when g produces x and propagates rejection
// unchanged.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(ctx Context) (U, bool) {
		x, ok := g(ctx)
		if !ok {
			var zero U

			return zero, false
		}

		return f(x), true
	}
}

// FlatMap sequences g and f against the same context: g is evaluated
// first, and its value selects the generator evaluated next. Either
// step rejecting rejects the whole; f is never consulted after a
// rejection.
func FlatMap[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return func(ctx Context) (U, bool) {
		x, ok := g(ctx)
		if !ok {
			var zero U

			return zero, false
		}

		return f(x)(ctx)
	}
}

// Elements produces a uniformly chosen member of xs. An empty xs
// rejects every trial.
func Elements[T any](xs ...T) Gen[T] {
	return FlatMap(Choose(0, len(xs)-1), func(i int) Gen[T] {
		return Const(xs[i])
	})
}

// OneOf evaluates a uniformly chosen generator from gens. An empty
// gens rejects every trial.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	return FlatMap(Choose(0, len(gens)-1), func(i int) Gen[T] {
		return gens[i]
	})
}

// VectorOf produces a slice of exactly n elements drawn from g,
// rejecting the whole slice as soon as any element rejects.
func VectorOf[T any](n int, g Gen[T]) Gen[[]T] {
	return func(ctx Context) ([]T, bool) {
		out := make([]T, 0, n)

		for i := 0; i < n; i++ {
			x, ok := g(ctx)
			if !ok {
				return nil, false
			}

			out = append(out, x)
		}

		return out, true
	}
}

// ListOf produces a slice whose length equals the current size
// budget, drawing every element from g.
func ListOf[T any](g Gen[T]) Gen[[]T] {
	return Sized(func(size int) Gen[[]T] {
		return VectorOf(size, g)
	})
}

// ListOf1 produces a non-empty slice: one mandatory element followed
// by a size-driven tail.
func ListOf1[T any](g Gen[T]) Gen[[]T] {
	return FlatMap(g, func(head T) Gen[[]T] {
		return Map(ListOf(g), func(tail []T) []T {
			return append([]T{head}, tail...)
		})
	})
}

// EmptySlice always produces an empty, non-nil slice.
func EmptySlice[T any]() Gen[[]T] {
	return Const([]T{})
}
