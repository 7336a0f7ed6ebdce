// Package arb supplies the canonical default generator per type.
//
// A default is an explicit capability value passed where one is
// needed, resolved when a property is composed rather than through
// runtime type inspection. Extending the catalog to a new type means
// constructing an Arbitrary literal for it; no combinator has to
// change.
package arb

import (
	"github.com/mouse-blink/propcheck/pkg/gen"
)

// Arbitrary carries the canonical default generator for T.
type Arbitrary[T any] struct {
	Gen gen.Gen[T]
}

// Int is the default integer generator: uniform over [0, size], so
// magnitudes grow with the run's size schedule.
func Int() Arbitrary[int] {
	return Arbitrary[int]{Gen: gen.Sized(func(size int) gen.Gen[int] {
		return gen.Choose(0, size)
	})}
}

// Bool is the default boolean generator: a fair coin.
func Bool() Arbitrary[bool] {
	return Arbitrary[bool]{Gen: gen.Map(gen.Choose(0, 1), func(v int) bool {
		return v == 1
	})}
}

// Rune is the default rune generator: uniform over printable ASCII.
func Rune() Arbitrary[rune] {
	return Arbitrary[rune]{Gen: gen.Map(gen.Choose(' ', '~'), func(v int) rune {
		return rune(v)
	})}
}

// String is the default string generator: a size-driven sequence of
// printable runes.
func String() Arbitrary[string] {
	return Arbitrary[string]{Gen: gen.Map(gen.ListOf(Rune().Gen), func(rs []rune) string {
		return string(rs)
	})}
}

// SliceOf is the default slice generator for any element type: the
// length equals the current size budget and every element comes from
// the element default. Any element rejection aborts the whole slice.
func SliceOf[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return Arbitrary[[]T]{Gen: gen.ListOf(elem.Gen)}
}
