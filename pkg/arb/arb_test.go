package arb

import (
	"testing"

	"github.com/mouse-blink/propcheck/pkg/gen"
)

func TestInt_UniformOverZeroToSize(t *testing.T) {
	for _, size := range []int{0, 1, 10, 100} {
		ctx := gen.Context{Size: size, Rand: gen.NewSource(13)}

		for i := 0; i < 200; i++ {
			v, ok := Int().Gen(ctx)
			if !ok {
				t.Fatalf("Int default rejected at size %d", size)
			}

			if v < 0 || v > size {
				t.Fatalf("value %d out of [0, %d]", v, size)
			}
		}
	}
}

func TestBool_ProducesBothValues(t *testing.T) {
	ctx := gen.Context{Size: 10, Rand: gen.NewSource(3)}

	seen := map[bool]bool{}

	for i := 0; i < 100; i++ {
		v, ok := Bool().Gen(ctx)
		if !ok {
			t.Fatalf("Bool default rejected")
		}

		seen[v] = true
	}

	if !seen[true] || !seen[false] {
		t.Fatalf("expected both booleans, saw %v", seen)
	}
}

func TestString_PrintableAndSizeDriven(t *testing.T) {
	ctx := gen.Context{Size: 12, Rand: gen.NewSource(21)}

	s, ok := String().Gen(ctx)
	if !ok {
		t.Fatalf("String default rejected")
	}

	if len([]rune(s)) != 12 {
		t.Fatalf("expected 12 runes, got %d", len([]rune(s)))
	}

	for _, r := range s {
		if r < ' ' || r > '~' {
			t.Fatalf("non-printable rune %q in %q", r, s)
		}
	}
}

func TestSliceOf_LengthEqualsSize(t *testing.T) {
	ctx := gen.Context{Size: 7, Rand: gen.NewSource(5)}

	xs, ok := SliceOf(Int()).Gen(ctx)
	if !ok {
		t.Fatalf("SliceOf default rejected")
	}

	if len(xs) != 7 {
		t.Fatalf("expected length 7, got %d", len(xs))
	}
}

func TestSliceOf_ElementRejectionAborts(t *testing.T) {
	never := Arbitrary[int]{Gen: gen.Fail[int]()}
	ctx := gen.Context{Size: 3, Rand: gen.NewSource(5)}

	if _, ok := SliceOf(never).Gen(ctx); ok {
		t.Fatalf("expected element rejection to abort the slice")
	}
}
