package prop

import (
	"testing"

	"github.com/mouse-blink/propcheck/pkg/arb"
	"github.com/mouse-blink/propcheck/pkg/gen"
)

// fixed builds an Arbitrary that always produces the same value, so
// argument recording can be asserted exactly.
func fixed[T any](x T) arb.Arbitrary[T] {
	return arb.Arbitrary[T]{Gen: gen.Const(x)}
}

func TestProperty1_BindsDefaultGenerator(t *testing.T) {
	p := Property1(arb.Int(), func(n int) Prop {
		return Bool(n >= 0 && n <= 20)
	})

	res, ok := p(gen.Context{Size: 20, Rand: gen.NewSource(9)})
	if !ok {
		t.Fatalf("expected a verdict")
	}

	if !res.OK {
		t.Fatalf("Int default escaped [0, size]: args %v", res.Args)
	}

	if len(res.Args) != 1 {
		t.Fatalf("expected one recorded arg, got %v", res.Args)
	}
}

func TestProperty2_ArgOrderLeftToRight(t *testing.T) {
	p := Property2(fixed("a"), fixed("b"), func(x, y string) Prop {
		return Bool(false)
	})

	res, ok := p(evalCtx(10, 1))
	if !ok {
		t.Fatalf("expected a verdict")
	}

	if len(res.Args) != 2 || res.Args[0] != "a" || res.Args[1] != "b" {
		t.Fatalf("expected [a b], got %v", res.Args)
	}
}

func TestProperty3_ArgOrderLeftToRight(t *testing.T) {
	p := Property3(fixed(1), fixed(2), fixed(3), func(x, y, z int) Prop {
		return Bool(false)
	})

	res, ok := p(evalCtx(10, 1))
	if !ok {
		t.Fatalf("expected a verdict")
	}

	want := []string{"1", "2", "3"}
	if len(res.Args) != len(want) {
		t.Fatalf("expected %v, got %v", want, res.Args)
	}

	for i := range want {
		if res.Args[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, res.Args)
		}
	}
}

func TestProperty4_ArgOrderLeftToRight(t *testing.T) {
	p := Property4(fixed(1), fixed(2), fixed(3), fixed(4), func(a, b, c, d int) Prop {
		return Bool(false)
	})

	res, ok := p(evalCtx(10, 1))
	if !ok {
		t.Fatalf("expected a verdict")
	}

	want := []string{"1", "2", "3", "4"}
	if len(res.Args) != len(want) {
		t.Fatalf("expected %v, got %v", want, res.Args)
	}

	for i := range want {
		if res.Args[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, res.Args)
		}
	}
}

func TestProperty2_EarlyArgumentRejectionDiscards(t *testing.T) {
	rejecting := arb.Arbitrary[int]{Gen: gen.Fail[int]()}

	p := Property2(rejecting, fixed(2), func(x, y int) Prop {
		return Bool(true)
	})

	if _, ok := p(evalCtx(10, 1)); ok {
		t.Fatalf("expected first-argument rejection to discard the trial")
	}
}
