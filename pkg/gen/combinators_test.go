package gen

import (
	"testing"
)

func TestMap_AppliesFunctionAndPropagatesRejection(t *testing.T) {
	ctx, _ := newCtx(10)

	double := Map(Const(21), func(v int) int { return v * 2 })

	v, ok := double(ctx)
	if !ok || v != 42 {
		t.Fatalf("expected 42, got %d (ok=%v)", v, ok)
	}

	rejected := Map(Fail[int](), func(v int) int { return v * 2 })
	if _, ok := rejected(ctx); ok {
		t.Fatalf("expected rejection to propagate through Map")
	}
}

func TestFlatMap_RejectionShortCircuitsBody(t *testing.T) {
	ctx, _ := newCtx(10)

	bodyCalled := false

	g := FlatMap(Fail[int](), func(int) Gen[int] {
		bodyCalled = true

		return Const(0)
	})

	if _, ok := g(ctx); ok {
		t.Fatalf("expected rejection")
	}

	if bodyCalled {
		t.Fatalf("body must not be consulted after a rejection")
	}
}

func TestFlatMap_EitherStepRejectingRejectsTheWhole(t *testing.T) {
	ctx, _ := newCtx(10)

	g := FlatMap(Const(1), func(int) Gen[int] {
		return Fail[int]()
	})

	if _, ok := g(ctx); ok {
		t.Fatalf("expected second-step rejection to reject the whole")
	}
}

func TestFlatMap_Associativity(t *testing.T) {
	f := func(n int) Gen[int] { return Choose(0, n) }
	h := func(n int) Gen[int] {
		if n%3 == 0 {
			return Fail[int]()
		}

		return Const(n + 1)
	}

	base := Choose(0, 50)
	left := FlatMap(FlatMap(base, f), h)
	right := FlatMap(base, func(x int) Gen[int] {
		return FlatMap(f(x), h)
	})

	for seed := int64(1); seed <= 20; seed++ {
		ctxL := Context{Size: 10, Rand: NewSource(seed)}
		ctxR := Context{Size: 10, Rand: NewSource(seed)}

		lv, lok := left(ctxL)
		rv, rok := right(ctxR)

		if lok != rok || lv != rv {
			t.Fatalf("seed %d: left=(%d,%v) right=(%d,%v)", seed, lv, lok, rv, rok)
		}
	}
}

func TestElements_EmptyRejects(t *testing.T) {
	ctx, _ := newCtx(10)

	if _, ok := Elements[string]()(ctx); ok {
		t.Fatalf("expected empty Elements to reject")
	}
}

func TestElements_ProducesMember(t *testing.T) {
	xs := []string{"a", "b", "c"}
	src := NewSource(3)
	ctx := Context{Size: 10, Rand: src}

	members := map[string]bool{"a": true, "b": true, "c": true}

	for i := 0; i < 100; i++ {
		v, ok := Elements(xs...)(ctx)
		if !ok {
			t.Fatalf("expected non-empty Elements to produce")
		}

		if !members[v] {
			t.Fatalf("produced %q, not a member of %v", v, xs)
		}
	}
}

func TestOneOf_EmptyRejects(t *testing.T) {
	ctx, _ := newCtx(10)

	if _, ok := OneOf[int]()(ctx); ok {
		t.Fatalf("expected empty OneOf to reject")
	}
}

func TestOneOf_EvaluatesChosenGenerator(t *testing.T) {
	src := NewSource(5)
	ctx := Context{Size: 10, Rand: src}

	g := OneOf(Const(1), Const(2))

	seen := map[int]bool{}

	for i := 0; i < 200; i++ {
		v, ok := g(ctx)
		if !ok {
			t.Fatalf("expected OneOf over total generators to produce")
		}

		seen[v] = true
	}

	if !seen[1] || !seen[2] {
		t.Fatalf("expected both alternatives to be chosen, saw %v", seen)
	}
}

func TestVectorOf_ExactLength(t *testing.T) {
	ctx, _ := newCtx(10)

	for _, n := range []int{0, 1, 5, 32} {
		xs, ok := VectorOf(n, Const(7))(ctx)
		if !ok {
			t.Fatalf("VectorOf(%d) rejected", n)
		}

		if len(xs) != n {
			t.Fatalf("VectorOf(%d) produced %d elements", n, len(xs))
		}

		for _, x := range xs {
			if x != 7 {
				t.Fatalf("expected all elements to be 7, got %v", xs)
			}
		}
	}
}

func TestVectorOf_ElementRejectionAbortsTheSlice(t *testing.T) {
	flaky := Choose(0, 4).SuchThat(func(v int) bool { return v < 3 })

	// With a scripted source the third element trips the predicate.
	ctx, _ := newCtx(10, 0, 1, 4)
	if _, ok := VectorOf(3, flaky)(ctx); ok {
		t.Fatalf("expected element rejection to abort the slice")
	}
}

func TestListOf_LengthEqualsSize(t *testing.T) {
	for _, size := range []int{0, 1, 8, 40} {
		ctx := Context{Size: size, Rand: NewSource(11)}

		xs, ok := ListOf(Choose(0, 9))(ctx)
		if !ok {
			t.Fatalf("ListOf rejected at size %d", size)
		}

		if len(xs) != size {
			t.Fatalf("expected length %d, got %d", size, len(xs))
		}
	}
}

func TestListOf1_AtLeastOneElement(t *testing.T) {
	ctx := Context{Size: 0, Rand: NewSource(7)}

	xs, ok := ListOf1(Const(9))(ctx)
	if !ok {
		t.Fatalf("ListOf1 rejected")
	}

	if len(xs) != 1 {
		t.Fatalf("expected the mandatory head only at size 0, got %d elements", len(xs))
	}

	ctx = Context{Size: 4, Rand: NewSource(7)}

	xs, ok = ListOf1(Const(9))(ctx)
	if !ok || len(xs) != 5 {
		t.Fatalf("expected head plus size-driven tail (5), got %d (ok=%v)", len(xs), ok)
	}
}

func TestEmptySlice_ProducesEmptyNonNil(t *testing.T) {
	ctx, _ := newCtx(10)

	xs, ok := EmptySlice[int]()(ctx)
	if !ok {
		t.Fatalf("EmptySlice rejected")
	}

	if xs == nil || len(xs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", xs)
	}
}
