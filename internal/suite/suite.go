// Package suite registers the demo properties shipped with the CLI
// and runs them through the check loop.
package suite

import (
	"fmt"
	"slices"

	"github.com/mouse-blink/propcheck/pkg/arb"
	"github.com/mouse-blink/propcheck/pkg/gen"
	"github.com/mouse-blink/propcheck/pkg/prop"
)

// Entry is one named, reusable property.
type Entry struct {
	Name string
	Desc string
	Prop prop.Prop
}

// All returns the registered demo properties in display order.
func All() []Entry {
	return []Entry{
		{
			Name: "addition-commutative",
			Desc: "a + b equals b + a",
			Prop: prop.Property2(arb.Int(), arb.Int(), func(a, b int) prop.Prop {
				return prop.Bool(a+b == b+a)
			}),
		},
		{
			Name: "reverse-involution",
			Desc: "reversing a slice twice restores it",
			Prop: prop.Property1(arb.SliceOf(arb.Int()), func(xs []int) prop.Prop {
				ys := append([]int(nil), xs...)
				slices.Reverse(ys)
				slices.Reverse(ys)

				return prop.Bool(slices.Equal(xs, ys))
			}),
		},
		{
			Name: "sort-idempotent",
			Desc: "sorting a sorted slice changes nothing",
			Prop: prop.Property1(arb.SliceOf(arb.Int()), func(xs []int) prop.Prop {
				once := append([]int(nil), xs...)
				slices.Sort(once)

				twice := append([]int(nil), once...)
				slices.Sort(twice)

				return prop.Bool(slices.Equal(once, twice))
			}),
		},
		{
			Name: "concat-length",
			Desc: "len(a) + len(b) equals len(a ++ b)",
			Prop: prop.Property2(arb.SliceOf(arb.Int()), arb.SliceOf(arb.Int()),
				func(a, b []int) prop.Prop {
					joined := append(append([]int(nil), a...), b...)

					return prop.Bool(len(joined) == len(a)+len(b))
				}),
		},
		{
			Name: "guarded-division",
			Desc: "euclidean identity under a nonzero-divisor guard",
			Prop: prop.ForAll(gen.Choose(-100, 100), func(a int) prop.Prop {
				return prop.ForAll(gen.Choose(-10, 10), func(b int) prop.Prop {
					return prop.Implies(b != 0, prop.Bool((a/b)*b+a%b == a))
				})
			}),
		},
		{
			Name: "subtraction-commutative",
			Desc: "a - b equals b - a (falsifiable, shows counterexamples)",
			Prop: prop.Property2(arb.Int(), arb.Int(), func(a, b int) prop.Prop {
				return prop.Bool(a-b == b-a)
			}),
		},
	}
}

// Find resolves names against the registered entries, returning all
// of them when names is empty. Order follows the catalog, not the
// requested names.
func Find(names []string) ([]Entry, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var entries []Entry

	for _, entry := range all {
		if wanted[entry.Name] {
			entries = append(entries, entry)

			delete(wanted, entry.Name)
		}
	}

	if len(wanted) > 0 {
		for name := range wanted {
			return nil, fmt.Errorf("unknown property: %s", name)
		}
	}

	return entries, nil
}
