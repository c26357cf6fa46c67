package counter

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNextStartsAtZero(t *testing.T) {
	r := New()
	k := Key{Suite: "pkg", Call: "TestA"}

	if got := r.Peek(k); got != 0 {
		t.Fatalf("Peek on unseen key = %d, want 0", got)
	}
	if got := r.Next(k); got != 0 {
		t.Fatalf("first Next = %d, want 0", got)
	}
	if got := r.Next(k); got != 1 {
		t.Fatalf("second Next = %d, want 1", got)
	}
	if got := r.Peek(k); got != 2 {
		t.Fatalf("Peek after two Next = %d, want 2", got)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := New()
	k := Key{Suite: "pkg", Call: "TestA"}

	for i := 0; i < 5; i++ {
		r.Peek(k)
	}
	if got := r.Next(k); got != 0 {
		t.Fatalf("Next after Peeks = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	r := New()
	k := Key{Suite: "pkg", Call: "TestA"}
	r.Next(k)
	r.Next(k)

	r.Reset()

	if got := r.Next(k); got != 0 {
		t.Fatalf("Next after Reset = %d, want 0", got)
	}
}

// For any interleaving of calls under several keys, each key yields 0..N-1
// in order, with no gaps and no repeats.
func TestNextMonotonic_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("indices are gap-free per key under interleaving", prop.ForAll(
		func(picks []int) bool {
			keys := []Key{
				{Suite: "a", Call: "TestOne"},
				{Suite: "a", Call: "TestTwo"},
				{Suite: "b", Call: "TestOne"},
				{Suite: "b", Call: "TestOne__camelCase"},
			}
			r := New()
			seen := make(map[Key]int)

			for _, p := range picks {
				k := keys[p%len(keys)]
				if r.Next(k) != seen[k] {
					return false
				}
				seen[k]++
			}
			for _, k := range keys {
				if r.Peek(k) != seen[k] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
