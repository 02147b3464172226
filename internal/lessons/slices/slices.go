// Package slices covers arrays, slice headers, append, and aliasing.
package slices

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc slices`.
const Doc = `# Arrays & Slices

Goal: understand the slice header (pointer, length, capacity) and what
append really does.

Key points:
- Arrays have a fixed size that is part of the type; slices are views.
- Slicing shares the backing array; ` + "`copy`" + ` makes it independent.
- ` + "`append`" + ` may grow in place or reallocate; always keep the result.
- len vs cap: slicing beyond len but within cap is allowed with s[a:b:c].

Pitfalls:
- Two slices of one array alias each other; a write through one shows in
  the other.
- Holding a tiny slice of a huge array keeps the whole array alive.

Run: ` + "`golearn slices`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== arrays are values ===")
	a := [3]int{1, 2, 3}
	b := a
	b[0] = 99
	fmt.Println("original:", a, "copy:", b)

	fmt.Println("=== slices are views ===")
	s := []int{1, 2, 3, 4, 5}
	head := s[:2]
	head[0] = 99
	fmt.Println("write through the view:", s)

	fmt.Println("=== len and cap under append ===")
	grow := make([]int, 0, 2)
	for i := 0; i < 5; i++ {
		grow = append(grow, i)
		fmt.Printf("len=%d cap=%d %v\n", len(grow), cap(grow), grow)
	}

	fmt.Println("=== copy breaks aliasing ===")
	orig := []int{1, 2, 3}
	clone := Clone(orig)
	clone[0] = 99
	fmt.Println("original:", orig, "clone:", clone)

	fmt.Println("=== helpers ===")
	fmt.Println("Reverse([1 2 3]):      ", Reverse([]int{1, 2, 3}))
	fmt.Println("Dedup([1 1 2 3 3 3]):  ", Dedup([]int{1, 1, 2, 3, 3, 3}))
}

// Clone returns an independent copy of s.
func Clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Reverse returns a new slice with the elements of s in reverse order.
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Dedup collapses consecutive duplicates, keeping first occurrences.
func Dedup(s []int) []int {
	out := make([]int, 0, len(s))
	for i, v := range s {
		if i > 0 && s[i-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
