// Package generics covers type parameters, constraints, and the map/filter
// helpers they make possible.
package generics

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc generics`.
const Doc = `# Generics & Constraints

Goal: write functions that work over families of types without reflection.

Key points:
- Type parameters live in brackets: ` + "`func Map[T, U any](...)`" + `.
- Constraints are interfaces; ` + "`~int`" + ` admits named types with that
  underlying type.
- The compiler usually infers type arguments at the call site.
- Reach for generics for containers and algorithms, not to avoid writing
  two small functions.

Pitfalls:
- You cannot switch on a type parameter's concrete type.
- Over-constraining with ` + "`comparable`" + ` when ` + "`any`" + ` suffices.

Run: ` + "`golearn generics`" + `
`

// Ordered is the subset of types the < operator accepts here.
type Ordered interface {
	~int | ~int64 | ~float64 | ~string
}

// Map transforms each element of s with f.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter keeps the elements of s for which keep returns true.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Min returns the smaller of a and b for any ordered type.
func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== Map ===")
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	fmt.Println("doubled ints:  ", doubled)
	lengths := Map([]string{"go", "rust", "zig"}, func(s string) int { return len(s) })
	fmt.Println("string lengths:", lengths)

	fmt.Println("=== Filter ===")
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	fmt.Println("evens:", evens)

	fmt.Println("=== constrained type parameters ===")
	fmt.Println("Min(3, 5):        ", Min(3, 5))
	fmt.Println("Min(2.5, 1.5):    ", Min(2.5, 1.5))
	fmt.Println(`Min("b", "a"):    `, Min("b", "a"))

	fmt.Println("=== maps ===")
	fmt.Println("number of keys:", len(Keys(map[string]int{"a": 1, "b": 2})))
}
