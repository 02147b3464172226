// Package closures covers function values that capture their environment.
package closures

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc closures`.
const Doc = `# Closures & Function Values

Goal: capture state in functions instead of tiny single-method structs.

Key points:
- A closure captures variables, not values; the captured variable is shared.
- Each call to a closure factory gets its own captured state.
- Closures are how callbacks, generators, and memoization read in Go.

Pitfalls:
- Capturing a loop variable before Go 1.22 shared one variable across
  iterations.
- Captured state keeps its memory alive as long as the closure does.

Run: ` + "`golearn closures`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== each factory call gets fresh state ===")
	a, b := Counter(), Counter()
	fmt.Println("a:", a(), a(), a())
	fmt.Println("b:", b())

	fmt.Println("=== capturing configuration ===")
	addFive := Adder(5)
	fmt.Println("addFive(3) =", addFive(3))
	fmt.Println("addFive(10) =", addFive(10))

	fmt.Println("=== memoization ===")
	calls := 0
	slowSquare := func(n int) int {
		calls++
		return n * n
	}
	fast := Memoize(slowSquare)
	fmt.Println("fast(9) =", fast(9), "fast(9) =", fast(9), "- underlying calls:", calls)
}

// Counter returns a function that counts up from one. The captured variable
// is shared across calls to the returned closure only.
func Counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// Adder returns a function that adds base to its argument.
func Adder(base int) func(int) int {
	return func(n int) int {
		return base + n
	}
}

// Memoize caches f's results by argument. Not safe for concurrent use.
func Memoize(f func(int) int) func(int) int {
	cache := make(map[int]int)
	return func(n int) int {
		if v, ok := cache[n]; ok {
			return v
		}
		v := f(n)
		cache[n] = v
		return v
	}
}
