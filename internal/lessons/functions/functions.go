// Package functions covers multiple returns, variadics, and functions as
// values.
package functions

import (
	"errors"
	"fmt"
)

// Doc is the lesson's notes, shown by `golearn doc functions`.
const Doc = `# Functions & Multiple Returns

Goal: write functions the way the standard library does.

Key points:
- Multiple return values replace out-parameters; the last is usually an error.
- Variadic parameters (` + "`...int`" + `) receive a slice.
- Functions are first-class values and can be passed around.
- Named results exist but are best reserved for short functions.

Pitfalls:
- Ignoring the second return value loses the error or the "ok" flag.
- A variadic call with a slice needs the spread: ` + "`Sum(nums...)`" + `.

Run: ` + "`golearn functions`" + `
`

// ErrEmptyInput is returned when a computation needs at least one value.
var ErrEmptyInput = errors.New("empty input")

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== multiple returns ===")
	q, r := DivMod(17, 5)
	fmt.Println("17 divided by 5 is", q, "remainder", r)

	fmt.Println("=== error as the last return ===")
	if lo, hi, err := MinMax(3, 1, 4, 1, 5); err == nil {
		fmt.Println("min:", lo, "max:", hi)
	}
	if _, _, err := MinMax(); err != nil {
		fmt.Println("no values:", err)
	}

	fmt.Println("=== variadics ===")
	fmt.Println("Sum(1, 2, 3) =", Sum(1, 2, 3))
	nums := []int{10, 20, 30}
	fmt.Println("Sum(nums...) =", Sum(nums...))

	fmt.Println("=== functions as values ===")
	double := func(n int) int { return n * 2 }
	fmt.Println("Apply(double, 21) =", Apply(double, 21))
}

// DivMod returns the quotient and remainder of a/b.
func DivMod(a, b int) (int, int) {
	return a / b, a % b
}

// Sum adds any number of ints.
func Sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// MinMax returns the smallest and largest of its arguments.
func MinMax(nums ...int) (int, int, error) {
	if len(nums) == 0 {
		return 0, 0, ErrEmptyInput
	}
	lo, hi := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return lo, hi, nil
}

// Apply invokes f on n, demonstrating function parameters.
func Apply(f func(int) int, n int) int {
	return f(n)
}
