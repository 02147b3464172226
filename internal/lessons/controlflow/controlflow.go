// Package controlflow covers if, for, and switch: the only three.
package controlflow

import (
	"fmt"
	"strconv"
)

// Doc is the lesson's notes, shown by `golearn doc control-flow`.
const Doc = `# if / for / switch

Goal: use Go's three control structures idiomatically.

Key points:
- ` + "`for`" + ` is the only loop: C-style, while-style, and infinite.
- ` + "`if`" + ` can open with a short statement: ` + "`if v, ok := m[k]; ok { ... }`" + `.
- ` + "`switch`" + ` breaks by default; cases can be expressions and list values.
- ` + "`range`" + ` over a slice gives index and element.

Pitfalls:
- No parentheses around conditions, and braces are mandatory.
- ` + "`fallthrough`" + ` is explicit and almost never what you want.

Run: ` + "`golearn control-flow`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== the three loop forms ===")
	for i := 0; i < 3; i++ {
		fmt.Println("c-style:", i)
	}
	n := 0
	for n < 3 {
		n++
	}
	fmt.Println("while-style finished at:", n)

	fmt.Println("=== if with a short statement ===")
	if v, err := strconv.Atoi("42"); err == nil {
		fmt.Println("parsed:", v)
	}

	fmt.Println("=== switch ===")
	for _, score := range []int{95, 71, 42} {
		fmt.Printf("score %d -> %s\n", score, Classify(score))
	}

	fmt.Println("=== fizzbuzz ===")
	for i := 1; i <= 15; i++ {
		fmt.Print(FizzBuzz(i), " ")
	}
	fmt.Println()

	fmt.Println("=== range ===")
	fmt.Println("sum of evens below 10:", SumEven(10))
}

// FizzBuzz returns the fizzbuzz word for n.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Classify maps a score to a grade band.
func Classify(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 60:
		return "pass"
	default:
		return "fail"
	}
}

// SumEven adds the even numbers in [0, limit).
func SumEven(limit int) int {
	total := 0
	for i := 0; i < limit; i++ {
		if i%2 != 0 {
			continue
		}
		total += i
	}
	return total
}
