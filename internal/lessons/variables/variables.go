// Package variables covers declarations, zero values, and shadowing.
package variables

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc variables`.
const Doc = `# Variables & Zero Values

Goal: understand the declaration forms and what a variable holds before you
assign it.

Key points:
- ` + "`var x int`" + ` declares with the zero value; ` + "`x := 5`" + ` declares and infers.
- Every type has a useful zero: 0, "", false, nil.
- ` + "`:=`" + ` inside a block creates a new variable that shadows the outer one.
- Unlike constants, variables can be reassigned but never change type.

Pitfalls:
- ` + "`:=`" + ` in an inner scope when you meant ` + "`=`" + ` silently shadows.
- Unused local variables fail the build.

Run: ` + "`golearn variables`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== declaration forms ===")
	var a int
	var b = 10
	c := 20
	fmt.Println("var a int        ->", a)
	fmt.Println("var b = 10       ->", b)
	fmt.Println("c := 20          ->", c)

	fmt.Println("=== zero values ===")
	var (
		n int
		f float64
		s string
		t bool
		p *int
	)
	fmt.Printf("int=%d float64=%g string=%q bool=%t pointer=%v\n", n, f, s, t, p)

	fmt.Println("=== reassignment and swap ===")
	x, y := 1, 2
	fmt.Println("before:", x, y)
	x, y = Swap(x, y)
	fmt.Println("after: ", x, y)

	fmt.Println("=== shadowing ===")
	v := "outer"
	{
		v := "inner"
		fmt.Println("inside the block:", v)
	}
	fmt.Println("outside the block:", v)
}

// Swap returns its arguments in reverse order.
func Swap(a, b int) (int, int) {
	return b, a
}

// ZeroOf reports the zero value of a few basic kinds by name, demonstrating
// that zero values are well-defined, not garbage.
func ZeroOf(kind string) any {
	switch kind {
	case "int":
		var v int
		return v
	case "float64":
		var v float64
		return v
	case "string":
		var v string
		return v
	case "bool":
		var v bool
		return v
	default:
		return nil
	}
}
