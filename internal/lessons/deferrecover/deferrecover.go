// Package deferrecover covers defer ordering, panic, and recover.
package deferrecover

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc defer-recover`.
const Doc = `# defer, panic & recover

Goal: clean up reliably with defer, and know the narrow place recover
belongs.

Key points:
- Deferred calls run LIFO when the function returns, however it returns.
- Arguments to a deferred call are evaluated at the defer statement.
- panic unwinds the stack; recover inside a deferred function stops it.
- recover is for package boundaries, not routine control flow.

Pitfalls:
- defer inside a loop runs at function end, not loop-iteration end.
- recover outside a deferred function returns nil and does nothing.

Run: ` + "`golearn defer-recover`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== LIFO ordering ===")
	func() {
		for i := 1; i <= 3; i++ {
			defer fmt.Println("deferred:", i)
		}
		fmt.Println("function body done")
	}()

	fmt.Println("=== arguments evaluate at the defer statement ===")
	func() {
		n := 1
		defer fmt.Println("captured n:", n)
		n = 99
		fmt.Println("final n:   ", n)
	}()

	fmt.Println("=== recover converts a panic to an error ===")
	for _, b := range []int{2, 0} {
		q, err := SafeDivide(10, b)
		if err != nil {
			fmt.Println("recovered:", err)
			continue
		}
		fmt.Println("10 /", b, "=", q)
	}
}

// SafeDivide divides a by b, converting the division-by-zero panic into an
// error at this package boundary.
func SafeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dividing %d by %d: %v", a, b, r)
		}
	}()
	q = a / b
	return q, nil
}
