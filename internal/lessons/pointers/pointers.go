// Package pointers covers value semantics and when to reach for a pointer.
package pointers

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc pointers`.
const Doc = `# Pointers & Value Semantics

Goal: understand that Go passes copies, and pointers are how you share.

Key points:
- Every argument is copied; mutating a parameter mutates the copy.
- ` + "`&x`" + ` takes an address, ` + "`*p`" + ` dereferences; no pointer arithmetic.
- ` + "`new(T)`" + ` allocates a zeroed T and returns *T.
- Returning a pointer to a local is safe; escape analysis moves it to the heap.

Pitfalls:
- A nil pointer dereference panics; check before use.
- Copying large structs by value in hot paths when a pointer would do.

Run: ` + "`golearn pointers`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== arguments are copies ===")
	n := 10
	DoubleValue(n)
	fmt.Println("after DoubleValue: ", n)
	DoubleInPlace(&n)
	fmt.Println("after DoubleInPlace:", n)

	fmt.Println("=== addresses ===")
	p := &n
	fmt.Println("value:", n, "through pointer:", *p)
	*p = 99
	fmt.Println("assigned through pointer:", n)

	fmt.Println("=== new allocates a zeroed value ===")
	z := new(int)
	fmt.Println("*new(int) ==", *z)

	fmt.Println("=== returning a pointer to a local ===")
	c := NewCounter()
	c.Add(3)
	c.Add(4)
	fmt.Println("counter total:", c.Total())
}

// DoubleValue doubles its copy of n; the caller never sees it.
func DoubleValue(n int) {
	n *= 2
	_ = n
}

// DoubleInPlace doubles the int that p points at.
func DoubleInPlace(p *int) {
	*p *= 2
}

// Counter accumulates a total. Methods use a pointer receiver because they
// mutate the struct.
type Counter struct {
	total int
}

// NewCounter returns a counter ready to use. The local escapes to the heap.
func NewCounter() *Counter {
	return &Counter{}
}

// Add adds n to the running total.
func (c *Counter) Add(n int) {
	c.total += n
}

// Total returns the running total.
func (c *Counter) Total() int {
	return c.total
}
