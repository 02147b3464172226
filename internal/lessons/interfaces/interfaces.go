// Package interfaces covers implicit satisfaction and type switches.
package interfaces

import (
	"fmt"
	"math"
)

// Doc is the lesson's notes, shown by `golearn doc interfaces`.
const Doc = `# Interfaces & Satisfaction

Goal: design small interfaces and let types satisfy them implicitly.

Key points:
- A type satisfies an interface by having the methods; no "implements".
- Accept interfaces, return concrete structs.
- The empty interface ` + "`any`" + ` holds anything; get it back with a type
  switch or assertion.
- An interface value is nil only when both its type and value are nil.

Pitfalls:
- A nil *T stored in an interface makes the interface non-nil.
- Big interfaces are a design smell; io.Reader has one method.

Run: ` + "`golearn interfaces`" + `
`

// Shape is anything with an area. One method, per the io.Reader school.
type Shape interface {
	Area() float64
}

// Circle satisfies Shape.
type Circle struct {
	Radius float64
}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Square satisfies Shape.
type Square struct {
	Side float64
}

// Area returns side².
func (s Square) Area() float64 {
	return s.Side * s.Side
}

// TotalArea sums the area of any mix of shapes.
func TotalArea(shapes ...Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// Describe names the dynamic type held in v.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nothing"
	case int:
		return fmt.Sprintf("the int %d", x)
	case string:
		return fmt.Sprintf("the string %q", x)
	case Shape:
		return fmt.Sprintf("a shape with area %.2f", x.Area())
	default:
		return fmt.Sprintf("something of type %T", x)
	}
}

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== implicit satisfaction ===")
	shapes := []Shape{Circle{Radius: 1}, Square{Side: 2}}
	for _, s := range shapes {
		fmt.Printf("%T area: %.2f\n", s, s.Area())
	}
	fmt.Printf("total: %.2f\n", TotalArea(shapes...))

	fmt.Println("=== type switches ===")
	for _, v := range []any{42, "hello", Circle{Radius: 2}, 3.14, nil} {
		fmt.Println(Describe(v))
	}
}
