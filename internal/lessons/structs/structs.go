// Package structs covers struct literals, comparison, and embedding.
package structs

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc structs`.
const Doc = `# Structs & Embedding

Goal: model data with structs and reuse behavior through embedding.

Key points:
- Field-name literals ` + "`Point{X: 1, Y: 2}`" + ` survive field reordering.
- Structs with comparable fields compare with ==.
- Embedding promotes the inner type's fields and methods; it is
  composition, not inheritance.
- The zero value of a struct is the zero of every field.

Pitfalls:
- Positional literals break when the struct grows a field.
- An embedded method still receives the inner type, not the outer one.

Run: ` + "`golearn structs`" + `
`

// Point is a 2D coordinate.
type Point struct {
	X, Y int
}

// Translate returns p moved by dx and dy. Value receiver: Point is tiny and
// the method does not mutate.
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Labeled embeds Point and promotes its fields and methods.
type Labeled struct {
	Point
	Label string
}

// Describe renders the label and coordinates.
func (l Labeled) Describe() string {
	return fmt.Sprintf("%s at (%d, %d)", l.Label, l.X, l.Y)
}

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== literals and zero value ===")
	var origin Point
	p := Point{X: 3, Y: 4}
	fmt.Println("zero value:", origin)
	fmt.Println("literal:   ", p)

	fmt.Println("=== comparison ===")
	fmt.Println("Point{3,4} == Point{3,4}:", p == Point{X: 3, Y: 4})

	fmt.Println("=== methods return new values ===")
	moved := p.Translate(1, 1)
	fmt.Println("translated:", moved, "original untouched:", p)

	fmt.Println("=== embedding ===")
	l := Labeled{Point: Point{X: 2, Y: 2}, Label: "base"}
	fmt.Println(l.Describe())
	fmt.Println("promoted field X:", l.X)
	fmt.Println("promoted method: ", l.Translate(1, 0))
}
