// Package methods covers receivers: value vs pointer, and method values.
package methods

import (
	"fmt"
	"math"
)

// Doc is the lesson's notes, shown by `golearn doc methods`.
const Doc = `# Methods & Receivers

Goal: choose between value and pointer receivers deliberately.

Key points:
- A value receiver gets a copy; a pointer receiver can mutate.
- One type should not mix receiver kinds without a reason.
- Methods can be defined on any named type, not just structs.
- A method value (` + "`r.Area`" + `) closes over its receiver.

Pitfalls:
- Calling a pointer-receiver method on an unaddressable value does not compile.
- Mutating inside a value receiver silently changes only the copy.

Run: ` + "`golearn methods`" + `
`

// Rectangle is a width/height pair.
type Rectangle struct {
	Width, Height float64
}

// Area uses a value receiver: read-only, small struct.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Scale uses a pointer receiver because it mutates the rectangle.
func (r *Rectangle) Scale(factor float64) {
	r.Width *= factor
	r.Height *= factor
}

// Celsius shows methods on a non-struct named type.
type Celsius float64

// ToFahrenheit converts the temperature.
func (c Celsius) ToFahrenheit() float64 {
	return float64(c)*9/5 + 32
}

// Round returns the temperature rounded to the nearest degree.
func (c Celsius) Round() Celsius {
	return Celsius(math.Round(float64(c)))
}

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== value receiver ===")
	r := Rectangle{Width: 3, Height: 4}
	fmt.Println("area:", r.Area())

	fmt.Println("=== pointer receiver mutates ===")
	r.Scale(2)
	fmt.Println("after Scale(2):", r, "area:", r.Area())

	fmt.Println("=== methods on named basic types ===")
	temp := Celsius(36.6)
	fmt.Printf("%.1f°C = %.2f°F (rounded: %v°C)\n", float64(temp), temp.ToFahrenheit(), temp.Round())

	fmt.Println("=== method values ===")
	area := r.Area // bound to r as it is now
	r.Scale(10)
	fmt.Println("bound method value:", area(), "- current area:", r.Area())
}
