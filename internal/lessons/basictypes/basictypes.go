// Package basictypes tours Go's scalar types and explicit conversions.
package basictypes

import (
	"fmt"
	"math"
)

// Doc is the lesson's notes, shown by `golearn doc types`.
const Doc = `# Basic & Composite Types

Goal: know the scalar types, their sizes, and why conversions are explicit.

Key points:
- Integers: int, int8..int64, uint variants; int is word-sized.
- float32/float64, complex64/complex128, bool, string, byte (=uint8), rune (=int32).
- There is no implicit numeric conversion; ` + "`float64(n)`" + ` is required.
- Conversions between integer sizes truncate; check range when narrowing.

Pitfalls:
- Mixing int and int64 in arithmetic does not compile.
- Float equality comparisons; compare against an epsilon instead.

Run: ` + "`golearn types`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== integers ===")
	var i8 int8 = 127
	var u8 uint8 = 255
	fmt.Println("int8 max:", i8, "uint8 max:", u8)

	fmt.Println("=== explicit conversions ===")
	n := 7
	half := float64(n) / 2
	fmt.Println("7 / 2 as ints:    ", n/2)
	fmt.Println("7 / 2 via float64:", half)

	fmt.Println("=== narrowing must be checked ===")
	for _, v := range []int{200, 300} {
		if b, ok := ToUint8(v); ok {
			fmt.Printf("%d fits in a byte: %d\n", v, b)
		} else {
			fmt.Printf("%d does not fit in a byte\n", v)
		}
	}

	fmt.Println("=== floats ===")
	fmt.Println("0.1 + 0.2 ==", 0.1+0.2)
	fmt.Println("nearly equal to 0.3:", NearlyEqual(0.1+0.2, 0.3))

	fmt.Println("=== runes and bytes ===")
	s := "héllo"
	fmt.Println("len in bytes:", len(s), "- len in runes:", len([]rune(s)))
}

// ToUint8 narrows an int to a byte, reporting whether the value fits.
func ToUint8(n int) (uint8, bool) {
	if n < 0 || n > math.MaxUint8 {
		return 0, false
	}
	return uint8(n), true
}

// NearlyEqual compares floats within a small absolute tolerance.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
