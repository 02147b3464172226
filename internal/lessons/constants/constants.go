// Package constants covers const declarations, iota, and enum-style types.
package constants

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc constants`.
const Doc = `# Constants & iota

Goal: declare compile-time constants and build enums with iota.

Key points:
- Constants are untyped by default and convert freely until given a type.
- ` + "`iota`" + ` counts from 0 within a const block; each line increments it.
- The enum idiom: a named integer type, an iota block, and a String method.
- Constant expressions are evaluated at compile time with arbitrary precision.

Pitfalls:
- Skipping iota values needs an explicit ` + "`_`" + ` line.
- A new const block resets iota to 0.

Run: ` + "`golearn constants`" + `
`

// Weekday is an enum built on iota. Monday is 0 so the zero value is a
// valid day.
type Weekday int

// Days of the week in order.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// IsWeekend reports whether d falls on the weekend.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// ByteSize constants via iota shifting.
const (
	_  = iota // skip the zero value
	KB = 1 << (10 * iota)
	MB
	GB
)

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== untyped constants ===")
	const big = 1 << 40
	fmt.Println("1<<40 as float64:", float64(big))

	fmt.Println("=== iota enums ===")
	for d := Monday; d <= Sunday; d++ {
		fmt.Printf("%d %-10s weekend=%t\n", int(d), d, d.IsWeekend())
	}

	fmt.Println("=== iota expressions ===")
	fmt.Println("KB:", KB, "MB:", MB, "GB:", GB)

	fmt.Println("=== out-of-range values still print ===")
	fmt.Println(Weekday(42))
}
