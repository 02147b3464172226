// Package errorhandling covers sentinel errors, wrapping, and errors.Is/As.
package errorhandling

import (
	"errors"
	"fmt"
	"strconv"
)

// Doc is the lesson's notes, shown by `golearn doc errors`.
const Doc = `# Errors & Wrapping

Goal: return, wrap, and inspect errors the way the standard library does.

Key points:
- Errors are values; the last return slot by convention.
- Wrap with ` + "`fmt.Errorf(\"context: %w\", err)`" + ` to keep the cause.
- ` + "`errors.Is`" + ` matches sentinels through wrapping; ` + "`errors.As`" + `
  extracts typed errors.
- Define sentinel values with ` + "`errors.New`" + ` at package level.

Pitfalls:
- ` + "`%v`" + ` instead of ` + "`%w`" + ` breaks the unwrap chain.
- Comparing err.Error() strings instead of using Is/As.

Run: ` + "`golearn errors`" + `
`

// ErrNotPositive is the sentinel for inputs that must be > 0.
var ErrNotPositive = errors.New("value is not positive")

// ParseError carries the offending input through the error chain.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePositive parses s and requires the result to be positive.
func ParsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	if n <= 0 {
		return 0, &ParseError{Input: s, Err: ErrNotPositive}
	}
	return n, nil
}

// Halve wraps ParsePositive with more context, demonstrating %w chains.
func Halve(s string) (int, error) {
	n, err := ParsePositive(s)
	if err != nil {
		return 0, fmt.Errorf("halving: %w", err)
	}
	return n / 2, nil
}

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== errors are values ===")
	for _, input := range []string{"42", "-7", "banana"} {
		n, err := ParsePositive(input)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("parsed:", n)
	}

	fmt.Println("=== errors.Is sees through wrapping ===")
	_, err := Halve("-7")
	fmt.Println("wrapped error:    ", err)
	fmt.Println("is ErrNotPositive:", errors.Is(err, ErrNotPositive))

	fmt.Println("=== errors.As extracts the typed error ===")
	var pe *ParseError
	if errors.As(err, &pe) {
		fmt.Println("offending input:", pe.Input)
	}
}
