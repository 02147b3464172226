// Package stringsrunes covers the byte/rune distinction in Go strings.
package stringsrunes

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Doc is the lesson's notes, shown by `golearn doc strings`.
const Doc = `# Strings, Bytes & Runes

Goal: stop confusing len(s) with the number of characters.

Key points:
- A string is an immutable byte slice; bytes are usually UTF-8.
- ` + "`len`" + ` counts bytes; ` + "`utf8.RuneCountInString`" + ` counts runes.
- ` + "`range`" + ` over a string yields byte offsets and runes.
- Building strings in a loop: use ` + "`strings.Builder`" + `, not +=.

Pitfalls:
- Indexing s[i] gives a byte, not a character.
- Reversing a string byte-wise corrupts multi-byte runes.

Run: ` + "`golearn strings`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	s := "héllo, 世界"

	fmt.Println("=== bytes vs runes ===")
	fmt.Println("string:         ", s)
	fmt.Println("len (bytes):    ", len(s))
	fmt.Println("rune count:     ", RuneCount(s))

	fmt.Println("=== range yields offsets and runes ===")
	for i, r := range "héllo" {
		fmt.Printf("offset %d: %c\n", i, r)
	}

	fmt.Println("=== rune-aware reverse ===")
	fmt.Println("ReverseRunes(héllo):", ReverseRunes("héllo"))

	fmt.Println("=== palindromes ===")
	for _, w := range []string{"racecar", "上海自来水来自海上", "golang"} {
		fmt.Printf("%q palindrome: %t\n", w, IsPalindrome(w))
	}

	fmt.Println("=== strings.Builder ===")
	var b strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "go%d ", i)
	}
	fmt.Println(b.String())
}

// RuneCount counts the runes in s rather than its bytes.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ReverseRunes reverses s rune by rune, so multi-byte characters survive.
func ReverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// counting in runes.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
