// Package collections covers maps: lookup, the ok idiom, sets, and ordered
// iteration.
package collections

import (
	"fmt"
	"sort"
	"strings"
)

// Doc is the lesson's notes, shown by `golearn doc collections`.
const Doc = `# Maps, Sets & Sorting

Goal: use maps confidently, including the parts that surprise newcomers.

Key points:
- ` + "`m[k]`" + ` on a missing key returns the zero value; use ` + "`v, ok := m[k]`" + `.
- Iteration order is deliberately randomized; sort the keys for stable output.
- A set is ` + "`map[T]struct{}`" + `; the empty struct costs nothing.
- Maps are reference-like: passing one shares the underlying data.

Pitfalls:
- Writing to a nil map panics; make it first.
- Depending on range order in tests.

Run: ` + "`golearn collections`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== the ok idiom ===")
	ages := map[string]int{"ada": 36, "grace": 85}
	if age, ok := ages["ada"]; ok {
		fmt.Println("ada is", age)
	}
	missing, ok := ages["alan"]
	fmt.Println("missing key gives zero value:", missing, "ok:", ok)

	fmt.Println("=== word counting ===")
	counts := WordCount("the quick brown fox jumps over the lazy dog the end")
	for _, word := range SortedKeys(counts) {
		fmt.Printf("%-6s %d\n", word, counts[word])
	}

	fmt.Println("=== sets ===")
	seen := NewSet("go", "rust", "go")
	fmt.Println("set size:", len(seen), "- has go:", seen.Has("go"), "- has zig:", seen.Has("zig"))
}

// WordCount counts whitespace-separated words in s.
func WordCount(s string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(s) {
		counts[word]++
	}
	return counts
}

// SortedKeys returns the keys of m in ascending order, for stable iteration.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set is a string set on the empty-struct idiom.
type Set map[string]struct{}

// NewSet builds a set from its arguments, deduplicating.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}
