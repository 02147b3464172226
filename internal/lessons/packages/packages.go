// Package packages covers package layout, import paths, and the exported /
// unexported visibility rule.
package packages

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Doc is the lesson's notes, shown by `golearn doc packages`.
const Doc = `# Packages, Imports & Visibility

Goal: understand how code is organized and what the capital letter means.

Key points:
- One directory = one package; the package name is the last path element.
- An identifier is exported iff its first letter is upper case.
- ` + "`internal/`" + ` packages are importable only within the module.
- Import paths are module path + directory; there are no relative imports.

Pitfalls:
- Cyclic imports do not compile; invert the dependency or split a package.
- Stuttering names like ` + "`lesson.LessonEntry`" + `; the package name is
  part of the identifier.

Run: ` + "`golearn packages`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("=== visibility is spelled with a capital letter ===")
	names := []string{"Run", "Doc", "helper", "ParseAll", "x", "Über"}
	for _, name := range names {
		fmt.Printf("%-8s exported=%t\n", name, IsExported(name))
	}

	fmt.Println("=== package naming ===")
	fmt.Println(`good: lesson.Entry, bytes.Buffer  - bad: lesson.LessonEntry`)

	fmt.Println("=== this very program ===")
	fmt.Println("the dispatcher imports each lesson by its package path,")
	fmt.Println("e.g. internal/lessons/packages, and only Exported names cross over")
}

// IsExported reports whether name would be visible outside its package.
// Mirrors the rule the compiler applies: the first rune is upper case.
func IsExported(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
