// Package helloworld is the first lesson: printing, fmt verbs, and how a Go
// program is laid out.
package helloworld

import "fmt"

// Doc is the lesson's notes, shown by `golearn doc hello-world`.
const Doc = `# Hello, World & Program Layout

Goal: run your first Go program and understand where code lives.

Key points:
- Every executable starts at ` + "`func main`" + ` in package ` + "`main`" + `.
- ` + "`fmt.Println`" + ` writes a line to stdout; ` + "`fmt.Printf`" + ` formats with verbs like %s, %d, %q.
- One directory = one package; the import path is the module path plus the directory.

Pitfalls:
- Unused imports and variables are compile errors, not warnings.
- ` + "`gofmt`" + ` is not optional in practice; let the tool own the formatting.

Run: ` + "`golearn hello-world`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	fmt.Println("Hello, World!")

	fmt.Println("=== formatted printing ===")
	fmt.Printf("plain: %s\n", Greeting("gopher"))
	fmt.Printf("quoted: %q\n", Greeting("gopher"))
	fmt.Printf("numbered: %d gophers\n", 3)

	fmt.Println("=== multiple values ===")
	lang, year := "Go", 2009
	fmt.Println(lang, "appeared in", year)
}

// Greeting builds the canonical greeting for a name.
func Greeting(name string) string {
	if name == "" {
		name = "World"
	}
	return fmt.Sprintf("Hello, %s!", name)
}
