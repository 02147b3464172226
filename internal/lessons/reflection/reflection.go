// Package reflection covers runtime type inspection and struct tags.
package reflection

import (
	"fmt"
	"reflect"
	"strings"
)

// Doc is the lesson's notes, shown by `golearn doc reflection`.
const Doc = `# Reflection & Struct Tags

Goal: read types and struct tags at runtime, and know the price.

Key points:
- ` + "`reflect.TypeOf`" + ` and ` + "`reflect.ValueOf`" + ` cross from static to
  dynamic typing.
- Struct tags are just strings with a conventional format; ` + "`Tag.Get`" + `
  parses them.
- encoding/json and friends are built on exactly this machinery.
- Reflection trades compile-time safety and speed for generality; prefer
  generics or interfaces when they fit.

Pitfalls:
- Calling Value methods that do not match the Kind panics.
- Only exported fields are reachable for reading and setting.

Run: ` + "`golearn reflection`" + `
`

// Run prints the lesson's demonstrations.
func Run() {
	type User struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email,omitempty"`
		age   int    // unexported: invisible to tag readers
	}
	u := User{Name: "ada", Email: "ada@example.com", age: 36}

	fmt.Println("=== kinds and types ===")
	for _, v := range []any{42, "hi", []int{1}, u} {
		rt := reflect.TypeOf(v)
		fmt.Printf("%-20v kind=%v\n", rt, rt.Kind())
	}

	fmt.Println("=== struct tags ===")
	fmt.Println("json names:     ", TagNames(u, "json"))
	fmt.Println("validate names: ", TagNames(u, "validate"))

	fmt.Println("=== field values ===")
	fmt.Println("exported fields:", ExportedFields(u))
}

// TagNames returns the first comma-separated element of the named tag for
// every exported field of the struct v, in field order.
func TagNames(v any, tag string) []string {
	rt := reflect.TypeOf(v)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		raw, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(raw, ",")
		names = append(names, name)
	}
	return names
}

// ExportedFields maps exported field names of the struct v to their values.
func ExportedFields(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]any)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			continue
		}
		out[rt.Field(i).Name] = rv.Field(i).Interface()
	}
	return out
}
