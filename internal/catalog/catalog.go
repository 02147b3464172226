// Package catalog declares the lesson table: every lesson in teaching order.
// Adding a lesson is a data append here plus its package under
// internal/lessons; the dispatcher never changes.
package catalog

import (
	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/basictypes"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/closures"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/collections"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/constants"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/controlflow"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/deferrecover"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/errorhandling"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/functions"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/generics"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/helloworld"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/interfaces"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/methods"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/packages"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/pointers"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/reflection"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/slices"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/stringsrunes"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/structs"
	"github.com/FelixChenT/go-learn-kimi/internal/lessons/variables"
)

// Entries returns the full lesson table in teaching order.
func Entries() []lesson.Entry {
	return []lesson.Entry{
		{Index: 1, Slug: "hello-world", Title: "Hello, World & Program Layout", Doc: helloworld.Doc, Run: helloworld.Run},
		{Index: 2, Slug: "variables", Title: "Variables & Zero Values", Doc: variables.Doc, Run: variables.Run},
		{Index: 3, Slug: "types", Title: "Basic & Composite Types", Doc: basictypes.Doc, Run: basictypes.Run},
		{Index: 4, Slug: "functions", Title: "Functions & Multiple Returns", Doc: functions.Doc, Run: functions.Run},
		{Index: 5, Slug: "control-flow", Title: "if / for / switch", Doc: controlflow.Doc, Run: controlflow.Run},
		{Index: 6, Slug: "pointers", Title: "Pointers & Value Semantics", Doc: pointers.Doc, Run: pointers.Run},
		{Index: 7, Slug: "slices", Title: "Arrays & Slices", Doc: slices.Doc, Run: slices.Run},
		{Index: 8, Slug: "strings", Title: "Strings, Bytes & Runes", Doc: stringsrunes.Doc, Run: stringsrunes.Run},
		{Index: 9, Slug: "structs", Title: "Structs & Embedding", Doc: structs.Doc, Run: structs.Run},
		{Index: 10, Slug: "constants", Title: "Constants & iota", Doc: constants.Doc, Run: constants.Run},
		{Index: 11, Slug: "methods", Title: "Methods & Receivers", Doc: methods.Doc, Run: methods.Run},
		{Index: 12, Slug: "interfaces", Title: "Interfaces & Satisfaction", Doc: interfaces.Doc, Run: interfaces.Run},
		{Index: 13, Slug: "generics", Title: "Generics & Constraints", Doc: generics.Doc, Run: generics.Run},
		{Index: 14, Slug: "errors", Title: "Errors & Wrapping", Doc: errorhandling.Doc, Run: errorhandling.Run},
		{Index: 15, Slug: "collections", Title: "Maps, Sets & Sorting", Doc: collections.Doc, Run: collections.Run},
		{Index: 16, Slug: "closures", Title: "Closures & Function Values", Doc: closures.Doc, Run: closures.Run},
		{Index: 17, Slug: "defer-recover", Title: "defer, panic & recover", Doc: deferrecover.Doc, Run: deferrecover.Run},
		{Index: 18, Slug: "packages", Title: "Packages, Imports & Visibility", Doc: packages.Doc, Run: packages.Run},
		{Index: 19, Slug: "reflection", Title: "Reflection & Struct Tags", Doc: reflection.Doc, Run: reflection.Run},
	}
}

// New builds the registry from the static lesson table.
func New() (*lesson.Registry, error) {
	return lesson.New(Entries())
}

// Must builds the registry and panics if the table violates its invariants.
// The table is compiled-in data, so a violation is a defect caught at
// startup, never a user-input condition.
func Must() *lesson.Registry {
	return lesson.Must(Entries())
}
