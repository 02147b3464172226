package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixChenT/go-learn-kimi/internal/catalog"
	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
)

// dispatchRegistry builds a two-lesson registry whose actions record their
// invocation counts, so tests can assert exactly which action ran.
func dispatchRegistry(t *testing.T) (*lesson.Registry, map[string]*int) {
	t.Helper()
	counts := map[string]*int{"hello": new(int), "vars": new(int)}
	reg := lesson.Must([]lesson.Entry{
		{Index: 1, Slug: "hello", Title: "Hello World", Doc: "# Hello", Run: func() { *counts["hello"]++ }},
		{Index: 2, Slug: "vars", Title: "Variables", Doc: "# Vars\nAll about variables.", Run: func() { *counts["vars"]++ }},
	})
	return reg, counts
}

// dispatch runs the command tree with args and captured output.
func dispatch(t *testing.T, reg *lesson.Registry, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(reg)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestDispatch_List(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	out, err := dispatch(t, reg, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, reg.Len(), "one row per entry")
	assert.Equal(t, "1\thello\tHello World", lines[0])
	assert.Equal(t, "2\tvars\tVariables", lines[1])
	assert.Zero(t, *counts["hello"], "listing runs no action")
	assert.Zero(t, *counts["vars"])
}

func TestDispatch_List_Idempotent(t *testing.T) {
	reg, _ := dispatchRegistry(t)

	first, err := dispatch(t, reg, "list")
	require.NoError(t, err)
	second, err := dispatch(t, reg, "list")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDispatch_NoArgs(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	out, err := dispatch(t, reg)
	require.Error(t, err, "missing identifier is a misuse, exit non-zero")
	assert.Contains(t, out, "Usage", "usage text is printed")
	assert.Zero(t, *counts["hello"])
	assert.Zero(t, *counts["vars"])
}

func TestDispatch_ByIndex(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	_, err := dispatch(t, reg, "1")
	require.NoError(t, err)

	assert.Equal(t, 1, *counts["hello"], "exactly the selected action runs, once")
	assert.Zero(t, *counts["vars"])
}

func TestDispatch_BySlug(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	_, err := dispatch(t, reg, "vars")
	require.NoError(t, err)

	assert.Equal(t, 1, *counts["vars"])
	assert.Zero(t, *counts["hello"])
}

func TestDispatch_IndexAndSlugAreEquivalent(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	_, err := dispatch(t, reg, "2")
	require.NoError(t, err)
	_, err = dispatch(t, reg, "vars")
	require.NoError(t, err)

	assert.Equal(t, 2, *counts["vars"], "both identifiers name the same entry")
	assert.Zero(t, *counts["hello"])
}

func TestDispatch_Unknown(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	_, err := dispatch(t, reg, "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"3"`, "the error names the identifier")
	assert.Contains(t, err.Error(), "hello, vars", "and lists the valid slugs")
	assert.Zero(t, *counts["hello"], "no action runs on a miss")
	assert.Zero(t, *counts["vars"])
}

func TestDispatch_UnknownSlug(t *testing.T) {
	reg, _ := dispatchRegistry(t)

	_, err := dispatch(t, reg, "does-not-exist")
	require.Error(t, err)

	var nf *lesson.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "does-not-exist", nf.Identifier)
}

func TestDispatch_Doc(t *testing.T) {
	reg, counts := dispatchRegistry(t)

	out, err := dispatch(t, reg, "doc", "vars", "--style", "dark", "--width", "60")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Vars")
	assert.Contains(t, plain, "All about variables.")
	assert.Zero(t, *counts["vars"], "doc never runs the action")
}

func TestDispatch_Doc_UnknownStyle(t *testing.T) {
	reg, _ := dispatchRegistry(t)

	_, err := dispatch(t, reg, "doc", "vars", "--style", "solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solarized")
}

func TestDispatch_Doc_Unknown(t *testing.T) {
	reg, _ := dispatchRegistry(t)

	_, err := dispatch(t, reg, "doc", "nope")
	require.Error(t, err)

	var nf *lesson.NotFoundError
	require.ErrorAs(t, err, &nf)
}

// The real catalog must dispatch end to end, not just the fixtures.
func TestDispatch_RealCatalogList(t *testing.T) {
	reg := catalog.Must()

	out, err := dispatch(t, reg, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, reg.Len())
	assert.Equal(t, "1\thello-world\tHello, World & Program Layout", lines[0])
}
