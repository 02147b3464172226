package lesson

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func noop() {}

func twoEntries() []Entry {
	return []Entry{
		{Index: 1, Slug: "hello", Title: "Hello World", Run: noop},
		{Index: 2, Slug: "vars", Title: "Variables", Run: noop},
	}
}

func TestNew_ValidTable(t *testing.T) {
	r, err := New(twoEntries())
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestNew_InvariantViolations(t *testing.T) {
	tests := []struct {
		name        string
		entries     []Entry
		errContains string
	}{
		{
			name:        "empty table",
			entries:     nil,
			errContains: "at least one entry",
		},
		{
			name: "index gap",
			entries: []Entry{
				{Index: 1, Slug: "a", Run: noop},
				{Index: 3, Slug: "b", Run: noop},
			},
			errContains: "contiguous",
		},
		{
			name: "index not starting at 1",
			entries: []Entry{
				{Index: 2, Slug: "a", Run: noop},
			},
			errContains: "contiguous",
		},
		{
			name: "duplicate index",
			entries: []Entry{
				{Index: 1, Slug: "a", Run: noop},
				{Index: 1, Slug: "b", Run: noop},
			},
			errContains: "contiguous",
		},
		{
			name: "duplicate slug",
			entries: []Entry{
				{Index: 1, Slug: "a", Run: noop},
				{Index: 2, Slug: "a", Run: noop},
			},
			errContains: "duplicate slug",
		},
		{
			name: "empty slug",
			entries: []Entry{
				{Index: 1, Slug: "", Run: noop},
			},
			errContains: "empty slug",
		},
		{
			name: "numeric slug",
			entries: []Entry{
				{Index: 1, Slug: "42", Run: noop},
			},
			errContains: "shadow index resolution",
		},
		{
			name: "nil run",
			entries: []Entry{
				{Index: 1, Slug: "a"},
			},
			errContains: "no run function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestMust_PanicsOnViolation(t *testing.T) {
	require.Panics(t, func() {
		Must([]Entry{{Index: 1, Slug: "a", Run: noop}, {Index: 1, Slug: "a", Run: noop}})
	})
}

func TestMust_ReturnsRegistry(t *testing.T) {
	r := Must(twoEntries())
	require.NotNil(t, r)
	assert.Equal(t, 2, r.Len())
}

func TestResolve_ByIndexAndSlugAgree(t *testing.T) {
	r := Must(twoEntries())

	byIndex, err := r.Resolve("2")
	require.NoError(t, err)
	bySlug, err := r.Resolve("vars")
	require.NoError(t, err)

	assert.Equal(t, byIndex.Index, bySlug.Index, "index and slug name the same entry")
	assert.Equal(t, byIndex.Slug, bySlug.Slug)
	assert.Equal(t, byIndex.Title, bySlug.Title)
}

func TestResolve_NotFound(t *testing.T) {
	r := Must(twoEntries())

	tests := []string{"does-not-exist", "3", "0", "-1", ""}
	for _, identifier := range tests {
		t.Run(fmt.Sprintf("identifier=%q", identifier), func(t *testing.T) {
			_, err := r.Resolve(identifier)
			require.Error(t, err)

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, identifier, nf.Identifier, "error names the unresolved identifier")
		})
	}
}

func TestResolve_NeverInvokesAction(t *testing.T) {
	invoked := 0
	r := Must([]Entry{{Index: 1, Slug: "hello", Title: "Hello", Run: func() { invoked++ }}})

	_, err := r.Resolve("hello")
	require.NoError(t, err)
	_, err = r.Resolve("1")
	require.NoError(t, err)
	_, err = r.Resolve("nope")
	require.Error(t, err)

	assert.Zero(t, invoked, "Resolve must not run the action")
}

func TestEntries_RegistrationOrderAndIdempotence(t *testing.T) {
	r := Must(twoEntries())

	first := r.Entries()
	second := r.Entries()

	require.Len(t, first, 2)
	for i, e := range first {
		assert.Equal(t, i+1, e.Index)
		assert.Equal(t, second[i].Slug, e.Slug, "repeated listing is identical")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	r := Must(twoEntries())

	mutated := r.Entries()
	mutated[0].Slug = "hijacked"

	fresh, err := r.Resolve("hello")
	require.NoError(t, err, "registry state unaffected by caller mutation")
	assert.Equal(t, "hello", fresh.Slug)
}

func TestSlugs_MatchesEntries(t *testing.T) {
	r := Must(twoEntries())
	assert.Equal(t, []string{"hello", "vars"}, r.Slugs())
}

// Property: for any valid table, every entry resolves identically through its
// index and through its slug, and unknown identifiers resolve to NotFound.
func TestResolve_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "n")
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{
				Index: i + 1,
				Slug:  fmt.Sprintf("topic-%c", 'a'+i),
				Title: fmt.Sprintf("Topic %d", i+1),
				Run:   noop,
			}
		}
		r, err := New(entries)
		if err != nil {
			rt.Fatalf("valid table rejected: %v", err)
		}

		pick := rapid.IntRange(1, n).Draw(rt, "pick")
		byIndex, err := r.Resolve(strconv.Itoa(pick))
		if err != nil {
			rt.Fatalf("index resolution failed: %v", err)
		}
		bySlug, err := r.Resolve(byIndex.Slug)
		if err != nil {
			rt.Fatalf("slug resolution failed: %v", err)
		}
		if byIndex.Index != bySlug.Index || byIndex.Slug != bySlug.Slug {
			rt.Fatalf("index %d and slug %q resolved to different entries", pick, byIndex.Slug)
		}

		miss := rapid.IntRange(n+1, n+100).Draw(rt, "miss")
		if _, err := r.Resolve(strconv.Itoa(miss)); err == nil {
			rt.Fatalf("out-of-range index %d resolved", miss)
		}
	})
}
