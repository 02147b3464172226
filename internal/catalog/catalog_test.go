package catalog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_Invariants(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	slugs := make(map[string]bool, len(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Index, "indices are contiguous from 1")
		assert.NotEmpty(t, e.Slug, "entry %d has a slug", e.Index)
		assert.False(t, slugs[e.Slug], "slug %q is unique", e.Slug)
		slugs[e.Slug] = true
		assert.NotEmpty(t, e.Title, "entry %q has a title", e.Slug)
		assert.NotEmpty(t, e.Doc, "entry %q has notes", e.Slug)
		assert.NotNil(t, e.Run, "entry %q has an action", e.Slug)
	}
}

func TestNew_BuildsWithoutError(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, len(Entries()), r.Len())
}

func TestMust_DoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() { Must() })
}

func TestEveryEntryResolvesByIndexAndSlug(t *testing.T) {
	r := Must()

	for _, e := range r.Entries() {
		byIndex, err := r.Resolve(strconv.Itoa(e.Index))
		require.NoError(t, err)
		bySlug, err := r.Resolve(e.Slug)
		require.NoError(t, err)
		assert.Equal(t, byIndex.Slug, bySlug.Slug, "index %d and slug %q name one entry", e.Index, e.Slug)
	}
}
