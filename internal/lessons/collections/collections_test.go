package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	counts := WordCount("the quick the lazy the end")

	assert.Equal(t, 3, counts["the"])
	assert.Equal(t, 1, counts["quick"])
	assert.Zero(t, counts["missing"], "missing key yields the zero value")
}

func TestWordCount_Empty(t *testing.T) {
	assert.Empty(t, WordCount(""))
	assert.Empty(t, WordCount("   "))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestSet(t *testing.T) {
	s := NewSet("go", "rust", "go")

	assert.Len(t, s, 2, "duplicates collapse")
	assert.True(t, s.Has("go"))
	assert.True(t, s.Has("rust"))
	assert.False(t, s.Has("zig"))
}
