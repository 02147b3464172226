// Package lesson defines the lesson registry: an ordered, immutable
// collection of runnable lesson entries resolved by numeric index or slug.
package lesson

import (
	"fmt"
	"strconv"
)

// Entry is one registered lesson: a stable index, a unique slug, a display
// title, markdown notes, and the zero-argument action that prints the
// lesson's demonstrations to stdout.
type Entry struct {
	Index int
	Slug  string
	Title string
	Doc   string
	Run   func()
}

// NotFoundError reports an identifier that matched no entry.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson %q not found", e.Identifier)
}

// Registry holds every entry in registration order. Build it once at startup
// with New or Must and share it read-only; it is never mutated afterwards.
type Registry struct {
	entries []Entry
	bySlug  map[string]int
}

// New validates the declaration table and builds a Registry from it.
// Invariants: at least one entry, indices exactly 1..N in declaration order,
// slugs non-empty and pairwise distinct, no slug that parses as a positive
// integer (it would be shadowed by index resolution), and a non-nil run
// function on every entry. A violation is a broken registration table, not a
// runtime condition.
func New(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("lesson: registry needs at least one entry")
	}

	bySlug := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Index != i+1 {
			return nil, fmt.Errorf("lesson: entry %q has index %d, want %d (indices must be contiguous from 1)", e.Slug, e.Index, i+1)
		}
		if e.Slug == "" {
			return nil, fmt.Errorf("lesson: entry %d has an empty slug", e.Index)
		}
		if n, err := strconv.Atoi(e.Slug); err == nil && n > 0 {
			return nil, fmt.Errorf("lesson: slug %q parses as a positive integer and would shadow index resolution", e.Slug)
		}
		if prev, exists := bySlug[e.Slug]; exists {
			return nil, fmt.Errorf("lesson: duplicate slug %q (entries %d and %d)", e.Slug, prev+1, e.Index)
		}
		if e.Run == nil {
			return nil, fmt.Errorf("lesson: entry %q has no run function", e.Slug)
		}
		bySlug[e.Slug] = i
	}

	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &Registry{entries: owned, bySlug: bySlug}, nil
}

// Must is New for static registration data. It panics on an invariant
// violation so a broken table aborts at startup with a diagnostic.
func Must(entries []Entry) *Registry {
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns every entry in registration order. The returned slice is a
// copy so caller mutation cannot affect registration state.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Slugs returns every slug in registration order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Slug
	}
	return out
}

// Resolve matches identifier against entry indices when it parses as a
// positive integer, and against slugs otherwise. It returns a *NotFoundError
// on a miss and never invokes the entry's run function.
func (r *Registry) Resolve(identifier string) (Entry, error) {
	if n, err := strconv.Atoi(identifier); err == nil && n > 0 {
		if n <= len(r.entries) {
			return r.entries[n-1], nil
		}
		return Entry{}, &NotFoundError{Identifier: identifier}
	}
	if i, ok := r.bySlug[identifier]; ok {
		return r.entries[i], nil
	}
	return Entry{}, &NotFoundError{Identifier: identifier}
}
