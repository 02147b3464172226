package pointers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleInPlace(t *testing.T) {
	n := 10
	DoubleInPlace(&n)
	assert.Equal(t, 20, n, "mutation is visible through the pointer")
}

func TestDoubleValue_DoesNotMutateCaller(t *testing.T) {
	n := 10
	DoubleValue(n)
	assert.Equal(t, 10, n, "the callee works on a copy")
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, 0, c.Total(), "zero value is ready to use")

	c.Add(3)
	c.Add(4)
	assert.Equal(t, 7, c.Total())
}
