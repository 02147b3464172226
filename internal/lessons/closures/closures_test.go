package closures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_IndependentState(t *testing.T) {
	a, b := Counter(), Counter()

	assert.Equal(t, 1, a())
	assert.Equal(t, 2, a())
	assert.Equal(t, 1, b(), "each counter owns its state")
}

func TestAdder(t *testing.T) {
	addFive := Adder(5)
	assert.Equal(t, 8, addFive(3))
	assert.Equal(t, 15, addFive(10))
}

func TestMemoize(t *testing.T) {
	calls := 0
	f := Memoize(func(n int) int {
		calls++
		return n * n
	})

	assert.Equal(t, 81, f(9))
	assert.Equal(t, 81, f(9))
	assert.Equal(t, 1, calls, "second call hits the cache")

	assert.Equal(t, 16, f(4))
	assert.Equal(t, 2, calls)
}
