package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekday_String(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Weekday(42)", Weekday(42).String(), "out of range falls back to the numeric form")
}

func TestWeekday_IsWeekend(t *testing.T) {
	assert.False(t, Monday.IsWeekend())
	assert.False(t, Friday.IsWeekend())
	assert.True(t, Saturday.IsWeekend())
	assert.True(t, Sunday.IsWeekend())
}

func TestByteSizes(t *testing.T) {
	assert.Equal(t, 1<<10, KB)
	assert.Equal(t, 1<<20, MB)
	assert.Equal(t, 1<<30, GB)
}
