package stringsrunes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneCount(t *testing.T) {
	assert.Equal(t, 5, RuneCount("héllo"), "runes, not bytes")
	assert.Equal(t, 6, len("héllo"), "é is two bytes")
	assert.Equal(t, 2, RuneCount("世界"))
	assert.Equal(t, 0, RuneCount(""))
}

func TestReverseRunes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "cba"},
		{"héllo", "olléh"},
		{"世界", "界世"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseRunes(tt.in))
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome("racecar"))
	assert.True(t, IsPalindrome("上海自来水来自海上"), "multi-byte palindrome")
	assert.True(t, IsPalindrome(""))
	assert.False(t, IsPalindrome("golang"))
}
