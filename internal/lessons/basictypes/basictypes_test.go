package basictypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUint8(t *testing.T) {
	tests := []struct {
		name   string
		in     int
		want   uint8
		wantOK bool
	}{
		{"fits", 200, 200, true},
		{"zero", 0, 0, true},
		{"max", 255, 255, true},
		{"too large", 256, 0, false},
		{"negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToUint8(tt.in)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(0.1+0.2, 0.3), "float sums compare within epsilon")
	assert.False(t, NearlyEqual(0.3, 0.31))
}
