package controlflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFizzBuzz(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1"},
		{3, "Fizz"},
		{5, "Buzz"},
		{15, "FizzBuzz"},
		{7, "7"},
		{30, "FizzBuzz"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FizzBuzz(tt.n))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "excellent", Classify(95))
	assert.Equal(t, "excellent", Classify(90), "boundary is inclusive")
	assert.Equal(t, "pass", Classify(60))
	assert.Equal(t, "fail", Classify(59))
}

func TestSumEven(t *testing.T) {
	assert.Equal(t, 20, SumEven(10), "0+2+4+6+8")
	assert.Equal(t, 0, SumEven(0))
	assert.Equal(t, 0, SumEven(1))
}
