package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		perPage  int
		expected int
	}{
		{"exact fit", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single partial page", 3, 10, 1},
		{"empty", 0, 10, 0},
		{"zero per page", 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTotalPages(tt.total, tt.perPage))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 40, CalculateOffset(5, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(-3, 10))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-7", 1))
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 0.0, ClampRating(-1))
	assert.Equal(t, 0.0, ClampRating(0))
	assert.Equal(t, 7.5, ClampRating(7.5))
	assert.Equal(t, 10.0, ClampRating(10))
	assert.Equal(t, 10.0, ClampRating(99))
}
