package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidGenre(t *testing.T) {
	assert.True(t, IsValidGenre("Action"))
	assert.True(t, IsValidGenre("Sci-Fi"))
	assert.False(t, IsValidGenre("action"))
	assert.False(t, IsValidGenre("Cooking"))
	assert.False(t, IsValidGenre(""))
}

func TestInvalidGenres(t *testing.T) {
	assert.Nil(t, InvalidGenres(nil))
	assert.Nil(t, InvalidGenres([]string{"Drama", "Horror"}))
	assert.Equal(t, []string{"Cooking"}, InvalidGenres([]string{"Drama", "Cooking"}))
	assert.Equal(t, []string{"x", "y"}, InvalidGenres([]string{"x", "y"}))
}
