package main

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"booksdemo/internal/author"
	"booksdemo/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	data := generate(rand.New(rand.NewSource(1)), 20, 3)

	require.Len(t, data, 20)
	for _, a := range data {
		assert.LessOrEqual(t, utf8.RuneCountInString(a.Name), author.MaxNameLength)
		assert.False(t, a.Birthdate.IsZero())
		require.Len(t, a.Books, 3)
		for _, b := range a.Books {
			assert.LessOrEqual(t, utf8.RuneCountInString(b.Title), book.MaxTitleLength)
			assert.LessOrEqual(t, utf8.RuneCountInString(b.Description), book.MaxDescriptionLength)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewSource(42)), 5, 2)
	b := generate(rand.New(rand.NewSource(42)), 5, 2)

	assert.Equal(t, a, b)
}
