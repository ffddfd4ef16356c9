package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/shopr/internal/domain"
)

var categories = []string{"All Products", "Grocery", "Personal Care"}

func TestResolveOption(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  ", ""},
		{"grocery", "Grocery"},
		{"GROCERY", "Grocery"},
		{"groc", "Grocery"},
		{"pers", "Personal Care"},
		{"Electronics", "Electronics"},
		{" Spices ", "Spices"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOption(tt.input, categories))
		})
	}
}

func TestResolveOption_NoOptions(t *testing.T) {
	assert.Equal(t, "groc", ResolveOption("groc", nil))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, categories, Suggest("", categories))
	assert.Equal(t, []string{"Grocery"}, Suggest("gro", categories))
	assert.Empty(t, Suggest("zzz", categories))
}

func TestFilterPage(t *testing.T) {
	products := []domain.Product{
		{Name: "Neem Soap"},
		{Name: "Basmati Rice"},
		{Name: "Sandalwood Soap Bar"},
	}

	assert.Nil(t, FilterPage("", products))

	matches := FilterPage("SOAP", products)
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
		assert.NotEmpty(t, m.MatchedIndexes)
	}
	assert.ElementsMatch(t, []int{0, 2}, indexes)

	assert.Empty(t, FilterPage("xyz", products))
}
