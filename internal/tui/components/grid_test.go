package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shopr/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{Name: "Neem Soap", Price: 3},
		{Name: "Electric Kettle", Price: 30},
		{Name: "Yoga Mat", Price: 25},
		{Name: "Desk Lamp", Price: 18},
		{Name: "Tea Sampler", Price: 12},
	}
}

func newTestGrid(products []domain.Product) Grid {
	g := NewGrid(3, "$")
	g.SetSize(100, 30)
	g.SetFocused(true)
	g.SetProducts(products)
	return g
}

func TestGrid_EmptyState(t *testing.T) {
	g := newTestGrid(nil)
	assert.Contains(t, g.View(), EmptyStateMessage)

	_, ok := g.SelectedProduct()
	assert.False(t, ok)

	g.SetProducts(sampleProducts())
	assert.NotContains(t, g.View(), EmptyStateMessage)
	assert.Contains(t, g.View(), "Neem Soap")
}

func TestGrid_Navigation(t *testing.T) {
	g := newTestGrid(sampleProducts())

	g, _ = g.Update(runes("l"))
	assert.Equal(t, 1, g.Cursor())

	g, _ = g.Update(runes("j"))
	assert.Equal(t, 4, g.Cursor())

	// Moving down from the last row stays on the last item
	g, _ = g.Update(runes("j"))
	assert.Equal(t, 4, g.Cursor())

	g, _ = g.Update(runes("k"))
	assert.Equal(t, 1, g.Cursor())

	g, _ = g.Update(runes("G"))
	assert.Equal(t, 4, g.Cursor())
	g, _ = g.Update(runes("g"))
	assert.Equal(t, 0, g.Cursor())

	g, _ = g.Update(runes("h"))
	assert.Equal(t, 0, g.Cursor())

	p, ok := g.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "Neem Soap", p.Name)
}

func TestGrid_IgnoresKeysWhenUnfocused(t *testing.T) {
	g := newTestGrid(sampleProducts())
	g.SetFocused(false)

	g, _ = g.Update(runes("l"))
	assert.Equal(t, 0, g.Cursor())
}

func TestGrid_Filter(t *testing.T) {
	g := newTestGrid(sampleProducts())

	g.ToggleFilter()
	require.True(t, g.IsFilterTyping())

	for _, r := range "kettle" {
		g, _ = g.Update(runes(string(r)))
	}

	p, ok := g.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "Electric Kettle", p.Name)
	assert.NotContains(t, g.View(), "Yoga Mat")

	// Enter keeps the filter but hands keys back to navigation
	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, g.IsFiltering())
	assert.False(t, g.IsFilterTyping())

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, g.IsFiltering())
	assert.Contains(t, g.View(), "Yoga Mat")
}

func TestGrid_FilterNoMatches(t *testing.T) {
	g := newTestGrid(sampleProducts())
	g.ToggleFilter()
	for _, r := range "zzz" {
		g, _ = g.Update(runes(string(r)))
	}

	_, ok := g.SelectedProduct()
	assert.False(t, ok)
	assert.Contains(t, g.View(), "No matches on this page")
}

func TestGrid_SetProductsClearsFilter(t *testing.T) {
	g := newTestGrid(sampleProducts())
	g.ToggleFilter()
	g, _ = g.Update(runes("y"))

	g.SetProducts(sampleProducts()[:2])
	assert.False(t, g.IsFiltering())
	assert.Equal(t, 0, g.Cursor())
	assert.Len(t, g.Products(), 2)
}
