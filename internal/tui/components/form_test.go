package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shopr/internal/domain"
)

func newTestForm() SearchForm {
	f := NewSearchForm(map[domain.Field][]string{
		domain.FieldCategory: {"Electronics", "Grocery", "Home"},
	})
	f.SetWidth(80)
	f.Focus()
	return f
}

func TestSearchForm_Typing(t *testing.T) {
	f := newTestForm()
	require.Equal(t, domain.FieldText, f.FocusedField())

	var action FormAction
	f, _, action = f.Update(runes("s"))
	assert.Equal(t, FormEdited, action)
	f, _, _ = f.Update(runes("o"))
	assert.Equal(t, "so", f.Value(domain.FieldText))
}

func TestSearchForm_FieldCycling(t *testing.T) {
	f := newTestForm()

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.FieldCategory, f.FocusedField())

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.FieldText, f.FocusedField())

	// Wraps around to the last field
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.FieldAvailability, f.FocusedField())
}

func TestSearchForm_Actions(t *testing.T) {
	f := newTestForm()

	_, _, action := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FormSubmit, action)

	_, _, action = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FormDismiss, action)

	f.Blur()
	_, _, action = f.Update(runes("x"))
	assert.Equal(t, FormNone, action)
}

func TestSearchForm_SetValues(t *testing.T) {
	f := newTestForm()
	f.SetInvalid(domain.FieldMinPrice, true)
	require.True(t, f.HasInvalid())

	maxPrice := 10.0
	f.SetValues(domain.SearchCriteria{Text: "soap", MaxPrice: &maxPrice})
	assert.Equal(t, "soap", f.Value(domain.FieldText))
	assert.Equal(t, "", f.Value(domain.FieldMinPrice))
	assert.Equal(t, "10", f.Value(domain.FieldMaxPrice))
	assert.False(t, f.HasInvalid())
}

func TestSearchForm_StableHeight(t *testing.T) {
	f := newTestForm()
	assert.Equal(t, FormHeight, lipgloss.Height(f.View()))

	// Category shows option hints on the reserved line
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := f.View()
	assert.Equal(t, FormHeight, lipgloss.Height(view))
	assert.Contains(t, view, "Grocery")

	f.SetInvalid(domain.FieldMinPrice, true)
	view = f.View()
	assert.Equal(t, FormHeight, lipgloss.Height(view))
	assert.Contains(t, view, "not a number")
}
