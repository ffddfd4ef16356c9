package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// Layout constants for the grid
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Header line at top of content area (criteria summary)
	HeaderLines = 1

	// Scroll indicator line at the bottom
	ScrollIndicatorLines = 1
)

// Grid shows the current result set as rows of product cards
type Grid struct {
	products []domain.Product
	columns  int
	currency string

	// Selection
	cursor    int
	rowOffset int

	// Dimensions
	width   int
	height  int
	focused bool

	header string

	// Filter state (local to the loaded page)
	filterActive bool
	filterInput  textinput.Model
	matches      []search.FilterMatch // nil = unfiltered
}

// NewGrid creates a new grid component
func NewGrid(columns int, currency string) Grid {
	ti := textinput.New()
	ti.Placeholder = "filter this page..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	if columns < 1 {
		columns = 1
	}

	return Grid{
		columns:     columns,
		currency:    currency,
		filterInput: ti,
	}
}

// SetProducts replaces the displayed products and resets selection and filter
func (g *Grid) SetProducts(products []domain.Product) {
	g.products = products
	g.cursor = 0
	g.rowOffset = 0
	g.clearFilter()
}

// Products returns the full, unfiltered product list
func (g Grid) Products() []domain.Product {
	return g.products
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetHeader sets the text shown above the cards
func (g *Grid) SetHeader(header string) {
	g.header = header
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// IsFocused returns the focus state
func (g Grid) IsFocused() bool {
	return g.focused
}

// Cursor returns the cursor position within the visible (filtered) items
func (g Grid) Cursor() int {
	return g.cursor
}

// SelectedProduct returns the product under the cursor
func (g Grid) SelectedProduct() (domain.Product, bool) {
	count := g.itemCount()
	if count == 0 || g.cursor >= count {
		return domain.Product{}, false
	}
	return g.products[g.mapIndex(g.cursor)], true
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() tea.Cmd {
	g.filterActive = true
	return g.filterInput.Focus()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if the filter input has focus
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (g *Grid) ClearFilter() {
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.matches = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
}

// applyFilter narrows the grid to products matching the filter text
func (g *Grid) applyFilter() {
	g.matches = search.FilterPage(g.filterInput.Value(), g.products)
	g.cursor = 0
	g.rowOffset = 0
}

// itemCount returns the number of visible items
func (g Grid) itemCount() int {
	if g.matches != nil {
		return len(g.matches)
	}
	return len(g.products)
}

// mapIndex maps a cursor position to the index in products
func (g Grid) mapIndex(i int) int {
	if g.matches != nil && i < len(g.matches) {
		return g.matches[i].Index
	}
	return i
}

// matchedIndexes returns the name highlight positions for a visible item
func (g Grid) matchedIndexes(i int) []int {
	if g.matches != nil && i < len(g.matches) {
		return g.matches[i].MatchedIndexes
	}
	return nil
}

// visibleRows returns how many card rows fit
func (g Grid) visibleRows() int {
	interior := g.height - BorderHeight - HeaderLines - ScrollIndicatorLines
	if g.filterActive {
		interior--
	}
	rows := interior / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns
	rows := g.visibleRows()
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Typing into the filter
	if g.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, GridKeys.Escape):
				g.clearFilter()
				return g, nil
			case key.Matches(keyMsg, GridKeys.Enter):
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil
			case keyMsg.Type == tea.KeyBackspace && g.filterInput.Value() == "":
				g.clearFilter()
				return g, nil
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	// Filter applied but blurred
	if g.filterActive {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, GridKeys.Escape):
				g.clearFilter()
				return g, nil
			case key.Matches(keyMsg, GridKeys.Filter):
				return g, g.filterInput.Focus()
			}
		}
	}

	count := g.itemCount()
	if count == 0 {
		return g, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, GridKeys.Right):
			if g.cursor < count-1 {
				g.cursor++
			}
		case key.Matches(keyMsg, GridKeys.Left):
			if g.cursor > 0 {
				g.cursor--
			}
		case key.Matches(keyMsg, GridKeys.Down):
			if g.cursor+g.columns < count {
				g.cursor += g.columns
			} else {
				g.cursor = count - 1
			}
		case key.Matches(keyMsg, GridKeys.Up):
			if g.cursor-g.columns >= 0 {
				g.cursor -= g.columns
			}
		case key.Matches(keyMsg, GridKeys.Home):
			g.cursor = 0
		case key.Matches(keyMsg, GridKeys.End):
			g.cursor = count - 1
		}
		g.ensureVisible()
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(g.renderContent())
}

// renderContent renders header, cards (or empty state) and filter bar
func (g Grid) renderContent() string {
	innerWidth := g.width - BorderWidth

	var lines []string
	lines = append(lines, styles.AccentStyle.Render(styles.Truncate(g.header, innerWidth)))

	if g.filterActive {
		lines = append(lines, g.filterInput.View())
	}

	count := g.itemCount()
	if count == 0 {
		msg := EmptyStateMessage
		if g.matches != nil {
			msg = "No matches on this page"
		}
		lines = append(lines, "", styles.EmptyStateStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	cardWidth := innerWidth / g.columns
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}

	rows := g.visibleRows()
	start := g.rowOffset * g.columns
	end := start + rows*g.columns
	if end > count {
		end = count
	}

	for rowStart := start; rowStart < end; rowStart += g.columns {
		var cards []string
		for i := rowStart; i < rowStart+g.columns && i < end; i++ {
			p := g.products[g.mapIndex(i)]
			selected := g.focused && i == g.cursor
			cards = append(cards, RenderCard(p, cardWidth, selected, g.currency, g.matchedIndexes(i)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end < count {
		lines = append(lines, styles.DimStyle.Render("↓ more"))
	}

	return strings.Join(lines, "\n")
}
