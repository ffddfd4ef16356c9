package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// EmptyStateMessage is shown instead of the grid when a page has no products
const EmptyStateMessage = "No products found. Try adjusting your search criteria."

// Card layout
const (
	// Border (2) plus horizontal padding (2)
	CardFrameWidth = 4

	// Name, price/category, rating/availability, plus top and bottom border
	CardHeight = 5

	MinCardWidth = 18
)

// RenderCard renders one product card at the given outer width.
// matched holds name character positions to highlight (local filter hits).
func RenderCard(p domain.Product, width int, selected bool, currency string, matched []int) string {
	inner := width - CardFrameWidth
	if inner < 1 {
		inner = 1
	}

	name := highlightName(styles.Truncate(p.Name, inner), matched)

	price := styles.PriceStyle.Render(p.FormattedPrice(currency))
	categoryWidth := inner - lipgloss.Width(price) - 3 // badge padding + gap
	badges := price
	if p.Category != "" && categoryWidth > 0 {
		badges += " " + styles.CategoryBadgeStyle.Render(styles.Truncate(p.Category, categoryWidth))
	}

	rating := styles.RatingStyle.Render(p.RatingLabel())
	avail := availabilityStyle(p).Render(p.AvailabilityLabel())
	gap := inner - lipgloss.Width(rating) - lipgloss.Width(avail)
	if gap < 1 {
		gap = 1
	}
	meta := rating + strings.Repeat(" ", gap) + avail

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}

	return style.
		Width(width - 2). // lipgloss width excludes the border
		MaxHeight(CardHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, name, badges, meta))
}

// RenderPlainCard renders a product without styling, for non-terminal output
func RenderPlainCard(p domain.Product, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s", p.Name, p.FormattedPrice(currency))
	if p.Category != "" {
		fmt.Fprintf(&b, "  [%s]", p.Category)
	}
	fmt.Fprintf(&b, "\n  Rating: %s  ·  %s", p.RatingLabel(), p.AvailabilityLabel())
	if link := p.Link(); link != "" {
		fmt.Fprintf(&b, "\n  %s", link)
	}
	return b.String()
}

// availabilityStyle colors out-of-stock products differently
func availabilityStyle(p domain.Product) lipgloss.Style {
	if isUnavailable(p) {
		return styles.UnavailableStyle
	}
	return styles.AvailableStyle
}

func isUnavailable(p domain.Product) bool {
	label := strings.ToLower(p.AvailabilityLabel())
	return strings.Contains(label, "out of stock") || strings.Contains(label, "unavailable")
}

// highlightName renders the name with matched character positions emphasized
func highlightName(name string, matched []int) string {
	if len(matched) == 0 {
		return styles.ProductNameStyle.Render(name)
	}

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if hits[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(styles.ProductNameStyle.Render(string(r)))
		}
	}
	return b.String()
}
