package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// Inspector displays every field of the selected product
type Inspector struct {
	product  *domain.Product
	currency string
	width    int
	height   int
}

// NewInspector creates a new inspector component
func NewInspector(currency string) Inspector {
	return Inspector{currency: currency}
}

// SetProduct sets the product to display (nil clears)
func (i *Inspector) SetProduct(p *domain.Product) {
	i.product = p
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// HasProduct returns true if there is a product to display
func (i Inspector) HasProduct() bool {
	return i.product != nil
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder
	frameW, frameH := style.GetFrameSize()

	contentWidth := i.width - frameW - 1
	if contentWidth < 10 {
		contentWidth = 10
	}

	lines := []string{styles.AccentStyle.Render("Details"), ""}
	if i.product == nil {
		lines = append(lines, styles.DimStyle.Render("Nothing selected"))
	} else {
		lines = append(lines, i.renderProduct(*i.product, contentWidth)...)
	}

	maxLines := i.height - frameH
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(lines, "\n"))
}

func (i Inspector) renderProduct(p domain.Product, width int) []string {
	lines := []string{
		styles.ProductNameStyle.Render(styles.Truncate(p.Name, width)),
		"",
		detailRow("Price", styles.PriceStyle.Render(p.FormattedPrice(i.currency))),
		detailRow("Category", orDefault(p.Category, domain.RatingUnavailable)),
		detailRow("Rating", styles.RatingStyle.Render(p.RatingLabel())),
		detailRow("Status", availabilityStyle(p).Render(p.AvailabilityLabel())),
	}

	if p.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrap(p.Description, width)...)
	}

	if img := p.Image(); img != "" {
		lines = append(lines, "", styles.DimStyle.Render("Image"), styles.Truncate(img, width))
	}
	if link := p.Link(); link != "" {
		lines = append(lines, "", styles.DimStyle.Render("Link (o to open)"), styles.Truncate(link, width))
	}

	return lines
}

func detailRow(label, value string) string {
	return styles.DimStyle.Render(styles.Pad(label, 10)) + value
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// wrap breaks text into lines of at most width cells on word boundaries
func wrap(text string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	return strings.Split(wrapped, "\n")
}
