package domain

import (
	"strconv"
	"strings"
)

// Field identifies one editable search criterion
type Field int

const (
	FieldText Field = iota
	FieldCategory
	FieldMinPrice
	FieldMaxPrice
	FieldAvailability
)

// Fields lists every criterion in form order
var Fields = []Field{FieldText, FieldCategory, FieldMinPrice, FieldMaxPrice, FieldAvailability}

// String returns the form label for the field
func (f Field) String() string {
	switch f {
	case FieldText:
		return "Search"
	case FieldCategory:
		return "Category"
	case FieldMinPrice:
		return "Min $"
	case FieldMaxPrice:
		return "Max $"
	case FieldAvailability:
		return "Availability"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether the field is coerced to a number
func (f Field) IsNumeric() bool {
	return f == FieldMinPrice || f == FieldMaxPrice
}

// SearchCriteria is the user-entered filter state.
// A nil price bound means unbounded; empty strings mean "any".
type SearchCriteria struct {
	Text         string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	Availability string
}

// Value returns the text form of a field, as it would be shown in the form
func (c SearchCriteria) Value(f Field) string {
	switch f {
	case FieldText:
		return c.Text
	case FieldCategory:
		return c.Category
	case FieldMinPrice:
		return FormatPrice(c.MinPrice)
	case FieldMaxPrice:
		return FormatPrice(c.MaxPrice)
	case FieldAvailability:
		return c.Availability
	default:
		return ""
	}
}

// IsEmpty returns true when no criterion is set
func (c SearchCriteria) IsEmpty() bool {
	return c.Text == "" && c.Category == "" && c.MinPrice == nil && c.MaxPrice == nil && c.Availability == ""
}

// Summary returns a short human-readable description of the criteria
func (c SearchCriteria) Summary() string {
	var parts []string
	if c.Text != "" {
		parts = append(parts, strconv.Quote(c.Text))
	}
	if c.Category != "" {
		parts = append(parts, c.Category)
	}
	if c.Availability != "" {
		parts = append(parts, c.Availability)
	}
	switch {
	case c.MinPrice != nil && c.MaxPrice != nil:
		parts = append(parts, "$"+FormatPrice(c.MinPrice)+"-$"+FormatPrice(c.MaxPrice))
	case c.MinPrice != nil:
		parts = append(parts, ">= $"+FormatPrice(c.MinPrice))
	case c.MaxPrice != nil:
		parts = append(parts, "<= $"+FormatPrice(c.MaxPrice))
	}
	if len(parts) == 0 {
		return "All products"
	}
	return strings.Join(parts, " · ")
}

// ParsePrice coerces form text into a price bound.
// Empty (or whitespace) text yields nil, meaning unbounded.
func ParsePrice(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	return &v, nil
}

// FormatPrice renders a price bound for the wire and the form ("" when unbounded)
func FormatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// PageState tracks the paginator position. Size is fixed for the lifetime of a view.
type PageState struct {
	Number int
	Size   int
}

// Skip returns the offset of the first item on the current page
func (p PageState) Skip() int {
	return (p.Number - 1) * p.Size
}
