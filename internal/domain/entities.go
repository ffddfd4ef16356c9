package domain

import (
	"fmt"
	"strconv"
)

// Display defaults for fields the catalog may omit
const (
	RatingUnavailable   = "N/A"
	DefaultAvailability = "Available"
	RatingStar          = "★"
)

// Product is a single catalog listing. It is owned by the Catalog Service;
// the client never mutates one.
type Product struct {
	Name        string
	Price       float64
	Category    string
	Description string

	// Optional fields (nil when the service omits them or sends null)
	Rating       *float64
	Availability *string
	ImageURL     *string
	ProductURL   *string
}

// HasRating reports whether the product carries a usable rating.
// A zero rating is treated the same as a missing one.
func (p Product) HasRating() bool {
	return p.Rating != nil && *p.Rating != 0
}

// RatingValue returns the rating formatted without trailing zeros ("4.5", "4")
func (p Product) RatingValue() string {
	if !p.HasRating() {
		return RatingUnavailable
	}
	return strconv.FormatFloat(*p.Rating, 'f', -1, 64)
}

// RatingLabel returns the rating with a star glyph, or "N/A"
func (p Product) RatingLabel() string {
	if !p.HasRating() {
		return RatingUnavailable
	}
	return p.RatingValue() + " " + RatingStar
}

// AvailabilityLabel returns the availability text, defaulting to "Available"
func (p Product) AvailabilityLabel() string {
	if p.Availability == nil || *p.Availability == "" {
		return DefaultAvailability
	}
	return *p.Availability
}

// FormattedPrice renders the price with a fixed two-decimal currency format
func (p Product) FormattedPrice(symbol string) string {
	return fmt.Sprintf("%s%.2f", symbol, p.Price)
}

// Link returns the product page URL, or "" if the service did not send one
func (p Product) Link() string {
	if p.ProductURL == nil {
		return ""
	}
	return *p.ProductURL
}

// Image returns the image URL, or "" if the service did not send one
func (p Product) Image() string {
	if p.ImageURL == nil {
		return ""
	}
	return *p.ImageURL
}
