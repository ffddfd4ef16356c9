package catalog

import (
	"net/url"
	"strconv"

	"github.com/mmcdole/shopr/internal/domain"
)

// Query parameter names understood by the catalog service
const (
	ParamText         = "q"
	ParamCategory     = "category"
	ParamMinPrice     = "min_price"
	ParamMaxPrice     = "max_price"
	ParamAvailability = "availability"
	ParamSkip         = "skip"
	ParamLimit        = "limit"
)

// BuildQuery encodes a product query as URL parameters.
// Every filter is always present; unset filters are sent as empty strings,
// which the service treats as "no filter".
func BuildQuery(q domain.ProductQuery) url.Values {
	c := q.Criteria

	values := url.Values{}
	values.Set(ParamText, c.Text)
	values.Set(ParamCategory, c.Category)
	values.Set(ParamMinPrice, domain.FormatPrice(c.MinPrice))
	values.Set(ParamMaxPrice, domain.FormatPrice(c.MaxPrice))
	values.Set(ParamAvailability, c.Availability)
	values.Set(ParamSkip, strconv.Itoa(q.Skip))
	values.Set(ParamLimit, strconv.Itoa(q.Limit))
	return values
}
