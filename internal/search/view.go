// Package search holds the state of the product search view: the criteria
// being edited, the committed query, the paginator and the current result set.
//
// The View performs no I/O. Operations that need data return a Query; the
// caller runs it and reports back through Apply or Fail with the query's
// sequence number. Only the most recently issued query may change the view,
// so a slow response can never overwrite a newer one.
package search

import (
	"github.com/mmcdole/shopr/internal/domain"
)

// DefaultPageSize is used when a view is created with a non-positive size
const DefaultPageSize = 10

// Status is the query lifecycle state of the view
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
)

// Query is a page request issued by the view
type Query struct {
	domain.ProductQuery
	Seq  uint64 // Sequence number; only the latest is applied
	Page int    // Page number the query was issued for
}

// View is the exclusively-owned state of one search screen
type View struct {
	criteria  domain.SearchCriteria // as edited in the form
	committed domain.SearchCriteria // as last submitted
	page      domain.PageState
	results   []domain.Product

	status  Status
	seq     uint64 // latest issued sequence number
	loaded  bool   // at least one query has succeeded
	lastErr error

	options map[domain.Field][]string
}

// NewView creates a view on page 1 with empty criteria
func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &View{
		page:    domain.PageState{Number: 1, Size: pageSize},
		results: []domain.Product{},
		options: make(map[domain.Field][]string),
	}
}

// SetOptions registers the known values for a free-text field (category,
// availability). Submitted text is resolved against them.
func (v *View) SetOptions(field domain.Field, options []string) {
	v.options[field] = options
}

// Options returns the known values for a field
func (v *View) Options(field domain.Field) []string {
	return v.options[field]
}

// UpdateCriteria sets a single field from form text. Numeric fields are
// coerced; empty text clears the bound. No query is issued.
func (v *View) UpdateCriteria(field domain.Field, value string) error {
	switch field {
	case domain.FieldText:
		v.criteria.Text = value
	case domain.FieldCategory:
		v.criteria.Category = value
	case domain.FieldAvailability:
		v.criteria.Availability = value
	case domain.FieldMinPrice, domain.FieldMaxPrice:
		price, err := domain.ParsePrice(value)
		if err != nil {
			return err
		}
		if field == domain.FieldMinPrice {
			v.criteria.MinPrice = price
		} else {
			v.criteria.MaxPrice = price
		}
	}
	return nil
}

// Submit commits the edited criteria and loads page 1
func (v *View) Submit() Query {
	v.criteria.Category = ResolveOption(v.criteria.Category, v.options[domain.FieldCategory])
	v.criteria.Availability = ResolveOption(v.criteria.Availability, v.options[domain.FieldAvailability])

	v.page.Number = 1
	v.committed = v.criteria
	return v.LoadPage()
}

// Reset clears every criterion and submits a fresh query
func (v *View) Reset() Query {
	v.criteria = domain.SearchCriteria{}
	return v.Submit()
}

// LoadPage issues a query for the current page of the committed criteria.
// The current results stay in place until the response arrives.
func (v *View) LoadPage() Query {
	v.seq++
	v.status = StatusLoading
	return Query{
		ProductQuery: domain.ProductQuery{
			Criteria: v.committed,
			Skip:     v.page.Skip(),
			Limit:    v.page.Size,
		},
		Seq:  v.seq,
		Page: v.page.Number,
	}
}

// NextPage advances one page. It is a no-op (returns false) when the last
// result set was short, which is taken to mean there are no more pages.
func (v *View) NextPage() (Query, bool) {
	if !v.HasNext() {
		return Query{}, false
	}
	v.page.Number++
	return v.LoadPage(), true
}

// PrevPage goes back one page. It is a no-op (returns false) on page 1.
func (v *View) PrevPage() (Query, bool) {
	if !v.HasPrev() {
		return Query{}, false
	}
	v.page.Number--
	return v.LoadPage(), true
}

// Apply installs the products of a completed query.
// Returns false, changing nothing, when seq is not the latest issued query.
func (v *View) Apply(seq uint64, products []domain.Product) bool {
	if seq != v.seq {
		return false
	}
	if products == nil {
		products = []domain.Product{}
	}
	v.results = products
	v.status = StatusIdle
	v.loaded = true
	v.lastErr = nil
	return true
}

// Fail records a failed query. Results, criteria and page are left untouched;
// LoadPage retries. Returns false when seq is stale.
func (v *View) Fail(seq uint64, err error) bool {
	if seq != v.seq {
		return false
	}
	v.status = StatusIdle
	v.lastErr = err
	return true
}

// HasNext reports whether NextPage would issue a query
func (v *View) HasNext() bool {
	return len(v.results) >= v.page.Size
}

// HasPrev reports whether PrevPage would issue a query
func (v *View) HasPrev() bool {
	return v.page.Number > 1
}

// Criteria returns the criteria as currently edited
func (v *View) Criteria() domain.SearchCriteria { return v.criteria }

// Committed returns the criteria of the last submit
func (v *View) Committed() domain.SearchCriteria { return v.committed }

// Page returns the paginator state
func (v *View) Page() domain.PageState { return v.page }

// Results returns the current result set (never nil)
func (v *View) Results() []domain.Product { return v.results }

// Status returns the query lifecycle state
func (v *View) Status() Status { return v.status }

// Loading reports whether a query is in flight
func (v *View) Loading() bool { return v.status == StatusLoading }

// Loaded reports whether any query has succeeded yet
func (v *View) Loaded() bool { return v.loaded }

// Err returns the diagnostic of the last failed query, cleared on success
func (v *View) Err() error { return v.lastErr }

// Seq returns the latest issued sequence number
func (v *View) Seq() uint64 { return v.seq }
