package domain

import "context"

// ProductQuery is one fully-resolved page request against the catalog
type ProductQuery struct {
	Criteria SearchCriteria
	Skip     int
	Limit    int
}

// CatalogRepository retrieves product pages from the Catalog Service.
// Results come back in the order the service chose; callers treat it as given.
type CatalogRepository interface {
	SearchProducts(ctx context.Context, q ProductQuery) ([]Product, error)
}

// HealthChecker reports whether the catalog is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// URLOpener opens a URL outside the application (e.g. a browser)
type URLOpener interface {
	Open(url string) error
}
