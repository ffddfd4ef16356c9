package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrQueryFailed indicates a catalog query did not produce a result set
	// (non-2xx response or malformed body). Network failures wrap it too.
	ErrQueryFailed = errors.New("catalog query failed")

	// ErrServerOffline indicates the catalog service is unreachable
	ErrServerOffline = errors.New("catalog service is unreachable")

	// ErrInvalidPrice indicates a price field could not be read as a number
	ErrInvalidPrice = errors.New("price must be a number")
)
