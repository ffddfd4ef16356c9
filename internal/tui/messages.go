package tui

import (
	"github.com/mmcdole/shopr/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ResultsMsg carries the products of a completed page query
type ResultsMsg struct {
	Seq      uint64
	Page     int
	Products []domain.Product
}

// QueryFailedMsg signals that a page query failed
type QueryFailedMsg struct {
	Seq uint64
	Err error
}

// ProductOpenedMsg signals that a product page was handed to the browser
type ProductOpenedMsg struct {
	Product domain.Product
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
