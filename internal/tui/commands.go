package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
)

// Searcher executes page queries issued by the search view
type Searcher interface {
	Fetch(ctx context.Context, q search.Query) ([]domain.Product, error)
}

// ProductOpener opens a product's page outside the terminal
type ProductOpener interface {
	Open(p domain.Product) error
}

// Command factories for async operations

// FetchPageCmd runs a view query. The result is tagged with the query's
// sequence number so the view can drop it if a newer query was issued.
func FetchPageCmd(s Searcher, q search.Query) tea.Cmd {
	return func() tea.Msg {
		products, err := s.Fetch(context.Background(), q)
		if err != nil {
			return QueryFailedMsg{Seq: q.Seq, Err: err}
		}
		return ResultsMsg{Seq: q.Seq, Page: q.Page, Products: products}
	}
}

// OpenProductCmd opens the product link in the browser
func OpenProductCmd(o ProductOpener, p domain.Product) tea.Cmd {
	return func() tea.Msg {
		if err := o.Open(p); err != nil {
			return ErrMsg{Err: err, Context: "opening " + p.Name}
		}
		return ProductOpenedMsg{Product: p}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
