package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/tui/components"
)

// RunPlain submits the view's criteria and writes the requested page as plain
// text. Pages are walked one at a time from page 1, stopping early when the
// catalog runs out of results.
func RunPlain(ctx context.Context, w io.Writer, s Searcher, view *search.View, page int, currency string) error {
	q := view.Submit()
	for {
		products, err := s.Fetch(ctx, q)
		if err != nil {
			view.Fail(q.Seq, err)
			return err
		}
		view.Apply(q.Seq, products)

		if view.Page().Number >= page {
			break
		}
		next, ok := view.NextPage()
		if !ok {
			break
		}
		q = next
	}

	_, err := io.WriteString(w, RenderPlain(view, currency))
	return err
}

// RenderPlain renders the current result set without styling
func RenderPlain(view *search.View, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s · page %d\n\n", view.Committed().Summary(), view.Page().Number)

	results := view.Results()
	if len(results) == 0 {
		b.WriteString(components.EmptyStateMessage + "\n")
		return b.String()
	}

	for _, p := range results {
		b.WriteString(components.RenderPlainCard(p, currency))
		b.WriteString("\n\n")
	}

	if view.HasNext() {
		fmt.Fprintf(&b, "More results: --page %d\n", view.Page().Number+1)
	}
	return b.String()
}
