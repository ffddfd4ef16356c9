package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/tui/components"
)

func TestRunPlain_FirstPage(t *testing.T) {
	s := &fakeSearcher{products: makeProducts(10)}
	view := search.NewView(10)
	require.NoError(t, view.UpdateCriteria(domain.FieldText, "soap"))

	var buf bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), &buf, s, view, 1, "$"))

	out := buf.String()
	assert.Contains(t, out, `"soap" · page 1`)
	assert.Contains(t, out, "Product 0  $1.00")
	assert.Contains(t, out, "More results: --page 2")
	assert.Len(t, s.queries, 1)
}

func TestRunPlain_WalksToPage(t *testing.T) {
	s := &fakeSearcher{products: makeProducts(10)}
	view := search.NewView(10)

	var buf bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), &buf, s, view, 3, "$"))

	require.Len(t, s.queries, 3)
	assert.Equal(t, 20, s.last(t).Skip)
	assert.Contains(t, buf.String(), "page 3")
}

func TestRunPlain_StopsAtShortPage(t *testing.T) {
	s := &fakeSearcher{products: makeProducts(4)}
	view := search.NewView(10)

	var buf bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), &buf, s, view, 5, "$"))

	assert.Len(t, s.queries, 1)
	assert.Contains(t, buf.String(), "page 1")
	assert.NotContains(t, buf.String(), "More results")
}

func TestRunPlain_Empty(t *testing.T) {
	s := &fakeSearcher{products: []domain.Product{}}

	var buf bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), &buf, s, search.NewView(10), 1, "$"))
	assert.Contains(t, buf.String(), components.EmptyStateMessage)
}

func TestRunPlain_Failure(t *testing.T) {
	s := &fakeSearcher{err: domain.ErrQueryFailed}

	var buf bytes.Buffer
	err := RunPlain(context.Background(), &buf, s, search.NewView(10), 1, "$")
	assert.True(t, errors.Is(err, domain.ErrQueryFailed))
	assert.Empty(t, buf.String())
}
