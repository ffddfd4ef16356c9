package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
)

type fakeCatalog struct {
	got      domain.ProductQuery
	products []domain.Product
	err      error
	deadline bool
}

func (f *fakeCatalog) SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	f.got = q
	_, f.deadline = ctx.Deadline()
	return f.products, f.err
}

func TestSearchService_Fetch(t *testing.T) {
	repo := &fakeCatalog{products: []domain.Product{{Name: "Neem Soap", Price: 3.5}}}
	svc := NewSearchService(repo, time.Second, nil)

	v := search.NewView(10)
	require.NoError(t, v.UpdateCriteria(domain.FieldText, "soap"))
	q := v.Submit()

	products, err := svc.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, repo.products, products)
	assert.Equal(t, q.ProductQuery, repo.got)
	assert.True(t, repo.deadline, "fetch should apply a timeout")
}

func TestSearchService_FetchWrapsErrors(t *testing.T) {
	repo := &fakeCatalog{err: errors.New("boom")}
	svc := NewSearchService(repo, 0, nil)

	_, err := svc.Fetch(context.Background(), search.NewView(10).LoadPage())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryFailed)
	assert.Contains(t, err.Error(), "boom")
}

func TestSearchService_FetchKeepsQueryFailed(t *testing.T) {
	inner := errors.Join(domain.ErrQueryFailed, domain.ErrServerOffline)
	svc := NewSearchService(&fakeCatalog{err: inner}, 0, nil)

	_, err := svc.Fetch(context.Background(), search.NewView(10).LoadPage())
	assert.Same(t, inner, err)
}

type recordingOpener struct {
	opened []string
}

func (r *recordingOpener) Open(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func TestProductService_Open(t *testing.T) {
	opener := &recordingOpener{}
	svc := NewProductService(opener, nil)

	link := "https://shop.example/p/1"
	require.NoError(t, svc.Open(domain.Product{Name: "Soap", ProductURL: &link}))
	assert.Equal(t, []string{link}, opener.opened)

	assert.ErrorIs(t, svc.Open(domain.Product{Name: "No link"}), ErrNoProductLink)

	bad := "file:///etc/passwd"
	assert.ErrorIs(t, svc.Open(domain.Product{Name: "Bad", ProductURL: &bad}), ErrNoProductLink)
	assert.Len(t, opener.opened, 1)
}
