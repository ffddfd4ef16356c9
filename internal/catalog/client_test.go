package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shopr/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nil), srv
}

func TestSearchProducts_SendsQueryAndDecodes(t *testing.T) {
	var got url.Values
	var gotPath, gotRequestID string

	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Neem Soap","price":3.5,"category":"Personal Care","rating":4.5,"availability":"In Stock","image_url":"http://img/1.jpg"},
			{"name":"Rice","price":12,"category":"Grocery","rating":null}
		]`))
	})

	maxPrice := 10.0
	products, err := client.SearchProducts(context.Background(), domain.ProductQuery{
		Criteria: domain.SearchCriteria{Text: "soap", MaxPrice: &maxPrice},
		Skip:     0,
		Limit:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/products", gotPath)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "soap", got.Get("q"))
	assert.Equal(t, "", got.Get("min_price"))
	assert.Equal(t, "10", got.Get("max_price"))
	assert.Equal(t, "0", got.Get("skip"))
	assert.Equal(t, "10", got.Get("limit"))

	require.Len(t, products, 2)
	assert.Equal(t, "Neem Soap", products[0].Name)
	assert.Equal(t, "4.5 ★", products[0].RatingLabel())
	assert.Equal(t, "In Stock", products[0].AvailabilityLabel())
	assert.Equal(t, "http://img/1.jpg", products[0].Image())
	assert.Equal(t, "Rice", products[1].Name)
	assert.Equal(t, "N/A", products[1].RatingLabel())
	assert.Equal(t, "Available", products[1].AvailabilityLabel())
}

func TestSearchProducts_EmptyArray(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := client.SearchProducts(context.Background(), domain.ProductQuery{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearchProducts_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			name: "server error with message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Search failed"}`))
			},
			wantMsg: "Search failed",
		},
		{
			name: "bad request without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantMsg: "400",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"}`))
			},
			wantMsg: "failed to parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, tt.handler)

			products, err := client.SearchProducts(context.Background(), domain.ProductQuery{Limit: 10})
			require.Error(t, err)
			assert.Nil(t, products)
			assert.True(t, errors.Is(err, domain.ErrQueryFailed))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSearchProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := NewClient(addr, time.Second, nil)
	_, err := client.SearchProducts(context.Background(), domain.ProductQuery{Limit: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryFailed)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestPing(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Product Search API is running."))
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:5000///", 0, nil)
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}
