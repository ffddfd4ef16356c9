package service

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/mmcdole/shopr/internal/domain"
)

// ErrNoProductLink indicates the product has no usable product_url
var ErrNoProductLink = errors.New("product has no link")

// ProductService handles actions on a single product
type ProductService struct {
	opener domain.URLOpener
	logger *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(opener domain.URLOpener, logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		opener: opener,
		logger: logger,
	}
}

// Open opens the product's page in the system browser
func (s *ProductService) Open(p domain.Product) error {
	link := p.Link()
	if link == "" {
		return ErrNoProductLink
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		s.logger.Warn("refusing to open product link", "name", p.Name, "url", link)
		return ErrNoProductLink
	}

	s.logger.Info("opening product", "name", p.Name, "url", link)
	return s.opener.Open(link)
}
