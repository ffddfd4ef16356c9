package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
)

const defaultQueryTimeout = 15 * time.Second

// SearchService runs view queries against the catalog
type SearchService struct {
	repo    domain.CatalogRepository
	timeout time.Duration
	logger  *slog.Logger
}

// NewSearchService creates a new search service.
// A non-positive timeout falls back to the default.
func NewSearchService(repo domain.CatalogRepository, timeout time.Duration, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &SearchService{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch executes one page query. Every failure is reported as
// domain.ErrQueryFailed so callers have a single error kind to handle.
func (s *SearchService) Fetch(ctx context.Context, q search.Query) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	s.logger.Debug("searching",
		"seq", q.Seq,
		"page", q.Page,
		"criteria", q.Criteria.Summary(),
		"skip", q.Skip,
		"limit", q.Limit)

	products, err := s.repo.SearchProducts(ctx, q.ProductQuery)
	if err != nil {
		s.logger.Warn("search failed", "seq", q.Seq, "page", q.Page, "error", err)
		if !errors.Is(err, domain.ErrQueryFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
		}
		return nil, err
	}

	s.logger.Debug("search complete",
		"seq", q.Seq,
		"results", len(products),
		"elapsed", time.Since(start))

	return products, nil
}
