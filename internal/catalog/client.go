package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/shopr/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "shopr/1.0"
	productsPath   = "/api/products"
	healthPath     = "/"

	// maxErrorBody caps how much of an error body is logged
	maxErrorBody = 512
)

// Client implements domain.CatalogRepository and domain.HealthChecker
// against the catalog's REST endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client.
// A zero timeout falls back to the package default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the normalized service URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("catalog request", "url", reqURL, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err, "request_id", requestID)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("catalog request error",
			"status", resp.StatusCode,
			"body", truncateBody(body),
			"request_id", requestID)
		return nil, statusError(resp.StatusCode, body)
	}

	return body, nil
}

// SearchProducts retrieves one page of products matching the query
func (c *Client) SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	body, err := c.doRequest(ctx, productsPath, BuildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}

	var dtos []ProductDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %w", domain.ErrQueryFailed, err)
	}

	return MapProducts(dtos), nil
}

// Ping probes the service health route
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRequest(ctx, healthPath, nil)
	return err
}

// statusError builds an error for a non-2xx response, surfacing the
// service's own message when it sent one
func statusError(status int, body []byte) error {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("unexpected status code %d: %s", status, e.Error)
	}
	return fmt.Errorf("unexpected status code: %d", status)
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
