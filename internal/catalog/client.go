package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/nikolayk812/cart-pricing/internal/logger"
	"github.com/nikolayk812/cart-pricing/internal/port"
	"github.com/nikolayk812/cart-pricing/internal/result"
	"github.com/nikolayk812/cart-pricing/internal/validation"
)

const (
	jsonExtension   = ".json"
	requestIDHeader = "X-Request-ID"

	DefaultMaxBodyBytes int64 = 1 << 20 // 1MB
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks products up by name in a static JSON catalog laid out as
// {baseURL}{lowercase name}.json. It keeps no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL      string
	doer         Doer
	maxBodyBytes int64
	log          *logger.Logger
}

var _ port.ProductCatalog = (*Client)(nil)

type Option func(*Client)

func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

type clientParams struct {
	BaseURL string `json:"baseURL" validate:"notblank,endswith=/"`
}

func NewClient(baseURL string, doer Doer, opts ...Option) (*Client, error) {
	if validation.IsNil(doer) {
		return nil, validation.Failf("httpClient is required")
	}
	if err := validation.Struct(clientParams{BaseURL: baseURL}); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:      baseURL,
		doer:         doer,
		maxBodyBytes: DefaultMaxBodyBytes,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ctx := c.log.WithField(context.Background(), "base_url", baseURL)
	c.log.Info(ctx, "catalog client initialized")

	return c, nil
}

// FetchProduct performs exactly one GET for name. Failures are returned as a
// *FetchError inside the result, never raised.
func (c *Client) FetchProduct(ctx context.Context, name string) result.Result[domain.Product] {
	product, err := c.fetch(ctx, name)

	return result.From(product, err).
		OnSuccess(func(p domain.Product) {
			ctx := c.log.WithFields(ctx, map[string]any{
				"product": p.Name,
				"price":   p.Price.String(),
			})
			c.log.Info(ctx, "fetched product")
		}).
		OnFailure(func(err error) {
			ctx := c.log.WithField(ctx, "product", name)
			c.log.Error(ctx, "failed to fetch product", err)
		})
}

// GetProduct is FetchProduct for callers that want a plain error.
func (c *Client) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	product, err := c.FetchProduct(ctx, name).Get()
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("failed to fetch product: %s: %w", name, err)
	}

	return product, nil
}

func (c *Client) productURL(name string) string {
	return c.baseURL + strings.ToLower(name) + jsonExtension
}

func (c *Client) fetch(ctx context.Context, name string) (domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Product{}, &FetchError{Kind: KindInvalidInput, Product: name}
	}

	url := c.productURL(name)
	requestID := uuid.NewString()

	ctx = c.log.WithFields(ctx, map[string]any{
		"url":        url,
		"request_id": requestID,
	})
	c.log.Debug(ctx, "fetching product")

	req, err := newRequest(ctx, url, requestID)
	if err != nil {
		return domain.Product{}, &FetchError{Kind: KindInvalidInput, Product: name, URL: url, Err: err}
	}

	body, err := c.get(req)
	if err != nil {
		return domain.Product{}, c.fetchError(err, name, url)
	}

	if int64(len(body)) > c.maxBodyBytes {
		return domain.Product{}, &FetchError{
			Kind:    KindParse,
			Product: name,
			URL:     url,
			Err:     fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes),
		}
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return domain.Product{}, &FetchError{Kind: KindEmptyResponse, Product: name, URL: url}
	}

	title, price, err := parsePayload(body)
	if err != nil {
		return domain.Product{}, &FetchError{Kind: KindParse, Product: name, URL: url, Err: err}
	}

	product, err := domain.NewProduct(title, price)
	if err != nil {
		return domain.Product{}, &FetchError{Kind: KindInvalidProduct, Product: name, URL: url, Err: err}
	}

	return product, nil
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func newRequest(ctx context.Context, url, requestID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	return req, nil
}

func (c *Client) get(req *http.Request) ([]byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doer.Do: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError{code: resp.StatusCode}
	}

	// one byte past the limit tells an oversized body from one that fits exactly
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return body, nil
}

func (c *Client) fetchError(err error, name, url string) *FetchError {
	var status statusError
	if errors.As(err, &status) {
		return &FetchError{Kind: KindHTTP, Product: name, URL: url, StatusCode: status.code}
	}
	return &FetchError{Kind: KindNetwork, Product: name, URL: url, Err: err}
}
