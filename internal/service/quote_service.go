package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/nikolayk812/cart-pricing/internal/logger"
	"github.com/nikolayk812/cart-pricing/internal/port"
	"github.com/nikolayk812/cart-pricing/internal/pricing"
	"github.com/nikolayk812/cart-pricing/internal/validation"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// Line is one requested product and how many of it.
type Line struct {
	Product  string `json:"product" validate:"notblank"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

type Quote struct {
	Cart   *domain.Cart
	Totals domain.CartTotals
}

type QuoteService struct {
	catalog     port.ProductCatalog
	calc        *pricing.Calculator
	concurrency int
	log         *logger.Logger
}

type Option func(*QuoteService)

func WithConcurrency(n int) Option {
	return func(s *QuoteService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *QuoteService) {
		if log != nil {
			s.log = log
		}
	}
}

func NewQuoteService(catalog port.ProductCatalog, calc *pricing.Calculator, opts ...Option) (*QuoteService, error) {
	if validation.IsNil(catalog) {
		return nil, validation.Failf("catalog is required")
	}
	if calc == nil {
		return nil, validation.Failf("calculator is required")
	}

	s := &QuoteService{
		catalog:     catalog,
		calc:        calc,
		concurrency: DefaultConcurrency,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Quote fetches every line's product, with at most the configured number of
// requests in flight, and prices the resulting cart. Items keep the order of
// lines. The first fetch failure cancels the rest and is returned.
func (s *QuoteService) Quote(ctx context.Context, lines []Line) (Quote, error) {
	for i, line := range lines {
		if err := validation.Struct(line); err != nil {
			return Quote{}, fmt.Errorf("line[%d]: %w", i, err)
		}
	}

	ctx = s.log.WithRequestID(ctx, uuid.NewString())

	products, err := s.fetchAll(ctx, lines)
	if err != nil {
		return Quote{}, fmt.Errorf("fetchAll: %w", err)
	}

	cart := domain.NewCart()
	for i, line := range lines {
		item, err := domain.NewCartItem(products[i], line.Quantity)
		if err != nil {
			return Quote{}, fmt.Errorf("domain.NewCartItem: %w", err)
		}

		cart, err = s.calc.AddItem(cart, &item)
		if err != nil {
			return Quote{}, fmt.Errorf("calc.AddItem: %w", err)
		}
	}

	totals := s.calc.CalculateTotals(cart)

	ctx = s.log.WithFields(ctx, map[string]any{
		"items": cart.Len(),
		"total": totals.Total.String(),
	})
	s.log.Info(ctx, "cart quoted")

	return Quote{Cart: cart, Totals: totals}, nil
}

func (s *QuoteService) fetchAll(ctx context.Context, lines []Line) ([]domain.Product, error) {
	products := make([]domain.Product, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, line := range lines {
		g.Go(func() error {
			p, err := s.catalog.GetProduct(gctx, line.Product)
			if err != nil {
				return err
			}
			products[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

// ParseLine parses "name=quantity". A bare name means a quantity of one.
func ParseLine(s string) (Line, error) {
	name, qty, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)

	line := Line{Product: name, Quantity: 1}
	if found {
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return Line{}, validation.Failf("line %q: quantity %q is not an integer", s, qty)
		}
		line.Quantity = n
	}

	if err := validation.Struct(line); err != nil {
		return Line{}, fmt.Errorf("line %q: %w", s, err)
	}

	return line, nil
}
