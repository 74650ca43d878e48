package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/cart-pricing/internal/catalog"
	"github.com/nikolayk812/cart-pricing/internal/config"
	"github.com/nikolayk812/cart-pricing/internal/logger"
	"github.com/nikolayk812/cart-pricing/internal/pricing"
	"github.com/nikolayk812/cart-pricing/internal/service"
	"github.com/rs/zerolog"
)

const serviceName = "cart-quote"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg := logger.New(logger.Options{ServiceName: serviceName, Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		Output:      os.Stderr,
	})

	unit, err := cfg.Tax.Currency()
	if err != nil {
		return fmt.Errorf("cfg.Tax.Currency: %w", err)
	}

	lines := make([]service.Line, 0, len(args))
	for _, arg := range args {
		line, err := service.ParseLine(arg)
		if err != nil {
			return fmt.Errorf("service.ParseLine: %w", err)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return fmt.Errorf("usage: %s name=quantity [name=quantity ...]", serviceName)
	}

	catalogClient, err := catalog.NewClient(
		cfg.Pricing.BaseURL,
		catalog.NewHTTPClient(cfg.Pricing.ConnectTimeout()),
		catalog.WithLogger(logg),
	)
	if err != nil {
		return fmt.Errorf("catalog.NewClient: %w", err)
	}

	calc, err := pricing.NewCalculator(cfg.Tax.Rate, pricing.WithLogger(logg), pricing.WithCurrency(unit))
	if err != nil {
		return fmt.Errorf("pricing.NewCalculator: %w", err)
	}

	quotes, err := service.NewQuoteService(catalogClient, calc,
		service.WithConcurrency(cfg.Pricing.FetchConcurrency),
		service.WithLogger(logg),
	)
	if err != nil {
		return fmt.Errorf("service.NewQuoteService: %w", err)
	}

	quote, err := quotes.Quote(ctx, lines)
	if err != nil {
		return fmt.Errorf("quotes.Quote: %w", err)
	}

	for _, item := range quote.Cart.Items() {
		fmt.Printf("%-24s %3d x %s\n", item.Product.Name, item.Quantity, item.Product.Price.StringFixed(2))
	}
	fmt.Printf("Subtotal: %s\n", quote.Totals.Subtotal)
	fmt.Printf("Tax:      %s\n", quote.Totals.Tax)
	fmt.Printf("Total:    %s\n", quote.Totals.Total)

	return nil
}
