package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/nikolayk812/cart-pricing/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	EnvPricingBaseURL        = "CART_PRICING_BASE_URL"
	EnvPricingTimeoutSeconds = "CART_PRICING_TIMEOUT_SECONDS"
	EnvTaxRate               = "CART_TAX_RATE"
	EnvCurrency              = "CART_CURRENCY"
	EnvFetchConcurrency      = "CART_FETCH_CONCURRENCY"
	EnvLogLevel              = "CART_LOG_LEVEL"
	EnvLogFormat             = "CART_LOG_FORMAT"
)

type Config struct {
	App     AppConfig
	Pricing PricingConfig
	Tax     TaxConfig
}

type AppConfig struct {
	LogLevel  string `envconfig:"CART_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CART_LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

type PricingConfig struct {
	BaseURL          string `envconfig:"CART_PRICING_BASE_URL" required:"true" validate:"url,endswith=/"`
	TimeoutSeconds   int    `envconfig:"CART_PRICING_TIMEOUT_SECONDS" default:"10" validate:"gt=0"`
	FetchConcurrency int    `envconfig:"CART_FETCH_CONCURRENCY" default:"4" validate:"min=1"`
}

// ConnectTimeout applies to connection establishment only.
func (p PricingConfig) ConnectTimeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type TaxConfig struct {
	Rate         decimal.Decimal `envconfig:"CART_TAX_RATE" required:"true" validate:"gte=0,lte=1"`
	CurrencyCode string          `envconfig:"CART_CURRENCY" default:"USD"`
}

func (t TaxConfig) Currency() (currency.Unit, error) {
	unit, err := currency.ParseISO(t.CurrencyCode)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", t.CurrencyCode, err)
	}
	return unit, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if _, err := cfg.Tax.Currency(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
