package port

import (
	"context"

	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/nikolayk812/cart-pricing/internal/result"
)

type ProductCatalog interface {
	FetchProduct(ctx context.Context, name string) result.Result[domain.Product]
	GetProduct(ctx context.Context, name string) (domain.Product, error)
}
