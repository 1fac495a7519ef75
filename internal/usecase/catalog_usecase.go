package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the authenticated catalog operations proxied to the commerce API.
// token is the caller's access token; an empty token is rejected with ErrUnauthorized.
type CatalogUsecase interface {
	Categories(ctx context.Context, token string) ([]string, error)
	Product(ctx context.Context, token string, id int) (*entity.Product, error)
	Products(ctx context.Context, token string, query entity.ProductQuery) (*entity.ProductPage, error)

	// MaxAge returns how long clients may reuse a response for resource.
	MaxAge(resource string) time.Duration
}
