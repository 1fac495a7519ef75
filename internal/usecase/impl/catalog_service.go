package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	client service.CommerceClient
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(client service.CommerceClient, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		client: client,
		logger: logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Categories(ctx context.Context, token string) ([]string, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	categories, err := srv.client.Categories(ctx, token)
	if err != nil {
		return nil, srv.upstreamFailure(ctx, service.ResourceCategories, err)
	}

	return categories, nil
}

func (srv *catalogService) Product(ctx context.Context, token string, id int) (*entity.Product, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{"id": "must be a positive integer"})
	}

	product, err := srv.client.Product(ctx, token, id)
	if err != nil {
		if upstreamErr, ok := errors.Find[*domainerrors.UpstreamError](err); ok && upstreamErr.Status() == http.StatusNotFound {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, srv.upstreamFailure(ctx, service.ResourceProduct, err)
	}

	return product, nil
}

func (srv *catalogService) Products(ctx context.Context, token string, query entity.ProductQuery) (*entity.ProductPage, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	page, err := srv.client.Products(ctx, token, query)
	if err != nil {
		return nil, srv.upstreamFailure(ctx, service.ResourceProducts, err)
	}

	return page, nil
}

func (srv *catalogService) MaxAge(resource string) time.Duration {
	return srv.client.Policy(resource).TTL
}

// upstreamFailure keeps UpstreamError intact for status passthrough and wraps anything else.
func (srv *catalogService) upstreamFailure(ctx context.Context, resource string, err error) error {
	if upstreamErr, ok := errors.Find[*domainerrors.UpstreamError](err); ok {
		srv.log(ctx).Warn("Upstream request failed",
			slog.String("resource", resource),
			slog.Int("status", upstreamErr.Status()),
		)

		return upstreamErr
	}

	return errors.Wrapf(err, "fetch %s", resource)
}
