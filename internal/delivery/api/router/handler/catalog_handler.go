package handler

import (
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler proxies catalog reads for authenticated sessions.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// accessToken returns the session token or ErrUnauthorized.
func accessToken(c echo.Context) (string, error) {
	session := deliverycontext.GetSession(c)
	if !session.Authenticated() {
		return "", domainerrors.ErrUnauthorized
	}

	return session.AccessToken, nil
}

// Categories lists category slugs.
func (h *CatalogHandler) Categories(c echo.Context) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	categories, err := h.uc.Categories(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, h.uc.MaxAge(service.ResourceCategories), categories)
}

// Product fetches one product by its positive integer id.
func (h *CatalogHandler) Product(c echo.Context) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string{"id": "must be a positive integer"})
	}

	product, err := h.uc.Product(c.Request().Context(), token, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, h.uc.MaxAge(service.ResourceProduct), product)
}

// Products lists, searches or filters products.
func (h *CatalogHandler) Products(c echo.Context) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	query, err := entity.ParseProductQuery(c.QueryParams())
	if err != nil {
		var queryErr *entity.QueryError
		if errors.As(err, &queryErr) {
			return domainerrors.ErrValidationFailed.WithDetails(map[string]string{queryErr.Field: queryErr.Reason})
		}

		return errors.WithStack(err)
	}

	page, err := h.uc.Products(c.Request().Context(), token, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, h.uc.MaxAge(service.ResourceProducts), page)
}
