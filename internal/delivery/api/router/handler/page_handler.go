package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the navigable views. Rendering is left to the client;
// each view reports which page it is and who is looking at it.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageView struct {
	Page      string       `json:"page"`
	User      *entity.User `json:"user,omitempty"`
	ProductID int          `json:"productId,omitempty"`
}

func (h *PageHandler) view(c echo.Context, page string) pageView {
	v := pageView{Page: page}
	if session := deliverycontext.GetSession(c); session.Authenticated() {
		user := session.User
		v.User = &user
	}

	return v
}

func (h *PageHandler) Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(c, "home"))
}

func (h *PageHandler) Login(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(c, "login"))
}

func (h *PageHandler) Catalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(c, "catalog"))
}

func (h *PageHandler) ProductDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.ErrNotFound
	}

	v := h.view(c, "product")
	v.ProductID = id

	return response.Success(c, http.StatusOK, v)
}

func (h *PageHandler) Cart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(c, "cart"))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
