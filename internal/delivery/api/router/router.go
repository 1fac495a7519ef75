// Package router contains routing and server setup for the API delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	PageHandler       *handler.PageHandler
	SessionMiddleware *middleware.SessionMiddleware
	GateMiddleware    *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	pageHandler       *handler.PageHandler
	sessionMiddleware *middleware.SessionMiddleware
	gateMiddleware    *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		pageHandler:       params.PageHandler,
		sessionMiddleware: params.SessionMiddleware,
		gateMiddleware:    params.GateMiddleware,
	}
}

// RegisterRoutes sets up the gate and every route of the gateway.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// The session is decoded before the gate looks at it.
	e.Use(r.sessionMiddleware.Load)
	e.Use(r.gateMiddleware.Handle)

	e.GET("/health", handler.HealthCheck)

	// Navigable views
	e.GET("/", r.pageHandler.Home)
	e.GET("/login", r.pageHandler.Login)
	e.GET("/products", r.pageHandler.Catalog)
	e.GET("/products/:id", r.pageHandler.ProductDetail)
	e.GET("/cart", r.pageHandler.Cart)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	api.GET("/categories", r.catalogHandler.Categories)
	api.GET("/products", r.catalogHandler.Products)
	api.GET("/products/:id", r.catalogHandler.Product)
}
