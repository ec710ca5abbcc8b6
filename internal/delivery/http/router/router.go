// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souq/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	catalogGroup := e.Group("/catalog/:kind")
	{
		catalogGroup.GET("", r.catalogHandler.GetSnapshot)
		catalogGroup.POST("/reload", r.catalogHandler.Reload)
		catalogGroup.POST("/filter", r.catalogHandler.UpdateFilter)
		catalogGroup.POST("/selection/toggle", r.catalogHandler.ToggleSelection)
		catalogGroup.POST("/selection/all", r.catalogHandler.SelectAll)
		catalogGroup.DELETE("/selection", r.catalogHandler.ClearSelection)
		catalogGroup.POST("/bulk", r.catalogHandler.DispatchBulkAction)
	}
}
