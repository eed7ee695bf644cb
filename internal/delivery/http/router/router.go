// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler    *handler.RouteHandler
	ETAHandler      *handler.ETAHandler
	DispatchHandler *handler.DispatchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler    *handler.RouteHandler
	etaHandler      *handler.ETAHandler
	dispatchHandler *handler.DispatchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler:    params.RouteHandler,
		etaHandler:      params.ETAHandler,
		dispatchHandler: params.DispatchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Operator route computation
	operatorGroup := e.Group("/operators")
	{
		operatorGroup.POST("/:id/route", r.routeHandler.BuildRoute)
		operatorGroup.POST("/:id/route/reorder", r.routeHandler.ReorderRoute)
	}

	// Customer-facing ETA projection
	e.GET("/jobs/:id/eta", r.etaHandler.GetETA)

	// Snowfall auto-dispatch trigger
	e.GET("/dispatch/status", r.dispatchHandler.GetStatus)
}
