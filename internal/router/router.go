// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/brandvault/trademark-search/internal/handler"
)

// RegisterRoutes registers routes that live outside the API prefix.
// Currently it exposes only a health check, used by load balancers and
// monitoring systems to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the public trademark API under the /api prefix.
// The rate limiter guards the whole group; the response cache applies
// only to the read endpoints so a cached page never masks a waitlist
// conflict.
func RegisterAPI(e *echo.Echo, p *handler.PublicHandler, w *handler.WaitlistHandler, cache, limit echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.Use(limit)

	// Listing endpoints feeding the search form's filter dropdowns.
	g.GET("/owners", p.GetOwners, cache)
	g.GET("/law-firms", p.GetLawFirms, cache)
	g.GET("/attorneys", p.GetAttorneys, cache)

	// Search with query parameters, and per-trademark detail.
	g.GET("/search", p.SearchTrademarks, cache)
	g.GET("/trademarks/:id", p.GetTrademark, cache)

	// Waitlist signups.
	g.POST("/waitlist", w.Join)
}
