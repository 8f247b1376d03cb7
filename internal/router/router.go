// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"
	"time"

	"github.com/athleticsdata/athletics-api/internal/handler"
	"github.com/athleticsdata/athletics-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// rateLimitWindow is the fixed window behind every per-route budget.
const rateLimitWindow = time.Hour

// Hourly request budgets per route. Browsing endpoints get generous
// budgets, the autocomplete search gets the largest since it fires per
// keystroke, and stats is cheapest to cache client-side so it gets the
// smallest.
const (
	competitionsLimit = 100
	athletesLimit     = 200
	resultsLimit      = 100
	searchLimit       = 300
	referenceLimit    = 100
	statsLimit        = 50
	summaryLimit      = 200
	dashboardLimit    = 100
)

// New assembles the Echo instance: global middleware, the error
// funnel, system routes and the authenticated API group.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

// registerAPIRoutes wires the authenticated API. Every route requires
// a valid bearer token and carries its own hourly budget.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api", m.Auth.RequireAuth)

	limit := func(name string, budget int) echo.MiddlewareFunc {
		return m.RateLimit.Limit(name, budget, rateLimitWindow)
	}

	api.GET("/competitions",
		handler.Handle(h.Competitions.Handler, h.Competitions.List, http.StatusOK),
		limit("competitions", competitionsLimit))
	api.GET("/competitions/:competition_id/results",
		handler.Handle(h.Results.Handler, h.Results.ByCompetition, http.StatusOK),
		limit("competition_results", resultsLimit))
	api.GET("/competitions/:competition_id/athletes",
		handler.Handle(h.Results.Handler, h.Results.AthletesByCompetition, http.StatusOK),
		limit("competition_athletes", resultsLimit))

	api.GET("/athletes",
		handler.Handle(h.Athletes.Handler, h.Athletes.List, http.StatusOK),
		limit("athletes", athletesLimit))
	api.GET("/athletes/search",
		handler.Handle(h.Athletes.Handler, h.Athletes.Search, http.StatusOK),
		limit("athlete_search", searchLimit))
	api.GET("/athletes/:athlete_id/results",
		handler.Handle(h.Results.Handler, h.Results.ByAthlete, http.StatusOK),
		limit("athlete_results", resultsLimit))
	api.GET("/athletes/by-name/results",
		handler.Handle(h.Results.Handler, h.Results.ByName, http.StatusOK),
		limit("results_by_name", resultsLimit))

	api.GET("/disciplines",
		handler.Handle(h.Reference.Handler, h.Reference.Disciplines, http.StatusOK),
		limit("disciplines", referenceLimit))
	api.GET("/countries",
		handler.Handle(h.Reference.Handler, h.Reference.Countries, http.StatusOK),
		limit("countries", referenceLimit))

	api.GET("/stats",
		handler.Handle(h.Stats.Handler, h.Stats.Get, http.StatusOK),
		limit("stats", statsLimit))

	singapore := api.Group("/singapore")
	singapore.GET("/summary",
		handler.Handle(h.Singapore.Handler, h.Singapore.Summary, http.StatusOK),
		limit("singapore_summary", summaryLimit))
	singapore.GET("/top-athletes",
		handler.Handle(h.Singapore.Handler, h.Singapore.TopAthletes, http.StatusOK),
		limit("singapore_top_athletes", dashboardLimit))
	singapore.GET("/disciplines",
		handler.Handle(h.Singapore.Handler, h.Singapore.Disciplines, http.StatusOK),
		limit("singapore_disciplines", dashboardLimit))
	singapore.GET("/timeline",
		handler.Handle(h.Singapore.Handler, h.Singapore.Timeline, http.StatusOK),
		limit("singapore_timeline", dashboardLimit))
	singapore.GET("/regional-comparison",
		handler.Handle(h.Singapore.Handler, h.Singapore.RegionalComparison, http.StatusOK),
		limit("singapore_regional_comparison", dashboardLimit))
	singapore.GET("/stats",
		handler.Handle(h.Singapore.Handler, h.Singapore.Stats, http.StatusOK),
		limit("singapore_stats", dashboardLimit))
}
