package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/analysis"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/handlers"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/handlers/api"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/middleware"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, service *analysis.Service, series seo.SeriesGenerator) error {
	authEnabled := s.Cfg.OIDCIssuer != ""
	authMiddleware := middleware.NewAuthMiddleware(database, authEnabled)

	// Initialize handlers
	probeHandler := handlers.NewProbeHandler(database)
	dashboardHandler := handlers.NewDashboardHandler(database, s.Cfg)
	projectHandler := api.NewProjectHandler(database)
	keywordHandler := api.NewKeywordHandler(database, series)
	competitorHandler := api.NewCompetitorHandler(database, service)
	analysisHandler := api.NewAnalysisHandler(service)

	// Probes and metrics, unauthenticated for the orchestrator and scraper
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes - only wired when OIDC is configured
	if authEnabled {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Login page (always available)
	s.App.Get("/login", dashboardHandler.Login)

	// Dashboard pages
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Get("/projects/:id", authMiddleware.RequireAuth, dashboardHandler.Project)

	// JSON API
	s.App.Get("/api/projects", authMiddleware.RequireAuth, projectHandler.List)
	s.App.Post("/api/projects", authMiddleware.RequireAuth, projectHandler.Create)
	s.App.Get("/api/projects/:id", authMiddleware.RequireAuth, projectHandler.Get)
	s.App.Delete("/api/projects/:id", authMiddleware.RequireAuth, projectHandler.Delete)
	s.App.Get("/api/projects/:id/metrics", authMiddleware.RequireAuth, projectHandler.Metrics)
	s.App.Get("/api/projects/:id/runs", authMiddleware.RequireAuth, projectHandler.Runs)

	s.App.Get("/api/projects/:id/keywords", authMiddleware.RequireAuth, keywordHandler.List)
	s.App.Post("/api/projects/:id/keywords", authMiddleware.RequireAuth, keywordHandler.Create)
	s.App.Delete("/api/keywords/:id", authMiddleware.RequireAuth, keywordHandler.Delete)
	s.App.Get("/api/keywords/:id/history", authMiddleware.RequireAuth, keywordHandler.History)

	s.App.Get("/api/projects/:id/competitors", authMiddleware.RequireAuth, competitorHandler.List)
	s.App.Post("/api/projects/:id/competitors", authMiddleware.RequireAuth, competitorHandler.Add)
	s.App.Delete("/api/projects/:id/competitors/:domain", authMiddleware.RequireAuth, competitorHandler.Delete)

	// Analysis operations
	s.App.Post("/api/projects/:id/analysis/discover-keywords", authMiddleware.RequireAuth, analysisHandler.DiscoverKeywords)
	s.App.Post("/api/projects/:id/analysis/sync-search-console", authMiddleware.RequireAuth, analysisHandler.SyncSearchConsole)
	s.App.Post("/api/projects/:id/analysis/competitor-analysis", authMiddleware.RequireAuth, analysisHandler.CompetitorAnalysis)

	return nil
}
