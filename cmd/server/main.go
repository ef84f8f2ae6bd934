package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/analysis"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/email"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/jobs"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/metrics"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/serp"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/server"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/validation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register Prometheus collectors
	metrics.Init(database)

	// Seed projects from the optional YAML config
	if err := seedProjects(ctx, cfg, database); err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	// Live SERP provider, when configured
	var live serp.Provider
	if cfg.HasSerpAPI() {
		live = serp.NewClient(ctx, cfg)
		log.Printf("SERP provider configured (%s)", cfg.SerpAPIBaseURL)
	} else {
		log.Println("No SERP API key configured; analysis runs use simulated data")
	}

	service := analysis.NewService(database, live, cfg)
	service.SetNotifier(email.NewNotifier(cfg))

	// Web server
	srv := server.New(cfg)
	series := &seo.SyntheticGenerator{}
	if err := srv.RegisterRoutes(ctx, database, service, series); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background rank refresh
	checker := jobs.NewRankChecker(database, live, cfg.RankCheckInterval, cfg.RankCheckMaxAge)
	go checker.Start(ctx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// seedProjects creates the projects, keywords and reference competitors from
// the optional YAML config. Existing rows are left alone.
func seedProjects(ctx context.Context, cfg *config.Config, database *db.DB) error {
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		return err
	}
	if yamlCfg == nil {
		return nil
	}

	for _, pc := range yamlCfg.Projects {
		domain := seo.NormalizeDomain(pc.Domain)
		if !validation.ValidateDomain(domain) {
			log.Printf("Skipping seeded project %q: invalid domain %q", pc.Name, pc.Domain)
			continue
		}

		project := &models.Project{Name: pc.Name, Domain: domain}
		if err := database.CreateProject(ctx, project); err != nil {
			if !errors.Is(err, db.ErrDuplicateProject) {
				return err
			}
			project, err = database.GetProjectByDomain(ctx, domain)
			if err != nil {
				return err
			}
		}

		for _, kw := range pc.Keywords {
			kw = validation.NormalizeKeyword(kw)
			if !validation.ValidateKeyword(kw) {
				log.Printf("Skipping seeded keyword %q for %s: invalid", kw, domain)
				continue
			}
			keyword := &models.Keyword{ProjectID: project.ID, Keyword: kw}
			if err := database.CreateKeyword(ctx, keyword); err != nil && !errors.Is(err, db.ErrDuplicateKeyword) {
				return err
			}
		}

		for _, comp := range pc.Competitors {
			comp = seo.NormalizeDomain(comp)
			if !validation.ValidateDomain(comp) {
				log.Printf("Skipping seeded competitor %q for %s: invalid", comp, domain)
				continue
			}
			if _, err := database.MarkReferenceCompetitor(ctx, project.ID, comp); err != nil {
				return err
			}
		}
	}

	return nil
}
