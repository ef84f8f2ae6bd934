package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

// DashboardHandler renders the HTML dashboard pages.
type DashboardHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: database, cfg: cfg}
}

// Login renders the login page.
func (h *DashboardHandler) Login(c fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title":       "Sign in",
		"OIDCEnabled": h.cfg.OIDCIssuer != "",
	})
}

// Index renders the project list page.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	projects, err := h.db.ListProjects(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":    "Projects",
		"User":     user,
		"Projects": projects,
	})
}

// Project renders a single project's dashboard: keywords with their derived
// assessments, the competitive aggregate, competitors and recent runs.
func (h *DashboardHandler) Project(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid project id")
	}

	project, err := h.db.GetProjectByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "project not found")
		}
		return err
	}

	keywords, err := h.db.ListKeywords(c.Context(), id)
	if err != nil {
		return err
	}
	results, err := h.db.ListKeywordResults(c.Context(), id)
	if err != nil {
		return err
	}
	competitors, err := h.db.ListCompetitorDomains(c.Context(), id)
	if err != nil {
		return err
	}
	runs, err := h.db.ListAnalysisRuns(c.Context(), id, 5)
	if err != nil {
		return err
	}

	byKeyword := make(map[string]models.KeywordResult, len(results))
	for _, r := range results {
		byKeyword[r.Keyword] = r
	}

	views := make([]models.KeywordView, 0, len(keywords))
	for _, k := range keywords {
		ranks := make([]int, 0, len(byKeyword[k.Keyword].CompetitorPositions))
		for _, cp := range byKeyword[k.Keyword].CompetitorPositions {
			if cp.Position >= 1 {
				ranks = append(ranks, cp.Position)
			}
		}
		views = append(views, models.KeywordView{
			Keyword:    k,
			Difficulty: seo.CalculateKeywordDifficulty(ranks),
			Potential:  seo.EstimateKeywordPotential(k.TargetPosition, ranks),
		})
	}

	// The template shows an explicit "no competitors detected yet" state
	// instead of an empty table when analysis has not run.
	return c.Render("project", fiber.Map{
		"Title":          project.Name,
		"User":           user,
		"Project":        project,
		"Keywords":       views,
		"Metrics":        seo.CalculateCompetitiveMetrics(results, competitors),
		"Competitors":    competitors,
		"HasCompetitors": len(competitors) > 0,
		"Runs":           runs,
	})
}
