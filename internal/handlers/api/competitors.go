package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/analysis"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/validation"
)

// CompetitorHandler handles competitor domain listing and management via
// JSON API.
type CompetitorHandler struct {
	db      *db.DB
	service *analysis.Service
}

// NewCompetitorHandler creates a new API competitor handler.
func NewCompetitorHandler(database *db.DB, service *analysis.Service) *CompetitorHandler {
	return &CompetitorHandler{db: database, service: service}
}

// List returns a project's competitor domains. The scope query narrows the
// set: "ahead" keeps only competitors outranking the target, "around" keeps
// the nearest competitors on either side of it.
func (h *CompetitorHandler) List(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	competitors, err := h.db.ListCompetitorDomains(c.Context(), projectID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch competitors")
	}

	scope := c.Query("scope", "all")
	if scope == "all" {
		return jsonSuccess(c, competitors)
	}

	n := fiber.Query(c, "n", 5)
	if n < 1 || n > 50 {
		n = 5
	}

	results, err := h.db.ListKeywordResults(c.Context(), projectID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword results")
	}

	switch scope {
	case "ahead":
		return jsonSuccess(c, seo.TopCompetitorsAhead(competitors, results, n))
	case "around":
		return jsonSuccess(c, seo.CompetitorsAround(competitors, results, n))
	default:
		return jsonError(c, fiber.StatusBadRequest, "invalid scope")
	}
}

// Add registers a user-supplied reference competitor for a project.
func (h *CompetitorHandler) Add(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var body struct {
		Domain string `json:"domain"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	domain := seo.NormalizeDomain(body.Domain)
	if !validation.ValidateDomain(domain) {
		return jsonError(c, fiber.StatusBadRequest, "domain must be a valid hostname")
	}

	competitor, err := h.service.AddReferenceCompetitor(c.Context(), projectID, domain)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to add competitor")
	}

	return jsonCreated(c, competitor)
}

// Delete removes a competitor domain from a project.
func (h *CompetitorHandler) Delete(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	domain := seo.NormalizeDomain(c.Params("domain"))
	if domain == "" {
		return jsonError(c, fiber.StatusBadRequest, "domain is required")
	}

	if err := h.db.DeleteCompetitorDomain(c.Context(), projectID, domain); err != nil {
		if errors.Is(err, db.ErrCompetitorNotFound) {
			return jsonError(c, fiber.StatusNotFound, "competitor not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete competitor")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "competitor deleted successfully",
	})
}
