package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/analysis"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/validation"
)

// AnalysisHandler exposes the three analysis operations via JSON API. Each
// endpoint responds with the run summary including the mode it finished in,
// so callers can tell live data from simulated fallback.
type AnalysisHandler struct {
	service *analysis.Service
}

// NewAnalysisHandler creates a new API analysis handler.
func NewAnalysisHandler(service *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// DiscoverKeywords expands seed keywords into suggestion keywords and tracks
// the new ones.
func (h *AnalysisHandler) DiscoverKeywords(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var body struct {
		Seeds []string `json:"seeds"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	seeds := make([]string, 0, len(body.Seeds))
	for _, seed := range body.Seeds {
		seed = validation.NormalizeKeyword(seed)
		if validation.ValidateKeyword(seed) {
			seeds = append(seeds, seed)
		}
	}
	if len(seeds) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "at least one valid seed keyword is required")
	}

	resp, err := h.service.DiscoverKeywords(c.Context(), projectID, seeds)
	if err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "keyword discovery failed")
	}
	return jsonSuccess(c, resp)
}

// SyncSearchConsole refreshes target positions and volumes for every tracked
// keyword from the analytics source.
func (h *AnalysisHandler) SyncSearchConsole(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	resp, err := h.service.SyncSearchConsole(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "search console sync failed")
	}
	return jsonSuccess(c, resp)
}

// CompetitorAnalysis fetches the SERP for every tracked keyword and rebuilds
// the competitor observations.
func (h *AnalysisHandler) CompetitorAnalysis(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	resp, err := h.service.CompetitorAnalysis(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "competitor analysis failed")
	}
	return jsonSuccess(c, resp)
}
