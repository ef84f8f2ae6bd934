package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/validation"
)

// KeywordHandler handles keyword CRUD and derived keyword views via JSON API.
type KeywordHandler struct {
	db     *db.DB
	series seo.SeriesGenerator
}

// NewKeywordHandler creates a new API keyword handler.
func NewKeywordHandler(database *db.DB, series seo.SeriesGenerator) *KeywordHandler {
	return &KeywordHandler{db: database, series: series}
}

// List returns a project's keywords annotated with their derived difficulty
// and potential assessments.
func (h *KeywordHandler) List(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	keywords, err := h.db.ListKeywords(c.Context(), projectID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keywords")
	}
	results, err := h.db.ListKeywordResults(c.Context(), projectID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword results")
	}

	byKeyword := make(map[string]models.KeywordResult, len(results))
	for _, r := range results {
		byKeyword[r.Keyword] = r
	}

	views := make([]models.KeywordView, 0, len(keywords))
	for _, k := range keywords {
		ranks := competitorRanks(byKeyword[k.Keyword])
		views = append(views, models.KeywordView{
			Keyword:    k,
			Difficulty: seo.CalculateKeywordDifficulty(ranks),
			Potential:  seo.EstimateKeywordPotential(k.TargetPosition, ranks),
		})
	}

	return jsonSuccess(c, views)
}

func competitorRanks(result models.KeywordResult) []int {
	ranks := make([]int, 0, len(result.CompetitorPositions))
	for _, cp := range result.CompetitorPositions {
		if cp.Position >= 1 {
			ranks = append(ranks, cp.Position)
		}
	}
	return ranks
}

// Create adds a keyword to a project.
func (h *KeywordHandler) Create(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var body struct {
		Keyword      string `json:"keyword"`
		SearchVolume int    `json:"search_volume"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	body.Keyword = validation.NormalizeKeyword(body.Keyword)
	if body.Keyword == "" {
		return jsonError(c, fiber.StatusBadRequest, "keyword is required")
	}
	if !validation.ValidateKeyword(body.Keyword) {
		return jsonError(c, fiber.StatusBadRequest, "keyword must contain only letters, numbers, hyphens, and spaces")
	}
	if body.SearchVolume < 0 {
		return jsonError(c, fiber.StatusBadRequest, "search volume cannot be negative")
	}

	keyword := &models.Keyword{
		ProjectID:    projectID,
		Keyword:      body.Keyword,
		SearchVolume: body.SearchVolume,
	}
	if err := h.db.CreateKeyword(c.Context(), keyword); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			return jsonError(c, fiber.StatusConflict, "this keyword is already tracked for the project")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create keyword")
	}

	return jsonCreated(c, keyword)
}

// Delete removes a keyword and its stored positions.
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword id")
	}

	if err := h.db.DeleteKeyword(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrKeywordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "keyword not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete keyword")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "keyword deleted successfully",
	})
}

// History returns the position history chart series for a keyword. Until
// enough real observations accumulate the series is generated and every
// sample carries the synthetic flag, so the frontend can label it.
func (h *KeywordHandler) History(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword id")
	}

	days := fiber.Query(c, "days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	keyword, err := h.db.GetKeywordByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrKeywordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "keyword not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword")
	}

	project, err := h.db.GetProjectByID(c.Context(), keyword.ProjectID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch project")
	}

	samples := h.series.PositionSeries(project.Domain, keyword.Keyword, days)

	// Pin the newest sample to the stored position when the keyword has one,
	// so the chart ends at the value the rest of the dashboard shows.
	if len(samples) > 0 && keyword.TargetPosition.IsRanked() {
		samples[len(samples)-1].Position = keyword.TargetPosition
		samples[len(samples)-1].Synthetic = false
	}

	return jsonSuccess(c, fiber.Map{
		"keyword": keyword.Keyword,
		"days":    days,
		"samples": samples,
	})
}
