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

// ProjectHandler handles project CRUD and the derived project metrics via
// JSON API.
type ProjectHandler struct {
	db *db.DB
}

// NewProjectHandler creates a new API project handler.
func NewProjectHandler(database *db.DB) *ProjectHandler {
	return &ProjectHandler{db: database}
}

// List returns all tracked projects.
func (h *ProjectHandler) List(c fiber.Ctx) error {
	projects, err := h.db.ListProjects(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch projects")
	}
	return jsonSuccess(c, projects)
}

// Get returns a single project by ID.
func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	project, err := h.db.GetProjectByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch project")
	}

	return jsonSuccess(c, project)
}

// Create creates a new tracked project.
func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	body.Domain = seo.NormalizeDomain(body.Domain)
	if body.Name == "" || body.Domain == "" {
		return jsonError(c, fiber.StatusBadRequest, "name and domain are required")
	}
	if !validation.ValidateDomain(body.Domain) {
		return jsonError(c, fiber.StatusBadRequest, "domain must be a valid hostname")
	}

	project := &models.Project{Name: body.Name, Domain: body.Domain}
	if user, ok := c.Locals("user").(*models.User); ok {
		project.OwnerID = &user.ID
	}

	if err := h.db.CreateProject(c.Context(), project); err != nil {
		if errors.Is(err, db.ErrDuplicateProject) {
			return jsonError(c, fiber.StatusConflict, "a project for this domain already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create project")
	}

	return jsonCreated(c, project)
}

// Delete removes a project and everything tracked under it.
func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	if err := h.db.DeleteProject(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete project")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "project deleted successfully",
	})
}

// Metrics returns the competitive aggregate for a project, recomputed from
// the stored observations on every request.
func (h *ProjectHandler) Metrics(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	if _, err := h.db.GetProjectByID(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrProjectNotFound) {
			return jsonError(c, fiber.StatusNotFound, "project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch project")
	}

	results, err := h.db.ListKeywordResults(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword results")
	}
	competitors, err := h.db.ListCompetitorDomains(c.Context(), id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch competitors")
	}

	return jsonSuccess(c, seo.CalculateCompetitiveMetrics(results, competitors))
}

// Runs returns the recent analysis runs for a project, newest first.
func (h *ProjectHandler) Runs(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid project id")
	}

	limit := fiber.Query(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, err := h.db.ListAnalysisRuns(c.Context(), id, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch analysis runs")
	}
	return jsonSuccess(c, runs)
}
