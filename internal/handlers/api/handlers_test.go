package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

// The handlers validate path and body inputs before touching storage, so the
// rejection paths are testable without a database.
func testApp() *fiber.App {
	app := fiber.New()

	projectHandler := NewProjectHandler(nil)
	keywordHandler := NewKeywordHandler(nil, &seo.SyntheticGenerator{})
	analysisHandler := NewAnalysisHandler(nil)

	app.Get("/api/projects/:id", projectHandler.Get)
	app.Post("/api/projects", projectHandler.Create)
	app.Post("/api/projects/:id/keywords", keywordHandler.Create)
	app.Get("/api/keywords/:id/history", keywordHandler.History)
	app.Post("/api/projects/:id/analysis/discover-keywords", analysisHandler.DiscoverKeywords)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	payload := make(map[string]any)
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q", method, path, raw)
	}
	return resp.StatusCode, payload
}

func TestInvalidIDsRejected(t *testing.T) {
	app := testApp()

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/api/projects/not-a-uuid", ""},
		{"POST", "/api/projects/not-a-uuid/keywords", `{"keyword":"seo"}`},
		{"GET", "/api/keywords/not-a-uuid/history", ""},
		{"POST", "/api/projects/not-a-uuid/analysis/discover-keywords", `{"seeds":["seo"]}`},
	}

	for _, tt := range paths {
		status, payload := doRequest(t, app, tt.method, tt.path, tt.body)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s %s: status = %d, want 400", tt.method, tt.path, status)
		}
		if payload["status"] != "error" {
			t.Errorf("%s %s: envelope status = %v, want error", tt.method, tt.path, payload["status"])
		}
	}
}

func TestCreateProjectValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name string
		body string
	}{
		{"empty body fields", `{}`},
		{"malformed json", `{`},
		{"invalid domain", `{"name":"Shop","domain":"not a domain"}`},
		{"domain without dot", `{"name":"Shop","domain":"localhost"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, "POST", "/api/projects", tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestCreateKeywordValidation(t *testing.T) {
	app := testApp()
	projectPath := "/api/projects/2d1f9f5e-94cf-4d2f-a9a4-90c5e67898a1/keywords"

	tests := []struct {
		name string
		body string
	}{
		{"empty keyword", `{"keyword":""}`},
		{"punctuation", `{"keyword":"seo; drop table"}`},
		{"negative volume", `{"keyword":"seo tools","search_volume":-5}`},
		{"too long", `{"keyword":"` + strings.Repeat("a", 201) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, "POST", projectPath, tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestDiscoverSeedsValidation(t *testing.T) {
	app := testApp()
	path := "/api/projects/2d1f9f5e-94cf-4d2f-a9a4-90c5e67898a1/analysis/discover-keywords"

	// All seeds invalid: rejected before the service runs.
	status, payload := doRequest(t, app, "POST", path, `{"seeds":["", "a;b", "!!!"]}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if msg, _ := payload["error"].(string); !strings.Contains(msg, "seed") {
		t.Errorf("error message %q does not mention seeds", msg)
	}
}

func TestCompetitorRanksFiltersInvalid(t *testing.T) {
	result := models.KeywordResult{
		CompetitorPositions: []models.CompetitorPosition{
			{Domain: "a.com", Position: 3},
			{Domain: "b.com", Position: 0},
			{Domain: "c.com", Position: -2},
			{Domain: "d.com", Position: 11},
		},
	}

	ranks := competitorRanks(result)
	if len(ranks) != 2 || ranks[0] != 3 || ranks[1] != 11 {
		t.Errorf("competitorRanks() = %v, want [3 11]", ranks)
	}
}
