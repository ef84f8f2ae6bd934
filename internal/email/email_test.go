package email

import (
	"strings"
	"testing"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

func TestServiceDisabledWithoutSMTP(t *testing.T) {
	svc := NewService(&config.Config{})
	if svc.IsEnabled() {
		t.Error("service enabled without SMTP configuration")
	}
	if err := svc.SendEmail([]string{"ops@example.com"}, "subject", "<p>hi</p>", "hi"); err != nil {
		t.Errorf("disabled SendEmail() error = %v, want nil no-op", err)
	}
}

func TestAnalysisDegradedTemplate(t *testing.T) {
	cfg := &config.Config{BaseURL: "https://posifinder.example.com"}
	templates := NewTemplates(cfg)

	project := &models.Project{Name: "Example Shop", Domain: "example.com"}
	run := &models.AnalysisRun{
		Kind:   models.RunCompetitorAnalysis,
		Mode:   models.ModeSimulated,
		Error:  "serp provider unreachable",
		Counts: map[string]int{"keywordsAnalyzed": 3, "competitorsFound": 5},
	}

	subject, htmlBody, textBody := templates.AnalysisDegraded(project, run)

	if !strings.Contains(subject, "example.com") {
		t.Errorf("subject %q does not name the domain", subject)
	}
	for _, want := range []string{"Example Shop", "competitor-analysis", "serp provider unreachable", "competitorsFound=5", "keywordsAnalyzed=3"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if !strings.Contains(textBody, "simulated data") {
		t.Errorf("text body missing degradation notice: %q", textBody)
	}
}

func TestAnalysisDegradedTemplateEscapesHTML(t *testing.T) {
	templates := NewTemplates(&config.Config{BaseURL: "http://localhost:3000"})

	project := &models.Project{Name: "<script>alert(1)</script>", Domain: "example.com"}
	run := &models.AnalysisRun{Kind: models.RunDiscoverKeywords, Error: "<b>fail</b>"}

	_, htmlBody, _ := templates.AnalysisDegraded(project, run)
	if strings.Contains(htmlBody, "<script>") || strings.Contains(htmlBody, "<b>fail</b>") {
		t.Error("template did not escape HTML in project name or error")
	}
}

func TestSplitRecipients(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"ops@example.com", 1},
		{"a@example.com, b@example.com", 2},
		{" , a@example.com,, ", 1},
	}
	for _, tt := range tests {
		if got := len(splitRecipients(tt.raw)); got != tt.want {
			t.Errorf("splitRecipients(%q) returned %d addresses, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFormatCountsDeterministicOrder(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 1, "c": 3}
	want := "a=1, b=2, c=3"
	for i := 0; i < 10; i++ {
		if got := formatCounts(counts); got != want {
			t.Fatalf("formatCounts() = %q, want %q", got, want)
		}
	}
}
