package seo

import (
	"reflect"
	"testing"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"https://www.example.com", "example.com"},
		{"http://example.com/path?q=1", "example.com"},
		{"HTTPS://WWW.Example.COM", "example.com"},
		{"  example.com  ", "example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func filterFixtures() ([]models.CompetitorDomain, []models.KeywordResult) {
	competitors := []models.CompetitorDomain{
		{Domain: "a.com", AveragePosition: 5},
		{Domain: "b.com", AveragePosition: 2},
		{Domain: "c.com", AveragePosition: 9},
	}
	results := []models.KeywordResult{
		{Keyword: "k", TargetPosition: models.Ranked(20)},
	}
	return competitors, results
}

// [{a.com,5},{b.com,2},{c.com,9}] against target rank 20 with N=2 must give
// the best two ahead, ascending by position.
func TestTopCompetitorsAhead(t *testing.T) {
	competitors, results := filterFixtures()

	got := TopCompetitorsAhead(competitors, results, 2)
	var domains []string
	for _, c := range got {
		domains = append(domains, c.Domain)
	}
	if want := []string{"b.com", "a.com"}; !reflect.DeepEqual(domains, want) {
		t.Errorf("TopCompetitorsAhead = %v, want %v", domains, want)
	}
}

func TestTopCompetitorsAheadNobodyAhead(t *testing.T) {
	competitors := []models.CompetitorDomain{
		{Domain: "a.com", AveragePosition: 15},
	}
	results := []models.KeywordResult{
		{Keyword: "k", TargetPosition: models.Ranked(2)},
	}

	got := TopCompetitorsAhead(competitors, results, 5)
	if len(got) != 0 {
		t.Errorf("TopCompetitorsAhead = %v, want empty", got)
	}
}

func TestTopCompetitorsAheadUnrankedTarget(t *testing.T) {
	competitors, _ := filterFixtures()
	results := []models.KeywordResult{
		{Keyword: "k", TargetPosition: models.Unranked()},
	}

	// Everyone ranked is ahead of an unranked target.
	got := TopCompetitorsAhead(competitors, results, 10)
	if len(got) != 3 {
		t.Errorf("got %d competitors, want 3", len(got))
	}
	if got[0].Domain != "b.com" {
		t.Errorf("best competitor = %q, want b.com", got[0].Domain)
	}
}

func TestTopCompetitorsAheadTieBreakByDomain(t *testing.T) {
	competitors := []models.CompetitorDomain{
		{Domain: "zeta.com", AveragePosition: 4},
		{Domain: "alpha.com", AveragePosition: 4},
	}
	results := []models.KeywordResult{
		{Keyword: "k", TargetPosition: models.Ranked(10)},
	}

	got := TopCompetitorsAhead(competitors, results, 2)
	if got[0].Domain != "alpha.com" || got[1].Domain != "zeta.com" {
		t.Errorf("tied competitors ordered [%s %s], want [alpha.com zeta.com]", got[0].Domain, got[1].Domain)
	}
}

func TestCompetitorsAround(t *testing.T) {
	competitors := []models.CompetitorDomain{
		{Domain: "far-ahead.com", AveragePosition: 1},
		{Domain: "ahead.com", AveragePosition: 8},
		{Domain: "behind.com", AveragePosition: 14},
		{Domain: "far-behind.com", AveragePosition: 30},
	}
	results := []models.KeywordResult{
		{Keyword: "k", TargetPosition: models.Ranked(10)},
	}

	got := CompetitorsAround(competitors, results, 1)
	var domains []string
	for _, c := range got {
		domains = append(domains, c.Domain)
	}
	// One closest ahead, one closest behind.
	if want := []string{"ahead.com", "behind.com"}; !reflect.DeepEqual(domains, want) {
		t.Errorf("CompetitorsAround = %v, want %v", domains, want)
	}
}

func TestTargetAveragePosition(t *testing.T) {
	results := []models.KeywordResult{
		{TargetPosition: models.Ranked(10)},
		{TargetPosition: models.Ranked(20)},
		{TargetPosition: models.Unranked()},
	}

	avg, ok := TargetAveragePosition(results)
	if !ok || avg != 15 {
		t.Errorf("TargetAveragePosition = (%v, %v), want (15, true)", avg, ok)
	}

	_, ok = TargetAveragePosition(nil)
	if ok {
		t.Error("TargetAveragePosition(nil) reported ranked")
	}
}
