package seo

import (
	"reflect"
	"testing"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

func sampleResults() []models.KeywordResult {
	return []models.KeywordResult{
		{
			Keyword:        "seo tools",
			SearchVolume:   1000,
			TargetPosition: models.Ranked(15),
			CompetitorPositions: []models.CompetitorPosition{
				{Domain: "a.com", Position: 3},
				{Domain: "b.com", Position: 7},
				{Domain: "c.com", Position: 20},
			},
		},
		{
			Keyword:        "rank tracker",
			SearchVolume:   500,
			TargetPosition: models.Ranked(2),
			CompetitorPositions: []models.CompetitorPosition{
				{Domain: "a.com", Position: 9},
				{Domain: "b.com", Position: 12},
			},
		},
		{
			Keyword:        "serp monitor",
			SearchVolume:   300,
			TargetPosition: models.Unranked(),
			CompetitorPositions: []models.CompetitorPosition{
				{Domain: "a.com", Position: 4},
			},
		},
	}
}

func sampleCompetitors() []models.CompetitorDomain {
	return []models.CompetitorDomain{
		{Domain: "a.com", AveragePosition: 5.3, ShareOfVoice: 22.1, DetectedAutomatically: false},
		{Domain: "b.com", AveragePosition: 9.5, ShareOfVoice: 10.4, DetectedAutomatically: true},
		{Domain: "c.com", AveragePosition: 20, ShareOfVoice: 1.2, DetectedAutomatically: true},
	}
}

func TestCalculateCompetitiveMetrics(t *testing.T) {
	got := CalculateCompetitiveMetrics(sampleResults(), sampleCompetitors())

	if got.TotalKeywords != 3 {
		t.Errorf("TotalKeywords = %d, want 3", got.TotalKeywords)
	}

	// "seo tools" is the only keyword where the target is ranked and beaten:
	// gap = 15 - 3 = 12.
	if got.AveragePositionGap != 12 {
		t.Errorf("AveragePositionGap = %d, want 12", got.AveragePositionGap)
	}

	// "rank tracker" beats every competitor, reference and auto-detected.
	if got.AllCompetitorWins != 1 {
		t.Errorf("AllCompetitorWins = %d, want 1", got.AllCompetitorWins)
	}
	// Reference set is just a.com, beaten only on "rank tracker".
	if got.ReferenceCompetitorWins != 1 {
		t.Errorf("ReferenceCompetitorWins = %d, want 1", got.ReferenceCompetitorWins)
	}

	// a.com outranks the target on "seo tools" and "serp monitor"; b.com only
	// on "seo tools". Ranking must be wins desc, domain asc.
	wantTop := []string{"a.com", "b.com"}
	var gotTop []string
	for _, s := range got.TopCompetitors {
		gotTop = append(gotTop, s.Domain)
	}
	if !reflect.DeepEqual(gotTop, wantTop) {
		t.Errorf("TopCompetitors = %v, want %v", gotTop, wantTop)
	}
	if got.TopCompetitors[0].WinsCount != 2 {
		t.Errorf("a.com wins = %d, want 2", got.TopCompetitors[0].WinsCount)
	}
	if got.TopCompetitors[0].AveragePosition != 5.3 || got.TopCompetitors[0].ShareOfVoice != 22.1 {
		t.Errorf("a.com standing not annotated with stored averages: %+v", got.TopCompetitors[0])
	}

	if got.LostTrafficPotential <= 0 || got.LostTrafficPotential > 100 {
		t.Errorf("LostTrafficPotential = %v, want within (0,100]", got.LostTrafficPotential)
	}
}

// Pure function: running the aggregator twice over identical inputs must
// yield identical output, including competitor order on tied win counts.
func TestCalculateCompetitiveMetricsIdempotent(t *testing.T) {
	results := sampleResults()
	competitors := sampleCompetitors()

	first := CalculateCompetitiveMetrics(results, competitors)
	for i := 0; i < 20; i++ {
		again := CalculateCompetitiveMetrics(results, competitors)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst = %+v\nagain = %+v", i, first, again)
		}
	}
}

func TestCalculateCompetitiveMetricsTieBreakByDomain(t *testing.T) {
	results := []models.KeywordResult{
		{
			Keyword:        "tied",
			SearchVolume:   100,
			TargetPosition: models.Ranked(10),
			CompetitorPositions: []models.CompetitorPosition{
				{Domain: "zeta.com", Position: 4},
				{Domain: "alpha.com", Position: 5},
			},
		},
	}

	got := CalculateCompetitiveMetrics(results, nil)
	want := []string{"alpha.com", "zeta.com"}
	var domains []string
	for _, s := range got.TopCompetitors {
		domains = append(domains, s.Domain)
	}
	if !reflect.DeepEqual(domains, want) {
		t.Errorf("tied competitors ordered %v, want %v", domains, want)
	}
}

func TestCalculateCompetitiveMetricsEmptyInput(t *testing.T) {
	got := CalculateCompetitiveMetrics(nil, nil)

	if got.TotalKeywords != 0 || got.AveragePositionGap != 0 || got.LostTrafficPotential != 0 {
		t.Errorf("empty input aggregates = %+v, want zeros", got)
	}
	if got.TopCompetitors == nil || len(got.TopCompetitors) != 0 {
		t.Errorf("TopCompetitors = %v, want empty non-nil slice", got.TopCompetitors)
	}
}

func TestCalculateCompetitiveMetricsUnrankedTargetCountsWins(t *testing.T) {
	results := []models.KeywordResult{
		{
			Keyword:        "missing",
			SearchVolume:   200,
			TargetPosition: models.Unranked(),
			CompetitorPositions: []models.CompetitorPosition{
				{Domain: "a.com", Position: 40},
			},
		},
	}

	got := CalculateCompetitiveMetrics(results, nil)
	if len(got.TopCompetitors) != 1 || got.TopCompetitors[0].WinsCount != 1 {
		t.Errorf("ranked competitor vs unranked target should count as a win: %+v", got.TopCompetitors)
	}
	if got.AllCompetitorWins != 0 || got.ReferenceCompetitorWins != 0 {
		t.Errorf("unranked target cannot win keywords: %+v", got)
	}
}
