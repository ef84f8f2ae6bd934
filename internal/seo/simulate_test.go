package seo

import (
	"reflect"
	"testing"
	"time"
)

func TestSyntheticGeneratorDeterministic(t *testing.T) {
	gen := &SyntheticGenerator{
		Now: func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) },
	}

	first := gen.PositionSeries("example.com", "seo tools", 30)
	again := gen.PositionSeries("example.com", "seo tools", 30)

	if len(first) != 30 {
		t.Fatalf("len = %d, want 30", len(first))
	}
	if !reflect.DeepEqual(first, again) {
		t.Error("same inputs produced different series")
	}

	other := gen.PositionSeries("other.com", "seo tools", 30)
	if reflect.DeepEqual(first, other) {
		t.Error("different domains produced identical series")
	}

	for i, s := range first {
		if !s.Synthetic {
			t.Fatalf("sample %d not flagged synthetic", i)
		}
		rank, ok := s.Position.Rank()
		if !ok || rank < 1 {
			t.Fatalf("sample %d has invalid position %v", i, s.Position)
		}
	}

	// Newest sample last, one per day.
	if !first[len(first)-1].Date.After(first[0].Date) {
		t.Error("series not ordered oldest to newest")
	}
}

func TestSyntheticGeneratorEmptyWindow(t *testing.T) {
	gen := &SyntheticGenerator{}
	if got := gen.PositionSeries("example.com", "k", 0); len(got) != 0 {
		t.Errorf("PositionSeries with 0 days = %v, want empty", got)
	}
}

func TestSimulatedSerpRankStable(t *testing.T) {
	a := SimulatedSerpRank("example.com", "seo tools")
	b := SimulatedSerpRank("example.com", "seo tools")
	if a != b {
		t.Errorf("rank not stable: %d vs %d", a, b)
	}
	if a < 1 || a > 20 {
		t.Errorf("rank %d out of [1,20]", a)
	}
}
