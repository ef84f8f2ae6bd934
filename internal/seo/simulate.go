package seo

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// SeriesGenerator produces position history series. The dashboard uses a
// real implementation backed by stored observations when it has them, and a
// synthetic one for simulated analysis runs and placeholder charts. Keeping
// both behind one interface makes real vs. fake sourcing swappable.
type SeriesGenerator interface {
	PositionSeries(domain, keyword string, days int) []models.PositionSample
}

// SyntheticGenerator generates deterministic placeholder series. The same
// (domain, keyword) pair always yields the same series: the seed comes from
// an FNV hash of the inputs and the day-to-day movement is sine-wave jitter,
// not a random source, so tests and repeated renders are stable.
type SyntheticGenerator struct {
	// Now returns the reference time for the series end. Defaults to
	// time.Now when nil; tests pin it.
	Now func() time.Time
}

// PositionSeries returns one sample per day for the trailing days window,
// newest last. Every sample is flagged Synthetic.
func (g *SyntheticGenerator) PositionSeries(domain, keyword string, days int) []models.PositionSample {
	if days <= 0 {
		return []models.PositionSample{}
	}

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	now = now.Truncate(24 * time.Hour)

	seed := seedFor(domain, keyword)
	base := 3 + int(seed%28) // base rank in [3,30]

	samples := make([]models.PositionSample, 0, days)
	for i := days - 1; i >= 0; i-- {
		phase := float64(seed%360) * math.Pi / 180
		wave := math.Sin(phase + float64(i)/4.5)
		rank := base + int(math.Round(wave*3))
		if rank < 1 {
			rank = 1
		}
		samples = append(samples, models.PositionSample{
			Date:      now.AddDate(0, 0, -i),
			Position:  models.Ranked(rank),
			Synthetic: true,
		})
	}
	return samples
}

// SimulatedSerpRank derives a stable fake rank for a domain on a keyword,
// used when an analysis run has degraded to simulated mode.
func SimulatedSerpRank(domain, keyword string) int {
	return 1 + int(seedFor(domain, keyword)%20)
}

// SimulatedSearchVolume derives a stable fake monthly volume for a keyword.
func SimulatedSearchVolume(keyword string) int {
	return 100 + int(seedFor(keyword, "volume")%5000)
}

func seedFor(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(NormalizeDomain(p)))
		h.Write([]byte{'|'})
	}
	return h.Sum64()
}
