package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
)

var (
	serpLookupDesc = prometheus.NewDesc(
		"posifinder_serp_lookups_total",
		"Total outbound search-API lookup count by provider and outcome",
		[]string{"provider", "outcome"},
		nil,
	)

	analysisRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posifinder_analysis_runs_total",
			Help: "Analysis runs by kind and final mode",
		},
		[]string{"kind", "mode"},
	)
)

// SerpCollector is a custom Prometheus collector that reads outbound lookup
// counts from the database on each scrape.
type SerpCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *SerpCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- serpLookupDesc
}

// Collect queries the database for all lookup counters and emits them.
func (c *SerpCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.db.GetAllSerpLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect serp lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			serpLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Provider,
			l.Outcome,
		)
	}
}

// Recorder provides async lookup recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&SerpCollector{db: database})
		prometheus.MustRegister(analysisRunsTotal)
	})
}

// RecordSerpLookup asynchronously records an outbound lookup outcome.
func RecordSerpLookup(provider, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementSerpLookup(context.Background(), provider, outcome); err != nil {
			slog.Error("failed to record serp lookup", "provider", provider, "outcome", outcome, "error", err)
		}
	}()
}

// RecordAnalysisRun counts a finished analysis run.
func RecordAnalysisRun(kind, mode string) {
	analysisRunsTotal.WithLabelValues(kind, mode).Inc()
}
