package summary

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"launchdash/domain/launch"
)

// PayloadSummary describes the loaded table for the dashboard's stat cards
// and the payload slider's bounds.
type PayloadSummary struct {
	RecordCount int     `json:"record_count"`
	SiteCount   int     `json:"site_count"`
	SuccessRate float64 `json:"success_rate"`
	MinPayload  float64 `json:"min_payload_kg"`
	MaxPayload  float64 `json:"max_payload_kg"`
	MeanPayload float64 `json:"mean_payload_kg"`
	MedianKg    float64 `json:"median_payload_kg"`

	// Pearson correlation between payload mass and the 0/1 outcome,
	// shown alongside the scatter chart. Zero when undefined.
	PayloadOutcomeCorr float64 `json:"payload_outcome_corr"`
}

// Compute derives summary statistics for a table. Pure; safe for concurrent
// callers since the table is never mutated.
func Compute(t *launch.Table) PayloadSummary {
	records := t.Records()
	if len(records) == 0 {
		return PayloadSummary{}
	}

	payloads := make([]float64, len(records))
	outcomes := make([]float64, len(records))
	for i, r := range records {
		payloads[i] = r.PayloadMassKg
		outcomes[i] = r.Outcome.Float()
	}

	min, _ := stats.Min(payloads)
	max, _ := stats.Max(payloads)
	mean, _ := stats.Mean(payloads)
	median, _ := stats.Median(payloads)

	corr := stat.Correlation(payloads, outcomes, nil)
	if math.IsNaN(corr) {
		// Constant payloads or constant outcomes leave the correlation
		// undefined; report zero rather than NaN in JSON.
		corr = 0
	}

	return PayloadSummary{
		RecordCount:        t.Len(),
		SiteCount:          len(t.Sites()),
		SuccessRate:        stat.Mean(outcomes, nil),
		MinPayload:         min,
		MaxPayload:         max,
		MeanPayload:        mean,
		MedianKg:           median,
		PayloadOutcomeCorr: corr,
	}
}
