package derive

import (
	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// PayloadScatter derives the payload-vs-outcome scatter: payload range filter
// first, then the optional site filter, then the surviving rows verbatim.
// Points are colored by booster version category. Returns an INVALID_RANGE
// error when low > high.
func PayloadScatter(t *launch.Table, site string, low, high float64) (*chart.Spec, error) {
	filtered, err := launch.FilterPayload(t, low, high)
	if err != nil {
		return nil, err
	}
	filtered = launch.FilterSite(filtered, site)

	points := make([]chart.Point, 0, filtered.Len())
	for _, r := range filtered.Records() {
		points = append(points, chart.Point{
			X:        r.PayloadMassKg,
			Y:        r.Outcome.Float(),
			Category: r.BoosterVersion,
		})
	}
	return &chart.Spec{
		Kind:  chart.KindScatter,
		Title: "Correlation between Payload and Success",
		Encoding: chart.Encoding{
			XField:     "payload_mass_kg",
			YField:     "outcome",
			ColorField: "booster_version_category",
		},
		Points: points,
	}, nil
}
