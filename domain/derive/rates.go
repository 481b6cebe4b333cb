package derive

import (
	"gonum.org/v1/gonum/stat"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// SiteSuccessRate derives mean outcome per launch site after the optional
// site filter. Sites with no surviving rows are excluded rather than
// reported as a zero-sample division.
func SiteSuccessRate(t *launch.Table, site string) *chart.Spec {
	filtered := launch.FilterSite(t, site)
	groups := make(map[string][]float64)
	for _, r := range filtered.Records() {
		groups[r.LaunchSite] = append(groups[r.LaunchSite], r.Outcome.Float())
	}
	var bars []chart.Bar
	for _, s := range filtered.Sites() {
		outcomes := groups[s]
		if len(outcomes) == 0 {
			continue
		}
		bars = append(bars, chart.Bar{Label: s, Value: stat.Mean(outcomes, nil)})
	}
	return &chart.Spec{
		Kind:  chart.KindBar,
		Title: "Launch Success Rate by Site",
		Encoding: chart.Encoding{
			XField: "launch_site",
			YField: "success_rate",
		},
		Bars: bars,
	}
}

// PayloadBucketRate derives mean outcome per payload bucket after the
// optional site filter. Empty buckets are excluded; payloads outside
// [0, 10000] fall into no bucket.
func PayloadBucketRate(t *launch.Table, site string) *chart.Spec {
	filtered := launch.FilterSite(t, site)
	groups := make(map[string][]float64)
	for _, r := range filtered.Records() {
		label, ok := payloadBucket(r.PayloadMassKg)
		if !ok {
			continue
		}
		groups[label] = append(groups[label], r.Outcome.Float())
	}
	var bars []chart.Bar
	for _, label := range bucketLabels {
		outcomes := groups[label]
		if len(outcomes) == 0 {
			continue
		}
		bars = append(bars, chart.Bar{Label: label, Value: stat.Mean(outcomes, nil)})
	}
	return &chart.Spec{
		Kind:  chart.KindBar,
		Title: "Launch Success Rate by Payload Range",
		Encoding: chart.Encoding{
			XField: "payload_range",
			YField: "success_rate",
		},
		Bars: bars,
	}
}

// BoosterSuccessRate derives mean outcome per booster version category after
// the optional site filter.
func BoosterSuccessRate(t *launch.Table, site string) *chart.Spec {
	filtered := launch.FilterSite(t, site)
	groups := make(map[string][]float64)
	for _, r := range filtered.Records() {
		groups[r.BoosterVersion] = append(groups[r.BoosterVersion], r.Outcome.Float())
	}
	var bars []chart.Bar
	for _, version := range filtered.BoosterVersions() {
		outcomes := groups[version]
		if len(outcomes) == 0 {
			continue
		}
		bars = append(bars, chart.Bar{Label: version, Value: stat.Mean(outcomes, nil)})
	}
	return &chart.Spec{
		Kind:  chart.KindBar,
		Title: "Launch Success Rate by Booster Version",
		Encoding: chart.Encoding{
			XField: "booster_version_category",
			YField: "success_rate",
		},
		Bars: bars,
	}
}
