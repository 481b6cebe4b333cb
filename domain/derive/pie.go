package derive

import (
	"fmt"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// SuccessPie derives the success-count pie. For AllSites it counts successful
// launches grouped by site; for a single site it counts success vs failure
// within that site, with the outcome colors fixed green/red.
func SuccessPie(t *launch.Table, site string) *chart.Spec {
	if site == launch.AllSites {
		counts := make(map[string]int)
		for _, r := range t.Records() {
			if r.Outcome == launch.OutcomeSuccess {
				counts[r.LaunchSite]++
			}
		}
		var slices []chart.Slice
		for _, s := range t.Sites() {
			if counts[s] > 0 {
				slices = append(slices, chart.Slice{Label: s, Value: counts[s]})
			}
		}
		return &chart.Spec{
			Kind:  chart.KindPie,
			Title: "Total Successful Launches by Site",
			Encoding: chart.Encoding{
				LabelField: "launch_site",
				ValueField: "successes",
			},
			Slices: slices,
		}
	}

	siteTable := launch.FilterSite(t, site)
	successes := 0
	failures := 0
	for _, r := range siteTable.Records() {
		if r.Outcome == launch.OutcomeSuccess {
			successes++
		} else {
			failures++
		}
	}
	return &chart.Spec{
		Kind:  chart.KindPie,
		Title: fmt.Sprintf("Success vs Failure for site %s", site),
		Encoding: chart.Encoding{
			LabelField: "outcome",
			ValueField: "count",
			ColorMap: map[string]string{
				"Success": chart.ColorSuccess,
				"Failure": chart.ColorFailure,
			},
		},
		Slices: []chart.Slice{
			{Label: "Success", Value: successes},
			{Label: "Failure", Value: failures},
		},
	}
}
