package derive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

func testTable() *launch.Table {
	return launch.NewTable([]launch.Record{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.0"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 2000, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.1"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 3100, Outcome: launch.OutcomeFailure, BoosterVersion: "v1.1"},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 4500, Outcome: launch.OutcomeFailure, BoosterVersion: "FT"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 9600, Outcome: launch.OutcomeSuccess, BoosterVersion: "B5"},
	})
}

func TestSuccessPie_AllSitesSumsToTotalSuccesses(t *testing.T) {
	table := testTable()
	spec := SuccessPie(table, launch.AllSites)

	require.Equal(t, chart.KindPie, spec.Kind)
	total := 0
	for _, s := range spec.Slices {
		total += s.Value
	}
	assert.Equal(t, table.SuccessCount(), total)
	assert.Empty(t, spec.Encoding.ColorMap, "site breakdown carries no fixed colors")
}

func TestSuccessPie_SingleSiteCountsOutcomes(t *testing.T) {
	spec := SuccessPie(testTable(), "CCAFS LC-40")

	require.Len(t, spec.Slices, 2)
	assert.Equal(t, chart.Slice{Label: "Success", Value: 2}, spec.Slices[0])
	assert.Equal(t, chart.Slice{Label: "Failure", Value: 1}, spec.Slices[1])
	assert.Equal(t, chart.ColorSuccess, spec.Encoding.ColorMap["Success"])
	assert.Equal(t, chart.ColorFailure, spec.Encoding.ColorMap["Failure"])
}

func TestSuccessPie_SingleRecordExample(t *testing.T) {
	table := launch.NewTable([]launch.Record{
		{LaunchSite: "A", PayloadMassKg: 500, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.0"},
	})
	spec := SuccessPie(table, "A")
	assert.Equal(t, chart.Slice{Label: "Success", Value: 1}, spec.Slices[0])
	assert.Equal(t, chart.Slice{Label: "Failure", Value: 0}, spec.Slices[1])
}

func TestPayloadScatter_FiltersAndReturnsRowsVerbatim(t *testing.T) {
	spec, err := PayloadScatter(testTable(), "CCAFS LC-40", 0, 2500)
	require.NoError(t, err)

	require.Equal(t, chart.KindScatter, spec.Kind)
	require.Len(t, spec.Points, 2)
	assert.Equal(t, chart.Point{X: 500, Y: 1, Category: "v1.0"}, spec.Points[0])
	assert.Equal(t, chart.Point{X: 2000, Y: 1, Category: "v1.1"}, spec.Points[1])
}

func TestPayloadScatter_SingleRecordExample(t *testing.T) {
	table := launch.NewTable([]launch.Record{
		{LaunchSite: "A", PayloadMassKg: 500, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.0"},
	})
	spec, err := PayloadScatter(table, "A", 0, 10000)
	require.NoError(t, err)
	require.Len(t, spec.Points, 1)
	assert.Equal(t, chart.Point{X: 500, Y: 1, Category: "v1.0"}, spec.Points[0])
}

func TestPayloadScatter_InvalidRange(t *testing.T) {
	_, err := PayloadScatter(testTable(), launch.AllSites, 9000, 100)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidRange, errors.GetCode(err))
}

func TestSiteSuccessRate_MeansPerSite(t *testing.T) {
	table := launch.NewTable([]launch.Record{
		{LaunchSite: "A", PayloadMassKg: 100, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.0"},
		{LaunchSite: "A", PayloadMassKg: 200, Outcome: launch.OutcomeSuccess, BoosterVersion: "v1.0"},
		{LaunchSite: "B", PayloadMassKg: 300, Outcome: launch.OutcomeFailure, BoosterVersion: "v1.1"},
	})
	spec := SiteSuccessRate(table, launch.AllSites)

	require.Len(t, spec.Bars, 2)
	assert.Equal(t, chart.Bar{Label: "A", Value: 1.0}, spec.Bars[0])
	assert.Equal(t, chart.Bar{Label: "B", Value: 0.0}, spec.Bars[1])
}

func TestSiteSuccessRate_SiteFilterExcludesOtherGroups(t *testing.T) {
	spec := SiteSuccessRate(testTable(), "KSC LC-39A")
	require.Len(t, spec.Bars, 1)
	assert.Equal(t, "KSC LC-39A", spec.Bars[0].Label)
	assert.Equal(t, 1.0, spec.Bars[0].Value)
}

func TestPayloadBucket_BoundaryBelongsToLowerBucket(t *testing.T) {
	label, ok := payloadBucket(2000)
	require.True(t, ok)
	assert.Equal(t, "0-2k", label)

	label, ok = payloadBucket(2000.01)
	require.True(t, ok)
	assert.Equal(t, "2k-4k", label)
}

func TestPayloadBucket_OutOfRangeExcluded(t *testing.T) {
	_, ok := payloadBucket(-1)
	assert.False(t, ok)
	_, ok = payloadBucket(10000.5)
	assert.False(t, ok)

	label, ok := payloadBucket(0)
	require.True(t, ok)
	assert.Equal(t, "0-2k", label)
	label, ok = payloadBucket(10000)
	require.True(t, ok)
	assert.Equal(t, "8k-10k", label)
}

func TestPayloadBucketRate_EmptyBucketsExcluded(t *testing.T) {
	spec := PayloadBucketRate(testTable(), launch.AllSites)

	// 0-2k: 500 + 2000 both success; 2k-4k: one failure; 4k-6k: one failure;
	// 6k-8k empty (excluded); 8k-10k: one success.
	require.Len(t, spec.Bars, 4)
	assert.Equal(t, chart.Bar{Label: "0-2k", Value: 1.0}, spec.Bars[0])
	assert.Equal(t, chart.Bar{Label: "2k-4k", Value: 0.0}, spec.Bars[1])
	assert.Equal(t, chart.Bar{Label: "4k-6k", Value: 0.0}, spec.Bars[2])
	assert.Equal(t, chart.Bar{Label: "8k-10k", Value: 1.0}, spec.Bars[3])
}

func TestBoosterSuccessRate_GroupsByVersion(t *testing.T) {
	spec := BoosterSuccessRate(testTable(), launch.AllSites)

	rates := make(map[string]float64)
	for _, b := range spec.Bars {
		rates[b.Label] = b.Value
	}
	assert.Equal(t, 1.0, rates["v1.0"])
	assert.Equal(t, 0.5, rates["v1.1"])
	assert.Equal(t, 0.0, rates["FT"])
	assert.Equal(t, 1.0, rates["B5"])
}

func TestRates_AlwaysWithinUnitInterval(t *testing.T) {
	table := testTable()
	for _, spec := range []*chart.Spec{
		SiteSuccessRate(table, launch.AllSites),
		PayloadBucketRate(table, launch.AllSites),
		BoosterSuccessRate(table, launch.AllSites),
	} {
		for _, b := range spec.Bars {
			assert.GreaterOrEqual(t, b.Value, 0.0)
			assert.LessOrEqual(t, b.Value, 1.0)
		}
	}
}

func TestDerivations_Idempotent(t *testing.T) {
	table := testTable()

	first := SuccessPie(table, launch.AllSites)
	second := SuccessPie(table, launch.AllSites)
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical inputs must serialize byte-identically")

	s1, err := PayloadScatter(table, "CCAFS LC-40", 0, 10000)
	require.NoError(t, err)
	s2, err := PayloadScatter(table, "CCAFS LC-40", 0, 10000)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}
