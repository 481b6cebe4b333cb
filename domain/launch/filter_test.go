package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/errors"
)

func sampleTable() *Table {
	return NewTable([]Record{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, Outcome: OutcomeSuccess, BoosterVersion: "v1.0"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 3500, Outcome: OutcomeFailure, BoosterVersion: "v1.1"},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 2000, Outcome: OutcomeSuccess, BoosterVersion: "FT"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 9600, Outcome: OutcomeSuccess, BoosterVersion: "B5"},
	})
}

func TestFilterSite_AllIsIdentity(t *testing.T) {
	table := sampleTable()
	filtered := FilterSite(table, AllSites)
	assert.Same(t, table, filtered, "ALL must return the table unchanged")
}

func TestFilterSite_SelectsSingleSite(t *testing.T) {
	filtered := FilterSite(sampleTable(), "CCAFS LC-40")
	require.Equal(t, 2, filtered.Len())
	for _, r := range filtered.Records() {
		assert.Equal(t, "CCAFS LC-40", r.LaunchSite)
	}
}

func TestFilterSite_UnknownSiteYieldsEmptyTable(t *testing.T) {
	filtered := FilterSite(sampleTable(), "BOCA CHICA")
	assert.Equal(t, 0, filtered.Len(), "unknown site is an empty result, not an error")
}

func TestFilterPayload_InclusiveBounds(t *testing.T) {
	filtered, err := FilterPayload(sampleTable(), 500, 2000)
	require.NoError(t, err)
	require.Equal(t, 2, filtered.Len())
	for _, r := range filtered.Records() {
		assert.GreaterOrEqual(t, r.PayloadMassKg, 500.0)
		assert.LessOrEqual(t, r.PayloadMassKg, 2000.0)
	}
}

func TestFilterPayload_NarrowingIsMonotonic(t *testing.T) {
	table := sampleTable()
	wide, err := FilterPayload(table, 0, 10000)
	require.NoError(t, err)
	narrow, err := FilterPayload(table, 1000, 4000)
	require.NoError(t, err)
	narrower, err := FilterPayload(table, 1500, 2500)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, wide.Len(), narrow.Len())
	assert.GreaterOrEqual(t, narrow.Len(), narrower.Len())
}

func TestFilterPayload_LowAboveHighFailsFast(t *testing.T) {
	_, err := FilterPayload(sampleTable(), 5000, 1000)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidRange, errors.GetCode(err))
}

func TestTable_Sites(t *testing.T) {
	sites := sampleTable().Sites()
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}, sites)
}

func TestTable_PayloadBounds(t *testing.T) {
	min, max := sampleTable().PayloadBounds()
	assert.Equal(t, 500.0, min)
	assert.Equal(t, 9600.0, max)

	min, max = NewTable(nil).PayloadBounds()
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestNewTable_CopiesInput(t *testing.T) {
	records := []Record{{LaunchSite: "KSC LC-39A", PayloadMassKg: 100, Outcome: OutcomeSuccess, BoosterVersion: "B5"}}
	table := NewTable(records)
	records[0].LaunchSite = "mutated"
	assert.Equal(t, "KSC LC-39A", table.Records()[0].LaunchSite)
}
