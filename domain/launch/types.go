package launch

import "sort"

// Outcome is the binary result of a launch attempt, encoded 0/1 so that
// averaging a group of outcomes yields its success rate.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Float returns the outcome as 0.0 or 1.0 for aggregation.
func (o Outcome) Float() float64 {
	return float64(o)
}

// Label returns the human-readable outcome category.
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "Success"
	}
	return "Failure"
}

// AllSites is the sentinel dropdown value meaning "no site filter".
const AllSites = "ALL"

// Record is a single launch attempt. Records are immutable once loaded.
type Record struct {
	LaunchSite     string  `csv:"Launch Site" json:"launch_site"`
	PayloadMassKg  float64 `csv:"Payload Mass (kg)" json:"payload_mass_kg"`
	Outcome        Outcome `csv:"class" json:"outcome"`
	BoosterVersion string  `csv:"Booster Version Category" json:"booster_version_category"`
}

// Table is an immutable, ordered collection of launch records. It is built
// once at startup and shared by reference across every derivation call;
// callers must never modify the returned record slices.
type Table struct {
	records []Record
}

// NewTable builds a table from a record slice. The slice is copied so later
// mutation of the argument cannot reach the table.
func NewTable(records []Record) *Table {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Table{records: rs}
}

// Records returns the backing record slice, in load order.
func (t *Table) Records() []Record {
	return t.records
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Sites returns the distinct launch site codes present, sorted.
func (t *Table) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, r := range t.records {
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			sites = append(sites, r.LaunchSite)
		}
	}
	sort.Strings(sites)
	return sites
}

// BoosterVersions returns the distinct booster version categories, sorted.
func (t *Table) BoosterVersions() []string {
	seen := make(map[string]bool)
	var versions []string
	for _, r := range t.records {
		if !seen[r.BoosterVersion] {
			seen[r.BoosterVersion] = true
			versions = append(versions, r.BoosterVersion)
		}
	}
	sort.Strings(versions)
	return versions
}

// PayloadBounds returns the minimum and maximum payload mass in the table.
// Both are zero for an empty table.
func (t *Table) PayloadBounds() (min, max float64) {
	if len(t.records) == 0 {
		return 0, 0
	}
	min = t.records[0].PayloadMassKg
	max = t.records[0].PayloadMassKg
	for _, r := range t.records[1:] {
		if r.PayloadMassKg < min {
			min = r.PayloadMassKg
		}
		if r.PayloadMassKg > max {
			max = r.PayloadMassKg
		}
	}
	return min, max
}

// SuccessCount returns the total number of successful launches.
func (t *Table) SuccessCount() int {
	count := 0
	for _, r := range t.records {
		if r.Outcome == OutcomeSuccess {
			count++
		}
	}
	return count
}
