package launch

import "launchdash/internal/errors"

// FilterSite returns the table unchanged when site is AllSites, otherwise
// only the records launched from the given site. A site code not present in
// the table yields an empty table, not an error.
func FilterSite(t *Table, site string) *Table {
	if site == AllSites {
		return t
	}
	var filtered []Record
	for _, r := range t.records {
		if r.LaunchSite == site {
			filtered = append(filtered, r)
		}
	}
	return &Table{records: filtered}
}

// FilterPayload returns the records whose payload mass lies in [low, high],
// inclusive on both ends. A range with low > high is rejected with an
// INVALID_RANGE error.
func FilterPayload(t *Table, low, high float64) (*Table, error) {
	if low > high {
		return nil, errors.InvalidRange(low, high)
	}
	var filtered []Record
	for _, r := range t.records {
		if r.PayloadMassKg >= low && r.PayloadMassKg <= high {
			filtered = append(filtered, r)
		}
	}
	return &Table{records: filtered}, nil
}
