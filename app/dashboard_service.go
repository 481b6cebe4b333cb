package app

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"launchdash/domain/chart"
	"launchdash/domain/derive"
	"launchdash/domain/launch"
	"launchdash/internal/summary"
	"launchdash/ports"
)

// DashboardService owns the immutable launch table and answers every chart
// request against it. All methods are pure reads over the table, so the
// service is safe for concurrent use without locking.
type DashboardService struct {
	table    *launch.Table
	source   string
	loadedAt time.Time
	store    ports.SnapshotStore // nil when archiving is disabled
}

// DashboardState bundles everything the dashboard page needs for one
// (site, payload range) selection.
type DashboardState struct {
	Site           string                 `json:"site"`
	PayloadLow     float64                `json:"payload_low"`
	PayloadHigh    float64                `json:"payload_high"`
	SuccessPie     *chart.Spec            `json:"success_pie"`
	PayloadScatter *chart.Spec            `json:"payload_scatter"`
	SiteRates      *chart.Spec            `json:"site_rates"`
	PayloadRates   *chart.Spec            `json:"payload_rates"`
	BoosterRates   *chart.Spec            `json:"booster_rates"`
	Summary        summary.PayloadSummary `json:"summary"`
}

// NewDashboardService loads the table from the source exactly once and
// records a load snapshot when a store is configured.
func NewDashboardService(ctx context.Context, source ports.LaunchSource, store ports.SnapshotStore) (*DashboardService, error) {
	table, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &DashboardService{
		table:    table,
		source:   source.Name(),
		loadedAt: time.Now(),
		store:    store,
	}

	if store != nil {
		snap := ports.LoadSnapshot{
			ID:          uuid.New(),
			Source:      s.source,
			RecordCount: table.Len(),
			SiteCount:   len(table.Sites()),
			LoadedAt:    s.loadedAt,
		}
		if err := store.Record(ctx, snap); err != nil {
			// The dashboard works without the archive; don't fail startup.
			log.Printf("[Dashboard] WARNING: could not record load snapshot: %v", err)
		}
	}

	log.Printf("[Dashboard] Loaded %d launch records from %s (%d sites)",
		table.Len(), s.source, len(table.Sites()))
	return s, nil
}

// Table returns the shared immutable launch table.
func (s *DashboardService) Table() *launch.Table {
	return s.table
}

// Source returns the name of the source the table was loaded from.
func (s *DashboardService) Source() string {
	return s.source
}

// Sites returns the distinct launch sites for the dropdown.
func (s *DashboardService) Sites() []string {
	return s.table.Sites()
}

// Summary returns the table summary for stat cards and slider bounds.
func (s *DashboardService) Summary() summary.PayloadSummary {
	return summary.Compute(s.table)
}

// SuccessPie derives the success-count pie for a site selection.
func (s *DashboardService) SuccessPie(site string) *chart.Spec {
	return derive.SuccessPie(s.table, site)
}

// PayloadScatter derives the payload/outcome scatter for a selection.
func (s *DashboardService) PayloadScatter(site string, low, high float64) (*chart.Spec, error) {
	return derive.PayloadScatter(s.table, site, low, high)
}

// SiteRates derives the success-rate-by-site bars.
func (s *DashboardService) SiteRates(site string) *chart.Spec {
	return derive.SiteSuccessRate(s.table, site)
}

// PayloadRates derives the success-rate-by-payload-bucket bars.
func (s *DashboardService) PayloadRates(site string) *chart.Spec {
	return derive.PayloadBucketRate(s.table, site)
}

// BoosterRates derives the success-rate-by-booster bars.
func (s *DashboardService) BoosterRates(site string) *chart.Spec {
	return derive.BoosterSuccessRate(s.table, site)
}

// State assembles all five chart specs plus the summary for one selection.
// The derivations are independent pure reads, so they run concurrently.
func (s *DashboardService) State(ctx context.Context, site string, low, high float64) (*DashboardState, error) {
	state := &DashboardState{
		Site:        site,
		PayloadLow:  low,
		PayloadHigh: high,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		state.SuccessPie = derive.SuccessPie(s.table, site)
		return nil
	})
	g.Go(func() error {
		spec, err := derive.PayloadScatter(s.table, site, low, high)
		if err != nil {
			return err
		}
		state.PayloadScatter = spec
		return nil
	})
	g.Go(func() error {
		state.SiteRates = derive.SiteSuccessRate(s.table, site)
		return nil
	})
	g.Go(func() error {
		state.PayloadRates = derive.PayloadBucketRate(s.table, site)
		return nil
	})
	g.Go(func() error {
		state.BoosterRates = derive.BoosterSuccessRate(s.table, site)
		return nil
	})
	g.Go(func() error {
		state.Summary = summary.Compute(s.table)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

// ChartSpecs returns the five specs for a selection in a stable order, for
// the workbook export.
func (s *DashboardService) ChartSpecs(site string, low, high float64) ([]*chart.Spec, error) {
	scatter, err := derive.PayloadScatter(s.table, site, low, high)
	if err != nil {
		return nil, err
	}
	return []*chart.Spec{
		derive.SuccessPie(s.table, site),
		scatter,
		derive.SiteSuccessRate(s.table, site),
		derive.PayloadBucketRate(s.table, site),
		derive.BoosterSuccessRate(s.table, site),
	}, nil
}

// Snapshots lists recent dataset-load snapshots, newest first. Returns an
// empty list when archiving is disabled.
func (s *DashboardService) Snapshots(ctx context.Context, limit int) ([]ports.LoadSnapshot, error) {
	if s.store == nil {
		return []ports.LoadSnapshot{}, nil
	}
	return s.store.List(ctx, limit)
}
