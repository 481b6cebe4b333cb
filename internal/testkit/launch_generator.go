package testkit

import (
	"context"
	"math/rand"

	"launchdash/domain/launch"
)

// GeneratorConfig configures the synthetic launch-record generator
type GeneratorConfig struct {
	RecordCount int   `json:"record_count"`
	Seed        int64 `json:"seed"`
}

// DefaultConfig returns sensible defaults for demo data generation
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		RecordCount: 120,
		Seed:        42,
	}
}

// Site and booster pools used for synthetic records. Weights roughly follow
// the real launch cadence: the Cape sites dominate, Vandenberg is occasional.
var (
	siteWeights = []struct {
		site   string
		weight float64
	}{
		{"CCAFS LC-40", 0.45},
		{"KSC LC-39A", 0.25},
		{"VAFB SLC-4E", 0.18},
		{"CCAFS SLC-40", 0.12},
	}
	boosterVersions = []string{"v1.0", "v1.1", "FT", "B4", "B5"}
)

// LaunchGenerator generates plausible launch records deterministically from
// a seed, for demo mode and tests.
type LaunchGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewLaunchGenerator creates a new generator
func NewLaunchGenerator(config GeneratorConfig) *LaunchGenerator {
	return &LaunchGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces the configured number of launch records. The same config
// always yields the same records.
func (g *LaunchGenerator) Generate() []launch.Record {
	records := make([]launch.Record, 0, g.config.RecordCount)
	for i := 0; i < g.config.RecordCount; i++ {
		records = append(records, g.generateRecord())
	}
	return records
}

func (g *LaunchGenerator) generateRecord() launch.Record {
	site := g.pickSite()
	booster := boosterVersions[g.rng.Intn(len(boosterVersions))]
	payload := g.rng.Float64() * 10000

	// Later boosters succeed more often; very heavy payloads struggle.
	successP := 0.55
	switch booster {
	case "FT":
		successP = 0.80
	case "B4":
		successP = 0.88
	case "B5":
		successP = 0.96
	}
	if payload > 8000 {
		successP -= 0.15
	}

	outcome := launch.OutcomeFailure
	if g.rng.Float64() < successP {
		outcome = launch.OutcomeSuccess
	}

	return launch.Record{
		LaunchSite:     site,
		PayloadMassKg:  float64(int(payload*10)) / 10, // one decimal, like the source data
		Outcome:        outcome,
		BoosterVersion: booster,
	}
}

func (g *LaunchGenerator) pickSite() string {
	roll := g.rng.Float64()
	acc := 0.0
	for _, sw := range siteWeights {
		acc += sw.weight
		if roll < acc {
			return sw.site
		}
	}
	return siteWeights[len(siteWeights)-1].site
}

// DemoSource adapts the generator to the LaunchSource port.
type DemoSource struct {
	config GeneratorConfig
}

// NewDemoSource creates a demo launch source with the given config
func NewDemoSource(config GeneratorConfig) *DemoSource {
	return &DemoSource{config: config}
}

func (s *DemoSource) Load(ctx context.Context) (*launch.Table, error) {
	return launch.NewTable(NewLaunchGenerator(s.config).Generate()), nil
}

func (s *DemoSource) Name() string {
	return "demo"
}
