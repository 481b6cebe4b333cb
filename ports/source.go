package ports

import (
	"context"

	"launchdash/domain/launch"
)

// LaunchSource loads the launch-records table. The table is loaded exactly
// once at startup and never mutated afterwards.
type LaunchSource interface {
	Load(ctx context.Context) (*launch.Table, error)

	// Name identifies the source for logging and snapshot records,
	// e.g. a file path or "demo".
	Name() string
}
