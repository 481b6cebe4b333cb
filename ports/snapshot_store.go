package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LoadSnapshot records one dataset load. Only load metadata is stored;
// derived aggregate tables are request-scoped and never persisted.
type LoadSnapshot struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Source      string    `json:"source" db:"source"`
	RecordCount int       `json:"record_count" db:"record_count"`
	SiteCount   int       `json:"site_count" db:"site_count"`
	LoadedAt    time.Time `json:"loaded_at" db:"loaded_at"`
}

// SnapshotStore persists dataset-load snapshots for the status page.
type SnapshotStore interface {
	Record(ctx context.Context, snap LoadSnapshot) error
	List(ctx context.Context, limit int) ([]LoadSnapshot, error)
}
