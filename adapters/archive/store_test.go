package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/ports"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	older := ports.LoadSnapshot{
		ID:          uuid.New(),
		Source:      "spacex_launch_dash.csv",
		RecordCount: 56,
		SiteCount:   4,
		LoadedAt:    time.Now().Add(-time.Hour),
	}
	newer := ports.LoadSnapshot{
		ID:          uuid.New(),
		Source:      "demo",
		RecordCount: 120,
		SiteCount:   4,
		LoadedAt:    time.Now(),
	}
	require.NoError(t, store.Record(ctx, older))
	require.NoError(t, store.Record(ctx, newer))

	snaps, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, newer.ID, snaps[0].ID, "newest first")
	assert.Equal(t, "demo", snaps[0].Source)
	assert.Equal(t, 56, snaps[1].RecordCount)
}

func TestStore_ListDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	snaps, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}
