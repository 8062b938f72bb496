package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(id string, finished time.Time) domain.JobRecord {
	prefix, _ := domain.ParsePrefix("P-")
	return domain.JobRecord{
		Job: domain.RenameJob{
			ID:        id,
			Backend:   domain.BackendDXF,
			Prefix:    prefix,
			InFile:    "site.dxf",
			OutFile:   "site-prefixed.dxf",
			Layers:    []string{"Walls", "Doors"},
			CreatedAt: finished.Add(-time.Second),
		},
		Status:        domain.JobDone,
		LayersRenamed: 2,
		LayersSkipped: 1,
		FinishedAt:    finished,
	}
}

// TestStore_SaveAndGet tests the record round trip
func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(ctx, testRecord("job-1", now)))

	got, err := store.Get(ctx, "job-1")
	require.NoError(t, err)

	assert.Equal(t, "job-1", got.Job.ID)
	assert.Equal(t, domain.BackendDXF, got.Job.Backend)
	assert.Equal(t, "P-", got.Job.Prefix.String())
	assert.Equal(t, []string{"Walls", "Doors"}, got.Job.Layers)
	assert.Equal(t, domain.JobDone, got.Status)
	assert.Equal(t, 2, got.LayersRenamed)
	assert.Equal(t, 1, got.LayersSkipped)
	assert.True(t, got.FinishedAt.Equal(now))
}

// TestStore_Get_NotFound tests the missing record error
func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestStore_Save_Failed tests persisting a failed job with its error text
func TestStore_Save_Failed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("job-err", time.Now().UTC())
	rec.Status = domain.JobFailed
	rec.Error = "application rejected the call: busy"
	rec.LayersRenamed = 0
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "job-err")
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, got.Status)
	assert.Contains(t, got.Error, "busy")
}

// TestStore_List tests ordering and limits
func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(ctx, testRecord("job-1", base.Add(-2*time.Hour))))
	require.NoError(t, store.Save(ctx, testRecord("job-2", base.Add(-time.Hour))))
	require.NoError(t, store.Save(ctx, testRecord("job-3", base)))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "job-3", all[0].Job.ID)
	assert.Equal(t, "job-1", all[2].Job.ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "job-3", limited[0].Job.ID)
}

// TestStore_Clear tests deleting all records
func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord("job-1", time.Now().UTC())))
	require.NoError(t, store.Clear(ctx))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestStore_MigrationsAreIdempotent tests reopening an existing database
func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), testRecord("job-1", time.Now().UTC())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
