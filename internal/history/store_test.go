package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndLoadSnapshots(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{
		RunID:         "run-1",
		Timestamp:     base,
		FileCount:     10,
		LinkCount:     4,
		ImportCount:   3,
		CircularCount: 1,
	}))
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{
		RunID:     "run-2",
		Timestamp: base.Add(time.Hour),
		FileCount: 11,
		LinkCount: 5,
	}))
	require.NoError(t, store.SaveSnapshot("other", Snapshot{
		RunID:     "run-3",
		Timestamp: base,
	}))

	snapshots, err := store.LoadSnapshots("proj", time.Time{})
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, "run-1", snapshots[0].RunID)
	assert.Equal(t, "proj", snapshots[0].ProjectKey)
	assert.Equal(t, 10, snapshots[0].FileCount)
	assert.Equal(t, 1, snapshots[0].CircularCount)
	assert.Equal(t, SchemaVersion, snapshots[0].SchemaVersion)
	assert.True(t, base.Equal(snapshots[0].Timestamp))
	assert.Equal(t, "run-2", snapshots[1].RunID)
}

func TestLoadSnapshotsSince(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{RunID: "old", Timestamp: base}))
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{RunID: "new", Timestamp: base.Add(48 * time.Hour)}))

	snapshots, err := store.LoadSnapshots("proj", base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "new", snapshots[0].RunID)
}

func TestSaveSnapshotUpsert(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveSnapshot("proj", Snapshot{RunID: "run-1", LinkCount: 2}))
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{RunID: "run-1", LinkCount: 9}))

	snapshots, err := store.LoadSnapshots("proj", time.Time{})
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 9, snapshots[0].LinkCount)
}

func TestSaveSnapshotGeneratesRunID(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveSnapshot("", Snapshot{FileCount: 1}))

	snapshots, err := store.LoadSnapshots("default", time.Time{})
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.NotEmpty(t, snapshots[0].RunID)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenRejectsDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot("proj", Snapshot{RunID: "run-1"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	snapshots, err := reopened.LoadSnapshots("proj", time.Time{})
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}
