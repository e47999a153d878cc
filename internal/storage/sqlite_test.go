package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

func setupTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Open(); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	started := time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC)
	active := []models.Task{
		{
			ID:        1,
			Text:      "walk the dog",
			Status:    models.StatusNotStarted,
			CreatedAt: time.Date(2025, 8, 30, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Text:       "daily pages",
			Date:       "2025-09-01",
			Status:     models.StatusNotStarted,
			Recurrence: models.RecurrenceDaily,
			CreatedAt:  time.Date(2025, 8, 30, 8, 1, 0, 0, time.UTC),
			Overrides: map[string]models.Override{
				"2025-09-01": {Status: models.StatusStarted, StartedAt: &started},
			},
		},
	}
	archived := []models.ArchivedTask{
		{
			ID:         3,
			Text:       "old chore",
			Status:     models.StatusCompleted,
			CreatedAt:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			ArchivedAt: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			Reason:     models.ArchiveReasonCompleted,
		},
	}

	if err := store.Save(active, archived); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	gotActive, gotArchived, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(gotActive) != 2 || len(gotArchived) != 1 {
		t.Fatalf("Load() = %d/%d rows, want 2/1", len(gotActive), len(gotArchived))
	}
	if gotActive[0].ID != 1 || gotActive[1].ID != 2 {
		t.Errorf("order not preserved: %d, %d", gotActive[0].ID, gotActive[1].ID)
	}
	ov, ok := gotActive[1].Overrides["2025-09-01"]
	if !ok {
		t.Fatal("override map lost in round trip")
	}
	if ov.Status != models.StatusStarted || ov.StartedAt == nil || !ov.StartedAt.Equal(started) {
		t.Errorf("override diverged: %+v", ov)
	}
	if gotArchived[0].Reason != models.ArchiveReasonCompleted {
		t.Errorf("archived reason = %s", gotArchived[0].Reason)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	store := setupTestStore(t)

	first := []models.Task{{ID: 1, Text: "a", Status: models.StatusNotStarted}}
	if err := store.Save(first, nil); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	second := []models.Task{{ID: 2, Text: "b", Status: models.StatusNotStarted}}
	if err := store.Save(second, nil); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	active, _, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(active) != 1 || active[0].ID != 2 {
		t.Errorf("stale rows survived: %+v", active)
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := setupTestStore(t)
	active, archived, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(active) != 0 || len(archived) != 0 {
		t.Errorf("empty db yielded rows: %d/%d", len(active), len(archived))
	}
}
