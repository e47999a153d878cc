package store

import (
	"testing"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

func TestArchiveTaskUsesCurrentStatus(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "untouched")
	b := mustTask(t, s, "in flight")
	s.UpdateStatus(b.ID, models.StatusStarted, "")

	s.ArchiveTask(a.ID)
	s.ArchiveTask(b.ID)

	archived := s.ArchivedTasks()
	if len(archived) != 2 {
		t.Fatalf("got %d archived, want 2", len(archived))
	}
	if archived[0].Reason != models.ArchiveReasonNotStarted {
		t.Errorf("first Reason = %s, want not_started", archived[0].Reason)
	}
	if archived[1].Reason != models.ArchiveReasonStarted {
		t.Errorf("second Reason = %s, want started", archived[1].Reason)
	}
	if archived[0].ArchivedAt.IsZero() {
		t.Error("ArchivedAt not set")
	}
}

func TestRestoreTask(t *testing.T) {
	s := newTestStore()
	task := mustTask(t, s, "cyclical")
	s.Reschedule(task.ID, "2025-09-01")
	s.UpdateRecurrence(task.ID, models.RecurrenceDaily)
	s.UpdateTask(task.ID, "cyclical", "", "2025-09-01", models.StatusNotStarted, models.RecurrenceDaily, "sam")
	s.ArchiveTask(task.ID)

	s.RestoreTask(task.ID)

	if len(s.ArchivedTasks()) != 0 {
		t.Error("archive entry not removed on restore")
	}
	got, ok := s.Task(task.ID)
	if !ok {
		t.Fatal("restored task not in active list")
	}
	if got.Recurrence.IsRecurring() || got.Overrides != nil {
		t.Errorf("restored task kept recurrence: %+v", got)
	}
	if got.AssignedTo != "" {
		t.Errorf("restored task kept assignee %q", got.AssignedTo)
	}
}

func TestDeletePermanently(t *testing.T) {
	s := newTestStore()
	task := mustTask(t, s, "gone for good")
	s.DeleteToTrash(task.ID)

	s.DeletePermanently(task.ID)
	if len(s.ArchivedTasks()) != 0 {
		t.Fatal("permanent delete left the entry")
	}

	// Still undoable inside the window.
	if !s.PerformUndo() {
		t.Fatal("PerformUndo() failed after permanent delete")
	}
	if len(s.ArchivedTasks()) != 1 {
		t.Error("undo did not bring the archived entry back")
	}
}

func TestBulkArchiveSelectedInbox(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")
	c := mustTask(t, s, "c")
	d := mustTask(t, s, "d")
	s.UpdateStatus(b.ID, models.StatusStarted, "")

	s.ArchiveSelectedInbox([]int{a.ID, b.ID, 999})

	active := s.ActiveTasks()
	if len(active) != 2 || active[0].ID != c.ID || active[1].ID != d.ID {
		t.Errorf("active after bulk archive = %+v", active)
	}
	archived := s.ArchivedTasks()
	if len(archived) != 2 {
		t.Fatalf("got %d archived, want 2", len(archived))
	}
	if archived[0].Reason != models.ArchiveReasonNotStarted || archived[1].Reason != models.ArchiveReasonStarted {
		t.Errorf("reasons = %s/%s", archived[0].Reason, archived[1].Reason)
	}

	t.Run("one snapshot for the whole batch", func(t *testing.T) {
		if !s.PerformUndo() {
			t.Fatal("PerformUndo() failed")
		}
		if len(s.ActiveTasks()) != 4 || len(s.ArchivedTasks()) != 0 {
			t.Error("bulk archive was not undone as a unit")
		}
	})
}

func TestBulkDeleteAndMoveToInbox(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")
	s.Reschedule(a.ID, "2025-09-01")
	s.Reschedule(b.ID, "2025-09-02")

	s.MoveTasksToInbox([]int{a.ID, b.ID})
	for _, id := range []int{a.ID, b.ID} {
		got, _ := s.Task(id)
		if got.Date != "" || got.Status != models.StatusNotStarted {
			t.Errorf("task %d not moved to inbox: %+v", id, got)
		}
	}

	s.DeleteSelectedInbox([]int{a.ID, b.ID})
	if len(s.ActiveTasks()) != 0 {
		t.Error("bulk delete left active tasks")
	}
	for _, entry := range s.ArchivedTasks() {
		if entry.Reason != models.ArchiveReasonDeleted {
			t.Errorf("Reason = %s, want deleted", entry.Reason)
		}
	}
}

func TestEmptyArchiveBucket(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")
	c := mustTask(t, s, "c")
	s.DeleteToTrash(a.ID)
	s.DeleteToTrash(b.ID)
	s.ArchiveTask(c.ID) // not_started bucket

	s.EmptyArchiveBucket(models.ArchiveReasonDeleted)

	archived := s.ArchivedTasks()
	if len(archived) != 1 || archived[0].Reason != models.ArchiveReasonNotStarted {
		t.Errorf("archive after empty = %+v", archived)
	}

	t.Run("undo restores the bucket", func(t *testing.T) {
		if !s.PerformUndo() {
			t.Fatal("PerformUndo() failed")
		}
		if len(s.ArchivedTasks()) != 3 {
			t.Errorf("got %d archived after undo, want 3", len(s.ArchivedTasks()))
		}
	})

	t.Run("empty bucket with no matches is a no-op", func(t *testing.T) {
		before := s.Revision()
		s.EmptyArchiveBucket(models.ArchiveReasonCompleted)
		if s.Revision() != before {
			t.Error("no-op bucket empty bumped revision")
		}
	})
}

func TestArchiveBucketPartition(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")
	s.UpdateStatus(b.ID, models.StatusStarted, "")
	s.ArchiveTask(a.ID)
	s.ArchiveTask(b.ID)

	if got := s.ArchiveBucket(models.ArchiveReasonNotStarted); len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("not_started bucket = %+v", got)
	}
	if got := s.ArchiveBucket(models.ArchiveReasonStarted); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("started bucket = %+v", got)
	}
	if got := s.ArchiveBucket(models.ArchiveReasonDeleted); len(got) != 0 {
		t.Errorf("deleted bucket = %+v", got)
	}
}

func TestArchivedIDsNotRecycled(t *testing.T) {
	s := newTestStore()
	task := mustTask(t, s, "original")
	s.DeleteToTrash(task.ID)

	fresh := mustTask(t, s, "newcomer")
	if fresh.ID == task.ID {
		t.Error("id generator recycled an archived id")
	}
}
