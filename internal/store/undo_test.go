package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

func TestUndoRestoresExactState(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "first")
	mustTask(t, s, "second")
	s.Reschedule(a.ID, "2025-09-01")
	s.UpdateRecurrence(a.ID, models.RecurrenceDaily)
	s.UpdateStatus(a.ID, models.StatusCompleted, "2025-09-02")

	beforeActive := s.ActiveTasks()
	beforeArchived := s.ArchivedTasks()

	s.DeleteToTrash(a.ID)
	if len(s.ActiveTasks()) != 1 || len(s.ArchivedTasks()) != 1 {
		t.Fatal("delete did not move the task")
	}

	if !s.PerformUndo() {
		t.Fatal("PerformUndo() = false, want true")
	}
	if !reflect.DeepEqual(s.ActiveTasks(), beforeActive) {
		t.Errorf("active list not restored:\n got %+v\nwant %+v", s.ActiveTasks(), beforeActive)
	}
	if !reflect.DeepEqual(s.ArchivedTasks(), beforeArchived) {
		t.Errorf("archived list not restored:\n got %+v\nwant %+v", s.ArchivedTasks(), beforeArchived)
	}

	t.Run("undo is single level", func(t *testing.T) {
		if s.PerformUndo() {
			t.Error("second PerformUndo() succeeded with nothing armed")
		}
	})
}

func TestUndoSingleSnapshotNoChaining(t *testing.T) {
	s := newTestStore()
	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")

	s.DeleteToTrash(a.ID)
	afterFirst := s.ActiveTasks()
	s.DeleteToTrash(b.ID)

	// Undo restores to just before the second delete, not the first.
	if !s.PerformUndo() {
		t.Fatal("PerformUndo() failed")
	}
	if !reflect.DeepEqual(s.ActiveTasks(), afterFirst) {
		t.Errorf("undo went back too far or not far enough: %+v", s.ActiveTasks())
	}
}

func TestUndoEditToCompletedRestoresPreEditState(t *testing.T) {
	s := newTestStore()
	task := mustTask(t, s, "draft report")
	s.Reschedule(task.ID, "2025-09-03")

	beforeActive := s.ActiveTasks()
	beforeArchived := s.ArchivedTasks()

	// One edit that rewrites the text and completes the task, which
	// auto-archives it through the status delegation.
	s.UpdateTask(task.ID, "final report", "", "2025-09-04", models.StatusCompleted, models.RecurrenceNever, "")
	if _, ok := s.Task(task.ID); ok {
		t.Fatal("edit to completed did not auto-archive")
	}
	if got := s.UndoMessage(); got != "Task updated" {
		t.Errorf("UndoMessage() = %q, want the outer label", got)
	}

	if !s.PerformUndo() {
		t.Fatal("PerformUndo() failed")
	}
	if !reflect.DeepEqual(s.ActiveTasks(), beforeActive) {
		t.Errorf("undo kept the half-edited record:\n got %+v\nwant %+v", s.ActiveTasks(), beforeActive)
	}
	if !reflect.DeepEqual(s.ArchivedTasks(), beforeArchived) {
		t.Errorf("archive not restored: %+v", s.ArchivedTasks())
	}
}

func TestUndoMessage(t *testing.T) {
	s := newTestStore()
	task := mustTask(t, s, "x")
	if s.CanUndo() {
		t.Error("CanUndo() = true before any labeled mutation")
	}
	s.DeleteToTrash(task.ID)
	if !s.CanUndo() {
		t.Fatal("CanUndo() = false after delete")
	}
	if got := s.UndoMessage(); got != "Task deleted" {
		t.Errorf("UndoMessage() = %q", got)
	}
	s.PerformUndo()
	if s.CanUndo() || s.UndoMessage() != "" {
		t.Error("undo state not cleared after consumption")
	}
}

func TestUndoExpiry(t *testing.T) {
	s := newTestStore()
	s.undo.SetWindow(30 * time.Millisecond)

	expired := make(chan struct{})
	s.undo.SetOnExpire(func() { close(expired) })

	task := mustTask(t, s, "short lived")
	s.DeleteToTrash(task.ID)
	if !s.CanUndo() {
		t.Fatal("snapshot not armed")
	}

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry timer never fired")
	}
	if s.CanUndo() {
		t.Error("snapshot survived its window")
	}
	if s.PerformUndo() {
		t.Error("PerformUndo() succeeded after expiry")
	}
	if len(s.ActiveTasks()) != 0 {
		t.Error("expired undo mutated state")
	}
}

func TestUndoTimerRearmsOnNewSnapshot(t *testing.T) {
	s := newTestStore()
	s.undo.SetWindow(40 * time.Millisecond)

	a := mustTask(t, s, "a")
	b := mustTask(t, s, "b")

	s.DeleteToTrash(a.ID)
	time.Sleep(25 * time.Millisecond)
	s.DeleteToTrash(b.ID) // re-arms, first timer must not clear it

	time.Sleep(25 * time.Millisecond) // past the first window
	if !s.CanUndo() {
		t.Error("superseding snapshot was cleared by the stale timer")
	}
	if got := s.UndoMessage(); got != "Task deleted" {
		t.Errorf("UndoMessage() = %q", got)
	}
}

func TestUndoExpireAfterConsumeIsNoOp(t *testing.T) {
	u := NewUndoManager()
	u.SetWindow(20 * time.Millisecond)
	u.Arm("x", Snapshot{})
	if _, ok := u.Consume(); !ok {
		t.Fatal("Consume() failed")
	}
	time.Sleep(50 * time.Millisecond)
	// The fired timer must not resurrect or clear anything.
	if u.Armed() {
		t.Error("manager armed after consume+fire")
	}
}
