package store

import (
	"strings"
	"sync"
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/constants"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

// TaskStore is the single source of truth for the session: it owns the
// active and archived task lists and exposes every mutation. Operations
// run one at a time; a mutation that targets a missing id is a silent
// no-op rather than an error.
type TaskStore struct {
	mu       sync.Mutex
	active   []models.Task
	archived []models.ArchivedTask
	nextID   int
	undo     *UndoManager
	snapped  bool // a snapshot was armed inside the current mutation
	revision uint64
	onChange func()
	now      func() time.Time
}

func New() *TaskStore {
	return &TaskStore{
		nextID: 1,
		undo:   NewUndoManager(),
		now:    time.Now,
	}
}

// Undo exposes the undo manager so collaborators can watch expiry.
func (s *TaskStore) Undo() *UndoManager {
	return s.undo
}

// SetOnChange registers a callback fired after every effective
// mutation. Collaborators that poll instead can watch Revision.
func (s *TaskStore) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// mutate runs fn under the store lock and, when it reports an effective
// change, bumps the revision and fires the change callback.
func (s *TaskStore) mutate(fn func() bool) {
	s.mu.Lock()
	changed := fn()
	s.snapped = false
	var notify func()
	if changed {
		s.revision++
		notify = s.onChange
	}
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// snapshotLocked captures a deep copy of both lists and arms the undo
// manager with it. Capture happens before the mutation it guards. At
// most one snapshot is armed per mutation: a labeled operation that
// delegates to another labeled operation keeps the outer label, so undo
// restores to before the whole mutation.
func (s *TaskStore) snapshotLocked(label string) {
	if s.snapped {
		return
	}
	s.snapped = true
	s.undo.Arm(label, Snapshot{
		Active:   cloneTasks(s.active),
		Archived: cloneArchived(s.archived),
	})
}

// PerformUndo restores both lists verbatim from the armed snapshot, if
// the undo window is still open.
func (s *TaskStore) PerformUndo() bool {
	snap, ok := s.undo.Consume()
	if !ok {
		return false
	}
	s.mutate(func() bool {
		s.active = snap.Active
		s.archived = snap.Archived
		return true
	})
	return true
}

// newIDLocked generates an id unique against every id the session has
// ever handed out, active or archived. Archiving never recycles ids.
func (s *TaskStore) newIDLocked() int {
	for {
		id := s.nextID
		s.nextID++
		if s.indexOfLocked(id) < 0 && s.archiveIndexLocked(id) < 0 {
			return id
		}
	}
}

func (s *TaskStore) indexOfLocked(id int) int {
	for i := range s.active {
		if s.active[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) archiveIndexLocked(id int) int {
	for i := range s.archived {
		if s.archived[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a fresh not-started task. Blank text is a no-op.
func (s *TaskStore) AddTask(text, notes, assignedTo string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.mutate(func() bool {
		s.active = append(s.active, models.Task{
			ID:         s.newIDLocked(),
			Text:       text,
			Notes:      strings.TrimSpace(notes),
			Status:     models.StatusNotStarted,
			CreatedAt:  s.now(),
			AssignedTo: strings.TrimSpace(assignedTo),
		})
		return true
	})
}

// UpdateTask rewrites a task's editable fields in one labeled mutation,
// delegating status and recurrence changes to their dedicated rules.
func (s *TaskStore) UpdateTask(id int, text, notes, date string, status models.Status, rec models.Recurrence, assignedTo string) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task updated")

		t := &s.active[i]
		t.Text = strings.TrimSpace(text)
		t.Notes = strings.TrimSpace(notes)
		t.Date = strings.TrimSpace(date)
		t.AssignedTo = strings.TrimSpace(assignedTo)

		if status != t.Status {
			s.updateStatusLocked(id, status, "")
		}
		if normalizeRecurrence(rec) != normalizeRecurrence(s.recurrenceOfLocked(id)) {
			s.updateRecurrenceLocked(id, rec)
		}
		return true
	})
}

// DeleteToTrash moves a task into the archive's deleted bucket.
func (s *TaskStore) DeleteToTrash(id int) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task deleted")
		s.archiveAtLocked(i, models.ArchiveReasonDeleted)
		return true
	})
}

// Duplicate clones a task as a fresh, unscheduled, non-recurring copy
// inserted immediately after the source.
func (s *TaskStore) Duplicate(id int) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task duplicated")

		src := s.active[i]
		dup := src.Clone()
		dup.ID = s.newIDLocked()
		dup.Text = constants.DuplicatePrefix + src.Text
		dup.Date = ""
		dup.Status = models.StatusNotStarted
		dup.Recurrence = ""
		dup.Overrides = nil
		dup.StartedAt = nil
		dup.CompletedAt = nil
		dup.CreatedAt = s.now()

		s.active = append(s.active, models.Task{})
		copy(s.active[i+2:], s.active[i+1:])
		s.active[i+1] = dup
		return true
	})
}

// MoveToInbox unschedules a task: date, recurrence and overrides are
// cleared and status resets.
func (s *TaskStore) MoveToInbox(id int) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task moved to inbox")
		s.moveToInboxAtLocked(i)
		return true
	})
}

func (s *TaskStore) moveToInboxAtLocked(i int) {
	t := &s.active[i]
	t.Date = ""
	t.Recurrence = ""
	t.Overrides = nil
	t.Status = models.StatusNotStarted
}

// Reschedule sets the task's date and nothing else.
func (s *TaskStore) Reschedule(id int, newDate string) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task rescheduled")
		s.active[i].Date = strings.TrimSpace(newDate)
		return true
	})
}

// UpdateRecurrence changes the recurrence rule. Switching to never
// clears the override map; switching between live rules preserves it.
func (s *TaskStore) UpdateRecurrence(id int, rec models.Recurrence) {
	s.mutate(func() bool {
		return s.updateRecurrenceLocked(id, rec)
	})
}

func (s *TaskStore) updateRecurrenceLocked(id int, rec models.Recurrence) bool {
	i := s.indexOfLocked(id)
	if i < 0 {
		return false
	}
	t := &s.active[i]
	if !rec.IsRecurring() {
		t.Recurrence = ""
		t.Overrides = nil
		return true
	}
	t.Recurrence = rec
	if t.Overrides == nil {
		t.Overrides = map[string]models.Override{}
	}
	return true
}

// Rate sets the rating on the parent, or inside a single day's override
// when the task is recurring and an instance date is given.
func (s *TaskStore) Rate(id int, rating models.Rating, instanceDate string) {
	s.mutate(func() bool {
		return s.rateLocked(id, rating, instanceDate)
	})
}

func (s *TaskStore) rateLocked(id int, rating models.Rating, instanceDate string) bool {
	i := s.indexOfLocked(id)
	if i < 0 {
		return false
	}
	t := &s.active[i]
	if t.IsRecurring() && instanceDate != "" {
		if t.Overrides == nil {
			t.Overrides = map[string]models.Override{}
		}
		ov := t.Overrides[instanceDate]
		ov.Rating = rating
		t.Overrides[instanceDate] = ov
		return true
	}
	t.Rating = rating
	return true
}

// CycleRating advances the effective rating through
// none -> liked -> disliked -> none.
func (s *TaskStore) CycleRating(id int, instanceDate string) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		t := s.active[i]
		current := t.Rating
		if t.IsRecurring() && instanceDate != "" {
			current = t.Overrides[instanceDate].Rating
		}
		return s.rateLocked(id, models.NextRating(current), instanceDate)
	})
}

// UpdateStatus drives the status state machine. With an instance date
// on a recurring task the transition is written into that day's
// override only; otherwise it applies to the record itself, where
// completing a scheduled non-recurring task auto-archives it.
func (s *TaskStore) UpdateStatus(id int, status models.Status, instanceDate string) {
	s.mutate(func() bool {
		return s.updateStatusLocked(id, status, instanceDate)
	})
}

func (s *TaskStore) updateStatusLocked(id int, status models.Status, instanceDate string) bool {
	i := s.indexOfLocked(id)
	if i < 0 {
		return false
	}
	t := &s.active[i]
	now := s.now()

	if t.IsRecurring() && instanceDate != "" {
		if t.Overrides == nil {
			t.Overrides = map[string]models.Override{}
		}
		ov := t.Overrides[instanceDate]
		switch status {
		case models.StatusStarted:
			if ov.StartedAt == nil {
				ov.StartedAt = &now
			}
			ov.CompletedAt = nil
		case models.StatusCompleted:
			if ov.StartedAt == nil {
				ov.StartedAt = &now
			}
			ov.CompletedAt = &now
		case models.StatusNotStarted:
			ov.StartedAt = nil
			ov.CompletedAt = nil
		}
		ov.Status = status
		t.Overrides[instanceDate] = ov
		return true
	}

	if status == models.StatusCompleted && !t.IsRecurring() && t.Date != "" {
		// Completing scheduled, non-recurring work retires it.
		s.snapshotLocked("Task completed")
		if t.StartedAt == nil {
			t.StartedAt = &now
		}
		t.CompletedAt = &now
		t.Status = models.StatusCompleted
		s.archiveAtLocked(i, models.ArchiveReasonCompleted)
		return true
	}

	switch status {
	case models.StatusStarted:
		if t.StartedAt == nil {
			t.StartedAt = &now
		}
		t.CompletedAt = nil
	case models.StatusCompleted:
		if t.StartedAt == nil {
			t.StartedAt = &now
		}
		t.CompletedAt = &now
	case models.StatusNotStarted:
		t.StartedAt = nil
		t.CompletedAt = nil
	}
	t.Status = status
	return true
}

// ReorderInboxTasks moves the unscheduled tasks at fromIndices so they
// sit before toIndex. Indices address positions within the unscheduled
// subsequence; scheduled tasks keep their slots in the active list.
func (s *TaskStore) ReorderInboxTasks(fromIndices []int, toIndex int) {
	s.mutate(func() bool {
		var positions []int
		for i := range s.active {
			if s.active[i].Date == "" {
				positions = append(positions, i)
			}
		}
		n := len(positions)
		if n == 0 || len(fromIndices) == 0 {
			return false
		}
		if toIndex < 0 {
			toIndex = 0
		}
		if toIndex > n {
			toIndex = n
		}

		selected := make(map[int]bool, len(fromIndices))
		for _, j := range fromIndices {
			if j >= 0 && j < n {
				selected[j] = true
			}
		}
		if len(selected) == 0 {
			return false
		}

		var moved, rest []models.Task
		insert := 0
		for j, pos := range positions {
			if selected[j] {
				moved = append(moved, s.active[pos])
				continue
			}
			if j < toIndex {
				insert++
			}
			rest = append(rest, s.active[pos])
		}

		reordered := make([]models.Task, 0, n)
		reordered = append(reordered, rest[:insert]...)
		reordered = append(reordered, moved...)
		reordered = append(reordered, rest[insert:]...)

		for j, pos := range positions {
			s.active[pos] = reordered[j]
		}
		return true
	})
}

// ReplaceAll swaps in externally loaded state, e.g. from the snapshot
// store. The id sequence restarts past the highest id seen.
func (s *TaskStore) ReplaceAll(active []models.Task, archived []models.ArchivedTask) {
	s.mutate(func() bool {
		s.active = cloneTasks(active)
		s.archived = cloneArchived(archived)
		next := 1
		for i := range s.active {
			if s.active[i].ID >= next {
				next = s.active[i].ID + 1
			}
		}
		for i := range s.archived {
			if s.archived[i].ID >= next {
				next = s.archived[i].ID + 1
			}
		}
		s.nextID = next
		return true
	})
}

// recurrenceOfLocked reads the current rule, tolerating a task that an
// earlier delegation (auto-archive) already removed.
func (s *TaskStore) recurrenceOfLocked(id int) models.Recurrence {
	if i := s.indexOfLocked(id); i >= 0 {
		return s.active[i].Recurrence
	}
	return ""
}

// normalizeRecurrence folds the absent rule and RecurrenceNever into
// one value for comparison.
func normalizeRecurrence(r models.Recurrence) models.Recurrence {
	if !r.IsRecurring() {
		return ""
	}
	return r
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}

func cloneArchived(tasks []models.ArchivedTask) []models.ArchivedTask {
	out := make([]models.ArchivedTask, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}
