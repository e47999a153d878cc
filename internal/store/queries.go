package store

import (
	"sort"
	"strings"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/recurrence"
)

// Revision increases by one for every effective mutation. A collaborator
// that cached reads at revision N re-reads when the counter moves.
func (s *TaskStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// ActiveTasks returns a deep copy of the active list in order.
func (s *TaskStore) ActiveTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.active)
}

// ArchivedTasks returns a deep copy of the archive in order.
func (s *TaskStore) ArchivedTasks() []models.ArchivedTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneArchived(s.archived)
}

// Task looks up a single active task by id.
func (s *TaskStore) Task(id int) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfLocked(id); i >= 0 {
		return s.active[i].Clone(), true
	}
	return models.Task{}, false
}

// ArchivedTask looks up a single archived record by id.
func (s *TaskStore) ArchivedTask(id int) (models.ArchivedTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.archiveIndexLocked(id); i >= 0 {
		return s.archived[i].Clone(), true
	}
	return models.ArchivedTask{}, false
}

// SearchFilter builds the case-insensitive substring predicate over
// text and notes. An empty query matches everything.
func SearchFilter(query string) func(models.Task) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(t models.Task) bool {
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(t.Text), query) ||
			strings.Contains(strings.ToLower(t.Notes), query)
	}
}

// UnscheduledTasks returns the inbox: active tasks without a date,
// optionally narrowed by a search query.
func (s *TaskStore) UnscheduledTasks(query string) []models.Task {
	match := SearchFilter(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Task
	for i := range s.active {
		if s.active[i].Date == "" && match(s.active[i]) {
			out = append(out, s.active[i].Clone())
		}
	}
	return out
}

// Expand materializes every recurring occurrence falling inside the
// closed window [start, end], ascending by date.
func (s *TaskStore) Expand(start, end string) []models.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Instance
	for i := range s.active {
		out = append(out, recurrence.Expand(s.active[i], start, end)...)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Date != out[b].Date {
			return out[a].Date < out[b].Date
		}
		return out[a].ParentID < out[b].ParentID
	})
	return out
}

// ArchiveBucket returns the archived records filed under one reason.
func (s *TaskStore) ArchiveBucket(reason models.ArchiveReason) []models.ArchivedTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ArchivedTask
	for i := range s.archived {
		if s.archived[i].Reason == reason {
			out = append(out, s.archived[i].Clone())
		}
	}
	return out
}

// CanUndo reports whether the undo window is still open.
func (s *TaskStore) CanUndo() bool {
	return s.undo.Armed()
}

// UndoMessage returns the label of the pending undo, or "".
func (s *TaskStore) UndoMessage() string {
	return s.undo.Message()
}
