package store

import (
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

// archiveAtLocked freezes the task at active index i into the archive
// under the given reason and removes it from the active list.
// Recurrence and overrides do not survive archiving.
func (s *TaskStore) archiveAtLocked(i int, reason models.ArchiveReason) {
	t := s.active[i]
	s.archived = append(s.archived, models.ArchivedTask{
		ID:          t.ID,
		Text:        t.Text,
		Notes:       t.Notes,
		Date:        t.Date,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		StartedAt:   cloneTimePtr(t.StartedAt),
		CompletedAt: cloneTimePtr(t.CompletedAt),
		Rating:      t.Rating,
		ArchivedAt:  s.now(),
		Reason:      reason,
	})
	s.active = append(s.active[:i], s.active[i+1:]...)
}

// ArchiveTask files a task under the bucket matching its current
// status, whatever that is.
func (s *TaskStore) ArchiveTask(id int) {
	s.mutate(func() bool {
		i := s.indexOfLocked(id)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task archived")
		s.archiveAtLocked(i, models.ArchiveReason(s.active[i].Status))
		return true
	})
}

// RestoreTask converts an archived record back into an active task. The
// restored task is always non-recurring and unassigned.
func (s *TaskStore) RestoreTask(archivedID int) {
	s.mutate(func() bool {
		i := s.archiveIndexLocked(archivedID)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task restored")

		a := s.archived[i]
		s.active = append(s.active, models.Task{
			ID:          a.ID,
			Text:        a.Text,
			Notes:       a.Notes,
			Date:        a.Date,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
			StartedAt:   cloneTimePtr(a.StartedAt),
			CompletedAt: cloneTimePtr(a.CompletedAt),
			Rating:      a.Rating,
		})
		s.archived = append(s.archived[:i], s.archived[i+1:]...)
		return true
	})
}

// DeletePermanently removes an archived record for good. The undo
// snapshot still covers it until the window lapses.
func (s *TaskStore) DeletePermanently(archivedID int) {
	s.mutate(func() bool {
		i := s.archiveIndexLocked(archivedID)
		if i < 0 {
			return false
		}
		s.snapshotLocked("Task deleted permanently")
		s.archived = append(s.archived[:i], s.archived[i+1:]...)
		return true
	})
}

// ArchiveSelectedInbox archives every listed task under one snapshot,
// each filed by its own pre-archive status.
func (s *TaskStore) ArchiveSelectedInbox(ids []int) {
	s.bulk("Tasks archived", ids, func(i int) {
		s.archiveAtLocked(i, models.ArchiveReason(s.active[i].Status))
	})
}

// DeleteSelectedInbox trashes every listed task under one snapshot.
func (s *TaskStore) DeleteSelectedInbox(ids []int) {
	s.bulk("Tasks deleted", ids, func(i int) {
		s.archiveAtLocked(i, models.ArchiveReasonDeleted)
	})
}

// MoveTasksToInbox unschedules every listed task under one snapshot.
func (s *TaskStore) MoveTasksToInbox(ids []int) {
	s.bulk("Tasks moved to inbox", ids, func(i int) {
		s.moveToInboxAtLocked(i)
	})
}

func (s *TaskStore) bulk(label string, ids []int, apply func(i int)) {
	s.mutate(func() bool {
		changed := false
		for _, id := range ids {
			i := s.indexOfLocked(id)
			if i < 0 {
				continue
			}
			if !changed {
				s.snapshotLocked(label)
				changed = true
			}
			apply(i)
		}
		return changed
	})
}

// EmptyArchiveBucket drops every archived record whose reason matches,
// under one snapshot.
func (s *TaskStore) EmptyArchiveBucket(reason models.ArchiveReason) {
	s.mutate(func() bool {
		found := false
		for i := range s.archived {
			if s.archived[i].Reason == reason {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		s.snapshotLocked("Archive emptied")

		kept := make([]models.ArchivedTask, 0, len(s.archived))
		for _, a := range s.archived {
			if a.Reason != reason {
				kept = append(kept, a)
			}
		}
		s.archived = kept
		return true
	})
}
