package models

import "time"

type ArchiveReason string

const (
	ArchiveReasonNotStarted ArchiveReason = "not_started"
	ArchiveReasonStarted    ArchiveReason = "started"
	ArchiveReasonCompleted  ArchiveReason = "completed"
	ArchiveReasonDeleted    ArchiveReason = "deleted"
)

// ArchivedTask is a frozen copy of a task at the moment it left the
// active list. Recurrence and overrides are intentionally dropped: a
// restored task always comes back non-recurring and unassigned.
type ArchivedTask struct {
	ID          int           `json:"id"`
	Text        string        `json:"text"`
	Notes       string        `json:"notes,omitempty"`
	Date        string        `json:"date,omitempty"`
	Status      Status        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Rating      Rating        `json:"rating,omitempty"`
	ArchivedAt  time.Time     `json:"archived_at"`
	Reason      ArchiveReason `json:"archive_reason"`
}

// Clone returns a deep copy.
func (a ArchivedTask) Clone() ArchivedTask {
	c := a
	c.StartedAt = cloneTime(a.StartedAt)
	c.CompletedAt = cloneTime(a.CompletedAt)
	return c
}
