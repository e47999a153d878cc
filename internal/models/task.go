package models

import "time"

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusStarted    Status = "started"
	StatusCompleted  Status = "completed"
)

type Recurrence string

const (
	RecurrenceNever   Recurrence = "never"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// IsRecurring reports whether the rule produces instances. The empty
// string and RecurrenceNever are equivalent.
func (r Recurrence) IsRecurring() bool {
	return r != "" && r != RecurrenceNever
}

type Rating string

const (
	RatingNone     Rating = ""
	RatingLiked    Rating = "liked"
	RatingDisliked Rating = "disliked"
)

// NextRating advances through the fixed cycle none -> liked -> disliked -> none.
func NextRating(r Rating) Rating {
	switch r {
	case RatingNone:
		return RatingLiked
	case RatingLiked:
		return RatingDisliked
	default:
		return RatingNone
	}
}

// Override is a single instance's divergence from its parent recurring
// task. Zero-valued fields mean "use the computed default".
type Override struct {
	Status      Status     `json:"status,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Rating      Rating     `json:"rating,omitempty"`
}

// Task is a definition, not an occurrence. Recurring tasks never carry
// meaningful Status/StartedAt/CompletedAt of their own; per-day state
// lives in Overrides.
type Task struct {
	ID          int                 `json:"id"`
	Text        string              `json:"text"`
	Notes       string              `json:"notes,omitempty"`
	Date        string              `json:"date,omitempty"` // YYYY-MM-DD, empty = inbox
	Status      Status              `json:"status"`
	Recurrence  Recurrence          `json:"recurrence,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Overrides   map[string]Override `json:"overrides,omitempty"` // day key -> override
	Rating      Rating              `json:"rating,omitempty"`
	AssignedTo  string              `json:"assigned_to,omitempty"`
}

func (t Task) IsRecurring() bool {
	return t.Recurrence.IsRecurring()
}

// Clone returns a deep copy, including the override map.
func (t Task) Clone() Task {
	c := t
	c.StartedAt = cloneTime(t.StartedAt)
	c.CompletedAt = cloneTime(t.CompletedAt)
	if t.Overrides != nil {
		c.Overrides = make(map[string]Override, len(t.Overrides))
		for day, ov := range t.Overrides {
			ov.StartedAt = cloneTime(ov.StartedAt)
			ov.CompletedAt = cloneTime(ov.CompletedAt)
			c.Overrides[day] = ov
		}
	}
	return c
}

// Instance is a materialized per-day occurrence of a recurring task. It
// is produced during expansion and never stored back.
type Instance struct {
	ID          string     `json:"id"` // deterministic from (parent, date)
	ParentID    int        `json:"parent_id"`
	Date        string     `json:"date"`
	Text        string     `json:"text"`
	Notes       string     `json:"notes,omitempty"`
	Status      Status     `json:"status"`
	Recurrence  Recurrence `json:"recurrence"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Rating      Rating     `json:"rating,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
