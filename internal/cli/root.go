package cli

import (
	"fmt"
	"strings"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/logger"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/storage"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

type Context struct {
	Store    *store.TaskStore
	Snapshot *storage.SnapshotStore // nil when the session is memory-only
}

// Persist writes the current lists to the snapshot store, if one is
// attached. Failures are logged but never interrupt the user.
func (c *Context) Persist() {
	if c.Snapshot == nil {
		return
	}
	if err := c.Snapshot.Save(c.Store.ActiveTasks(), c.Store.ArchivedTasks()); err != nil {
		logger.Warn("Snapshot save failed", "error", err)
	}
}

// ParseStatus maps a CLI status word onto the closed status set.
func ParseStatus(s string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not_started", "todo":
		return models.StatusNotStarted, nil
	case "started", "doing":
		return models.StatusStarted, nil
	case "completed", "done":
		return models.StatusCompleted, nil
	default:
		return "", fmt.Errorf("invalid status: %s (expected not_started|started|completed)", s)
	}
}

// ParseRecurrence maps a CLI recurrence word onto the closed rule set.
func ParseRecurrence(s string) (models.Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "none":
		return models.RecurrenceNever, nil
	case "daily":
		return models.RecurrenceDaily, nil
	case "weekly":
		return models.RecurrenceWeekly, nil
	case "monthly":
		return models.RecurrenceMonthly, nil
	default:
		return "", fmt.Errorf("invalid recurrence: %s (expected never|daily|weekly|monthly)", s)
	}
}

// ValidateDate accepts the empty string or a well-formed day key.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := utils.ParseDay(s); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return nil
}

// FormatTaskLine renders one task for list output.
func FormatTaskLine(t models.Task) string {
	date := t.Date
	if date == "" {
		date = "inbox"
	}
	line := fmt.Sprintf("%4d  %-11s  %-10s  %s", t.ID, t.Status, date, t.Text)
	if t.IsRecurring() {
		line += fmt.Sprintf(" (%s)", t.Recurrence)
	}
	if t.Rating != models.RatingNone {
		line += fmt.Sprintf(" [%s]", t.Rating)
	}
	return line
}

// FormatArchivedLine renders one archived record for list output.
func FormatArchivedLine(a models.ArchivedTask) string {
	return fmt.Sprintf("%4d  %-11s  archived %s  %s", a.ID, a.Reason, utils.DayKey(a.ArchivedAt), a.Text)
}
