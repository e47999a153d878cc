package recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/constants"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

// instanceNamespace seeds the UUIDv5 derivation of instance identity so
// that ids stay stable across processes and repeated expansions.
var instanceNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// InstanceID derives the synthetic identity of a single occurrence. It
// is a pure function of (parentID, dayKey): UI selection state keyed by
// instance id survives re-expansion.
func InstanceID(parentID int, day string) string {
	return uuid.NewSHA1(instanceNamespace, []byte(fmt.Sprintf("%d:%s", parentID, day))).String()
}

// Occurrences returns the ordered day keys at which a recurring task
// occurs within the closed window [start, end]. Expansion begins at the
// task's anchor date and is capped one year past the anchor, so daily
// and weekly rules stay bounded even for huge windows.
//
// A task with no parseable anchor, or a rule of never, yields nothing:
// bad dates degrade to "no instances", they are not an error.
func Occurrences(task models.Task, start, end string) []string {
	if !task.IsRecurring() || task.Date == "" {
		return nil
	}
	anchor, err := utils.ParseDay(task.Date)
	if err != nil {
		return nil
	}
	windowStart, err := utils.ParseDay(start)
	if err != nil {
		return nil
	}
	windowEnd, err := utils.ParseDay(end)
	if err != nil {
		return nil
	}

	horizon := anchor.AddDate(constants.ExpansionCapYears, 0, 0)
	if windowEnd.After(horizon) {
		windowEnd = horizon
	}

	var days []string
	for step := 0; ; step++ {
		var cursor time.Time
		switch task.Recurrence {
		case models.RecurrenceDaily:
			cursor = anchor.AddDate(0, 0, step)
		case models.RecurrenceWeekly:
			cursor = anchor.AddDate(0, 0, 7*step)
		case models.RecurrenceMonthly:
			cursor = utils.AddMonthsClamped(anchor, step)
		default:
			return nil
		}
		if cursor.After(windowEnd) {
			break
		}
		if !cursor.Before(windowStart) {
			days = append(days, utils.DayKey(cursor))
		}
	}
	return days
}

// Materialize builds the instance visible on a given day, reading
// through the task's override for that day. Absent override fields fall
// back to a fresh not-started occurrence. The instance owns its
// timestamp copies; writing through them never reaches the override map.
func Materialize(task models.Task, day string) models.Instance {
	inst := models.Instance{
		ID:         InstanceID(task.ID, day),
		ParentID:   task.ID,
		Date:       day,
		Text:       task.Text,
		Notes:      task.Notes,
		Status:     models.StatusNotStarted,
		Recurrence: task.Recurrence,
		CreatedAt:  task.CreatedAt,
		AssignedTo: task.AssignedTo,
	}
	if ov, ok := task.Overrides[day]; ok {
		if ov.Status != "" {
			inst.Status = ov.Status
		}
		inst.StartedAt = cloneTime(ov.StartedAt)
		inst.CompletedAt = cloneTime(ov.CompletedAt)
		inst.Rating = ov.Rating
	}
	return inst
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Expand materializes every occurrence of a recurring task within the
// window, in ascending date order.
func Expand(task models.Task, start, end string) []models.Instance {
	days := Occurrences(task, start, end)
	if len(days) == 0 {
		return nil
	}
	instances := make([]models.Instance, 0, len(days))
	for _, day := range days {
		instances = append(instances, Materialize(task, day))
	}
	return instances
}
