package sample

import (
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

// Seed fills a fresh store with a small believable session: a few inbox
// tasks, some dated work and two recurring routines anchored today.
func Seed(s *store.TaskStore) {
	today := utils.Today()
	tomorrow := utils.DayKey(time.Now().UTC().AddDate(0, 0, 1))

	s.AddTask("Reply to landlord", "ask about the radiator", "")
	s.AddTask("Renew passport", "", "")
	s.AddTask("Plan weekend trip", "check train times first", "")

	tasks := s.ActiveTasks()
	if len(tasks) < 3 {
		return
	}

	s.AddTask("Morning workout", "30 min, no excuses", "")
	s.AddTask("Weekly review", "", "")
	s.AddTask("Pay rent", "", "")
	s.AddTask("Dentist appointment", "", "")

	tasks = s.ActiveTasks()
	workout := tasks[3]
	review := tasks[4]
	rent := tasks[5]
	dentist := tasks[6]

	s.Reschedule(workout.ID, today)
	s.UpdateRecurrence(workout.ID, models.RecurrenceDaily)

	s.Reschedule(review.ID, today)
	s.UpdateRecurrence(review.ID, models.RecurrenceWeekly)

	s.Reschedule(rent.ID, today)
	s.UpdateRecurrence(rent.ID, models.RecurrenceMonthly)

	s.Reschedule(dentist.ID, tomorrow)
}
