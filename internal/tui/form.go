package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

func validateFormDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := utils.ParseDay(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// newTaskForm builds the add/edit form over the given form model.
func newTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&fm.Text),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, empty = inbox)").
				Validate(validateFormDate).
				Value(&fm.Date),
			huh.NewSelect[models.Recurrence]().
				Title("Recurrence").
				Options(
					huh.NewOption("never", models.RecurrenceNever),
					huh.NewOption("daily", models.RecurrenceDaily),
					huh.NewOption("weekly", models.RecurrenceWeekly),
					huh.NewOption("monthly", models.RecurrenceMonthly),
				).
				Value(&fm.Recurrence),
			huh.NewInput().
				Title("Assigned to").
				Value(&fm.Assignee),
		),
	)
}

// openAddForm switches to the form state with blank fields.
func (m *Model) openAddForm() {
	m.taskForm = &TaskFormModel{Recurrence: models.RecurrenceNever}
	m.editingID = 0
	m.form = newTaskForm(m.taskForm)
	m.previousState = m.state
	m.state = stateForm
}

// openEditForm pre-fills the form from an existing task.
func (m *Model) openEditForm(id int) {
	t, ok := m.store.Task(id)
	if !ok {
		return
	}
	rec := t.Recurrence
	if !rec.IsRecurring() {
		rec = models.RecurrenceNever
	}
	m.taskForm = &TaskFormModel{
		Text:       t.Text,
		Notes:      t.Notes,
		Date:       t.Date,
		Recurrence: rec,
		Assignee:   t.AssignedTo,
	}
	m.editingID = id
	m.form = newTaskForm(m.taskForm)
	m.previousState = m.state
	m.state = stateForm
}

// applyForm commits the completed form through the store API.
func (m *Model) applyForm() {
	fm := m.taskForm
	date := strings.TrimSpace(fm.Date)

	if m.editingID == 0 {
		if strings.TrimSpace(fm.Text) == "" {
			m.formError = "task text must not be blank"
			return
		}
		if fm.Recurrence.IsRecurring() && date == "" {
			m.formError = "recurring tasks need an anchor date"
			return
		}
		m.store.AddTask(fm.Text, fm.Notes, fm.Assignee)
		tasks := m.store.ActiveTasks()
		if len(tasks) == 0 {
			return
		}
		id := tasks[len(tasks)-1].ID
		if date != "" {
			m.store.Reschedule(id, date)
		}
		if fm.Recurrence.IsRecurring() {
			m.store.UpdateRecurrence(id, fm.Recurrence)
		}
		return
	}

	t, ok := m.store.Task(m.editingID)
	if !ok {
		return
	}
	m.store.UpdateTask(m.editingID, fm.Text, fm.Notes, date, t.Status, fm.Recurrence, fm.Assignee)
}
