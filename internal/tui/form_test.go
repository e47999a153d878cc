package tui

import (
	"testing"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
)

func TestCompleteFormRejectsBlankText(t *testing.T) {
	m := NewModel(store.New())
	m.openAddForm()
	m.taskForm.Text = "   "

	res, _ := m.completeForm()
	got := res.(Model)
	if got.state != stateForm || got.form == nil {
		t.Error("rejected submission closed the form")
	}
	if got.formError == "" {
		t.Error("no error shown for blank text")
	}
	if len(got.store.ActiveTasks()) != 0 {
		t.Error("blank submission created a task")
	}
}

func TestCompleteFormRejectsRecurringWithoutDate(t *testing.T) {
	m := NewModel(store.New())
	m.openAddForm()
	m.taskForm.Text = "habit"
	m.taskForm.Recurrence = models.RecurrenceDaily

	res, _ := m.completeForm()
	got := res.(Model)
	if got.state != stateForm || got.formError == "" {
		t.Error("recurring task without an anchor date was accepted")
	}
	if got.taskForm.Text != "habit" {
		t.Errorf("form input discarded: %q", got.taskForm.Text)
	}
	if len(got.store.ActiveTasks()) != 0 {
		t.Error("rejected submission still created a task")
	}
}

func TestCompleteFormAddsTask(t *testing.T) {
	m := NewModel(store.New())
	m.openAddForm()
	m.taskForm.Text = "walk the dog"
	m.taskForm.Date = "2025-09-03"

	res, _ := m.completeForm()
	got := res.(Model)
	if got.state == stateForm || got.form != nil {
		t.Error("successful submission did not close the form")
	}
	tasks := got.store.ActiveTasks()
	if len(tasks) != 1 || tasks[0].Text != "walk the dog" || tasks[0].Date != "2025-09-03" {
		t.Errorf("tasks after submit = %+v", tasks)
	}
}
