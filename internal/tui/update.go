package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

func nextStatus(s models.Status) models.Status {
	switch s {
	case models.StatusNotStarted:
		return models.StatusStarted
	case models.StatusStarted:
		return models.StatusCompleted
	default:
		return models.StatusNotStarted
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		// Periodic redraw keeps the undo toast honest once it expires.
		return m, tickCmd()

	case tea.KeyMsg:
		if m.state == stateForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.state == stateForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.formError = ""
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		m.form = nil
		m.formError = ""
		m.state = m.previousState
	}
	return m, cmd
}

// completeForm commits the submitted form. When the store rejects the
// input the form reopens with the fields intact and the error shown.
func (m Model) completeForm() (tea.Model, tea.Cmd) {
	m.formError = ""
	m.applyForm()
	if m.formError != "" {
		m.form = newTaskForm(m.taskForm)
		m.state = stateForm
		return m, m.form.Init()
	}
	m.form = nil
	m.state = m.previousState
	m.refresh()
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.NextTab):
		m.state = map[sessionState]sessionState{
			stateAgenda: stateInbox, stateInbox: stateArchive, stateArchive: stateAgenda,
		}[m.state]
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.state = map[sessionState]sessionState{
			stateAgenda: stateArchive, stateInbox: stateAgenda, stateArchive: stateInbox,
		}[m.state]
		return m, nil

	case key.Matches(msg, keys.Undo):
		if m.store.PerformUndo() {
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, keys.Add):
		m.openAddForm()
		return m, nil
	}

	if m.state == stateArchive {
		return m.updateArchiveList(msg)
	}
	return m.updateActiveList(msg)
}

func (m Model) updateActiveList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	item, hasSelection := m.currentList().Selected()

	if hasSelection {
		day := ""
		if item.IsInstance {
			day = item.Day
		}

		switch {
		case key.Matches(msg, keys.CycleState):
			m.store.UpdateStatus(item.ID, nextStatus(item.Status), day)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Rate):
			m.store.CycleRating(item.ID, day)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Edit):
			m.openEditForm(item.ID)
			return m, nil

		case key.Matches(msg, keys.Delete):
			m.store.DeleteToTrash(item.ID)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Duplicate):
			m.store.Duplicate(item.ID)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Archive):
			m.store.ArchiveTask(item.ID)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.ToInbox):
			m.store.MoveToInbox(item.ID)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	*m.currentList(), cmd = m.currentList().Update(msg)
	return m, cmd
}

func (m Model) updateArchiveList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	item, hasSelection := m.archive.Selected()

	if hasSelection {
		switch {
		case key.Matches(msg, keys.Restore):
			m.store.RestoreTask(item.ID)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Purge):
			m.store.DeletePermanently(item.ID)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.archive, cmd = m.archive.Update(msg)
	return m, cmd
}
