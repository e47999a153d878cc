package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Agenda", "Inbox", "Archive"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateForm && m.form != nil {
		var b strings.Builder
		b.WriteString(m.form.View())
		if m.formError != "" {
			b.WriteString("\n" + errorStyle.Render(m.formError))
		}
		return docStyle.Render(b.String())
	}

	var tabs []string
	for i, name := range tabNames {
		style := inactiveTabStyle
		if sessionState(i) == m.state {
			style = activeTabStyle
		}
		label := name
		switch sessionState(i) {
		case stateInbox:
			label = fmt.Sprintf("%s (%d)", name, len(m.store.UnscheduledTasks("")))
		case stateArchive:
			label = fmt.Sprintf("%s (%d)", name, len(m.store.ArchivedTasks()))
		}
		tabs = append(tabs, style.Render(label))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := m.currentList().View()

	footer := m.help.View(m.keys)
	if m.store.CanUndo() {
		footer = undoToastStyle.Render(m.store.UndoMessage()+" (press u to undo)") + "\n" + footer
	}

	return docStyle.Render(header + "\n\n" + body + "\n" + footer)
}
