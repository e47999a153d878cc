package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

// Item is one row in a task list: an inbox task, a dated task, a
// materialized instance, or an archived record.
type Item struct {
	ID         int    // active task id, instance parent id, or archived id
	Day        string // occurrence day for instances, else ""
	IsInstance bool
	IsArchived bool
	Status     models.Status
	TitleText  string
	Detail     string
}

func statusGlyph(s models.Status) string {
	switch s {
	case models.StatusStarted:
		return "◐"
	case models.StatusCompleted:
		return "●"
	default:
		return "○"
	}
}

func ratingTag(r models.Rating) string {
	switch r {
	case models.RatingLiked:
		return " 👍"
	case models.RatingDisliked:
		return " 👎"
	default:
		return ""
	}
}

func FromTask(t models.Task) Item {
	detail := "inbox"
	if t.Date != "" {
		detail = t.Date
	}
	if t.IsRecurring() {
		detail += fmt.Sprintf(" | %s", t.Recurrence)
	}
	if t.Notes != "" {
		detail += " | " + t.Notes
	}
	return Item{
		ID:        t.ID,
		Status:    t.Status,
		TitleText: statusGlyph(t.Status) + " " + t.Text + ratingTag(t.Rating),
		Detail:    detail,
	}
}

func FromInstance(inst models.Instance) Item {
	detail := fmt.Sprintf("%s | %s", inst.Date, inst.Recurrence)
	if inst.Notes != "" {
		detail += " | " + inst.Notes
	}
	return Item{
		ID:         inst.ParentID,
		Day:        inst.Date,
		IsInstance: true,
		Status:     inst.Status,
		TitleText:  statusGlyph(inst.Status) + " " + inst.Text + ratingTag(inst.Rating),
		Detail:     detail,
	}
}

func FromArchived(a models.ArchivedTask) Item {
	return Item{
		ID:         a.ID,
		IsArchived: true,
		Status:     a.Status,
		TitleText:  statusGlyph(a.Status) + " " + a.Text,
		Detail:     fmt.Sprintf("%s | archived %s", a.Reason, a.ArchivedAt.UTC().Format("2006-01-02")),
	}
}

func (i Item) Title() string       { return i.TitleText }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.TitleText }

type Model struct {
	list list.Model
}

func New(title string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally
	l.SetShowStatusBar(false)
	return Model{list: l}
}

func (m *Model) SetItems(items []Item) {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = it
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m *Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
