package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/tui/components/tasklist"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

type sessionState int

const (
	stateAgenda sessionState = iota
	stateInbox
	stateArchive
	stateForm
)

// AgendaDays is the width of the rolling window the agenda renders.
const AgendaDays = 7

// TaskFormModel backs the huh add/edit form.
type TaskFormModel struct {
	Text       string
	Notes      string
	Date       string
	Recurrence models.Recurrence
	Assignee   string
}

type tickMsg time.Time

type Model struct {
	store         *store.TaskStore
	state         sessionState
	previousState sessionState
	keys          KeyMap
	help          help.Model
	agenda        tasklist.Model
	inbox         tasklist.Model
	archive       tasklist.Model
	form          *huh.Form
	taskForm      *TaskFormModel
	editingID     int // 0 while adding
	formError     string
	width         int
	height        int
	quitting      bool
}

func NewModel(s *store.TaskStore) Model {
	m := Model{
		store:   s,
		state:   stateAgenda,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		agenda:  tasklist.New("Agenda", 0, 0),
		inbox:   tasklist.New("Inbox", 0, 0),
		archive: tasklist.New("Archive", 0, 0),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd drives periodic redraws so the undo toast disappears when the
// window lapses even without keyboard input.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh rebuilds all three lists from the store. Reads are
// synchronous: every mutation is visible immediately.
func (m *Model) refresh() {
	from := utils.Today()
	start, err := utils.ParseDay(from)
	if err != nil {
		return
	}
	to := utils.DayKey(start.AddDate(0, 0, AgendaDays-1))

	var rows []tasklist.Item
	for _, t := range m.store.ActiveTasks() {
		if t.IsRecurring() || t.Date == "" || t.Date < from || t.Date > to {
			continue
		}
		it := tasklist.FromTask(t)
		it.Day = t.Date // sort key only; not an instance
		rows = append(rows, it)
	}
	for _, inst := range m.store.Expand(from, to) {
		rows = append(rows, tasklist.FromInstance(inst))
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Day < rows[b].Day
	})
	m.agenda.SetItems(rows)

	var inboxRows []tasklist.Item
	for _, t := range m.store.UnscheduledTasks("") {
		inboxRows = append(inboxRows, tasklist.FromTask(t))
	}
	m.inbox.SetItems(inboxRows)

	var archiveRows []tasklist.Item
	for _, a := range m.store.ArchivedTasks() {
		archiveRows = append(archiveRows, tasklist.FromArchived(a))
	}
	m.archive.SetItems(archiveRows)
}

func (m *Model) currentList() *tasklist.Model {
	switch m.state {
	case stateInbox:
		return &m.inbox
	case stateArchive:
		return &m.archive
	default:
		return &m.agenda
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	m.agenda.SetSize(width-4, listHeight)
	m.inbox.SetSize(width-4, listHeight)
	m.archive.SetSize(width-4, listHeight)
	m.help.Width = width
}
