package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Duplicate  key.Binding
	Archive    key.Binding
	ToInbox    key.Binding
	CycleState key.Binding
	Rate       key.Binding
	Restore    key.Binding
	Purge      key.Binding
	Undo       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "trash")),
		Duplicate:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "duplicate")),
		Archive:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "archive")),
		ToInbox:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "to inbox")),
		CycleState: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "cycle status")),
		Rate:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rate")),
		Restore:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restore")),
		Purge:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purge")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.CycleState, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
		{k.Add, k.Edit, k.Delete, k.Duplicate},
		{k.CycleState, k.Rate, k.Archive, k.ToInbox},
		{k.Restore, k.Purge, k.Undo},
	}
}
