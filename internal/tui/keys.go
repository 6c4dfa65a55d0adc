package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// wizardKeys are the bindings of the wizard screen
type wizardKeys struct {
	Next       key.Binding
	Prev       key.Binding
	Advance    key.Binding
	Back       key.Binding
	Toggle     key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	AddItem    key.Binding
	RemoveItem key.Binding
	Leave      key.Binding
	Quit       key.Binding
}

func newWizardKeys() wizardKeys {
	return wizardKeys{
		Next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Advance:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Back:       key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "back")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		CycleLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "currency")),
		CycleRight: key.NewBinding(key.WithKeys("right")),
		AddItem:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add item")),
		RemoveItem: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove item")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k wizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Advance, k.Back, k.Toggle, k.CycleLeft, k.AddItem, k.RemoveItem, k.Leave}
}

// FullHelp implements help.KeyMap
func (k wizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Advance, k.Back},
		{k.Toggle, k.CycleLeft, k.AddItem, k.RemoveItem},
		{k.Leave, k.Quit},
	}
}

// shellKeys are the bindings of the sidebar shell
type shellKeys struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	New   key.Binding
	Quit  key.Binding
	Abort key.Binding
}

func newShellKeys() shellKeys {
	return shellKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "navigate")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new document")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Abort: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k shellKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.New, k.Quit}
}

// FullHelp implements help.KeyMap
func (k shellKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
