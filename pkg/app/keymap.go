package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines a set of keybindings. To work for help it must satisfy
// key.Map. It could also very easily be a map[string]key.Binding.
type applicationKeyMap struct {
	NextTab    key.Binding
	ComposeTab key.Binding
	BrowseTab  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

type composeKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Discard   key.Binding
}

type browseKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Details   key.Binding
	Edit      key.Binding
	Delete    key.Binding
	DeleteAll key.Binding
	About     key.Binding
	Quit      key.Binding
}

type confirmKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Choose  key.Binding
	Accept  key.Binding
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k applicationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k applicationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.ComposeTab, k.BrowseTab},
		{k.Help, k.Quit},
	}
}

func (k composeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Discard}
}

func (k composeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.Discard}}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Delete, k.DeleteAll, k.Details}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Details}, {k.Edit, k.Delete, k.DeleteAll}, {k.About}}
}

// DefaultKeyMap returns a default set of keybindings.
func DefaultKeyMap() applicationKeyMap {
	return applicationKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "switch tab"),
		),
		ComposeTab: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "add recipe"),
		),
		BrowseTab: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "my recipes"),
		),
		// only on the browse tab, the compose tab needs "?" for typing
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func defaultComposeKeyMap() composeKeyMap {
	return composeKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Discard: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear form"),
		),
	}
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		About: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "about"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Accept: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("n", "N", "esc", "q"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}
