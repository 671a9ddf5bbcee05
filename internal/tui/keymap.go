package tui

import (
	"charm.land/bubbles/v2/key"
)

type keyMap struct {
	Quit       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Activate   key.Binding
	Up         key.Binding
	Down       key.Binding
	Refresh    key.Binding
	ToggleHelp key.Binding
	Dismiss    key.Binding
	Sidebar    key.Binding

	View1 key.Binding
	View2 key.Binding
	View3 key.Binding
	View4 key.Binding
	View5 key.Binding
	View6 key.Binding

	KeyNew    key.Binding
	KeyEdit   key.Binding
	KeyDelete key.Binding
	KeyReveal key.Binding
	KeyCopy   key.Binding

	Contact key.Binding
	Send    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next focus"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev focus"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/dismiss"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		View1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		View2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "account"),
		),
		View3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "assistant"),
		),
		View4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "reports"),
		),
		View5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "playground"),
		),
		View6: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "docs"),
		),
		KeyNew: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new key"),
		),
		KeyEdit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit key"),
		),
		KeyDelete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete key"),
		),
		KeyReveal: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide"),
		),
		KeyCopy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy key"),
		),
		Contact: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "contact us"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.KeyNew,
		k.KeyEdit,
		k.KeyDelete,
		k.KeyReveal,
		k.KeyCopy,
		k.FocusNext,
		k.ToggleHelp,
		k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Activate, k.Up, k.Down, k.Refresh},
		{k.View1, k.View2, k.View3, k.View4, k.View5, k.View6},
		{k.KeyNew, k.KeyEdit, k.KeyDelete, k.KeyReveal, k.KeyCopy},
		{k.Contact, k.Send, k.Sidebar, k.Dismiss, k.ToggleHelp, k.Quit},
	}
}
