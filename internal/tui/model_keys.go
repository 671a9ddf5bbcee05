package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/dwizi/dandi/internal/dashboard"
)

func (m model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.state.ModalOpen {
		return m.handleModalKey(msg)
	}
	if m.state.ContactOpen {
		return m.handleContactKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		return m, m.dismissNotices()
	case key.Matches(msg, m.keys.FocusNext):
		m.focus = (m.focus + 1) % focusZoneCount
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.FocusPrev):
		m.focus = (m.focus + focusZoneCount - 1) % focusZoneCount
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		m.sidebarCollapsed = !m.sidebarCollapsed
		m.resizeWidgets()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.dispatch(dashboard.Mount{})
	case key.Matches(msg, m.keys.Contact):
		return m, m.dispatch(dashboard.OpenContact{})
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}

	for index, binding := range []key.Binding{m.keys.View1, m.keys.View2, m.keys.View3, m.keys.View4, m.keys.View5, m.keys.View6} {
		if key.Matches(msg, binding) {
			m.setActiveView(allViews()[index])
			return m, nil
		}
	}

	if m.activeView == viewOverview {
		return m.handleKeyAction(msg)
	}
	return m, nil
}

// handleKeyAction maps the per-row key operations of the overview table.
func (m model) handleKeyAction(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.KeyNew) {
		return m, m.dispatch(dashboard.OpenCreate{})
	}
	selected, ok := m.selectedKey()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.KeyEdit):
		return m, m.dispatch(dashboard.OpenEdit{Key: selected})
	case key.Matches(msg, m.keys.KeyDelete):
		return m, m.dispatch(dashboard.Delete{ID: selected.ID})
	case key.Matches(msg, m.keys.KeyReveal):
		return m, m.dispatch(dashboard.ToggleVisibility{ID: selected.ID})
	case key.Matches(msg, m.keys.KeyCopy):
		return m, m.dispatch(dashboard.Copy{Value: selected.Value})
	}
	return m, nil
}

func (m model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSidebar:
		m.setActiveView(allViews()[m.sidebarIndex])
		return m, nil
	case focusWorkbench:
		if m.activeView != viewOverview {
			return m, nil
		}
		selected, ok := m.selectedKey()
		if !ok {
			return m, m.dispatch(dashboard.OpenCreate{})
		}
		return m, m.dispatch(dashboard.OpenEdit{Key: selected})
	}
	return m, nil
}

func (m *model) dismissNotices() tea.Cmd {
	var cmds []tea.Cmd
	if m.state.Toast != "" {
		cmds = append(cmds, m.dispatch(dashboard.DismissToast{}))
	}
	if m.state.Error != "" {
		cmds = append(cmds, m.dispatch(dashboard.DismissError{}))
	}
	return tea.Batch(cmds...)
}

func (m *model) moveSelection(delta int) {
	switch m.focus {
	case focusSidebar:
		m.sidebarIndex = clampInt(m.sidebarIndex+delta, 0, len(allViews())-1)
	case focusInspector:
		if delta < 0 {
			m.inspectorViewport.ScrollUp(-delta)
		} else {
			m.inspectorViewport.ScrollDown(delta)
		}
	default:
		if delta < 0 {
			m.keysTable.MoveUp(-delta)
		} else {
			m.keysTable.MoveDown(delta)
		}
		m.refreshInspector()
	}
}

func (m model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		return m, m.dispatch(dashboard.Close{})
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.form.cycle(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m, m.form.cycle(-1)
	case key.Matches(msg, m.keys.Activate):
		return m, m.dispatch(dashboard.Submit{})
	}

	field, value, cmd := m.form.update(msg)
	return m, tea.Batch(cmd, m.dispatch(dashboard.ChangeField{Field: field, Value: value}))
}

func (m model) handleContactKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		return m, m.dispatch(dashboard.CloseContact{})
	case key.Matches(msg, m.keys.Send):
		return m, m.dispatch(dashboard.SendContact{})
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.contact.cycle(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m, m.contact.cycle(-1)
	case key.Matches(msg, m.keys.Activate) && m.contact.focused != dashboard.ContactMessage:
		return m, m.contact.cycle(1)
	}

	field, value, cmd := m.contact.update(msg)
	return m, tea.Batch(cmd, m.dispatch(dashboard.ChangeContactField{Field: field, Value: value}))
}

func (m model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.state.ModalOpen:
		field, value, cmd := m.form.update(msg)
		return m, tea.Batch(cmd, m.dispatch(dashboard.ChangeField{Field: field, Value: value}))
	case m.state.ContactOpen:
		field, value, cmd := m.contact.update(msg)
		return m, tea.Batch(cmd, m.dispatch(dashboard.ChangeContactField{Field: field, Value: value}))
	}
	return m, nil
}
