package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dwizi/dandi/internal/dashboard"
)

func (m model) renderKeyModal(t theme, width, height int) string {
	title := "Create New API Key"
	submit := "Create Key"
	valueLabel := "Key Value (Optional)"
	if m.state.Mode == dashboard.ModeEdit {
		title = "Edit API Key"
		submit = "Save Changes"
		valueLabel = "Key Value"
	}

	lines := []string{
		t.modalTitle.Render(title),
		"",
		m.fieldLabel(t, "Key Name", m.form.focused == dashboard.FieldName),
		m.form.name.View(),
		"",
		m.fieldLabel(t, valueLabel, m.form.focused == dashboard.FieldValue),
		m.form.value.View(),
		"",
		m.fieldLabel(t, "Usage", m.form.focused == dashboard.FieldUsage),
		m.form.usage.View(),
		"",
	}
	if m.state.Error != "" {
		lines = append(lines, t.panelError.Render(m.state.Error), "")
	}
	actions := t.button.Render("enter "+submit) + "  " + t.panelSubtle.Render("esc Cancel")
	if m.busy() {
		actions = t.panelWarn.Render(m.spinner.View()+" saving...") + "  " + t.panelSubtle.Render("esc Cancel")
	}
	lines = append(lines, actions)

	return placeModal(t, width, height, strings.Join(lines, "\n"))
}

func (m model) renderContactModal(t theme, width, height int) string {
	lines := []string{
		t.modalTitle.Render("Contact Us"),
		t.panelSubtle.Render(contactPrompt),
		"",
		m.fieldLabel(t, "Name", m.contact.focused == dashboard.ContactName),
		m.contact.name.View(),
		m.fieldLabel(t, "Email", m.contact.focused == dashboard.ContactEmail),
		m.contact.email.View(),
		m.fieldLabel(t, "Message", m.contact.focused == dashboard.ContactMessage),
		m.contact.message.View(),
		"",
	}
	if m.state.Error != "" {
		lines = append(lines, t.panelError.Render(m.state.Error), "")
	}
	lines = append(lines, t.button.Render("ctrl+s Send")+"  "+t.panelSubtle.Render("esc Cancel"))

	return placeModal(t, width, height, strings.Join(lines, "\n"))
}

func (m model) fieldLabel(t theme, label string, focused bool) string {
	if focused {
		return t.inputLabelFocus.Render(label)
	}
	return t.inputLabel.Render(label)
}

func placeModal(t theme, width, height int, content string) string {
	boxWidth := clampInt(width-8, 28, 60)
	box := t.modalBox.Width(boxWidth).Render(content)
	return lipgloss.Place(maxInt(1, width-2), maxInt(1, height), lipgloss.Center, lipgloss.Center, box)
}
