package tui

import (
	"strings"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
)

const (
	emptyKeysText = "No API keys found. Create one using the button above."
	contactPrompt = "Have any questions, feedback or need support? We'd love to hear from you!"

	// overviewChromeHeight is every overview line that is not a table row.
	overviewChromeHeight = 14
)

func keyColumns(width int) []table.Column {
	available := maxInt(24, width-8)
	name := maxInt(6, available*28/100)
	usage := maxInt(5, available*12/100)
	value := maxInt(9, available*36/100)
	options := maxInt(7, available-name-usage-value)
	return []table.Column{
		{Title: "NAME", Width: name},
		{Title: "USAGE", Width: usage},
		{Title: "KEY", Width: value},
		{Title: "OPTIONS", Width: options},
	}
}

func keyOptions(visible bool) string {
	if visible {
		return "hide  copy  edit  delete"
	}
	return "show  copy  edit  delete"
}

func (m *model) rebuildKeyRows() {
	rows := make([]table.Row, 0, len(m.state.Keys))
	for _, key := range m.state.Keys {
		rows = append(rows, table.Row{
			key.Name,
			humanize.Comma(key.Usage),
			m.state.DisplayValue(key),
			keyOptions(m.state.Visible.Has(key.ID)),
		})
	}
	cursor := m.keysTable.Cursor()
	m.keysTable.SetRows(rows)
	m.keysTable.SetCursor(clampInt(cursor, 0, maxInt(0, len(rows)-1)))
}

func (m model) renderOverviewWorkbenchText(t theme, layout uiLayout) string {
	contentWidth := layout.MainWidth - 4
	if layout.Compact {
		contentWidth = layout.Width - 4
	}
	contentWidth = maxInt(36, contentWidth)

	intro := []string{
		fillLine(t.panelSubtle.Render("Overview / Overview"), t.chipSuccess.Render("● Operational"), contentWidth),
		t.panelSubtle.Render("Your plan, usage and API keys"),
	}

	primary := []string{m.renderPlanCard(t, contentWidth), ""}
	primary = append(primary, fillLine(t.panelTitle.Render("API Keys"), t.button.Render("n + Create Key"), contentWidth))
	switch {
	case m.state.Loading && len(m.state.Keys) == 0:
		primary = append(primary, t.panelSubtle.Render(m.spinner.View()+" loading keys..."))
	case len(m.state.Keys) == 0:
		primary = append(primary, t.panelSubtle.Render(emptyKeysText))
	default:
		primary = append(primary, m.keysTable.View())
	}

	tail := []string{
		t.panelSubtle.Render(trimToWidth(contactPrompt, contentWidth)),
		t.footerKey.Render("s") + " " + t.panelAccent.Render("Contact Us"),
	}
	return renderWorkbenchRhythm(intro, primary, tail)
}

func (m model) renderPlanCard(t theme, width int) string {
	used := humanize.Comma(m.state.TotalUsage())
	limit := humanize.Comma(int64(m.cfg.PlanCredits))

	usageLine := t.cardValue.Render(used+" / "+limit) + " " + t.cardLabel.Render("Credits")
	if m.cfg.PlanCredits > 0 && m.state.TotalUsage() > int64(m.cfg.PlanCredits) {
		usageLine = t.panelWarn.Render(used+" / "+limit) + " " + t.cardLabel.Render("Credits")
	}

	colWidth := maxInt(14, (width-6)/2)
	colStyle := lipgloss.NewStyle().Width(colWidth)
	left := colStyle.Render(strings.Join([]string{
		t.cardLabel.Render("CURRENT PLAN"),
		t.cardValue.Render(fallbackText(m.cfg.PlanName, "Researcher")),
	}, "\n"))
	right := colStyle.Render(strings.Join([]string{
		t.cardLabel.Render("API Usage"),
		usageLine,
	}, "\n"))

	return t.cardBox.Width(maxInt(20, width-2)).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}
