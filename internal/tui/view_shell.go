package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

func (m model) renderView() string {
	if m.quitting {
		return "dandi dashboard closed\n"
	}

	t := newTheme()
	layout := computeLayout(m.width, m.height, m.sidebarCollapsed)
	if layout.Compact {
		return m.renderCompactView(t, layout)
	}

	header := m.renderHeader(t, layout)
	sidebar := m.renderSidebar(t, layout)
	workbench := m.renderWorkbench(t, layout)
	inspector := m.renderInspector(t, layout)
	footer := m.renderFooter(t, layout)

	sep := t.panelSubtle.Render("│")
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, sep, workbench, sep, inspector)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return t.appBG.Width(layout.Width).Height(layout.Height).Render(ui)
}

func (m model) renderCompactView(t theme, layout uiLayout) string {
	header := m.renderHeader(t, layout)
	nav := m.renderSidebar(t, layout)
	main := m.renderWorkbench(t, layout)
	inspector := m.renderInspector(t, layout)
	footer := m.renderFooter(t, layout)

	content := lipgloss.JoinVertical(lipgloss.Left, header, nav, main, inspector, footer)
	return t.appBG.Width(layout.Width).Height(layout.Height).Render(content)
}

func (m model) renderHeader(t theme, layout uiLayout) string {
	statusChip := t.chipSuccess.Render("● Operational")
	if m.state.Error != "" {
		statusChip = t.chipError.Render("ERROR")
	} else if m.busy() {
		statusChip = t.chipWarn.Render(m.spinner.View() + " SYNCING")
	}

	style := sizedStyle(t.headerBox, layout.Width, layout.HeaderHeight)
	contentWidth := innerWidth(t.headerBox, layout.Width)

	line1 := fillLine(t.brand.Render("Dandi")+"  "+t.headerTxt.Render(viewLabel(m.activeView)), statusChip, contentWidth)
	line2 := fillLine(
		t.headerSub.Render(trimToWidth("account: "+fallbackText(m.cfg.AccountName, "Personal")+" | focus: "+focusLabel(m.focus), maxInt(20, contentWidth/2))),
		t.headerSub.Render(trimToWidth("api: "+fallbackText(m.cfg.APIURL, "unset")+" | env "+fallbackText(m.cfg.Environment, "unset"), maxInt(20, contentWidth/2))),
		contentWidth,
	)

	return style.Render(strings.Join([]string{line1, line2}, "\n"))
}

func (m model) renderSidebar(t theme, layout uiLayout) string {
	style := t.sidebarBox

	if layout.Compact {
		if m.sidebarCollapsed {
			line := t.sidebarInactive.Render(fmt.Sprintf("b: show nav | %s", viewLabel(m.activeView)))
			return sizedStyle(style, layout.Width, layout.CompactSidebarHeight).Render(trimToWidth(line, innerWidth(style, layout.Width)))
		}
		items := make([]string, 0, len(allViews()))
		for i, view := range allViews() {
			label := fmt.Sprintf("%d:%s", i+1, viewLabel(view))
			if view == m.activeView {
				label = t.sidebarActive.Render(label)
			} else {
				label = t.sidebarItem.Render(label)
			}
			items = append(items, label)
		}
		line := strings.Join(items, "  ")
		if m.focus == focusSidebar {
			line = paneLabel("nav", true) + " " + line
		}
		return sizedStyle(style, layout.Width, layout.CompactSidebarHeight).Render(trimToWidth(line, innerWidth(style, layout.Width)))
	}

	if m.sidebarCollapsed {
		lines := []string{t.brand.Render("D"), ""}
		for index, view := range allViews() {
			label := fmt.Sprintf("%d", index+1)
			if view == m.activeView {
				lines = append(lines, t.sidebarActive.Render(label))
			} else {
				lines = append(lines, t.sidebarItem.Render(label))
			}
		}
		return sizedStyle(style, layout.SidebarWidth, layout.BodyHeight).Render(strings.Join(lines, "\n"))
	}

	width := innerWidth(style, layout.SidebarWidth) - 2
	lines := []string{
		t.brand.Render("Dandi"),
		t.sidebarInactive.Render(trimToWidth("▾ "+fallbackText(m.cfg.AccountName, "Personal"), width)),
		"",
		t.sidebarTitle.Render(paneLabel("Navigation", m.focus == focusSidebar)),
	}
	for index, view := range allViews() {
		cursor := " "
		if index == m.sidebarIndex {
			cursor = ">"
		}
		label := fmt.Sprintf("%s %d. %s", cursor, index+1, viewLabel(view))
		itemStyle := t.sidebarItem
		if view == m.activeView {
			itemStyle = t.sidebarActive
		}
		lines = append(lines, itemStyle.Render(trimToWidth(label, width)))
	}

	lines = append(lines,
		"",
		t.sidebarInactive.Render(trimToWidth(m.cfg.AccountEmail, width)),
		t.sidebarInactive.Render("b: collapse"),
	)

	return sizedStyle(style, layout.SidebarWidth, layout.BodyHeight).Render(strings.Join(lines, "\n"))
}

func (m model) renderWorkbench(t theme, layout uiLayout) string {
	title := viewLabel(m.activeView)

	bodyWidth := layout.MainWidth
	bodyHeight := layout.BodyHeight
	if layout.Compact {
		bodyWidth = layout.Width
		bodyHeight = layout.CompactMainHeight
	}

	var content string
	switch {
	case m.state.ModalOpen:
		content = m.renderKeyModal(t, bodyWidth, bodyHeight-1)
	case m.state.ContactOpen:
		content = m.renderContactModal(t, bodyWidth, bodyHeight-1)
	case m.activeView == viewOverview:
		content = m.renderOverviewWorkbenchText(t, layout)
	default:
		content = m.renderPageWorkbenchText(t, m.activeView)
	}

	style := t.panelBox
	titleStyle := t.panelTitle
	if m.focus == focusWorkbench {
		titleStyle = t.panelFocus
	}
	header := fillLine(titleStyle.Render(paneLabel(title, m.focus == focusWorkbench)), t.panelSubtle.Render(viewSubtitle(m.activeView)), innerWidth(style, bodyWidth))
	return sizedStyle(style, bodyWidth, bodyHeight).Render(header + "\n" + content)
}

func (m model) renderInspector(t theme, layout uiLayout) string {
	title := "Inspector"
	if m.activeView != viewOverview {
		title = "Session"
	}

	width := layout.InspectorWidth
	height := layout.BodyHeight
	if layout.Compact {
		width = layout.Width
		height = layout.CompactInspectorHeight
	}

	style := t.panelBox
	titleStyle := t.panelTitle
	if m.focus == focusInspector {
		titleStyle = t.panelFocus
	}
	head := fillLine(titleStyle.Render(paneLabel(title, m.focus == focusInspector)), t.panelSubtle.Render(fmt.Sprintf("%d events", len(m.activity))), innerWidth(style, width))
	return sizedStyle(style, width, height).Render(head + "\n" + m.inspectorViewport.View())
}

func (m model) renderFooter(t theme, layout uiLayout) string {
	style := t.footerBox
	width := innerWidth(style, layout.Width)

	var status string
	switch {
	case strings.TrimSpace(m.state.Error) != "":
		status = t.footerErr.Render(trimToWidth("error: "+m.state.Error, width))
	case m.state.Toast != "":
		status = t.toast.Render(trimToWidth("✓ "+m.state.Toast, width))
	case m.busy():
		status = t.footerWarn.Render(m.spinner.View() + " working")
	default:
		status = t.footerOK.Render("ready")
	}

	helpPrefix := ""
	if m.help.ShowAll {
		helpPrefix = t.footerKey.Render("› ")
	}
	helpLine := t.footerInfo.Render(helpPrefix + m.help.View(m.keys))

	return sizedStyle(style, layout.Width, layout.FooterHeight).Render(status + "\n" + helpLine)
}

func fillLine(left, right string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(left + " " + right)
	}
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	if lw+rw+1 > width {
		return trimToWidth(left+" "+right, width)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

func trimToWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(value))
	if len(runes) <= width {
		return string(runes)
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func sizedStyle(style lipgloss.Style, width, height int) lipgloss.Style {
	contentWidth := maxInt(1, width-style.GetHorizontalFrameSize())
	contentHeight := maxInt(1, height-style.GetVerticalFrameSize())
	return style.Width(contentWidth).Height(contentHeight)
}

func innerWidth(style lipgloss.Style, width int) int {
	return maxInt(1, width-style.GetHorizontalFrameSize())
}

func fallbackText(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func viewSubtitle(view viewID) string {
	switch view {
	case viewAccount:
		return "profile and plan"
	case viewAssistant:
		return "ask the research model"
	case viewReports:
		return "saved research"
	case viewPlayground:
		return "try the api"
	case viewDocs:
		return "guides and reference"
	default:
		return "Overview / Overview"
	}
}

func paneLabel(label string, focused bool) string {
	if focused {
		return "› " + label
	}
	return "  " + label
}
