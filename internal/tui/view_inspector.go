package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

func (m *model) refreshInspector() {
	if m.activeView == viewOverview {
		m.inspectorViewport.SetContent(m.renderKeyInspectorText())
		return
	}
	m.inspectorViewport.SetContent(m.renderSessionInspectorText())
}

func (m model) renderKeyInspectorText() string {
	lines := []string{"Key Detail", ""}
	selected, ok := m.selectedKey()
	if !ok {
		lines = append(lines, "create a key with n")
	} else {
		visibility := "hidden"
		if m.state.Visible.Has(selected.ID) {
			visibility = "visible"
		}
		lines = append(lines,
			"name     "+fallbackText(selected.Name, "untitled"),
			"id       "+fallbackText(selected.ID.String(), "n/a"),
			"usage    "+humanize.Comma(selected.Usage),
			"key      "+m.state.DisplayValue(selected),
			"value    "+visibility,
		)
	}
	lines = append(lines, "", "Activity")
	return strings.Join(append(lines, m.activityLines(8)...), "\n")
}

func (m model) renderSessionInspectorText() string {
	lines := []string{
		"Session Detail",
		"",
		fmt.Sprintf("keys        %d", len(m.state.Keys)),
		fmt.Sprintf("revealed    %d", m.state.Visible.Len()),
		fmt.Sprintf("pending     %d", m.state.Pending),
		"active view " + string(m.activeView),
		"focus       " + focusLabel(m.focus),
		"",
		"Activity",
	}
	return strings.Join(append(lines, m.activityLines(0)...), "\n")
}

// activityLines lists the feed newest first; limit 0 means all.
func (m model) activityLines(limit int) []string {
	if len(m.activity) == 0 {
		return []string{"no events yet"}
	}
	lines := make([]string, 0, len(m.activity))
	for i := len(m.activity) - 1; i >= 0; i-- {
		entry := m.activity[i]
		lines = append(lines, entry.At.Format("15:04:05")+" "+strings.ToUpper(entry.Level)+" "+entry.Message)
		if limit > 0 && len(lines) == limit {
			break
		}
	}
	return lines
}
