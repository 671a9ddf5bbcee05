package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

func (m model) renderPageWorkbenchText(t theme, view viewID) string {
	var intro, primary, tail []string
	switch view {
	case viewAccount:
		intro = []string{t.panelSubtle.Render("Profile and subscription")}
		primary = []string{
			"account   " + t.panelAccent.Render(fallbackText(m.cfg.AccountName, "Personal")),
			"email     " + t.panelAccent.Render(fallbackText(m.cfg.AccountEmail, "unset")),
			"plan      " + t.panelAccent.Render(fallbackText(m.cfg.PlanName, "Researcher")),
			fmt.Sprintf("credits   %s / %s", humanize.Comma(m.state.TotalUsage()), humanize.Comma(int64(m.cfg.PlanCredits))),
			fmt.Sprintf("api keys  %d", len(m.state.Keys)),
		}
		tail = []string{t.panelSubtle.Render("Plan changes are handled by support. Press s to reach us.")}
	case viewAssistant:
		intro = []string{t.panelSubtle.Render("Ask research questions backed by your credits")}
		primary = []string{
			"The research assistant answers questions over the sources you",
			"connect and cites every claim it makes.",
			"",
			"Requests are billed against the plan shown on the overview.",
		}
		tail = []string{t.panelSubtle.Render("Available from the web workspace.")}
	case viewReports:
		intro = []string{t.panelSubtle.Render("Reports generated by the assistant")}
		primary = []string{
			"Completed research runs are saved here as reports.",
			"",
			t.panelSubtle.Render("No reports yet."),
		}
	case viewPlayground:
		intro = []string{t.panelSubtle.Render("Call the API with one of your keys")}
		primary = []string{
			"endpoint  " + t.panelAccent.Render(fallbackText(m.cfg.APIURL, "unset")),
			"",
			t.panelSubtle.Render("example"),
			fmt.Sprintf("curl -H 'Authorization: Bearer <key>' %s/api/info", m.cfg.APIURL),
		}
		tail = []string{t.panelSubtle.Render("Copy a key from the overview with c.")}
	default:
		intro = []string{t.panelSubtle.Render("Keyboard and command reference")}
		primary = []string{
			"n new key    e edit    x delete    v show/hide    c copy",
			"r refresh    s contact    b sidebar    1-6 views    ? help",
			"",
			t.panelSubtle.Render("command line"),
			"dandi keys list [--reveal]",
			"dandi keys create --name NAME [--value VALUE] [--usage N]",
			"dandi keys update ID [--name] [--value] [--usage]",
			"dandi keys delete ID",
			"dandi serve",
		}
	}
	if m.state.Error != "" {
		tail = append(tail, t.panelError.Render("error: "+m.state.Error))
	}
	return renderWorkbenchRhythm(intro, primary, tail)
}
