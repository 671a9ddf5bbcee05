package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/table"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/dwizi/dandi/internal/clipboard"
	"github.com/dwizi/dandi/internal/config"
	"github.com/dwizi/dandi/internal/dashboard"
	"github.com/dwizi/dandi/internal/keyclient"
)

type viewID string

const (
	viewOverview   viewID = "overview"
	viewAccount    viewID = "account"
	viewAssistant  viewID = "assistant"
	viewReports    viewID = "reports"
	viewPlayground viewID = "playground"
	viewDocs       viewID = "docs"
)

func allViews() []viewID {
	return []viewID{viewOverview, viewAccount, viewAssistant, viewReports, viewPlayground, viewDocs}
}

func viewLabel(view viewID) string {
	switch view {
	case viewAccount:
		return "My Account"
	case viewAssistant:
		return "Research Assistant"
	case viewReports:
		return "Research Reports"
	case viewPlayground:
		return "API Playground"
	case viewDocs:
		return "Documentation"
	default:
		return "Overview"
	}
}

func sidebarIndexForView(view viewID) int {
	for index, item := range allViews() {
		if item == view {
			return index
		}
	}
	return 0
}

type focusZone int

const (
	focusSidebar focusZone = iota
	focusWorkbench
	focusInspector
	focusZoneCount
)

func focusLabel(focus focusZone) string {
	switch focus {
	case focusSidebar:
		return "sidebar"
	case focusInspector:
		return "inspector"
	default:
		return "workbench"
	}
}

// actionMsg carries a dashboard action into the program loop.
type actionMsg struct {
	action dashboard.Action
}

const maxActivityEntries = 200

type activityEntry struct {
	At      time.Time
	Level   string
	Message string
}

type model struct {
	cfg    config.Config
	logger *slog.Logger
	runner dashboard.Runner
	state  dashboard.State

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	keysTable         table.Model
	inspectorViewport viewport.Model
	activity          []activityEntry

	form    keyForm
	contact contactForm

	width            int
	height           int
	focus            focusZone
	activeView       viewID
	sidebarIndex     int
	sidebarCollapsed bool
	quitting         bool

	toastTTL       time.Duration
	requestTimeout time.Duration
	now            func() time.Time
}

func Run(cfg config.Config, logger *slog.Logger) error {
	client, err := keyclient.New(cfg)
	if err != nil {
		return err
	}

	sessionLogger, closeLog := newSessionLogger(cfg, logger)
	defer closeLog()

	runner := dashboard.Runner{
		Store:     client,
		Clipboard: clipboard.System(),
		Logger:    sessionLogger.With("component", "dashboard"),
	}
	sessionLogger.Info("dashboard starting", "api_url", client.BaseURL(), "env", cfg.Environment)

	program := tea.NewProgram(newModel(cfg, runner, sessionLogger))
	_, err = program.Run()
	return err
}

// newSessionLogger writes to the configured log file, or nowhere, while the
// terminal belongs to the dashboard.
func newSessionLogger(cfg config.Config, logger *slog.Logger) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.TUILogFile == "" {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.TUILogFile), 0o755); err != nil {
		logger.Warn("tui log directory unavailable", "path", cfg.TUILogFile, "error", err)
		return discard, func() {}
	}
	file, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("tui log file unavailable", "path", cfg.TUILogFile, "error", err)
		return discard, func() {}
	}
	fileLogger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return fileLogger, func() { _ = file.Close() }
}

func newModel(cfg config.Config, runner dashboard.Runner, logger *slog.Logger) model {
	t := newTheme()

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(t.spinner))

	keysTable := table.New(
		table.WithColumns(keyColumns(60)),
		table.WithHeight(6),
		table.WithFocused(true),
	)
	keysTable.SetStyles(table.Styles{
		Header:   t.tableHeader,
		Cell:     t.tableCell,
		Selected: t.tableSelected,
	})

	toastSeconds := cfg.ToastSeconds
	if toastSeconds < 1 {
		toastSeconds = 3
	}

	m := model{
		cfg:               cfg,
		logger:            logger,
		runner:            runner,
		state:             dashboard.NewState(),
		keys:              newKeyMap(),
		help:              help.New(),
		spinner:           spin,
		keysTable:         keysTable,
		inspectorViewport: viewport.New(),
		form:              newKeyForm(t),
		contact:           newContactForm(t),
		width:             120,
		height:            36,
		focus:             focusWorkbench,
		activeView:        viewOverview,
		toastTTL:          time.Duration(toastSeconds) * time.Second,
		requestTimeout:    time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		now:               time.Now,
	}
	m.resizeWidgets()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return actionMsg{action: dashboard.Mount{}}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.resizeWidgets()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case actionMsg:
		cmd := m.dispatch(typed.action)
		return m, cmd
	case tea.PasteMsg:
		return m.handlePaste(typed)
	case tea.KeyPressMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	return v
}

// dispatch runs action through the reducer and turns the resulting effects
// into commands.
func (m *model) dispatch(action dashboard.Action) tea.Cmd {
	prev := m.state
	next, effects := dashboard.Reduce(prev, action)
	m.state = next
	m.recordActivity(action)

	cmds := make([]tea.Cmd, 0, len(effects)+2)
	cmds = append(cmds, m.syncWidgets(prev))
	for _, effect := range effects {
		cmds = append(cmds, m.effectCmd(effect))
	}
	if next.Toast != "" && next.ToastSeq != prev.ToastSeq {
		cmds = append(cmds, toastTimeoutCmd(m.toastTTL, next.ToastSeq))
	}
	return tea.Batch(cmds...)
}

func (m model) effectCmd(effect dashboard.Effect) tea.Cmd {
	runner := m.runner
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return actionMsg{action: runner.Run(ctx, effect)}
	}
}

func toastTimeoutCmd(ttl time.Duration, seq int) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return actionMsg{action: dashboard.DismissToast{Seq: seq}}
	})
}

// syncWidgets brings inputs, the key table and the inspector in line with
// the state after a transition from prev.
func (m *model) syncWidgets(prev dashboard.State) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state.ModalOpen && (!prev.ModalOpen || prev.Editing != m.state.Editing):
		cmd = m.form.load(m.state.Form, m.state.Mode)
	case !m.state.ModalOpen && prev.ModalOpen:
		m.form.blur()
	}
	switch {
	case m.state.ContactOpen && !prev.ContactOpen:
		cmd = m.contact.load(m.state.Contact)
	case !m.state.ContactOpen && prev.ContactOpen:
		m.contact.blur()
	}
	m.rebuildKeyRows()
	m.refreshInspector()
	return cmd
}

func (m *model) recordActivity(action dashboard.Action) {
	level := "info"
	var message string
	switch a := action.(type) {
	case dashboard.KeysLoaded:
		if a.Err != nil {
			level, message = "error", "list keys: "+a.Err.Error()
		} else {
			message = "loaded " + pluralKeys(len(m.state.Keys))
		}
	case dashboard.KeyCreated:
		if a.Err != nil {
			level, message = "error", "create key: "+a.Err.Error()
		} else {
			message = "created key " + fallbackText(a.Key.Name, a.Key.ID.String())
		}
	case dashboard.KeyUpdated:
		if a.Err != nil {
			level, message = "error", "update key "+a.ID.String()+": "+a.Err.Error()
		} else {
			message = "updated key " + fallbackText(a.Key.Name, a.ID.String())
		}
	case dashboard.KeyDeleted:
		if a.Err != nil {
			level, message = "error", "delete key "+a.ID.String()+": "+a.Err.Error()
		} else {
			message = "deleted key " + a.ID.String()
		}
	case dashboard.Copied:
		if a.Err != nil {
			level, message = "error", "clipboard: "+a.Err.Error()
		} else {
			message = "copied key to clipboard"
		}
	case dashboard.ContactSent:
		if a.Err != nil {
			level, message = "error", "contact: "+a.Err.Error()
		} else {
			message = "contact message sent"
		}
	default:
		return
	}

	m.activity = append(m.activity, activityEntry{At: m.now(), Level: level, Message: message})
	if len(m.activity) > maxActivityEntries {
		m.activity = m.activity[len(m.activity)-maxActivityEntries:]
	}
	if level == "error" {
		m.logger.Warn("dashboard activity", "message", message)
	}
}

func pluralKeys(count int) string {
	if count == 1 {
		return "1 key"
	}
	return strconv.Itoa(count) + " keys"
}

func (m model) busy() bool {
	return m.state.Loading || m.state.Pending > 0
}

func (m model) selectedKey() (keyclient.APIKey, bool) {
	if len(m.state.Keys) == 0 {
		return keyclient.APIKey{}, false
	}
	index := m.keysTable.Cursor()
	if index < 0 || index >= len(m.state.Keys) {
		return keyclient.APIKey{}, false
	}
	return m.state.Keys[index], true
}

func (m *model) setActiveView(view viewID) {
	m.activeView = view
	m.sidebarIndex = sidebarIndexForView(view)
	m.inspectorViewport.GotoTop()
	m.refreshInspector()
}

func (m *model) applyFocus() {
	if m.focus == focusWorkbench {
		m.keysTable.Focus()
	} else {
		m.keysTable.Blur()
	}
}

func (m *model) resizeWidgets() {
	layout := computeLayout(m.width, m.height, m.sidebarCollapsed)
	t := newTheme()

	mainWidth := layout.MainWidth
	mainHeight := layout.BodyHeight
	inspectorWidth := layout.InspectorWidth
	inspectorHeight := layout.BodyHeight
	if layout.Compact {
		mainWidth = layout.Width
		mainHeight = layout.CompactMainHeight
		inspectorWidth = layout.Width
		inspectorHeight = layout.CompactInspectorHeight
	}

	tableWidth := maxInt(30, innerWidth(t.panelBox, mainWidth))
	m.keysTable.SetColumns(keyColumns(tableWidth))
	m.keysTable.SetWidth(tableWidth)
	m.keysTable.SetHeight(clampInt(mainHeight-overviewChromeHeight, 3, 20))

	m.inspectorViewport.SetWidth(innerWidth(t.panelBox, inspectorWidth))
	m.inspectorViewport.SetHeight(maxInt(1, inspectorHeight-1))

	m.help.SetWidth(innerWidth(t.footerBox, layout.Width))

	modalWidth := clampInt(mainWidth-8, 28, 60)
	m.form.setWidth(modalWidth - 6)
	m.contact.setWidth(modalWidth - 6)

	m.rebuildKeyRows()
	m.refreshInspector()
}
