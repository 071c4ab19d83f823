package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stairtrek/internal/config"
	"github.com/fyrsmithlabs/stairtrek/internal/record"
	"github.com/fyrsmithlabs/stairtrek/internal/stats"
)

// Tab identifies one of the top-level views.
type Tab int

const (
	TabDashboard Tab = iota
	TabEntry
	TabHistory
)

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabEntry:
		return "Data Entry"
	case TabHistory:
		return "History"
	}
	return "Unknown"
}

var tabs = []Tab{TabDashboard, TabEntry, TabHistory}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusWarn
)

// statusLine is a transient one-line notice below the active view.
type statusLine struct {
	text string
	kind statusKind
}

// Model is the root Bubble Tea model. One user interaction triggers one
// full load, compute, render, and optionally save cycle; every mutation
// persists the full table and the refreshed state flows back in a message.
type Model struct {
	cfg     *config.Config
	store   *record.Store
	watcher *record.Watcher
	logger  *zap.Logger
	now     func() time.Time

	tab     Tab
	records []record.Record

	averages      stats.Averages
	projection    stats.Projection
	hasProjection bool

	entry    entryModel
	history  historyModel
	progress progress.Model

	status   statusLine
	err      error
	width    int
	height   int
	quitting bool
}

// Option configures the model.
type Option func(*Model)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the root model. The watcher may be nil, in which case
// external data file edits are not picked up until the next interaction.
func New(cfg *config.Config, store *record.Store, watcher *record.Watcher, logger *zap.Logger, opts ...Option) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		cfg:     cfg,
		store:   store,
		watcher: watcher,
		logger:  logger,
		now:     time.Now,
		entry:   newEntryModel(),
		history: newHistoryModel(),
		progress: progress.New(
			progress.WithGradient("#00ff00", "#ffff00"),
			progress.WithWidth(progressWidth),
		),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.entry.reset(record.Normalize(m.now()))
	return m
}

// Message types
type recordsMsg []record.Record

type mutatedMsg struct {
	records []record.Record
	note    string
}

type rejectedMsg struct{ date time.Time }

type fileChangedMsg struct{}

type errMsg error

// Init loads the table and arms the file-change listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRecords(), textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForFileChange())
	}
	return tea.Batch(cmds...)
}

// Commands

func (m Model) loadRecords() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		records, err := store.Load()
		if err != nil {
			return errMsg(err)
		}
		return recordsMsg(records)
	}
}

func (m Model) addRecord(date time.Time, flights int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		records, err := store.Add(date, flights)
		if errors.Is(err, record.ErrDuplicateDate) {
			return rejectedMsg{date: date}
		}
		if err != nil {
			return errMsg(err)
		}
		return mutatedMsg{records: records, note: "Entry added!"}
	}
}

func (m Model) editRecord(date time.Time, flights int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		records, err := store.EditFlights(date, flights)
		if err != nil {
			return errMsg(err)
		}
		return mutatedMsg{records: records, note: "Entry updated."}
	}
}

func (m Model) deleteRecord(date time.Time) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		records, err := store.DeleteByDate(date)
		if err != nil {
			return errMsg(err)
		}
		return mutatedMsg{records: records, note: fmt.Sprintf("Entry for %s deleted.", record.FormatDate(date))}
	}
}

func (m Model) resetRecords() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		records, err := store.Reset()
		if err != nil {
			return errMsg(err)
		}
		return mutatedMsg{records: records, note: "All data has been reset."}
	}
}

func (m Model) waitForFileChange() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		<-w.Changes()
		return fileChangedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordsMsg:
		m.setRecords(msg)
		return m, nil

	case mutatedMsg:
		m.setRecords(msg.records)
		m.status = statusLine{text: msg.note, kind: statusSuccess}
		if m.entry.editing {
			// Edit flow started in History; return there once saved.
			m.tab = TabHistory
		}
		m.entry.reset(record.Normalize(m.now()))
		return m, nil

	case rejectedMsg:
		m.status = statusLine{
			text: fmt.Sprintf("You've already logged %s. Edit or delete the existing entry instead.", record.FormatDate(msg.date)),
			kind: statusWarn,
		}
		return m, nil

	case fileChangedMsg:
		// The data file changed on disk (possibly an external edit):
		// reload and keep listening.
		m.logger.Debug("data file changed on disk, reloading")
		return m, tea.Batch(m.loadRecords(), m.waitForFileChange())

	case errMsg:
		m.err = error(msg)
		m.logger.Error("store operation failed", zap.Error(m.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// setRecords installs a freshly loaded table and recomputes everything
// derived from it.
func (m *Model) setRecords(records []record.Record) {
	m.records = records
	m.averages = stats.ComputeAverages(records, m.cfg.Stats.Grouping())
	m.projection, m.hasProjection = stats.Predict(records, m.cfg.Mountain.TargetFlights(), m.now())
	m.history.setRecords(records, m.cfg.Mountain.FeetPerFlight)
	m.err = nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The entry form owns plain character keys while typing.
	typing := m.tab == TabEntry
	if !typing {
		switch key {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "1":
			m.switchTab(TabDashboard)
			return m, nil
		case "2":
			m.switchTab(TabEntry)
			return m, nil
		case "3":
			m.switchTab(TabHistory)
			return m, nil
		}
	}

	switch key {
	case "tab":
		m.switchTab(tabs[(int(m.tab)+1)%len(tabs)])
		return m, nil
	case "shift+tab":
		m.switchTab(tabs[(int(m.tab)+len(tabs)-1)%len(tabs)])
		return m, nil
	}

	switch m.tab {
	case TabDashboard:
		if key == "r" {
			return m, m.loadRecords()
		}
		return m, nil

	case TabEntry:
		return m.handleEntryKey(msg)

	case TabHistory:
		return m.handleHistoryKey(msg)
	}

	return m, nil
}

func (m *Model) switchTab(tab Tab) {
	m.tab = tab
	m.status = statusLine{}
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		date, flights, err := m.entry.values()
		if err != nil {
			m.status = statusLine{text: err.Error(), kind: statusWarn}
			return m, nil
		}
		if m.entry.editing {
			return m, m.editRecord(date, flights)
		}
		return m, m.addRecord(date, flights)

	case "esc":
		if m.entry.editing {
			m.entry.reset(record.Normalize(m.now()))
			m.switchTab(TabHistory)
		}
		return m, nil

	case "up":
		m.entry.cycleFocus(-1)
		return m, nil

	case "down":
		m.entry.cycleFocus(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.updateInputs(msg)
	return m, cmd
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		if r, ok := m.history.selected(); ok {
			m.entry.startEditing(r)
			m.switchTab(TabEntry)
		}
		return m, nil

	case "d":
		if r, ok := m.history.selected(); ok {
			return m, m.deleteRecord(r.Date)
		}
		return m, nil

	case "R":
		return m, m.resetRecords()
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.update(msg)
	return m, cmd
}

// View renders the active tab inside the app chrome.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	content += headerStyle.Render(" Stair Trek ") + "  " +
		dimStyle.Render("Track your climb up "+m.cfg.Mountain.Name) + "\n"
	content += m.renderTabs() + "\n"

	if m.err != nil {
		content += m.renderError()
	} else {
		switch m.tab {
		case TabDashboard:
			content += m.renderDashboard()
		case TabEntry:
			content += m.renderEntry()
		case TabHistory:
			content += m.renderHistory()
		}
	}

	if m.status.kind != statusNone {
		content += "\n" + m.renderStatus() + "\n"
	}
	content += m.renderFooter()

	return containerStyle.Render(content)
}

func (m Model) renderTabs() string {
	var line string
	for _, t := range tabs {
		if t == m.tab {
			line += activeTabStyle.Render(t.String())
		} else {
			line += tabStyle.Render(t.String())
		}
	}
	return line
}

func (m Model) renderStatus() string {
	switch m.status.kind {
	case statusSuccess:
		return successStyle.Render("✓ ") + valueStyle.Render(m.status.text)
	case statusWarn:
		return warningStyle.Render("⚠ ") + valueStyle.Render(m.status.text)
	}
	return ""
}

func (m Model) renderError() string {
	var content string
	content += "\n" + errorStyle.Render("⚠ Cannot read the data file") + "\n\n"
	content += dimStyle.Render("File: ") + valueStyle.Render(m.store.Path()) + "\n"
	content += dimStyle.Render("Error: ") + errorStyle.Render(m.err.Error()) + "\n\n"
	content += dimStyle.Render("The file is left untouched. Fix or remove it, then retry.") + "\n"
	return content
}

func (m Model) renderFooter() string {
	key := footerKeyStyle.Render
	txt := footerStyle.Render

	var line string
	switch m.tab {
	case TabDashboard:
		line = key("[r]") + txt(" refresh  ")
	case TabEntry:
		line = key("[enter]") + txt(" save  ") +
			key("[↑/↓]") + txt(" field  ") +
			key("[esc]") + txt(" cancel  ")
	case TabHistory:
		line = key("[e]") + txt(" edit  ") +
			key("[d]") + txt(" delete  ") +
			key("[R]") + txt(" reset all  ")
	}
	line += key("[tab]") + txt(" switch view  ")
	if m.tab == TabEntry {
		line += key("[ctrl+c]") + txt(" quit")
	} else {
		line += key("[q]") + txt(" quit")
	}
	return "\n" + line
}
