package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/model"
	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/mero2-web/credit-system-ai/internal/source"
)

// View identifies one dashboard tab.
type View int

// Dashboard tabs.
const (
	ViewOverview View = iota
	ViewMatrix
	ViewTrend
	ViewScatter
)

// viewNames orders the tab bar.
var viewNames = [...]string{"Overview", "Matrix", "Trend", "Scatter"}

// filterCycle orders the decision filter; the empty bucket means no filter.
var filterCycle = []model.DecisionBucket{
	"",
	model.BucketAccepted,
	model.BucketReview,
	model.BucketRejected,
}

// Model holds the dashboard state.
type Model struct {
	src         source.RecordSource
	engine      *analytics.Engine
	snapshot    *model.Snapshot
	report      *analytics.Report
	lastError   error
	search      string
	keymap      KeyMap
	searchInput textinput.Model
	spinner     spinner.Model
	table       table.Model
	filterIdx   int
	visible     int
	width       int
	height      int
	view        View
	searching   bool
	loading     bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(render.PrimaryColor)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by customer or name..."
	searchInput.CharLimit = 50

	return Model{
		src:         cfg.Source,
		engine:      cfg.Engine,
		keymap:      DefaultKeyMap(),
		searchInput: searchInput,
		spinner:     s,
		table:       newDashboardTable(),
		view:        ViewOverview,
		loading:     true,
	}
}

// Init starts the spinner and the first snapshot load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSnapshot())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotLoadedMsg:
		m.loading = false
		m.lastError = msg.err
		if msg.err == nil {
			m.snapshot = msg.snapshot
			m.recompute()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey handles key presses outside search mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextView):
		m.view = (m.view + 1) % View(len(viewNames))
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keymap.PrevView):
		m.view = (m.view + View(len(viewNames)) - 1) % View(len(viewNames))
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keymap.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.searchInput.SetValue(m.search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadSnapshot())

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchKey handles key presses while the search prompt is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search = m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadSnapshot())

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// recompute re-runs the engine over the current filter selection. Server
// aggregates stay attached, so KPI and distribution views keep reflecting
// the full portfolio.
func (m *Model) recompute() {
	snap := filteredSnapshot(m.snapshot, m.filter())

	m.visible = 0
	if snap != nil {
		m.visible = len(snap.Applications)
	}

	m.report = m.engine.Compute(snap)
	m.refreshTable()
}

// filter returns the active decision bucket; empty means no filter.
func (m Model) filter() model.DecisionBucket {
	return filterCycle[m.filterIdx%len(filterCycle)]
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	height := m.height - 10
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)

	if m.width > 8 {
		m.searchInput.Width = m.width / 2
	}
}

// filteredSnapshot narrows records to one decision bucket. The server
// aggregates stay attached; only record-derived views change.
func filteredSnapshot(snap *model.Snapshot, bucket model.DecisionBucket) *model.Snapshot {
	if snap == nil || bucket == "" {
		return snap
	}

	out := &model.Snapshot{
		Applications: make([]model.ApplicationRecord, 0, len(snap.Applications)),
		Overview:     snap.Overview,
		Statistics:   snap.Statistics,
	}
	for i := range snap.Applications {
		rec := snap.Applications[i]
		if analytics.ClassifyDecision(rec.DecisionLabel()) == bucket {
			out.Applications = append(out.Applications, rec)
		}
	}

	return out
}
