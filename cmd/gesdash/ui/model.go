package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/source"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

type page int

const (
	pageSelect page = iota
	pageScatter
	pageTable
	pageCount
)

// Model is the root bubbletea model. All survey data flows through the pure
// state reducer; the model only owns view concerns (pages, sizes, spinner).
type Model struct {
	ctx    context.Context
	src    source.Source
	logger *zap.Logger
	styles Styles

	state   state.State
	loading bool

	active   page
	selector SelectorPage
	scatter  ScatterPage
	table    TablePage
	spin     spinner.Model

	width  int
	height int
}

// NewModel builds the dashboard model with the configured defaults.
func NewModel(ctx context.Context, src source.Source, mode survey.Mode, metric survey.Metric, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := NewStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Subtitle

	return Model{
		ctx:      ctx,
		src:      src,
		logger:   logger,
		styles:   styles,
		state:    state.New(mode, metric),
		loading:  true,
		selector: NewSelectorPage(styles),
		scatter:  NewScatterPage(styles),
		table:    NewTablePage(styles),
		spin:     sp,
	}
}

// Init kicks off the spinner and the one-shot dataset load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadCmd(m.ctx, m.src))
}

// Update is the event loop. Data events go through the reducer; everything
// else is view bookkeeping.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Height - 4 // header + footer
		m.selector.SetSize(msg.Width, inner)
		m.scatter.SetSize(msg.Width, inner)
		m.table.SetSize(msg.Width, inner)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		m.loading = false
		m.apply(state.RecordsLoaded{
			Records: msg.result.Records,
			Summary: msg.result.Summary,
			Origin:  msg.result.Origin,
		})
		m.logger.Info("dashboard data ready", zap.Int("records", len(msg.result.Records)))
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.apply(state.LoadFailed{Err: msg.err.Error()})
		m.logger.Error("dashboard load failed", zap.Error(msg.err))
		return m, nil

	case DatasetReloadedMsg:
		m.apply(state.RecordsLoaded{
			Records: msg.Result.Records,
			Summary: msg.Result.Summary,
			Origin:  msg.Result.Origin,
		})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) apply(ev state.Event) {
	m.state = state.Reduce(m.state, ev)
	m.table.Refresh(m.state)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % pageCount
		return m, nil
	case "1":
		m.active = pageSelect
		return m, nil
	case "2":
		m.active = pageScatter
		return m, nil
	case "3":
		m.active = pageTable
		return m, nil
	}

	// The terminal load-failure state only accepts quit and page keys.
	if m.state.LoadErr != "" {
		return m, nil
	}

	switch msg.String() {
	case "m":
		m.apply(state.SetMetric{Metric: nextMetric(m.state.Metric)})
		return m, nil
	case "v":
		next := survey.ByCategory
		if m.state.Mode == survey.ByCategory {
			next = survey.ByCourse
		}
		m.apply(state.SetMode{Mode: next})
		return m, nil
	case "c":
		m.apply(state.ClearSelections{})
		return m, nil
	}

	switch m.active {
	case pageSelect:
		if ev := m.selector.Update(msg, m.state); ev != nil {
			m.apply(ev)
		}
		return m, nil
	case pageTable:
		return m, m.table.Update(msg)
	}
	return m, nil
}

func nextMetric(cur survey.Metric) survey.Metric {
	metrics := survey.Metrics()
	for i, mt := range metrics {
		if mt == cur {
			return metrics[(i+1)%len(metrics)]
		}
	}
	return metrics[0]
}

// View renders the active page between a header and key help footer.
func (m Model) View() string {
	var body string
	switch {
	case m.loading:
		body = fmt.Sprintf("\n %s loading survey data...\n", m.spin.View())
	case m.state.LoadErr != "":
		body = "\n " + m.styles.Error.Render("could not load data: "+m.state.LoadErr) + "\n"
	default:
		switch m.active {
		case pageSelect:
			body = m.selector.View(m.state)
		case pageScatter:
			body = m.scatter.View(m.state)
		case pageTable:
			body = m.table.View(m.state)
		}
	}

	return m.header() + "\n" + body + "\n" + m.footer()
}

func (m Model) header() string {
	parts := []string{
		m.styles.Header.Render("Graduate Employment Survey"),
		m.styles.Badge.Render(string(m.state.Mode)),
		m.styles.Muted.Render(m.state.Metric.Label()),
	}
	if m.state.Summary != nil {
		parts = append(parts, m.styles.Muted.Render(
			fmt.Sprintf("avg $%.0f · top: %s", m.state.Summary.AvgSalary, m.state.Summary.TopUniversity)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) footer() string {
	return m.styles.Footer.Render(
		"tab: page · space: select · m: metric · v: mode · c: clear · q: quit")
}
