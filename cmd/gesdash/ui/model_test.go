package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/source"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

func testResult() *source.Result {
	return &source.Result{
		Records: []survey.Record{
			{University: "NUS", Course: "CS", CourseCategory: "Computing", Year: 2021,
				GrossMonthlyMedian: 5000, EmploymentRateOverall: 96},
		},
		Summary: &survey.Summary{AvgSalary: 4500, TopUniversity: "NUS"},
		Origin:  "test",
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), nil, survey.ByCourse, survey.GrossMonthlyMedian, nil)
	next, _ := m.Update(recordsLoadedMsg{result: testResult()})
	return next.(Model)
}

func TestModelRecordsLoaded(t *testing.T) {
	m := loadedModel(t)
	if m.loading {
		t.Error("still loading after records arrived")
	}
	if !m.state.Loaded || len(m.state.Records) != 1 {
		t.Errorf("state = loaded %v, records %d", m.state.Loaded, len(m.state.Records))
	}
	if !strings.Contains(m.View(), "avg $4500") {
		t.Error("summary missing from header")
	}
}

func TestModelLoadFailedIsTerminal(t *testing.T) {
	m := NewModel(context.Background(), nil, survey.ByCourse, survey.GrossMonthlyMedian, nil)
	next, _ := m.Update(loadFailedMsg{err: errors.New("endpoint returned 502")})
	m = next.(Model)

	if !strings.Contains(m.View(), "could not load data") {
		t.Errorf("error view missing:\n%s", m.View())
	}

	// Data keys are ignored in the failure state; quit and paging still work.
	before := m.state.Metric
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m = next.(Model)
	if m.state.Metric != before {
		t.Error("metric changed in terminal failure state")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("quit ignored in failure state")
	}
}

func TestModelMetricCycling(t *testing.T) {
	m := loadedModel(t)
	first := m.state.Metric
	seen := map[survey.Metric]bool{first: true}

	for i := 0; i < len(survey.Metrics())-1; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
		m = next.(Model)
		seen[m.state.Metric] = true
	}
	if len(seen) != len(survey.Metrics()) {
		t.Errorf("cycled through %d metrics, want %d", len(seen), len(survey.Metrics()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m = next.(Model)
	if m.state.Metric != first {
		t.Errorf("cycle did not wrap: %q", m.state.Metric)
	}
}

func TestModelModeToggleClearsSelections(t *testing.T) {
	m := loadedModel(t)
	m.apply(state.ToggleSelection{Key: "NUS - CS"})
	if len(m.state.Selections) != 1 {
		t.Fatal("setup selection missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(Model)
	if m.state.Mode != survey.ByCategory {
		t.Errorf("mode = %q", m.state.Mode)
	}
	if len(m.state.Selections) != 0 {
		t.Errorf("selections survived mode toggle: %v", m.state.Selections)
	}
}

func TestModelPageNavigation(t *testing.T) {
	m := loadedModel(t)
	if m.active != pageSelect {
		t.Fatalf("initial page = %v", m.active)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.active != pageScatter {
		t.Errorf("after tab: %v", m.active)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m = next.(Model)
	if m.active != pageTable {
		t.Errorf("after '3': %v", m.active)
	}

	// Tab wraps back to the first page.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.active != pageSelect {
		t.Errorf("tab did not wrap: %v", m.active)
	}
}

func TestModelWindowResizePropagates(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.scatter.width != 120 || m.scatter.height != 36 {
		t.Errorf("scatter size = %dx%d, want inner height", m.scatter.width, m.scatter.height)
	}
}

func TestNextMetric(t *testing.T) {
	metrics := survey.Metrics()
	if got := nextMetric(metrics[0]); got != metrics[1] {
		t.Errorf("nextMetric = %q", got)
	}
	if got := nextMetric(metrics[len(metrics)-1]); got != metrics[0] {
		t.Errorf("wrap = %q", got)
	}
	if got := nextMetric(survey.Metric("junk")); got != metrics[0] {
		t.Errorf("unknown metric = %q", got)
	}
}
