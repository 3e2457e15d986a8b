// Package state holds the dashboard's explicit state snapshot and the pure
// reducer that advances it. All derived data (rows, points, trend, domains) is
// recomputed whole on every transition; nothing is patched incrementally, so a
// snapshot can never carry stale derived values.
package state

import (
	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Derived is everything recomputable from (records, selections, metric).
type Derived struct {
	Rows        []analytics.Row
	Points      []analytics.Point
	Trend       *analytics.TrendLine
	Correlation analytics.Correlation
	XDomain     analytics.AxisDomain
	YDomain     analytics.AxisDomain
}

// State is one immutable dashboard snapshot. Reduce returns a new State; the
// input is never mutated, so the UI can hold the previous snapshot while a
// transition renders.
type State struct {
	// Loaded data. Records are owned by the source for the session and
	// treated as read-only here.
	Records []survey.Record
	Summary *survey.Summary
	Index   analytics.Index
	Origin  string

	// LoadErr, once set, is terminal: the UI shows "could not load data"
	// and no selection events change it.
	LoadErr string
	Loaded  bool

	// User selections.
	Mode       survey.Mode
	Metric     survey.Metric
	Selections []string // insertion order, drives legend/chip order

	Derived Derived
}

// New returns the initial pre-load state with the given defaults.
func New(mode survey.Mode, metric survey.Metric) State {
	s := State{Mode: mode, Metric: metric}
	s.Derived = derive(s)
	return s
}

// Selected reports whether key is active.
func (s State) Selected(key string) bool {
	for _, k := range s.Selections {
		if k == key {
			return true
		}
	}
	return false
}

// ActiveSet returns the selections as a membership set for the aggregator.
func (s State) ActiveSet() map[string]bool {
	if len(s.Selections) == 0 {
		return nil
	}
	set := make(map[string]bool, len(s.Selections))
	for _, k := range s.Selections {
		set[k] = true
	}
	return set
}

func derive(s State) Derived {
	rows := analytics.Aggregate(s.Records, s.Mode, s.ActiveSet(), s.Metric)
	points := analytics.TradeoffPoints(rows)
	x, y := analytics.Domains(points)
	return Derived{
		Rows:        rows,
		Points:      points,
		Trend:       analytics.FitTrend(points),
		Correlation: analytics.Correlate(points),
		XDomain:     x,
		YDomain:     y,
	}
}
