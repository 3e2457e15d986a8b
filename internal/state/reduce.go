package state

import (
	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Event is a state transition request. Exactly one concrete event type is
// applied per Reduce call.
type Event interface{ isEvent() }

// RecordsLoaded delivers the fetched dataset.
type RecordsLoaded struct {
	Records []survey.Record
	Summary *survey.Summary
	Origin  string
}

// LoadFailed marks the session's terminal fetch failure.
type LoadFailed struct{ Err string }

// SetMode switches selection granularity. Selections from the previous mode
// key into a different namespace, so they are cleared.
type SetMode struct{ Mode survey.Mode }

// ToggleSelection flips one selection key on or off.
type ToggleSelection struct{ Key string }

// ClearSelections removes every active selection.
type ClearSelections struct{}

// SetMetric changes which salary field the charts read.
type SetMetric struct{ Metric survey.Metric }

func (RecordsLoaded) isEvent()   {}
func (LoadFailed) isEvent()      {}
func (SetMode) isEvent()         {}
func (ToggleSelection) isEvent() {}
func (ClearSelections) isEvent() {}
func (SetMetric) isEvent()       {}

// Reduce applies one event and returns the next snapshot with derived data
// fully recomputed. Unknown events return the input unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case RecordsLoaded:
		s.Records = e.Records
		s.Summary = e.Summary
		s.Origin = e.Origin
		s.Index = analytics.BuildIndex(e.Records)
		s.Loaded = true
		s.LoadErr = ""

	case LoadFailed:
		s.LoadErr = e.Err
		s.Loaded = false

	case SetMode:
		if e.Mode == s.Mode {
			return s
		}
		s.Mode = e.Mode
		s.Selections = nil

	case ToggleSelection:
		if e.Key == "" {
			return s
		}
		s.Selections = toggle(s.Selections, e.Key)

	case ClearSelections:
		s.Selections = nil

	case SetMetric:
		s.Metric = e.Metric

	default:
		return s
	}

	s.Derived = derive(s)
	return s
}

// toggle returns a fresh slice with key appended or removed; the input slice
// is shared with the previous snapshot and must not be written.
func toggle(selections []string, key string) []string {
	out := make([]string, 0, len(selections)+1)
	found := false
	for _, k := range selections {
		if k == key {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, key)
	}
	return out
}
