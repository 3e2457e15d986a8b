package ui

import (
	"strings"
	"testing"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

func TestTablePageRefreshAndView(t *testing.T) {
	p := NewTablePage(NewStyles())
	p.SetSize(100, 30)

	s := selectorState(survey.ByCourse)
	s = state.Reduce(s, state.ToggleSelection{Key: "NUS - Computer Science"})
	p.Refresh(s)

	out := p.View(s)
	if !strings.Contains(out, "per-course rows") {
		t.Errorf("course caption missing:\n%s", out)
	}
	if !strings.Contains(out, "NUS") || !strings.Contains(out, "Computer Science") {
		t.Errorf("row content missing:\n%s", out)
	}
}

func TestTablePageCategoryCaptionAndSentinel(t *testing.T) {
	p := NewTablePage(NewStyles())
	p.SetSize(100, 30)

	s := selectorState(survey.ByCategory)
	s = state.Reduce(s, state.ToggleSelection{Key: "Business"})
	p.Refresh(s)

	out := p.View(s)
	if !strings.Contains(out, "per-category yearly averages") {
		t.Errorf("category caption missing:\n%s", out)
	}
	if !strings.Contains(out, survey.IndustryAverage) {
		t.Errorf("sentinel university missing:\n%s", out)
	}
}

func TestTablePageEmpty(t *testing.T) {
	p := NewTablePage(NewStyles())
	s := state.New(survey.ByCourse, survey.GrossMonthlyMedian)
	p.Refresh(s)
	if out := p.View(s); !strings.Contains(out, "Nothing selected") {
		t.Errorf("empty view = %q", out)
	}
}
