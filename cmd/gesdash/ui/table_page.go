package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// TablePage shows the aggregated rows behind the scatter as a scrollable
// table. Row shape is mode-agnostic; category-average rows show the sentinel
// university and their sample size.
type TablePage struct {
	styles Styles
	table  table.Model
	width  int
	height int
}

// NewTablePage creates the table page.
func NewTablePage(styles Styles) TablePage {
	t := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(ColorPrimary).
		Bold(false)
	t.SetStyles(st)
	return TablePage{styles: styles, table: t}
}

func tableColumns(width int) []table.Column {
	name := width - 58
	if name < 24 {
		name = 24
	}
	return []table.Column{
		{Title: "University", Width: 22},
		{Title: "Course / Category", Width: name},
		{Title: "Year", Width: 5},
		{Title: "Salary", Width: 8},
		{Title: "Emp %", Width: 6},
		{Title: "Z", Width: 6},
		{Title: "n", Width: 5},
	}
}

// SetSize updates the table dimensions.
func (p *TablePage) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.table.SetColumns(tableColumns(w))
	p.table.SetHeight(h - 4)
}

// Refresh rebuilds the table rows from the snapshot's aggregated rows.
func (p *TablePage) Refresh(s state.State) {
	rows := make([]table.Row, 0, len(s.Derived.Rows))
	for _, r := range s.Derived.Rows {
		name := r.Course
		if name == "" {
			name = r.CourseCategory
		}
		rows = append(rows, table.Row{
			r.University,
			name,
			fmt.Sprintf("%d", r.Year),
			fmt.Sprintf("%.0f", r.Salary),
			fmt.Sprintf("%.1f", r.EmploymentRate),
			fmt.Sprintf("%.2f", r.ZScore),
			fmt.Sprintf("%d", r.SampleSize),
		})
	}
	p.table.SetRows(rows)
}

// Update forwards navigation keys to the table model.
func (p *TablePage) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

// View renders the table with a mode caption.
func (p *TablePage) View(s state.State) string {
	caption := "per-course rows"
	if s.Mode == survey.ByCategory {
		caption = "per-category yearly averages"
	}
	header := p.styles.Title.Render("Aggregated rows") + p.styles.Muted.Render("  ("+caption+")")
	if len(s.Derived.Rows) == 0 {
		return header + "\n\n" + p.styles.Muted.Render("Nothing selected.")
	}
	return header + "\n" + p.table.View()
}
