package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// SelectorPage is the selection tree: university → category → course in
// course mode, a flat category list in category mode. Cursor position and
// expanded-university flags are view state only; the active selections live in
// the reducer-owned snapshot.
type SelectorPage struct {
	styles   Styles
	cursor   int
	expanded map[string]bool
	width    int
	height   int
	offset   int
}

type rowKind int

const (
	rowUniversity rowKind = iota
	rowCategoryHeader
	rowCourse
	rowCategoryChoice
)

// selectorRow is one visible line of the tree.
type selectorRow struct {
	kind       rowKind
	label      string
	key        string // selection key; empty for non-selectable rows
	university string
	depth      int
}

// NewSelectorPage creates the selection page.
func NewSelectorPage(styles Styles) SelectorPage {
	return SelectorPage{styles: styles, expanded: make(map[string]bool)}
}

// SetSize updates the page viewport.
func (p *SelectorPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// visibleRows flattens the index into the current row list.
func (p *SelectorPage) visibleRows(s state.State) []selectorRow {
	var rows []selectorRow
	if s.Mode == survey.ByCategory {
		for _, cat := range s.Index.Categories {
			rows = append(rows, selectorRow{kind: rowCategoryChoice, label: cat, key: cat})
		}
		return rows
	}

	for _, ug := range s.Index.Universities {
		rows = append(rows, selectorRow{kind: rowUniversity, label: ug.University, university: ug.University})
		if !p.expanded[ug.University] {
			continue
		}
		for _, g := range ug.Groups {
			rows = append(rows, selectorRow{kind: rowCategoryHeader, label: g.Category, depth: 1})
			for _, course := range g.Courses {
				rows = append(rows, selectorRow{
					kind:       rowCourse,
					label:      course,
					key:        survey.CourseKey(ug.University, course),
					university: ug.University,
					depth:      2,
				})
			}
		}
	}
	return rows
}

// Update handles navigation and toggling. It returns a state event to apply,
// or nil when the key only moved view state.
func (p *SelectorPage) Update(msg tea.KeyMsg, s state.State) state.Event {
	rows := p.visibleRows(s)
	if len(rows) == 0 {
		return nil
	}
	if p.cursor >= len(rows) {
		p.cursor = len(rows) - 1
	}

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(rows)-1 {
			p.cursor++
		}
	case "pgup":
		p.cursor -= p.pageSize()
		if p.cursor < 0 {
			p.cursor = 0
		}
	case "pgdown":
		p.cursor += p.pageSize()
		if p.cursor >= len(rows) {
			p.cursor = len(rows) - 1
		}
	case "enter", " ":
		row := rows[p.cursor]
		if row.kind == rowUniversity {
			p.expanded[row.university] = !p.expanded[row.university]
			return nil
		}
		if row.key != "" {
			return state.ToggleSelection{Key: row.key}
		}
	case "right", "l":
		row := rows[p.cursor]
		if row.kind == rowUniversity {
			p.expanded[row.university] = true
		}
	case "left", "h":
		row := rows[p.cursor]
		if row.kind == rowUniversity {
			p.expanded[row.university] = false
		}
	}
	p.scrollToCursor(len(rows))
	return nil
}

func (p *SelectorPage) pageSize() int {
	if p.height > 4 {
		return p.height - 4
	}
	return 10
}

func (p *SelectorPage) scrollToCursor(total int) {
	size := p.pageSize()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+size {
		p.offset = p.cursor - size + 1
	}
	if p.offset > total-1 {
		p.offset = total - 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// View renders the tree with selection marks.
func (p *SelectorPage) View(s state.State) string {
	rows := p.visibleRows(s)
	if len(rows) == 0 {
		return p.styles.Muted.Render("No data loaded.")
	}
	if p.cursor >= len(rows) {
		p.cursor = len(rows) - 1
	}

	var sb strings.Builder
	title := "Select courses"
	if s.Mode == survey.ByCategory {
		title = "Select categories"
	}
	sb.WriteString(p.styles.Title.Render(title))
	sb.WriteString(p.styles.Muted.Render(fmt.Sprintf("  (%d active)", len(s.Selections))))
	sb.WriteString("\n\n")

	end := p.offset + p.pageSize()
	if end > len(rows) {
		end = len(rows)
	}
	for i := p.offset; i < end; i++ {
		row := rows[i]
		line := p.renderRow(row, s)
		if i == p.cursor {
			line = p.styles.Cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *SelectorPage) renderRow(row selectorRow, s state.State) string {
	indent := strings.Repeat("  ", row.depth)
	switch row.kind {
	case rowUniversity:
		marker := "+"
		if p.expanded[row.university] {
			marker = "-"
		}
		return indent + p.styles.Bold.Render(marker+" "+row.label)
	case rowCategoryHeader:
		return indent + p.styles.Subtitle.Render(row.label)
	default:
		mark := "[ ]"
		style := p.styles.Body
		if s.Selected(row.key) {
			mark = "[x]"
			style = p.styles.Selected
		}
		return indent + style.Render(mark+" "+row.label)
	}
}
