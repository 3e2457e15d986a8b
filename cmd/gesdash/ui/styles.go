// Package ui implements the interactive gesdash terminal dashboard.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Quadrant colors mirror the four scatter buckets.
var (
	ColorPrimary = lipgloss.Color("#4F46E5") // Indigo
	ColorAccent  = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("243")
	ColorBorder  = lipgloss.Color("240")

	// One color per quadrant: HH, HL, LH, LL.
	QuadrantColors = map[string]lipgloss.Color{
		"High Salary / High Employment": lipgloss.Color("#10B981"),
		"High Salary / Low Employment":  lipgloss.Color("#F59E0B"),
		"Low Salary / High Employment":  lipgloss.Color("#06B6D4"),
		"Low Salary / Low Employment":   lipgloss.Color("#EF4444"),
	}
)

// Styles holds the rendered lipgloss styles for the dashboard.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Badge    lipgloss.Style
	Axis     lipgloss.Style
	Panel    lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
		Footer:   lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subtitle: lipgloss.NewStyle().Foreground(ColorAccent),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Bold:     lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(ColorAccent),
		Badge:    lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Axis:     lipgloss.NewStyle().Foreground(ColorBorder),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
	}
}

// QuadrantStyle returns a style colored for the given quadrant label.
func (s Styles) QuadrantStyle(quadrant string) lipgloss.Style {
	if c, ok := QuadrantColors[quadrant]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return s.Body
}
