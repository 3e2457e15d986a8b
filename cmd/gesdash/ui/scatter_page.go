package ui

import (
	"fmt"
	"strings"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/state"
)

// ScatterPage renders the employment/salary tradeoff scatter: one marker per
// selection, colored by quadrant, sized by sample bucket, with the fitted
// trend segment overlaid when one exists.
type ScatterPage struct {
	styles Styles
	width  int
	height int
}

// NewScatterPage creates the scatter page.
func NewScatterPage(styles Styles) ScatterPage {
	return ScatterPage{styles: styles, width: 80, height: 24}
}

// SetSize updates the drawing area.
func (p *ScatterPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// View renders the scatter plus its legend.
func (p *ScatterPage) View(s state.State) string {
	points := s.Derived.Points
	if len(points) == 0 {
		return p.styles.Muted.Render("Nothing selected. Pick courses or categories on the selection page.")
	}

	plotW := p.width - 12
	plotH := p.height - 10
	if plotW < 20 {
		plotW = 20
	}
	if plotH < 8 {
		plotH = 8
	}

	canvas := RenderScatterCanvas(points, s.Derived.Trend, s.Derived.XDomain, s.Derived.YDomain, plotW, plotH, p.styles)

	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Employment vs " + s.Metric.Label()))
	sb.WriteString("\n\n")
	sb.WriteString(canvas)
	sb.WriteString("\n")
	sb.WriteString(p.legend(points, s))
	return sb.String()
}

// RenderScatterCanvas draws the points into a fixed character grid. Pure and
// deterministic for a given input, so tests can assert on cell contents.
func RenderScatterCanvas(points []analytics.Point, trend *analytics.TrendLine, xDom, yDom analytics.AxisDomain, plotW, plotH int, styles Styles) string {
	type cell struct {
		ch       rune
		quadrant string
	}
	grid := make([][]cell, plotH)
	for i := range grid {
		grid[i] = make([]cell, plotW)
	}

	xSpan := xDom.Max - xDom.Min
	ySpan := yDom.Max - yDom.Min
	if xSpan <= 0 {
		xSpan = 1
	}
	if ySpan <= 0 {
		ySpan = 1
	}

	toCol := func(x float64) int {
		c := int((x - xDom.Min) / xSpan * float64(plotW-1))
		if c < 0 {
			c = 0
		}
		if c >= plotW {
			c = plotW - 1
		}
		return c
	}
	toRow := func(y float64) int {
		r := plotH - 1 - int((y-yDom.Min)/ySpan*float64(plotH-1))
		if r < 0 {
			r = 0
		}
		if r >= plotH {
			r = plotH - 1
		}
		return r
	}

	// Trend segment first so point markers win cell conflicts.
	if trend != nil {
		for c := toCol(trend.X1); c <= toCol(trend.X2); c++ {
			x := xDom.Min + (float64(c)/float64(plotW-1))*xSpan
			if x < trend.X1 || x > trend.X2 {
				continue
			}
			r := toRow(trend.Slope*x + trend.Intercept)
			if grid[r][c].ch == 0 {
				grid[r][c] = cell{ch: '*'}
			}
		}
	}

	sizes := make([]float64, len(points))
	for i, p := range points {
		sizes[i] = float64(p.SampleSize)
	}
	vmin, vmax := minMax(sizes)

	for i, p := range points {
		r, c := toRow(p.AvgSalary), toCol(p.AvgEmployment)
		grid[r][c] = cell{ch: markerFor(sizes[i], vmin, vmax), quadrant: p.Quadrant}
	}

	var sb strings.Builder
	for ri, rowCells := range grid {
		// y-axis labels at the top and bottom rows.
		switch ri {
		case 0:
			sb.WriteString(fmt.Sprintf("%8.0f ", yDom.Max))
		case plotH - 1:
			sb.WriteString(fmt.Sprintf("%8.0f ", yDom.Min))
		default:
			sb.WriteString(strings.Repeat(" ", 9))
		}
		sb.WriteString(styles.Axis.Render("|"))
		for _, cl := range rowCells {
			switch {
			case cl.ch == 0:
				sb.WriteRune(' ')
			case cl.quadrant != "":
				sb.WriteString(styles.QuadrantStyle(cl.quadrant).Render(string(cl.ch)))
			default:
				sb.WriteString(styles.Muted.Render(string(cl.ch)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", 9))
	sb.WriteString(styles.Axis.Render("+" + strings.Repeat("-", plotW)))
	sb.WriteString("\n")
	left := fmt.Sprintf("%.1f%%", xDom.Min)
	right := fmt.Sprintf("%.1f%%", xDom.Max)
	gap := plotW - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(strings.Repeat(" ", 10))
	sb.WriteString(left + strings.Repeat(" ", gap) + right)
	return sb.String()
}

// markerFor buckets a sample size into one of three marker glyphs.
func markerFor(size, vmin, vmax float64) rune {
	scaled := analytics.ScaleSize(size, vmin, vmax, 0, 2)
	switch {
	case scaled < 0.67:
		return '.'
	case scaled < 1.34:
		return 'o'
	default:
		return 'O'
	}
}

func (p *ScatterPage) legend(points []analytics.Point, s state.State) string {
	var sb strings.Builder

	seen := make(map[string]bool)
	for _, pt := range points {
		if seen[pt.Quadrant] {
			continue
		}
		seen[pt.Quadrant] = true
		sb.WriteString(p.styles.QuadrantStyle(pt.Quadrant).Render("● " + pt.Quadrant))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")

	sizes := make([]float64, len(points))
	for i, pt := range points {
		sizes[i] = float64(pt.SampleSize)
	}
	if ticks := analytics.NiceTicks(sizes, 4); len(ticks) > 0 {
		sb.WriteString(p.styles.Muted.Render("sample size: "))
		labels := make([]string, len(ticks))
		vmin, vmax := minMax(sizes)
		for i, t := range ticks {
			labels[i] = fmt.Sprintf("%c n=%d", markerFor(float64(t), vmin, vmax), t)
		}
		sb.WriteString(p.styles.Muted.Render(strings.Join(labels, "  ")))
		sb.WriteString("\n")
	}

	if line := s.Derived.Trend; line != nil {
		sb.WriteString(p.styles.Muted.Render(fmt.Sprintf("trend: slope %.1f / %% employment", line.Slope)))
	} else {
		sb.WriteString(p.styles.Muted.Render("trend: not enough points"))
	}
	if r := s.Derived.Correlation.Pearson; r != nil {
		sb.WriteString(p.styles.Muted.Render(fmt.Sprintf("   r=%.3f", *r)))
	}
	return sb.String()
}

func minMax(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
