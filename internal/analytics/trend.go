package analytics

// TrendLine is the least-squares fit over tradeoff points, expressed both as
// slope/intercept and as a drawable segment spanning the observed x range.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	// Segment endpoints at the minimum and maximum observed employment rate.
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// FitTrend fits salary (y) against employment rate (x) with the closed-form
// ordinary-least-squares solution. It returns nil for fewer than two points or
// when every x is identical; the caller omits the reference line rather than
// drawing a fabricated flat one.
func FitTrend(points []Point) *TrendLine {
	if len(points) < 2 {
		return nil
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	minX, maxX := points[0].AvgEmployment, points[0].AvgEmployment
	for _, p := range points {
		x, y := p.AvgEmployment, p.AvgSalary
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	return &TrendLine{
		Slope:     slope,
		Intercept: intercept,
		X1:        minX,
		Y1:        slope*minX + intercept,
		X2:        maxX,
		Y2:        slope*maxX + intercept,
	}
}

// Residuals returns, per point, the distance of its salary above the fitted
// line. Used to rank tradeoff outliers. Returns nil when no line fits.
func Residuals(points []Point) map[string]float64 {
	line := FitTrend(points)
	if line == nil {
		return nil
	}
	out := make(map[string]float64, len(points))
	for _, p := range points {
		out[p.Label] = p.AvgSalary - (line.Slope*p.AvgEmployment + line.Intercept)
	}
	return out
}
