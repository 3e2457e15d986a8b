package analytics

import "math"

// Correlation holds the Pearson correlation between average employment rate
// and average salary across tradeoff points, plus the sample-size-weighted
// variant. A nil field means the statistic is undefined for the input (fewer
// than two points, or zero variance on an axis).
type Correlation struct {
	Pearson  *float64 `json:"pearson"`
	Weighted *float64 `json:"weighted"`
}

// Correlate computes both correlation variants over the points.
func Correlate(points []Point) Correlation {
	if len(points) < 2 {
		return Correlation{}
	}

	xs := values(points, func(p Point) float64 { return p.AvgEmployment })
	ys := values(points, func(p Point) float64 { return p.AvgSalary })

	unit := make([]float64, len(points))
	for i := range unit {
		unit[i] = 1
	}
	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = float64(p.SampleSize)
	}

	return Correlation{
		Pearson:  weightedPearson(xs, ys, unit),
		Weighted: weightedPearson(xs, ys, weights),
	}
}

// weightedPearson is the weighted Pearson coefficient; nil when the total
// weight or either variance is zero.
func weightedPearson(xs, ys, ws []float64) *float64 {
	var wSum float64
	for _, w := range ws {
		wSum += w
	}
	if wSum <= 0 {
		return nil
	}

	var xMean, yMean float64
	for i := range xs {
		xMean += ws[i] * xs[i]
		yMean += ws[i] * ys[i]
	}
	xMean /= wSum
	yMean /= wSum

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-xMean, ys[i]-yMean
		cov += ws[i] * dx * dy
		varX += ws[i] * dx * dx
		varY += ws[i] * dy * dy
	}
	if varX <= 0 || varY <= 0 {
		return nil
	}

	r := cov / math.Sqrt(varX*varY)
	return &r
}
