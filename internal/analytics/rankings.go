package analytics

import "sort"

// Rankings holds the top-N cuts used in reports: best salary, best employment,
// and the tradeoff outliers whose salary sits furthest above or below the
// fitted trend line.
type Rankings struct {
	TopSalary        []Point `json:"top_salary"`
	TopEmployment    []Point `json:"top_employment"`
	PositiveTradeoff []Point `json:"positive_tradeoff"`
	NegativeTradeoff []Point `json:"negative_tradeoff"`
}

// Rank produces the ranking cuts. When no trend line fits (under two points,
// or zero x variance) the outlier lists carry the points unranked, matching
// the upstream report behavior.
func Rank(points []Point, topN int) Rankings {
	if topN <= 0 {
		topN = 5
	}

	r := Rankings{
		TopSalary:     topBy(points, topN, func(a, b Point) bool { return a.AvgSalary > b.AvgSalary }),
		TopEmployment: topBy(points, topN, func(a, b Point) bool { return a.AvgEmployment > b.AvgEmployment }),
	}

	residuals := Residuals(points)
	if residuals == nil {
		r.PositiveTradeoff = append([]Point(nil), points...)
		r.NegativeTradeoff = append([]Point(nil), points...)
		return r
	}

	r.PositiveTradeoff = topBy(points, topN, func(a, b Point) bool { return residuals[a.Label] > residuals[b.Label] })
	r.NegativeTradeoff = topBy(points, topN, func(a, b Point) bool { return residuals[a.Label] < residuals[b.Label] })
	return r
}

func topBy(points []Point, n int, less func(a, b Point) bool) []Point {
	sorted := append([]Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
