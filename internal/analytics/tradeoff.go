package analytics

import (
	"math"
	"sort"
)

// Point is one tradeoff point per selection, averaged across all years.
type Point struct {
	Label         string  `json:"label"`
	AvgSalary     float64 `json:"avg_salary"`
	AvgEmployment float64 `json:"avg_employment"`
	SampleSize    int     `json:"sample_size"`
	Quadrant      string  `json:"quadrant"`
}

// TradeoffPoints reduces aggregated rows to one point per selection key and
// classifies each into a quadrant by median split. The median of an
// even-length set is the upper-middle element, not the interpolated average;
// quadrant boundaries depend on that exact tie-break.
func TradeoffPoints(rows []Row) []Point {
	if len(rows) == 0 {
		return nil
	}

	type acc struct {
		salary, employment float64
		count, samples     int
	}
	sums := make(map[string]*acc)
	order := make([]string, 0)

	for _, r := range rows {
		key := r.SelectionKey()
		a, ok := sums[key]
		if !ok {
			a = &acc{}
			sums[key] = a
			order = append(order, key)
		}
		a.salary += r.Salary
		a.employment += r.EmploymentRate
		a.count++
		samples := r.SampleSize
		if samples <= 0 {
			samples = 1
		}
		a.samples += samples
	}

	points := make([]Point, 0, len(order))
	for _, key := range order {
		a := sums[key]
		samples := a.samples
		if samples < 1 {
			samples = 1
		}
		points = append(points, Point{
			Label:         key,
			AvgSalary:     a.salary / float64(a.count),
			AvgEmployment: a.employment / float64(a.count),
			SampleSize:    samples,
		})
	}

	salaryMed := upperMedian(values(points, func(p Point) float64 { return p.AvgSalary }))
	empMed := upperMedian(values(points, func(p Point) float64 { return p.AvgEmployment }))

	for i := range points {
		points[i].Quadrant = quadrantLabel(points[i].AvgSalary >= salaryMed, points[i].AvgEmployment >= empMed)
	}
	return points
}

// upperMedian sorts a copy of vals and returns the middle element, taking the
// upper-middle one for even lengths.
func upperMedian(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

func quadrantLabel(highSalary, highEmployment bool) string {
	s, e := "Low", "Low"
	if highSalary {
		s = "High"
	}
	if highEmployment {
		e = "High"
	}
	return s + " Salary / " + e + " Employment"
}

func values(points []Point, f func(Point) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = f(p)
	}
	return out
}
