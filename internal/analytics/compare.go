package analytics

import (
	"sort"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// University comparison series: yearly employment and salary lines per
// university, a salary-by-category pivot, and year-over-year salary growth.

// YearlyStat is one (university, year) aggregate used by the line charts.
type YearlyStat struct {
	University string  `json:"university"`
	Year       int     `json:"year"`
	Value      float64 `json:"value"`
	SampleSize int     `json:"sample_size"`
}

// UniversitySummary is the per-university rollup across all years.
type UniversitySummary struct {
	University string  `json:"university"`
	Average    float64 `json:"average"`
	Std        float64 `json:"std_dev"`
	Samples    int     `json:"total_samples"`
}

// GrowthPoint is the year-over-year salary change for one university. The
// first year of a series is the 0% baseline.
type GrowthPoint struct {
	University string  `json:"university"`
	Year       int     `json:"year"`
	AvgSalary  float64 `json:"salary"`
	GrowthRate float64 `json:"growth_rate"`
	SampleSize int     `json:"sample_size"`
}

// CategoryCell is one (category, university) cell of the salary pivot.
type CategoryCell struct {
	Category   string  `json:"category"`
	University string  `json:"university"`
	AvgSalary  float64 `json:"avg_salary"`
	SampleSize int     `json:"sample_size"`
}

// YearlyEmployment returns per-(university, year) mean overall employment
// rates, ordered by university then year.
func YearlyEmployment(records []survey.Record) []YearlyStat {
	return yearlySeries(records, func(r survey.Record) float64 { return r.EmploymentRateOverall })
}

// YearlySalary returns per-(university, year) mean values of the metric,
// ordered by university then year.
func YearlySalary(records []survey.Record, metric survey.Metric) []YearlyStat {
	return yearlySeries(records, metric.Value)
}

func yearlySeries(records []survey.Record, value func(survey.Record) float64) []YearlyStat {
	type acc struct {
		sum float64
		n   int
	}
	cells := make(map[string]map[int]*acc)
	for _, r := range records {
		if r.University == "" || r.Year == 0 {
			continue
		}
		years, ok := cells[r.University]
		if !ok {
			years = make(map[int]*acc)
			cells[r.University] = years
		}
		a, ok := years[r.Year]
		if !ok {
			a = &acc{}
			years[r.Year] = a
		}
		a.sum += value(r)
		a.n++
	}

	unis := make([]string, 0, len(cells))
	for u := range cells {
		unis = append(unis, u)
	}
	sort.Strings(unis)

	var out []YearlyStat
	for _, u := range unis {
		years := make([]int, 0, len(cells[u]))
		for y := range cells[u] {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			a := cells[u][y]
			out = append(out, YearlyStat{
				University: u,
				Year:       y,
				Value:      a.sum / float64(a.n),
				SampleSize: a.n,
			})
		}
	}
	return out
}

// SummarizeUniversities rolls the records up to one row per university with
// mean, sample standard deviation, and total sample count of the value,
// ordered best first.
func SummarizeUniversities(records []survey.Record, value func(survey.Record) float64) []UniversitySummary {
	byUni := make(map[string][]float64)
	for _, r := range records {
		if r.University == "" {
			continue
		}
		byUni[r.University] = append(byUni[r.University], value(r))
	}

	out := make([]UniversitySummary, 0, len(byUni))
	for u, vals := range byUni {
		mean, std := simpleMeanStd(vals)
		out = append(out, UniversitySummary{University: u, Average: mean, Std: std, Samples: len(vals)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].University < out[j].University
	})
	return out
}

// SalaryGrowth computes year-over-year percentage salary growth per
// university from the yearly salary series.
func SalaryGrowth(records []survey.Record, metric survey.Metric) []GrowthPoint {
	series := YearlySalary(records, metric)

	var out []GrowthPoint
	var prev *YearlyStat
	for i := range series {
		s := series[i]
		growth := 0.0
		if prev != nil && prev.University == s.University && prev.Value != 0 {
			growth = (s.Value - prev.Value) / prev.Value * 100
		}
		out = append(out, GrowthPoint{
			University: s.University,
			Year:       s.Year,
			AvgSalary:  s.Value,
			GrowthRate: growth,
			SampleSize: s.SampleSize,
		})
		prev = &series[i]
	}
	return out
}

// SalaryByCategory pivots mean salary by (category, university). Categories
// with data from fewer than two universities are dropped, since a single bar
// is not a comparison. Cells are ordered by category then university.
func SalaryByCategory(records []survey.Record, metric survey.Metric) []CategoryCell {
	type acc struct {
		sum float64
		n   int
	}
	cells := make(map[string]map[string]*acc)
	for _, r := range records {
		if r.University == "" || r.CourseCategory == "" {
			continue
		}
		unis, ok := cells[r.CourseCategory]
		if !ok {
			unis = make(map[string]*acc)
			cells[r.CourseCategory] = unis
		}
		a, ok := unis[r.University]
		if !ok {
			a = &acc{}
			unis[r.University] = a
		}
		a.sum += metric.Value(r)
		a.n++
	}

	cats := make([]string, 0, len(cells))
	for c := range cells {
		if len(cells[c]) >= 2 {
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)

	var out []CategoryCell
	for _, c := range cats {
		unis := make([]string, 0, len(cells[c]))
		for u := range cells[c] {
			unis = append(unis, u)
		}
		sort.Strings(unis)
		for _, u := range unis {
			a := cells[c][u]
			out = append(out, CategoryCell{
				Category:   c,
				University: u,
				AvgSalary:  a.sum / float64(a.n),
				SampleSize: a.n,
			})
		}
	}
	return out
}
