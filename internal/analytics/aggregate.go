package analytics

import (
	"sort"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// RowKind discriminates the two row variants the aggregator can emit.
type RowKind string

const (
	// RowCourse is a direct pass-through of one survey record.
	RowCourse RowKind = "course"
	// RowCategoryAverage is a synthetic per-year mean across a category.
	RowCategoryAverage RowKind = "category_average"
)

// Row is one (selection, year) pair with the chosen salary metric resolved.
// The two variants share the fields downstream chart code reads, so rendering
// stays agnostic to the active view mode.
type Row struct {
	Kind           RowKind
	University     string
	Course         string
	CourseCategory string
	Year           int
	Salary         float64
	EmploymentRate float64
	ZScore         float64
	// SampleSize is the count of source records behind the row: 1 for course
	// rows, the contributing record count for category averages.
	SampleSize int
}

// SelectionKey returns the key the row was aggregated under.
func (r Row) SelectionKey() string {
	if r.Kind == RowCategoryAverage {
		return r.CourseCategory
	}
	return survey.CourseKey(r.University, r.Course)
}

// Label is the legend/display name for the row's selection.
func (r Row) Label() string {
	return r.SelectionKey()
}

// ByCourse returns one row per record whose composite (university, course) key
// is in active. No aggregation happens; the source carries one record per
// course per year.
func ByCourse(records []survey.Record, active map[string]bool, metric survey.Metric) []Row {
	if len(active) == 0 {
		return nil
	}
	var rows []Row
	for _, r := range records {
		if !active[r.CourseKey()] {
			continue
		}
		rows = append(rows, Row{
			Kind:           RowCourse,
			University:     r.University,
			Course:         r.Course,
			CourseCategory: r.CourseCategory,
			Year:           r.Year,
			Salary:         metric.Value(r),
			EmploymentRate: r.EmploymentRateOverall,
			ZScore:         r.ZScore,
			SampleSize:     1,
		})
	}
	return rows
}

// ByCategory emits, for each active category and each year with records, one
// synthetic row carrying the arithmetic mean of the chosen metric, employment
// rate, and z-score across that category's records for the year. Years with no
// records are never emitted, so no zero-division row can exist. The university
// field is replaced with the IndustryAverage sentinel.
func ByCategory(records []survey.Record, active map[string]bool, metric survey.Metric) []Row {
	if len(active) == 0 {
		return nil
	}

	type acc struct {
		salary, employment, z float64
		n                     int
	}
	sums := make(map[string]map[int]*acc)
	catOrder := make([]string, 0)

	for _, r := range records {
		if r.CourseCategory == "" || !active[r.CourseCategory] {
			continue
		}
		years, ok := sums[r.CourseCategory]
		if !ok {
			years = make(map[int]*acc)
			sums[r.CourseCategory] = years
			catOrder = append(catOrder, r.CourseCategory)
		}
		a, ok := years[r.Year]
		if !ok {
			a = &acc{}
			years[r.Year] = a
		}
		a.salary += metric.Value(r)
		a.employment += r.EmploymentRateOverall
		a.z += r.ZScore
		a.n++
	}

	var rows []Row
	for _, cat := range catOrder {
		years := make([]int, 0, len(sums[cat]))
		for y := range sums[cat] {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			a := sums[cat][y]
			rows = append(rows, Row{
				Kind:           RowCategoryAverage,
				University:     survey.IndustryAverage,
				CourseCategory: cat,
				Year:           y,
				Salary:         a.salary / float64(a.n),
				EmploymentRate: a.employment / float64(a.n),
				ZScore:         a.z / float64(a.n),
				SampleSize:     a.n,
			})
		}
	}
	return rows
}

// Aggregate dispatches on the view mode. active holds composite course keys in
// ByCourse mode and bare category names in ByCategory mode.
func Aggregate(records []survey.Record, mode survey.Mode, active map[string]bool, metric survey.Metric) []Row {
	if mode == survey.ByCategory {
		return ByCategory(records, active, metric)
	}
	return ByCourse(records, active, metric)
}
