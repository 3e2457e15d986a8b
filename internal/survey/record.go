// Package survey defines the graduate employment survey data model shared by
// the source loaders, the analytics layer, and the dashboard state.
package survey

import "fmt"

// Record is one flat survey row: a single (university, course, year) observation
// with its salary metrics, employment rates, and precomputed z-score.
// Records are immutable once loaded; everything derived is recomputed from them.
type Record struct {
	University            string  `json:"university"`
	Course                string  `json:"course"`
	CourseCategory        string  `json:"course_category"`
	Year                  int     `json:"year"`
	EmploymentRateOverall float64 `json:"employment_rate_overall"`
	EmploymentRateFTPerm  float64 `json:"employment_rate_ft_perm"`
	BasicMonthlyMean      float64 `json:"basic_monthly_mean"`
	BasicMonthlyMedian    float64 `json:"basic_monthly_median"`
	GrossMonthlyMean      float64 `json:"gross_monthly_mean"`
	GrossMonthlyMedian    float64 `json:"gross_monthly_median"`
	GrossMthly25Pct       float64 `json:"gross_mthly_25_percentile"`
	GrossMthly75Pct       float64 `json:"gross_mthly_75_percentile"`
	ZScore                float64 `json:"z_score"`
}

// Summary is the pre-shaped headline block some endpoint deployments return
// alongside the record list.
type Summary struct {
	AvgSalary     float64 `json:"avg_salary"`
	TopUniversity string  `json:"top_university"`
	TopDegree     string  `json:"top_degree"`
}

// CourseKey is the composite selection key for a (university, course) pair.
// Same-named courses at different institutions must stay distinct.
func (r Record) CourseKey() string {
	return CourseKey(r.University, r.Course)
}

// CourseKey joins a university and course name into a composite selection key.
func CourseKey(university, course string) string {
	return university + " - " + course
}

// Valid reports whether the record carries the fields the grouping index
// requires. Records failing this are skipped, never surfaced as errors.
func (r Record) Valid() bool {
	return r.University != "" && r.CourseCategory != ""
}

// Metric names one of the six salary fields a user can chart.
type Metric string

const (
	BasicMonthlyMean   Metric = "basic_monthly_mean"
	BasicMonthlyMedian Metric = "basic_monthly_median"
	GrossMonthlyMean   Metric = "gross_monthly_mean"
	GrossMonthlyMedian Metric = "gross_monthly_median"
	GrossMthly25Pct    Metric = "gross_mthly_25_percentile"
	GrossMthly75Pct    Metric = "gross_mthly_75_percentile"
)

// Metrics lists the selectable salary metrics in display order.
func Metrics() []Metric {
	return []Metric{
		BasicMonthlyMean,
		BasicMonthlyMedian,
		GrossMonthlyMean,
		GrossMonthlyMedian,
		GrossMthly25Pct,
		GrossMthly75Pct,
	}
}

// ParseMetric validates a metric name coming from config or a CLI flag.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown salary metric %q", s)
}

// Label returns a human-readable name for the metric.
func (m Metric) Label() string {
	switch m {
	case BasicMonthlyMean:
		return "Basic Monthly Mean"
	case BasicMonthlyMedian:
		return "Basic Monthly Median"
	case GrossMonthlyMean:
		return "Gross Monthly Mean"
	case GrossMonthlyMedian:
		return "Gross Monthly Median"
	case GrossMthly25Pct:
		return "Gross Monthly 25th Percentile"
	case GrossMthly75Pct:
		return "Gross Monthly 75th Percentile"
	default:
		return string(m)
	}
}

// Value resolves the metric against a record.
func (m Metric) Value(r Record) float64 {
	switch m {
	case BasicMonthlyMean:
		return r.BasicMonthlyMean
	case BasicMonthlyMedian:
		return r.BasicMonthlyMedian
	case GrossMonthlyMean:
		return r.GrossMonthlyMean
	case GrossMonthlyMedian:
		return r.GrossMonthlyMedian
	case GrossMthly25Pct:
		return r.GrossMthly25Pct
	case GrossMthly75Pct:
		return r.GrossMthly75Pct
	default:
		return 0
	}
}

// Mode is the selection granularity of the dashboard.
type Mode string

const (
	// ByCourse selects individual (university, course) pairs.
	ByCourse Mode = "courses"
	// ByCategory selects whole course categories and charts their averages.
	ByCategory Mode = "categories"
)

// ParseMode validates a view mode coming from config or a CLI flag.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ByCourse, ByCategory:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown view mode %q (want %q or %q)", s, ByCourse, ByCategory)
}

// IndustryAverage is the sentinel university label used for synthetic rows
// aggregated across a whole category. Such rows no longer map to one
// institution.
const IndustryAverage = "Industry Average"
