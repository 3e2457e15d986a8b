package analytics

import (
	"math"
	"testing"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

func TestByCourseFiltersOnCompositeKey(t *testing.T) {
	records := []survey.Record{
		rec("NUS", "Computer Science", "Computing", 2021, 5000, 95),
		rec("NTU", "Computer Science", "Computing", 2021, 4800, 94),
	}
	active := map[string]bool{"NUS - Computer Science": true}

	rows := ByCourse(records, active, survey.GrossMonthlyMedian)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Kind != RowCourse || r.University != "NUS" || r.Salary != 5000 || r.SampleSize != 1 {
		t.Errorf("unexpected row %+v", r)
	}
	if r.SelectionKey() != "NUS - Computer Science" {
		t.Errorf("SelectionKey = %q", r.SelectionKey())
	}
}

func TestByCourseEmptySelection(t *testing.T) {
	records := []survey.Record{rec("NUS", "CS", "Computing", 2021, 5000, 95)}
	if rows := ByCourse(records, nil, survey.GrossMonthlyMedian); rows != nil {
		t.Errorf("empty selection produced rows %v", rows)
	}
}

func TestByCategoryAveragesPerYear(t *testing.T) {
	records := []survey.Record{
		rec("NUS", "CS", "Computing", 2021, 5000, 96),
		rec("NTU", "IS", "Computing", 2021, 4000, 92),
		rec("NUS", "CS", "Computing", 2022, 5200, 97),
	}
	rows := ByCategory(records, map[string]bool{"Computing": true}, survey.GrossMonthlyMedian)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want one per year", len(rows))
	}
	y21 := rows[0]
	if y21.Year != 2021 {
		t.Fatalf("years not sorted: first row year %d", y21.Year)
	}
	if y21.Salary != 4500 || y21.EmploymentRate != 94 {
		t.Errorf("2021 mean = (%v, %v), want (4500, 94)", y21.Salary, y21.EmploymentRate)
	}
	if y21.SampleSize != 2 {
		t.Errorf("2021 sample size = %d, want 2", y21.SampleSize)
	}
	if y21.University != survey.IndustryAverage {
		t.Errorf("university = %q, want sentinel %q", y21.University, survey.IndustryAverage)
	}
	if y21.SelectionKey() != "Computing" {
		t.Errorf("SelectionKey = %q, want category", y21.SelectionKey())
	}

	// A year with a single record is its own mean; no divide-by-zero rows can
	// appear because empty years are never emitted.
	if rows[1].Salary != 5200 || rows[1].SampleSize != 1 {
		t.Errorf("2022 row = %+v", rows[1])
	}
	for _, r := range rows {
		if math.IsNaN(r.Salary) || math.IsNaN(r.EmploymentRate) {
			t.Errorf("NaN in row %+v", r)
		}
	}
}

func TestByCategoryIgnoresInactiveAndUncategorized(t *testing.T) {
	records := []survey.Record{
		rec("NUS", "CS", "Computing", 2021, 5000, 96),
		rec("NUS", "Law", "Law", 2021, 6000, 97),
		{University: "NUS", Course: "Mystery", Year: 2021, GrossMonthlyMedian: 1},
	}
	rows := ByCategory(records, map[string]bool{"Computing": true}, survey.GrossMonthlyMedian)
	if len(rows) != 1 || rows[0].CourseCategory != "Computing" {
		t.Errorf("rows = %+v, want only Computing", rows)
	}
}

func TestAggregateDispatch(t *testing.T) {
	records := []survey.Record{rec("NUS", "CS", "Computing", 2021, 5000, 96)}

	byCourse := Aggregate(records, survey.ByCourse, map[string]bool{"NUS - CS": true}, survey.GrossMonthlyMedian)
	if len(byCourse) != 1 || byCourse[0].Kind != RowCourse {
		t.Errorf("course mode rows = %+v", byCourse)
	}

	byCat := Aggregate(records, survey.ByCategory, map[string]bool{"Computing": true}, survey.GrossMonthlyMedian)
	if len(byCat) != 1 || byCat[0].Kind != RowCategoryAverage {
		t.Errorf("category mode rows = %+v", byCat)
	}
}
