package main

import (
	"strings"
	"testing"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

func TestBuildReport(t *testing.T) {
	records := []survey.Record{
		{University: "NUS", Course: "CS", CourseCategory: "Computing", Year: 2021,
			GrossMonthlyMedian: 5000, EmploymentRateOverall: 96},
		{University: "NUS", Course: "History", CourseCategory: "Arts", Year: 2021,
			GrossMonthlyMedian: 3500, EmploymentRateOverall: 88},
		{University: "NTU", Course: "Accountancy", CourseCategory: "Business", Year: 2021,
			GrossMonthlyMedian: 3800, EmploymentRateOverall: 92},
	}
	summary := &survey.Summary{AvgSalary: 4100, TopUniversity: "NUS", TopDegree: "CS"}

	md := buildReport(records, summary, "ges.csv", survey.GrossMonthlyMedian, 3)

	for _, want := range []string{
		"# Graduate Employment Survey Report",
		"`ges.csv`",
		"3 records, 2 universities, 3 categories",
		"**$4100**",
		"| Computing | $5000 | 96.0% | 1 |",
		"High Salary / High Employment",
		"correlation",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestBuildReportWithoutSummary(t *testing.T) {
	records := []survey.Record{
		{University: "NUS", Course: "CS", CourseCategory: "Computing", Year: 2021,
			GrossMonthlyMedian: 5000, EmploymentRateOverall: 96},
	}
	md := buildReport(records, nil, "endpoint", survey.GrossMonthlyMedian, 3)
	if strings.Contains(md, "Overall average salary") {
		t.Error("summary section rendered without summary data")
	}
	// A single category still tables, with no trend sentence.
	if strings.Contains(md, "Trend:") {
		t.Error("trend sentence rendered for a single point")
	}
}
