package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

var (
	compareYearStart    int
	compareYearEnd      int
	compareUniversities []string
	compareCategories   []string
	compareMinRecords   int
	compareMetric       string
	compareFormat       string
)

// compareCmd produces the university comparison series: yearly employment and
// salary lines, the salary-by-category pivot, and year-over-year growth.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare universities: employment, salary, growth",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := survey.ParseMetric(compareMetric)
		if err != nil {
			return err
		}

		res, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}

		records := analytics.Filter{
			YearStart:    compareYearStart,
			YearEnd:      compareYearEnd,
			Universities: compareUniversities,
			Categories:   compareCategories,
		}.Apply(res.Records)
		records = analytics.MajorUniversities(records, compareMinRecords)

		result := struct {
			Employment []analytics.YearlyStat        `json:"employment_rates"`
			Salary     []analytics.YearlyStat        `json:"salaries"`
			Summary    []analytics.UniversitySummary `json:"summary"`
			ByCategory []analytics.CategoryCell      `json:"salary_by_category"`
			Growth     []analytics.GrowthPoint       `json:"salary_growth"`
		}{
			Employment: analytics.YearlyEmployment(records),
			Salary:     analytics.YearlySalary(records, metric),
			Summary:    analytics.SummarizeUniversities(records, metric.Value),
			ByCategory: analytics.SalaryByCategory(records, metric),
			Growth:     analytics.SalaryGrowth(records, metric),
		}

		if compareFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "UNIVERSITY\tAVG SALARY\tSTD DEV\tSAMPLES")
		for _, s := range result.Summary {
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%d\n", s.University, s.Average, s.Std, s.Samples)
		}
		w.Flush()

		fmt.Println("\nYear-over-year salary growth:")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "UNIVERSITY\tYEAR\tSALARY\tGROWTH\tN")
		for _, g := range result.Growth {
			fmt.Fprintf(w, "%s\t%d\t%.0f\t%+.1f%%\t%d\n",
				g.University, g.Year, g.AvgSalary, g.GrowthRate, g.SampleSize)
		}
		w.Flush()
		return nil
	},
}

func init() {
	compareCmd.Flags().IntVar(&compareYearStart, "year-start", 0, "first survey year to include")
	compareCmd.Flags().IntVar(&compareYearEnd, "year-end", 0, "last survey year to include")
	compareCmd.Flags().StringSliceVar(&compareUniversities, "universities", nil, "restrict to these universities")
	compareCmd.Flags().StringSliceVar(&compareCategories, "categories", nil, "restrict to these course categories")
	compareCmd.Flags().IntVar(&compareMinRecords, "min-records", 40, "minimum records for a university to be compared")
	compareCmd.Flags().StringVar(&compareMetric, "metric", string(survey.GrossMonthlyMean), "salary metric")
	compareCmd.Flags().StringVar(&compareFormat, "format", "text", "output format: text or json")
}
