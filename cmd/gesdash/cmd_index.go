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
	indexYearStart int
	indexYearEnd   int
	indexMetric    string
	indexMinSample int
	indexWeighted  bool
	indexTopK      int
	indexMinYears  int
	indexFocus     []string
	indexFormat    string
)

// indexCmd computes the relative performance index: per-year z-scores of
// course mean salaries, ranks, and the rising/falling z-slope list.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Relative performance index (per-year salary z-scores)",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := survey.ParseMetric(indexMetric)
		if err != nil {
			return err
		}

		res, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}

		records := analytics.Filter{
			YearStart: indexYearStart,
			YearEnd:   indexYearEnd,
		}.Apply(res.Records)

		pi := analytics.BuildPerformanceIndex(records, analytics.IndexOptions{
			Metric:        metric,
			MinSampleSize: indexMinSample,
			Weighted:      indexWeighted,
		})
		focus := pi.SelectFocus(indexTopK, indexMinYears, indexFocus)
		bump := pi.BumpData(focus)

		if indexFormat == "json" {
			out := struct {
				analytics.PerformanceIndex
				Focus []string               `json:"focus"`
				Bump  []analytics.IndexEntry `json:"bump_data"`
			}{PerformanceIndex: pi, Focus: focus, Bump: bump}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "YEAR\tRANK\tCOURSE\tZ\tPCTL\tMEAN SALARY\tN")
		for _, e := range bump {
			fmt.Fprintf(w, "%d\t%d\t%s\t%+.2f\t%.0f\t%.0f\t%d\n",
				e.Year, e.Rank, e.Course, e.ZScore, e.Percentile, e.MeanSalary, e.SampleSize)
		}
		w.Flush()

		if len(pi.Slopes) > 0 {
			fmt.Println("\nFastest-rising courses (z-score slope per year):")
			limit := 10
			if len(pi.Slopes) < limit {
				limit = len(pi.Slopes)
			}
			for _, s := range pi.Slopes[:limit] {
				fmt.Printf("  %+0.3f  %s (%d years)\n", s.SlopePerYear, s.Course, s.Years)
			}
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().IntVar(&indexYearStart, "year-start", 0, "first survey year to include")
	indexCmd.Flags().IntVar(&indexYearEnd, "year-end", 0, "last survey year to include")
	indexCmd.Flags().StringVar(&indexMetric, "metric", string(survey.GrossMonthlyMedian), "salary metric")
	indexCmd.Flags().IntVar(&indexMinSample, "min-sample-size", 1, "drop course years with fewer records")
	indexCmd.Flags().BoolVar(&indexWeighted, "weighted", false, "weight year statistics by sample size")
	indexCmd.Flags().IntVar(&indexTopK, "top-k", 10, "focus course count")
	indexCmd.Flags().IntVar(&indexMinYears, "min-years", 6, "minimum years present for focus courses")
	indexCmd.Flags().StringSliceVar(&indexFocus, "focus", nil, "explicit focus courses")
	indexCmd.Flags().StringVar(&indexFormat, "format", "text", "output format: text or json")
}
