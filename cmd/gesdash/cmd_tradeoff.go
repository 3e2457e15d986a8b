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
	tradeoffYearStart  int
	tradeoffYearEnd    int
	tradeoffCategories []string
	tradeoffMinSample  int
	tradeoffTopN       int
	tradeoffMetric     string
	tradeoffFormat     string
)

// tradeoffCmd runs the employment-vs-salary tradeoff analysis by course
// category: one point per category, quadrant classification, correlation,
// trend line, and ranking cuts.
var tradeoffCmd = &cobra.Command{
	Use:   "tradeoff",
	Short: "Employment vs salary tradeoff by course category",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := survey.ParseMetric(tradeoffMetric)
		if err != nil {
			return err
		}

		res, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}

		records := analytics.Filter{
			YearStart:  tradeoffYearStart,
			YearEnd:    tradeoffYearEnd,
			Categories: tradeoffCategories,
		}.Apply(res.Records)

		idx := analytics.BuildIndex(records)
		active := make(map[string]bool, len(idx.Categories))
		for _, c := range idx.Categories {
			active[c] = true
		}

		rows := analytics.ByCategory(records, active, metric)
		if tradeoffMinSample > 1 {
			kept := rows[:0]
			for _, r := range rows {
				if r.SampleSize >= tradeoffMinSample {
					kept = append(kept, r)
				}
			}
			rows = kept
		}

		points := analytics.TradeoffPoints(rows)
		result := struct {
			Points      []analytics.Point     `json:"summary"`
			Correlation analytics.Correlation `json:"correlation"`
			Trend       *analytics.TrendLine  `json:"trendline"`
			Rankings    analytics.Rankings    `json:"rankings"`
			XDomain     analytics.AxisDomain  `json:"x_domain"`
			YDomain     analytics.AxisDomain  `json:"y_domain"`
		}{
			Points:      points,
			Correlation: analytics.Correlate(points),
			Trend:       analytics.FitTrend(points),
			Rankings:    analytics.Rank(points, tradeoffTopN),
		}
		result.XDomain, result.YDomain = analytics.Domains(points)

		if tradeoffFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tAVG SALARY\tAVG EMP %\tN\tQUADRANT")
		for _, p := range points {
			fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%d\t%s\n",
				p.Label, p.AvgSalary, p.AvgEmployment, p.SampleSize, p.Quadrant)
		}
		w.Flush()

		if r := result.Correlation.Pearson; r != nil {
			fmt.Printf("\nCorrelation (employment vs salary): %.3f\n", *r)
		}
		if r := result.Correlation.Weighted; r != nil {
			fmt.Printf("Weighted correlation (by sample size): %.3f\n", *r)
		}
		if t := result.Trend; t != nil {
			fmt.Printf("Trend: salary = %.1f * employment + %.0f\n", t.Slope, t.Intercept)
		} else {
			fmt.Println("Trend: not enough points")
		}
		return nil
	},
}

func init() {
	tradeoffCmd.Flags().IntVar(&tradeoffYearStart, "year-start", 0, "first survey year to include")
	tradeoffCmd.Flags().IntVar(&tradeoffYearEnd, "year-end", 0, "last survey year to include")
	tradeoffCmd.Flags().StringSliceVar(&tradeoffCategories, "categories", nil, "restrict to these course categories")
	tradeoffCmd.Flags().IntVar(&tradeoffMinSample, "min-sample-size", 1, "drop category years with fewer records")
	tradeoffCmd.Flags().IntVar(&tradeoffTopN, "top-n", 5, "ranking cut size")
	tradeoffCmd.Flags().StringVar(&tradeoffMetric, "metric", string(survey.GrossMonthlyMedian), "salary metric")
	tradeoffCmd.Flags().StringVar(&tradeoffFormat, "format", "text", "output format: text or json")
}
