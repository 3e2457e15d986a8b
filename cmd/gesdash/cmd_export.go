package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

var (
	exportDir    string
	exportMetric string
)

// exportCmd writes every analysis as a JSON file under --out. The analyses
// are independent, so they run concurrently.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all analyses as JSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := survey.ParseMetric(exportMetric)
		if err != nil {
			return err
		}

		res, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}
		records := res.Records

		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return err
		}

		g, _ := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			idx := analytics.BuildIndex(records)
			active := make(map[string]bool, len(idx.Categories))
			for _, c := range idx.Categories {
				active[c] = true
			}
			points := analytics.TradeoffPoints(analytics.ByCategory(records, active, metric))
			xd, yd := analytics.Domains(points)
			return writeJSON(filepath.Join(exportDir, "tradeoff.json"), struct {
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
				Rankings:    analytics.Rank(points, 5),
				XDomain:     xd,
				YDomain:     yd,
			})
		})
		g.Go(func() error {
			pi := analytics.BuildPerformanceIndex(records, analytics.IndexOptions{Metric: metric})
			focus := pi.SelectFocus(10, 6, nil)
			return writeJSON(filepath.Join(exportDir, "index.json"), struct {
				analytics.PerformanceIndex
				Focus []string               `json:"focus"`
				Bump  []analytics.IndexEntry `json:"bump_data"`
			}{PerformanceIndex: pi, Focus: focus, Bump: pi.BumpData(focus)})
		})
		g.Go(func() error {
			major := analytics.MajorUniversities(records, 40)
			return writeJSON(filepath.Join(exportDir, "compare.json"), struct {
				Employment []analytics.YearlyStat        `json:"employment_rates"`
				Salary     []analytics.YearlyStat        `json:"salaries"`
				Summary    []analytics.UniversitySummary `json:"summary"`
				ByCategory []analytics.CategoryCell      `json:"salary_by_category"`
				Growth     []analytics.GrowthPoint       `json:"salary_growth"`
			}{
				Employment: analytics.YearlyEmployment(major),
				Salary:     analytics.YearlySalary(major, metric),
				Summary:    analytics.SummarizeUniversities(major, metric.Value),
				ByCategory: analytics.SalaryByCategory(major, metric),
				Growth:     analytics.SalaryGrowth(major, metric),
			})
		})
		g.Go(func() error {
			return writeJSON(filepath.Join(exportDir, "records.json"), records)
		})
		if err := g.Wait(); err != nil {
			return err
		}

		logger.Info("export complete",
			zap.String("dir", exportDir),
			zap.Int("records", len(records)))
		fmt.Printf("Exported analyses for %d records to %s\n", len(records), exportDir)
		return nil
	},
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", "gesdash-export", "output directory")
	exportCmd.Flags().StringVar(&exportMetric, "metric", string(survey.GrossMonthlyMedian), "salary metric")
}
