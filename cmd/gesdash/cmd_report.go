package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/analytics"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

var (
	reportMetric string
	reportTopN   int
	reportPlain  bool
)

// reportCmd renders a markdown summary of the tradeoff analysis to the
// terminal.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a summary report of the current dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := survey.ParseMetric(reportMetric)
		if err != nil {
			return err
		}

		res, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}

		md := buildReport(res.Records, res.Summary, res.Origin, metric, reportTopN)
		if reportPlain {
			fmt.Print(md)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		out, err := renderer.Render(md)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

// buildReport assembles the markdown body. Kept separate from rendering so
// tests can assert on content without a terminal.
func buildReport(records []survey.Record, summary *survey.Summary, origin string, metric survey.Metric, topN int) string {
	idx := analytics.BuildIndex(records)
	active := make(map[string]bool, len(idx.Categories))
	for _, c := range idx.Categories {
		active[c] = true
	}
	points := analytics.TradeoffPoints(analytics.ByCategory(records, active, metric))
	corr := analytics.Correlate(points)
	trend := analytics.FitTrend(points)
	rankings := analytics.Rank(points, topN)

	var sb strings.Builder
	sb.WriteString("# Graduate Employment Survey Report\n\n")
	fmt.Fprintf(&sb, "Source: `%s` — %d records, %d universities, %d categories.\n\n",
		origin, len(records), len(idx.Universities), len(idx.Categories))

	if summary != nil {
		fmt.Fprintf(&sb, "Overall average salary **$%.0f**; top university %s (%s).\n\n",
			summary.AvgSalary, summary.TopUniversity, summary.TopDegree)
	}

	fmt.Fprintf(&sb, "## Tradeoff by category (%s)\n\n", metric.Label())
	sb.WriteString("| Category | Avg Salary | Avg Employment | n | Quadrant |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, p := range points {
		fmt.Fprintf(&sb, "| %s | $%.0f | %.1f%% | %d | %s |\n",
			p.Label, p.AvgSalary, p.AvgEmployment, p.SampleSize, p.Quadrant)
	}
	sb.WriteString("\n")

	if r := corr.Pearson; r != nil {
		fmt.Fprintf(&sb, "Employment/salary correlation: **%.3f**", *r)
		if w := corr.Weighted; w != nil {
			fmt.Fprintf(&sb, " (weighted %.3f)", *w)
		}
		sb.WriteString(".\n\n")
	}
	if trend != nil {
		fmt.Fprintf(&sb, "Trend: each employment point is worth about **$%.0f** of monthly salary.\n\n", trend.Slope)
	}

	if len(rankings.PositiveTradeoff) > 0 {
		sb.WriteString("## Outliers\n\n")
		sb.WriteString("Salary above what employment alone predicts:\n\n")
		for _, p := range rankings.PositiveTradeoff {
			fmt.Fprintf(&sb, "- %s ($%.0f at %.1f%%)\n", p.Label, p.AvgSalary, p.AvgEmployment)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	reportCmd.Flags().StringVar(&reportMetric, "metric", string(survey.GrossMonthlyMedian), "salary metric")
	reportCmd.Flags().IntVar(&reportTopN, "top-n", 5, "outlier list size")
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "print raw markdown without styling")
}
