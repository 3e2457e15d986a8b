package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// numericFields is the fixed set of columns parsed as floating point. Anything
// else stays a string.
var numericFields = map[string]bool{
	"year":                      true,
	"employment_rate_overall":   true,
	"employment_rate_ft_perm":   true,
	"basic_monthly_mean":        true,
	"basic_monthly_median":      true,
	"gross_monthly_mean":        true,
	"gross_monthly_median":      true,
	"gross_mthly_25_percentile": true,
	"gross_mthly_75_percentile": true,
	"z_score":                   true,
}

// CSVFile loads survey records from a local CSV asset with a header row.
type CSVFile struct {
	Path   string
	Logger *zap.Logger
}

// NewCSVFile returns a CSV source for the given path.
func NewCSVFile(path string, logger *zap.Logger) *CSVFile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVFile{Path: path, Logger: logger}
}

// Load reads and parses the whole file. Rows whose field count does not match
// the header are dropped, not fatal; a file without the header row is an
// error.
func (c *CSVFile) Load(ctx context.Context) (*Result, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read dataset header: %w", err)
		}
		return nil, fmt.Errorf("dataset %s is empty", c.Path)
	}
	header := SplitLine(strings.TrimPrefix(scanner.Text(), "\ufeff"))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []survey.Record
	dropped := 0
	line := 1
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := SplitLine(text)
		if len(fields) != len(header) {
			dropped++
			c.Logger.Debug("dropping malformed csv row",
				zap.Int("line", line),
				zap.Int("fields", len(fields)),
				zap.Int("want", len(header)))
			continue
		}
		records = append(records, recordFromFields(header, fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	c.Logger.Info("loaded csv dataset",
		zap.String("path", c.Path),
		zap.Int("records", len(records)),
		zap.Int("dropped", dropped))

	return &Result{
		Records:   records,
		Origin:    c.Path,
		FetchedAt: time.Now(),
	}, nil
}

// SplitLine splits one CSV line on commas, honoring double-quoted fields that
// contain literal commas. Escaped quotes inside quoted fields are not
// supported; the upstream dataset never produces them.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

func recordFromFields(header, fields []string) survey.Record {
	var r survey.Record
	for i, name := range header {
		raw := strings.TrimSpace(fields[i])
		if numericFields[name] {
			setNumeric(&r, name, parseFloat(raw))
			continue
		}
		setString(&r, name, cleanString(raw))
	}
	return r
}

// cleanString normalizes to NFC so university names with composed and
// decomposed accents dedupe to one index entry.
func cleanString(s string) string {
	return norm.NFC.String(s)
}

// parseFloat tolerates the dataset's "na" markers and junk by returning zero;
// a malformed number is never a load error.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func setNumeric(r *survey.Record, name string, v float64) {
	switch name {
	case "year":
		r.Year = int(v)
	case "employment_rate_overall":
		r.EmploymentRateOverall = v
	case "employment_rate_ft_perm":
		r.EmploymentRateFTPerm = v
	case "basic_monthly_mean":
		r.BasicMonthlyMean = v
	case "basic_monthly_median":
		r.BasicMonthlyMedian = v
	case "gross_monthly_mean":
		r.GrossMonthlyMean = v
	case "gross_monthly_median":
		r.GrossMonthlyMedian = v
	case "gross_mthly_25_percentile":
		r.GrossMthly25Pct = v
	case "gross_mthly_75_percentile":
		r.GrossMthly75Pct = v
	case "z_score":
		r.ZScore = v
	}
}

func setString(r *survey.Record, name, v string) {
	switch name {
	case "university":
		r.University = v
	case "course":
		r.Course = v
	case "course_category":
		r.CourseCategory = v
	}
}
