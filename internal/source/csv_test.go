package source

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `A,"B,C",D`, []string{"A", "B,C", "D"}},
		{"leading quoted", `"x, y",z`, []string{"x, y", "z"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing empty", "a,b,", []string{"a", "b", ""}},
		{"single field", "alone", []string{"alone"}},
	}
	for _, tc := range cases {
		if got := SplitLine(tc.line); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: SplitLine(%q) = %q, want %q", tc.name, tc.line, got, tc.want)
		}
	}
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ges.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVFileLoad(t *testing.T) {
	path := writeDataset(t, ""+
		"year,university,course,course_category,employment_rate_overall,gross_monthly_median\n"+
		`2021,NUS,"Computer Science, Honours",Computing,95.5,5000`+"\n"+
		"2021,NTU,Accountancy,Business,92.0,3800\n")

	res, err := NewCSVFile(path, nil).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}

	r := res.Records[0]
	if r.Year != 2021 || r.University != "NUS" {
		t.Errorf("record = %+v", r)
	}
	if r.Course != "Computer Science, Honours" {
		t.Errorf("quoted course = %q, lost its comma", r.Course)
	}
	if r.EmploymentRateOverall != 95.5 || r.GrossMonthlyMedian != 5000 {
		t.Errorf("numeric fields = %v / %v", r.EmploymentRateOverall, r.GrossMonthlyMedian)
	}
	if res.Origin != path {
		t.Errorf("origin = %q", res.Origin)
	}
}

func TestCSVFileDropsMalformedRows(t *testing.T) {
	path := writeDataset(t, ""+
		"year,university,course,course_category\n"+
		"2021,NUS,CS,Computing\n"+
		"2021,NUS,CS\n"+ // short row
		"\n"+ // blank line is skipped, not counted malformed
		"2021,NTU,IS,Computing\n")

	res, err := NewCSVFile(path, nil).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Records) != 2 {
		t.Errorf("records = %d, want malformed row dropped silently", len(res.Records))
	}
}

func TestCSVFileNonNumericJunkParsesAsZero(t *testing.T) {
	path := writeDataset(t, ""+
		"year,university,course,course_category,gross_monthly_median\n"+
		"2021,NUS,CS,Computing,na\n")

	res, err := NewCSVFile(path, nil).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Records[0].GrossMonthlyMedian != 0 {
		t.Errorf("na parsed to %v, want 0", res.Records[0].GrossMonthlyMedian)
	}
}

func TestCSVFileStripsBOM(t *testing.T) {
	path := writeDataset(t, "\ufeffyear,university,course,course_category\n2021,NUS,CS,Computing\n")

	res, err := NewCSVFile(path, nil).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Records) != 1 || res.Records[0].Year != 2021 {
		t.Errorf("records = %+v, want BOM-prefixed header handled", res.Records)
	}
}

func TestCSVFileEmptyAndMissing(t *testing.T) {
	if _, err := NewCSVFile(writeDataset(t, ""), nil).Load(context.Background()); err == nil {
		t.Error("empty file: want error")
	}
	if _, err := NewCSVFile(filepath.Join(t.TempDir(), "nope.csv"), nil).Load(context.Background()); err == nil {
		t.Error("missing file: want error")
	}
}

func TestCleanStringNormalizesNFC(t *testing.T) {
	// "é" decomposed (e + combining acute) normalizes to the composed form.
	decomposed := "Universite\u0301"
	composed := "Universit\u00e9"
	if got := cleanString(decomposed); got != composed {
		t.Errorf("cleanString(%q) = %q, want %q", decomposed, got, composed)
	}
}
