package survey

import "testing"

func TestCourseKeyDistinguishesUniversities(t *testing.T) {
	a := Record{University: "NUS", Course: "Computer Science"}
	b := Record{University: "NTU", Course: "Computer Science"}
	if a.CourseKey() == b.CourseKey() {
		t.Fatalf("same course at different universities collided: %q", a.CourseKey())
	}
	if got, want := a.CourseKey(), "NUS - Computer Science"; got != want {
		t.Errorf("CourseKey = %q, want %q", got, want)
	}
}

func TestRecordValid(t *testing.T) {
	cases := []struct {
		name string
		r    Record
		want bool
	}{
		{"complete", Record{University: "NUS", CourseCategory: "Computing"}, true},
		{"missing university", Record{CourseCategory: "Computing"}, false},
		{"missing category", Record{University: "NUS"}, false},
		{"empty", Record{}, false},
	}
	for _, tc := range cases {
		if got := tc.r.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics() {
		got, err := ParseMetric(string(m))
		if err != nil {
			t.Fatalf("ParseMetric(%q) error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseMetric(%q) = %q", m, got)
		}
	}
	if _, err := ParseMetric("net_monthly_mean"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestMetricValue(t *testing.T) {
	r := Record{
		BasicMonthlyMean:   3000,
		BasicMonthlyMedian: 3100,
		GrossMonthlyMean:   3500,
		GrossMonthlyMedian: 3400,
		GrossMthly25Pct:    3000,
		GrossMthly75Pct:    4000,
	}
	want := map[Metric]float64{
		BasicMonthlyMean:   3000,
		BasicMonthlyMedian: 3100,
		GrossMonthlyMean:   3500,
		GrossMonthlyMedian: 3400,
		GrossMthly25Pct:    3000,
		GrossMthly75Pct:    4000,
	}
	for m, v := range want {
		if got := m.Value(r); got != v {
			t.Errorf("%s.Value = %v, want %v", m, got, v)
		}
	}
	if got := Metric("bogus").Value(r); got != 0 {
		t.Errorf("unknown metric Value = %v, want 0", got)
	}
}

func TestParseMode(t *testing.T) {
	if _, err := ParseMode("courses"); err != nil {
		t.Errorf("courses: %v", err)
	}
	if _, err := ParseMode("categories"); err != nil {
		t.Errorf("categories: %v", err)
	}
	if _, err := ParseMode("universities"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
