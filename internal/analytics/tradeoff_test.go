package analytics

import (
	"testing"
)

func rowFor(key string, year int, salary, emp float64, samples int) Row {
	return Row{
		Kind:           RowCategoryAverage,
		CourseCategory: key,
		Year:           year,
		Salary:         salary,
		EmploymentRate: emp,
		SampleSize:     samples,
	}
}

func TestTradeoffPointsOnePerSelection(t *testing.T) {
	rows := []Row{
		rowFor("Computing", 2021, 5000, 96, 10),
		rowFor("Computing", 2022, 5200, 98, 12),
		rowFor("Business", 2021, 4000, 90, 20),
	}
	points := TradeoffPoints(rows)
	if len(points) != 2 {
		t.Fatalf("points = %d, want one per selection", len(points))
	}

	comp := points[0]
	if comp.Label != "Computing" {
		t.Fatalf("insertion order lost: first point %q", comp.Label)
	}
	if comp.AvgSalary != 5100 || comp.AvgEmployment != 97 {
		t.Errorf("Computing averages = (%v, %v), want (5100, 97)", comp.AvgSalary, comp.AvgEmployment)
	}
	if comp.SampleSize != 22 {
		t.Errorf("Computing sample size = %d, want summed 22", comp.SampleSize)
	}
}

func TestTradeoffPointsEmpty(t *testing.T) {
	if points := TradeoffPoints(nil); points != nil {
		t.Errorf("empty rows produced points %v", points)
	}
}

func TestSinglePointHasQuadrantButNoTrend(t *testing.T) {
	points := TradeoffPoints([]Row{rowFor("Computing", 2021, 5000, 96, 5)})
	if len(points) != 1 {
		t.Fatalf("points = %d", len(points))
	}
	// Its own value is >= the median (itself), so the point lands High/High.
	if points[0].Quadrant != "High Salary / High Employment" {
		t.Errorf("quadrant = %q", points[0].Quadrant)
	}
	if FitTrend(points) != nil {
		t.Error("single point must not produce a trend line")
	}
}

func TestQuadrantMedianSplit(t *testing.T) {
	rows := []Row{
		rowFor("A", 2021, 6000, 97, 1),
		rowFor("B", 2021, 5000, 95, 1),
		rowFor("C", 2021, 4000, 85, 1),
	}
	points := TradeoffPoints(rows)
	want := map[string]string{
		"A": "High Salary / High Employment",
		"B": "High Salary / High Employment", // median element itself counts as High
		"C": "Low Salary / Low Employment",
	}
	for _, p := range points {
		if p.Quadrant != want[p.Label] {
			t.Errorf("%s quadrant = %q, want %q", p.Label, p.Quadrant, want[p.Label])
		}
	}
}

func TestQuadrantEvenCountUsesUpperMiddleMedian(t *testing.T) {
	rows := []Row{
		rowFor("A", 2021, 1000, 80, 1),
		rowFor("B", 2021, 2000, 85, 1),
		rowFor("C", 2021, 3000, 90, 1),
		rowFor("D", 2021, 4000, 95, 1),
	}
	points := TradeoffPoints(rows)
	// With four values the threshold is the upper-middle element (3000, 90),
	// not the interpolated 2500/87.5: B falls Low on both axes.
	byLabel := make(map[string]Point)
	for _, p := range points {
		byLabel[p.Label] = p
	}
	if q := byLabel["B"].Quadrant; q != "Low Salary / Low Employment" {
		t.Errorf("B quadrant = %q, want Low/Low under upper-middle median", q)
	}
	if q := byLabel["C"].Quadrant; q != "High Salary / High Employment" {
		t.Errorf("C quadrant = %q, want High/High", q)
	}
}

func TestTradeoffSampleSizeFloor(t *testing.T) {
	points := TradeoffPoints([]Row{rowFor("A", 2021, 1000, 80, 0)})
	if points[0].SampleSize != 1 {
		t.Errorf("sample size = %d, want floor of 1", points[0].SampleSize)
	}
}

func TestUpperMedian(t *testing.T) {
	cases := []struct {
		vals []float64
		want float64
	}{
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 3},
		{[]float64{7}, 7},
	}
	for _, tc := range cases {
		if got := upperMedian(tc.vals); got != tc.want {
			t.Errorf("upperMedian(%v) = %v, want %v", tc.vals, got, tc.want)
		}
	}
}
