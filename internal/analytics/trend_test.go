package analytics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitTrendExactLine(t *testing.T) {
	points := []Point{
		{Label: "a", AvgEmployment: 10, AvgSalary: 100},
		{Label: "b", AvgEmployment: 20, AvgSalary: 200},
		{Label: "c", AvgEmployment: 30, AvgSalary: 300},
	}
	line := FitTrend(points)
	if line == nil {
		t.Fatal("expected a fit")
	}
	if !almostEqual(line.Slope, 10) || !almostEqual(line.Intercept, 0) {
		t.Errorf("fit = %v x + %v, want 10x + 0", line.Slope, line.Intercept)
	}
	if line.X1 != 10 || line.X2 != 30 {
		t.Errorf("segment x = [%v, %v], want observed min/max [10, 30]", line.X1, line.X2)
	}
	if !almostEqual(line.Y1, 100) || !almostEqual(line.Y2, 300) {
		t.Errorf("segment y = [%v, %v], want [100, 300]", line.Y1, line.Y2)
	}
}

func TestFitTrendDegenerateInputs(t *testing.T) {
	if FitTrend(nil) != nil {
		t.Error("no points: want nil")
	}
	if FitTrend([]Point{{AvgEmployment: 50, AvgSalary: 4000}}) != nil {
		t.Error("one point: want nil")
	}
	vertical := []Point{
		{AvgEmployment: 90, AvgSalary: 3000},
		{AvgEmployment: 90, AvgSalary: 5000},
	}
	if FitTrend(vertical) != nil {
		t.Error("zero x-variance: want nil, not a fabricated line")
	}
}

func TestResiduals(t *testing.T) {
	points := []Point{
		{Label: "on", AvgEmployment: 10, AvgSalary: 100},
		{Label: "on2", AvgEmployment: 30, AvgSalary: 300},
		{Label: "above", AvgEmployment: 20, AvgSalary: 260},
	}
	res := Residuals(points)
	if res == nil {
		t.Fatal("expected residuals")
	}
	if res["above"] <= 0 {
		t.Errorf("point above the line has residual %v, want positive", res["above"])
	}
	if res["above"] <= res["on"] || res["above"] <= res["on2"] {
		t.Errorf("outlier not largest: %v", res)
	}

	if Residuals([]Point{{AvgEmployment: 50}}) != nil {
		t.Error("residuals without a fit must be nil")
	}
}
