package analytics

// AxisDomain is a closed [Min, Max] chart axis range.
type AxisDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Default domains used when there are no points to scale against.
var (
	DefaultEmploymentDomain = AxisDomain{Min: 0, Max: 100}
	DefaultSalaryDomain     = AxisDomain{Min: 0, Max: 8000}
)

const (
	domainPadFraction = 0.08
	// Minimum absolute pads keep the range non-degenerate when every point
	// shares a value.
	minEmploymentPad = 0.5
	minSalaryPad     = 80.0
)

// Domains computes the x (employment %) and y (salary) axis ranges for a
// tradeoff scatter: observed range padded by 8% per side with a floor on the
// pad, x clamped to [0,100] since it is a percentage.
func Domains(points []Point) (x, y AxisDomain) {
	if len(points) == 0 {
		return DefaultEmploymentDomain, DefaultSalaryDomain
	}

	xMin, xMax := points[0].AvgEmployment, points[0].AvgEmployment
	yMin, yMax := points[0].AvgSalary, points[0].AvgSalary
	for _, p := range points[1:] {
		if p.AvgEmployment < xMin {
			xMin = p.AvgEmployment
		}
		if p.AvgEmployment > xMax {
			xMax = p.AvgEmployment
		}
		if p.AvgSalary < yMin {
			yMin = p.AvgSalary
		}
		if p.AvgSalary > yMax {
			yMax = p.AvgSalary
		}
	}

	xPad := maxFloat(minEmploymentPad, (xMax-xMin)*domainPadFraction)
	yPad := maxFloat(minSalaryPad, (yMax-yMin)*domainPadFraction)

	x = AxisDomain{Min: clamp(xMin-xPad, 0, 100), Max: clamp(xMax+xPad, 0, 100)}
	y = AxisDomain{Min: yMin - yPad, Max: yMax + yPad}
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
