package analytics

import "math"

// SizeLegend maps sample sizes to marker sizes and picks the tick values shown
// in the bubble-size legend.

// ScaleSize linearly maps value from [vmin, vmax] into [sizeMin, sizeMax].
// A degenerate input range collapses to the middle of the output range.
func ScaleSize(value, vmin, vmax, sizeMin, sizeMax float64) float64 {
	if vmin == vmax {
		return (sizeMin + sizeMax) / 2
	}
	return sizeMin + (value-vmin)*(sizeMax-sizeMin)/(vmax-vmin)
}

// NiceTicks picks up to n rounded tick values covering the sample-size range.
// The rounding base steps with the spread (5/10/25/50) so legend labels stay
// readable regardless of dataset size.
func NiceTicks(vals []float64, n int) []int {
	if len(vals) == 0 {
		return nil
	}
	vmin, vmax := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	if vmin == vmax {
		return []int{int(math.Round(vmin))}
	}

	rng := vmax - vmin
	base := 50.0
	switch {
	case rng <= 50:
		base = 5
	case rng <= 200:
		base = 10
	case rng <= 500:
		base = 25
	}

	start := base * math.Ceil(vmin/base)
	end := base * math.Floor(vmax/base)
	if start >= end {
		lo, hi := int(math.Round(vmin)), int(math.Round(vmax))
		if lo == hi {
			return []int{lo}
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return []int{lo, hi}
	}

	if n < 2 {
		n = 2
	}
	step := (end - start) / float64(n-1)
	seen := make(map[int]bool)
	var ticks []int
	for i := 0; i < n; i++ {
		raw := start + float64(i)*step
		t := int(math.Round(raw/base) * base)
		if !seen[t] {
			seen[t] = true
			ticks = append(ticks, t)
		}
	}
	return ticks
}
