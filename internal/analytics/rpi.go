package analytics

import (
	"math"
	"sort"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// The relative performance index normalizes course salaries per year:
// z = (course mean salary - year mean) / year std. Yearly normalization
// removes macro effects such as inflation so courses can be compared across
// time by relative standing.

// IndexEntry is one (course, year) cell of the index table.
type IndexEntry struct {
	Course     string  `json:"course"`
	Category   string  `json:"course_category"`
	Year       int     `json:"year"`
	MeanSalary float64 `json:"mean_salary"`
	SampleSize int     `json:"sample_size"`
	ZScore     float64 `json:"z_score"`
	// Rank is the dense rank within the year, 1 = best.
	Rank int `json:"rank"`
	// Percentile is the average-rank percentile within the year, in [0,100].
	Percentile float64 `json:"percentile"`
}

// YearStat is the per-year mean/std the z-scores were computed against.
type YearStat struct {
	Year   int     `json:"year"`
	Mean   float64 `json:"year_mean"`
	Std    float64 `json:"year_std"`
	Groups int     `json:"n_groups"`
}

// ZSlope is the least-squares slope of a course's z-score over years, the
// simple "is this course rising or falling" trend metric.
type ZSlope struct {
	Course       string  `json:"course"`
	SlopePerYear float64 `json:"z_score_slope_per_year"`
	Years        int     `json:"years"`
}

// IndexOptions tunes the performance index computation.
type IndexOptions struct {
	Metric        survey.Metric
	MinSampleSize int
	// Weighted switches the year mean/std to sample-size weighting.
	Weighted bool
}

// PerformanceIndex holds the full index output.
type PerformanceIndex struct {
	Entries   []IndexEntry `json:"table"`
	YearStats []YearStat   `json:"year_stats"`
	Slopes    []ZSlope     `json:"slopes"`
}

// zscoreFloorStd guards against near-zero year variance blowing up z-scores;
// below it the z-score is pinned to zero.
const zscoreFloorStd = 1e-9

// BuildPerformanceIndex aggregates records into per-(course, year) mean
// salaries, z-scores them against their year's distribution, and ranks every
// year. Entries are ordered by year then rank.
func BuildPerformanceIndex(records []survey.Record, opts IndexOptions) PerformanceIndex {
	metric := opts.Metric
	if metric == "" {
		metric = survey.GrossMonthlyMedian
	}

	type cell struct {
		salary   float64
		n        int
		catCount map[string]int
	}
	cells := make(map[int]map[string]*cell)
	for _, r := range records {
		if r.Course == "" || r.Year == 0 {
			continue
		}
		byCourse, ok := cells[r.Year]
		if !ok {
			byCourse = make(map[string]*cell)
			cells[r.Year] = byCourse
		}
		c, ok := byCourse[r.Course]
		if !ok {
			c = &cell{catCount: make(map[string]int)}
			byCourse[r.Course] = c
		}
		c.salary += metric.Value(r)
		c.n++
		if r.CourseCategory != "" {
			c.catCount[r.CourseCategory]++
		}
	}

	years := make([]int, 0, len(cells))
	for y := range cells {
		years = append(years, y)
	}
	sort.Ints(years)

	var out PerformanceIndex
	for _, year := range years {
		byCourse := cells[year]

		courses := make([]string, 0, len(byCourse))
		for course, c := range byCourse {
			if opts.MinSampleSize > 0 && c.n < opts.MinSampleSize {
				continue
			}
			courses = append(courses, course)
		}
		if len(courses) == 0 {
			continue
		}
		sort.Strings(courses)

		means := make([]float64, len(courses))
		weights := make([]float64, len(courses))
		for i, course := range courses {
			c := byCourse[course]
			means[i] = c.salary / float64(c.n)
			if opts.Weighted {
				weights[i] = float64(c.n)
			} else {
				weights[i] = 1
			}
		}

		mean, std := weightedMeanStd(means, weights)
		out.YearStats = append(out.YearStats, YearStat{
			Year:   year,
			Mean:   mean,
			Std:    std,
			Groups: len(courses),
		})

		entries := make([]IndexEntry, len(courses))
		for i, course := range courses {
			c := byCourse[course]
			z := 0.0
			if std >= zscoreFloorStd {
				z = (means[i] - mean) / std
			}
			entries[i] = IndexEntry{
				Course:     course,
				Category:   modalCategory(c.catCount),
				Year:       year,
				MeanSalary: means[i],
				SampleSize: c.n,
				ZScore:     z,
			}
		}
		rankEntries(entries)
		out.Entries = append(out.Entries, entries...)
	}

	out.Slopes = zSlopes(out.Entries)
	return out
}

// SelectFocus picks the courses worth tracking on a bump chart: those present
// for at least minYears years, ordered by average z-score, capped at topK.
// An explicit focus list short-circuits the heuristic, filtered to courses
// actually present.
func (pi PerformanceIndex) SelectFocus(topK, minYears int, focus []string) []string {
	if len(focus) > 0 {
		present := make(map[string]bool)
		for _, e := range pi.Entries {
			present[e.Course] = true
		}
		var out []string
		for _, c := range focus {
			if present[c] {
				out = append(out, c)
			}
		}
		return out
	}

	type agg struct {
		zSum  float64
		n     int
		years map[int]bool
	}
	byCourse := make(map[string]*agg)
	for _, e := range pi.Entries {
		a, ok := byCourse[e.Course]
		if !ok {
			a = &agg{years: make(map[int]bool)}
			byCourse[e.Course] = a
		}
		a.zSum += e.ZScore
		a.n++
		a.years[e.Year] = true
	}

	type candidate struct {
		course string
		avgZ   float64
		years  int
	}
	var cands []candidate
	for course, a := range byCourse {
		if len(a.years) < minYears {
			continue
		}
		cands = append(cands, candidate{course: course, avgZ: a.zSum / float64(a.n), years: len(a.years)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].avgZ != cands[j].avgZ {
			return cands[i].avgZ > cands[j].avgZ
		}
		if cands[i].years != cands[j].years {
			return cands[i].years > cands[j].years
		}
		return cands[i].course < cands[j].course
	})
	if topK > 0 && len(cands) > topK {
		cands = cands[:topK]
	}

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.course
	}
	return out
}

// BumpData filters the index table to the focus courses, ordered by year then
// rank then course, ready to draw rank trajectories.
func (pi PerformanceIndex) BumpData(focus []string) []IndexEntry {
	want := toSet(focus)
	if want == nil {
		return nil
	}
	var out []IndexEntry
	for _, e := range pi.Entries {
		if want[e.Course] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Course < out[j].Course
	})
	return out
}

// rankEntries assigns dense ranks (1 = highest z) and average-rank percentiles
// within one year's entries, then orders them by rank.
func rankEntries(entries []IndexEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ZScore != entries[j].ZScore {
			return entries[i].ZScore > entries[j].ZScore
		}
		return entries[i].Course < entries[j].Course
	})

	rank := 0
	prev := math.Inf(1)
	for i := range entries {
		if entries[i].ZScore != prev {
			rank++
			prev = entries[i].ZScore
		}
		entries[i].Rank = rank
	}

	// Percentile by average ascending rank across ties.
	n := float64(len(entries))
	for i := 0; i < len(entries); {
		j := i
		for j < len(entries) && entries[j].ZScore == entries[i].ZScore {
			j++
		}
		// Positions i..j-1 in descending order map to ascending ranks
		// n-j+1 .. n-i; ties share the average.
		avgAsc := (n - float64(i) + n - float64(j) + 1) / 2
		for k := i; k < j; k++ {
			entries[k].Percentile = avgAsc / n * 100
		}
		i = j
	}
}

func zSlopes(entries []IndexEntry) []ZSlope {
	type series struct {
		byYear map[int]float64
	}
	byCourse := make(map[string]*series)
	for _, e := range entries {
		s, ok := byCourse[e.Course]
		if !ok {
			s = &series{byYear: make(map[int]float64)}
			byCourse[e.Course] = s
		}
		s.byYear[e.Year] = e.ZScore
	}

	var out []ZSlope
	for course, s := range byCourse {
		if len(s.byYear) < 2 {
			continue
		}
		var n, sumX, sumY, sumXY, sumXX float64
		for year, z := range s.byYear {
			x := float64(year)
			n++
			sumX += x
			sumY += z
			sumXY += x * z
			sumXX += x * x
		}
		denom := n*sumXX - sumX*sumX
		if denom == 0 {
			continue
		}
		out = append(out, ZSlope{
			Course:       course,
			SlopePerYear: (n*sumXY - sumX*sumY) / denom,
			Years:        len(s.byYear),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SlopePerYear != out[j].SlopePerYear {
			return out[i].SlopePerYear > out[j].SlopePerYear
		}
		return out[i].Course < out[j].Course
	})
	return out
}

func weightedMeanStd(vals, weights []float64) (mean, std float64) {
	var wSum float64
	for _, w := range weights {
		wSum += w
	}
	if wSum <= 0 {
		return simpleMeanStd(vals)
	}
	for i, v := range vals {
		mean += weights[i] * v
	}
	mean /= wSum
	var variance float64
	for i, v := range vals {
		d := v - mean
		variance += weights[i] * d * d
	}
	return mean, math.Sqrt(variance / wSum)
}

func simpleMeanStd(vals []float64) (mean, std float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	var variance float64
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(vals)))
}

func modalCategory(counts map[string]int) string {
	best, bestN := "", -1
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best
}
