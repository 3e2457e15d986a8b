package analytics

import "github.com/Divaprk/DAaaS-Platform-G36/internal/survey"

// Filter narrows a record list before aggregation. Zero values mean "no
// constraint"; list fields match any of their entries.
type Filter struct {
	YearStart    int
	YearEnd      int
	Universities []string
	Categories   []string
	Courses      []string
}

// Apply returns the records passing every set constraint. The input slice is
// never mutated.
func (f Filter) Apply(records []survey.Record) []survey.Record {
	unis := toSet(f.Universities)
	cats := toSet(f.Categories)
	courses := toSet(f.Courses)

	out := make([]survey.Record, 0, len(records))
	for _, r := range records {
		if f.YearStart != 0 && r.Year < f.YearStart {
			continue
		}
		if f.YearEnd != 0 && r.Year > f.YearEnd {
			continue
		}
		if unis != nil && !unis[r.University] {
			continue
		}
		if cats != nil && !cats[r.CourseCategory] {
			continue
		}
		if courses != nil && !courses[r.Course] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MajorUniversities keeps only records from universities carrying at least
// minRecords rows in the filtered set. The comparison analytics use this to
// drop institutions too small to compare fairly.
func MajorUniversities(records []survey.Record, minRecords int) []survey.Record {
	if minRecords <= 1 {
		return records
	}
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.University]++
	}
	out := make([]survey.Record, 0, len(records))
	for _, r := range records {
		if counts[r.University] >= minRecords {
			out = append(out, r)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	s := make(map[string]bool, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}
