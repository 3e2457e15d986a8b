// Package analytics is the data reshaping layer: grouping, per-year
// aggregation, tradeoff reduction, trend fitting, and axis/legend scaling.
// Every function is pure; callers recompute derived results whole whenever the
// records, selections, or metric change.
package analytics

import (
	"sort"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// CategoryGroup is one course category under a university, with the distinct
// course names seen for it in first-sight order.
type CategoryGroup struct {
	Category string
	Courses  []string
}

// UniversityGroup is one university with its category groups in first-sight
// order.
type UniversityGroup struct {
	University string
	Groups     []CategoryGroup
}

// Index is the hierarchical lookup backing the selection UI: university →
// category → distinct courses, plus a flat sorted category list.
type Index struct {
	Universities []UniversityGroup
	Categories   []string
}

// BuildIndex folds the record list into an Index. Records missing a university
// or course category are skipped silently. Course names are deduplicated with
// set semantics; insertion order of first sight is preserved at every level.
func BuildIndex(records []survey.Record) Index {
	uniOrder := make([]string, 0)
	uniIdx := make(map[string]int)

	type catEntry struct {
		order  []string
		groups map[string]*CategoryGroup
		seen   map[string]map[string]bool // category -> course set
	}
	perUni := make(map[string]*catEntry)

	catSeen := make(map[string]bool)

	for _, r := range records {
		if !r.Valid() {
			continue
		}

		entry, ok := perUni[r.University]
		if !ok {
			entry = &catEntry{
				groups: make(map[string]*CategoryGroup),
				seen:   make(map[string]map[string]bool),
			}
			perUni[r.University] = entry
			uniIdx[r.University] = len(uniOrder)
			uniOrder = append(uniOrder, r.University)
		}

		g, ok := entry.groups[r.CourseCategory]
		if !ok {
			g = &CategoryGroup{Category: r.CourseCategory}
			entry.groups[r.CourseCategory] = g
			entry.seen[r.CourseCategory] = make(map[string]bool)
			entry.order = append(entry.order, r.CourseCategory)
		}

		if r.Course != "" && !entry.seen[r.CourseCategory][r.Course] {
			entry.seen[r.CourseCategory][r.Course] = true
			g.Courses = append(g.Courses, r.Course)
		}

		catSeen[r.CourseCategory] = true
	}

	idx := Index{}
	for _, uni := range uniOrder {
		entry := perUni[uni]
		ug := UniversityGroup{University: uni}
		for _, cat := range entry.order {
			ug.Groups = append(ug.Groups, *entry.groups[cat])
		}
		idx.Universities = append(idx.Universities, ug)
	}

	for cat := range catSeen {
		idx.Categories = append(idx.Categories, cat)
	}
	sort.Strings(idx.Categories)

	return idx
}

// CourseKeys returns every composite (university, course) key in the index, in
// index order. Used to validate selections against the loaded dataset.
func (idx Index) CourseKeys() []string {
	var keys []string
	for _, ug := range idx.Universities {
		for _, g := range ug.Groups {
			for _, c := range g.Courses {
				keys = append(keys, survey.CourseKey(ug.University, c))
			}
		}
	}
	return keys
}
