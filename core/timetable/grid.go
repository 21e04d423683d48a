package timetable

type (
	// TimeRange is one discovered (start, end) bucket.
	TimeRange struct {
		Start string
		End   string
	}

	// Grid is the timetable reshaped for rendering: rows are the time ranges
	// actually present in the data, columns are days, and each cell holds the
	// entries matching that exact (day, start, end) triple. A cell may hold
	// several entries (parallel activities) or none.
	Grid struct {
		Days   []string
		Ranges []TimeRange
		cells  map[string][][]Entry // day -> per-range entries
	}
)

// Ranges collects the distinct time ranges present in entries, preserving
// first-seen order. The schedule is whatever the data says, not a fixed
// period list.
func Ranges(entries []Entry) []TimeRange {
	seen := make(map[TimeRange]bool)
	ranges := make([]TimeRange, 0)
	for _, e := range entries {
		r := TimeRange{Start: e.Start(), End: e.End()}
		if !seen[r] {
			seen[r] = true
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// BuildGrid groups a flat entry list by (day, time range). Days defaults to
// the school week; entries on a day outside it are not shown, matching how
// the timetable page renders.
func BuildGrid(entries []Entry, days ...string) Grid {
	if len(days) == 0 {
		days = Weekdays
	}
	ranges := Ranges(entries)
	cells := make(map[string][][]Entry, len(days))
	for _, day := range days {
		perRange := make([][]Entry, len(ranges))
		for i, r := range ranges {
			for _, e := range entries {
				if e.Day == day && e.Start() == r.Start && e.End() == r.End {
					perRange[i] = append(perRange[i], e)
				}
			}
		}
		cells[day] = perRange
	}
	return Grid{Days: days, Ranges: ranges, cells: cells}
}

// Cell returns the entries of one (day, range index) cell; empty cells render
// a placeholder at the call site.
func (g Grid) Cell(day string, rangeIdx int) []Entry {
	perRange, ok := g.cells[day]
	if !ok || rangeIdx < 0 || rangeIdx >= len(perRange) {
		return nil
	}
	return perRange[rangeIdx]
}
