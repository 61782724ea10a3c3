package engine

import (
	"sort"
	"strings"

	"edt-finder-cli/model"
)

// FullDay spans 00:00 to 24:00, the conflict window used when a caller
// does not restrict the check.
var FullDay = model.Interval{Start: 0, End: 24 * 60}

// VerifyConflicts flags every pair of sessions double-booking a room: same
// room, same day, overlapping intervals, different courses (two sections
// of one course sharing a room are not flagged). Both intervals must also
// intersect the query window. Days defaults to the whole week and window
// to the full day when zero-valued. Each physical conflict is reported
// exactly once regardless of record order.
func VerifyConflicts(records []model.SessionRecord, days []model.DayCode, window model.Interval) []model.Conflict {
	if len(days) == 0 {
		days = model.DayOrder
	}
	if window == (model.Interval{}) {
		window = FullDay
	}

	var conflicts []model.Conflict
	seen := make(map[string]bool)
	for _, day := range days {
		var onDay []model.SessionRecord
		for _, r := range records {
			if r.Day == day {
				onDay = append(onDay, r)
			}
		}
		for i := 0; i < len(onDay); i++ {
			for j := i + 1; j < len(onDay); j++ {
				first, second := onDay[i], onDay[j]
				if first.Room != second.Room || first.Course == second.Course {
					continue
				}
				a, b := first.Interval(), second.Interval()
				if !a.Overlaps(b) || !a.Overlaps(window) || !b.Overlaps(window) {
					continue
				}
				key := conflictKey(first, second)
				if seen[key] {
					continue
				}
				seen[key] = true
				if recordKey(second) < recordKey(first) {
					first, second = second, first
				}
				conflicts = append(conflicts, model.Conflict{
					Room:   first.Room,
					Day:    day,
					First:  first,
					Second: second,
				})
			}
		}
	}
	return conflicts
}

// conflictKey builds a canonical identity for a conflict pair so the same
// physical overlap is never reported twice whichever record comes first.
func conflictKey(a, b model.SessionRecord) string {
	keys := []string{recordKey(a), recordKey(b)}
	sort.Strings(keys)
	return strings.Join(keys, "#")
}

func recordKey(r model.SessionRecord) string {
	return strings.Join([]string{r.Room, string(r.Day), r.StartTime, r.EndTime, r.Course}, "|")
}
