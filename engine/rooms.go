package engine

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"edt-finder-cli/model"
)

// RoomsForCourse finds the rooms hosting a course, matched
// case-insensitively, grouped by room and then by day in canonical weekly
// order. Slots within a day are sorted by start time.
func RoomsForCourse(records []model.SessionRecord, course string) ([]model.RoomSchedule, error) {
	wanted := strings.ToLower(course)
	byRoom := make(map[string]map[model.DayCode][]model.Interval)
	for _, r := range records {
		if strings.ToLower(r.Course) != wanted {
			continue
		}
		if byRoom[r.Room] == nil {
			byRoom[r.Room] = make(map[model.DayCode][]model.Interval)
		}
		byRoom[r.Room][r.Day] = append(byRoom[r.Room][r.Day], r.Interval())
	}
	if len(byRoom) == 0 {
		return nil, &NotFoundError{Kind: "course", Name: course}
	}

	rooms := maps.Keys(byRoom)
	sort.Strings(rooms)

	out := make([]model.RoomSchedule, 0, len(rooms))
	for _, room := range rooms {
		days := maps.Keys(byRoom[room])
		sort.Slice(days, func(i, j int) bool { return days[i].Rank() < days[j].Rank() })

		schedule := model.RoomSchedule{Room: room}
		for _, day := range days {
			slots := byRoom[room][day]
			sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
			schedule.Days = append(schedule.Days, model.DaySlots{Day: day, Slots: slots})
		}
		out = append(out, schedule)
	}
	return out, nil
}
