package engine

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"edt-finder-cli/model"
)

// DefaultWindow is the opening window used when a caller does not supply
// one: rooms open 08:00 to 20:00.
var DefaultWindow = model.Interval{Start: 8 * 60, End: 20 * 60}

// RoomFreeIntervals computes, per day, the free intervals of a room inside
// the opening window: the window minus every booked interval of that room
// on that day. Days are returned in canonical weekly order; a fully booked
// day has an empty Free list.
func RoomFreeIntervals(records []model.SessionRecord, room string, window model.Interval) ([]model.DayIntervals, error) {
	wanted := strings.ToLower(room)
	booked := make(map[model.DayCode][]model.Interval)
	found := false
	for _, r := range records {
		if strings.ToLower(r.Room) != wanted {
			continue
		}
		booked[r.Day] = append(booked[r.Day], r.Interval())
		found = true
	}
	if !found {
		return nil, &NotFoundError{Kind: "room", Name: room}
	}

	out := make([]model.DayIntervals, 0, len(model.DayOrder))
	for _, day := range model.DayOrder {
		free := []model.Interval{window}
		for _, b := range booked[day] {
			var next []model.Interval
			for _, f := range free {
				next = append(next, f.Subtract(b)...)
			}
			free = next
		}
		sort.Slice(free, func(i, j int) bool { return free[i].Start < free[j].Start })
		out = append(out, model.DayIntervals{Day: day, Free: free})
	}
	return out, nil
}

// AvailableRooms finds every known room with no booking overlapping the
// query slot on the given day. The result is grouped by building, sorted
// alphabetically, with exceptional (EXT/IUT/SPOR) rooms bucketed last;
// rooms within a bucket are sorted lexicographically.
func AvailableRooms(records []model.SessionRecord, day model.DayCode, slot model.Interval) []model.RoomGroup {
	occupied := make(map[string]bool)
	known := make(map[string]bool)
	for _, r := range records {
		known[r.Room] = true
		if r.Day == day && r.Interval().Overlaps(slot) {
			occupied[r.Room] = true
		}
	}

	byBuilding := make(map[string][]string)
	for room := range known {
		if occupied[room] {
			continue
		}
		building := model.BuildingOf(room)
		byBuilding[building] = append(byBuilding[building], room)
	}

	buildings := maps.Keys(byBuilding)
	sort.Slice(buildings, func(i, j int) bool {
		// The exceptional bucket always sorts last.
		if buildings[i] == model.ExceptionalBucket {
			return false
		}
		if buildings[j] == model.ExceptionalBucket {
			return true
		}
		return buildings[i] < buildings[j]
	})

	out := make([]model.RoomGroup, 0, len(buildings))
	for _, b := range buildings {
		rooms := byBuilding[b]
		sort.Strings(rooms)
		out = append(out, model.RoomGroup{Building: b, Rooms: rooms})
	}
	return out
}
