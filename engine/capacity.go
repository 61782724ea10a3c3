package engine

import (
	"sort"
	"strings"

	"edt-finder-cli/model"
)

// RoomCapacity returns the maximum capacity observed for a room across all
// of its records, matched case-insensitively. Source data may list a room
// with inconsistent per-slot capacities; the maximum is the room's real
// seat count.
func RoomCapacity(records []model.SessionRecord, room string) (model.RoomCapacity, error) {
	wanted := strings.ToLower(room)
	found := false
	max := 0
	name := room
	for _, r := range records {
		if strings.ToLower(r.Room) != wanted {
			continue
		}
		if !found || r.Capacity > max {
			max = r.Capacity
		}
		name = r.Room
		found = true
	}
	if !found {
		return model.RoomCapacity{}, &NotFoundError{Kind: "room", Name: room}
	}
	return model.RoomCapacity{Room: name, Capacity: max}, nil
}

// RankRoomsByCapacity ranks every known room by its maximum observed
// capacity, keeping rooms at or above minCapacity. Ties are broken by room
// name so the ranking is deterministic.
func RankRoomsByCapacity(records []model.SessionRecord, minCapacity int, ascending bool) []model.RoomCapacity {
	maxByRoom := make(map[string]int)
	for _, r := range records {
		if cur, ok := maxByRoom[r.Room]; !ok || r.Capacity > cur {
			maxByRoom[r.Room] = r.Capacity
		}
	}

	out := make([]model.RoomCapacity, 0, len(maxByRoom))
	for room, capacity := range maxByRoom {
		if capacity >= minCapacity {
			out = append(out, model.RoomCapacity{Room: room, Capacity: capacity})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			if ascending {
				return out[i].Capacity < out[j].Capacity
			}
			return out[i].Capacity > out[j].Capacity
		}
		return out[i].Room < out[j].Room
	})
	return out
}
