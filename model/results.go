package model

// DaySlots groups the time windows a room hosts a course on one day.
type DaySlots struct {
	Day   DayCode    `json:"day"`
	Slots []Interval `json:"slots"`
}

// RoomSchedule is the per-room result of a course lookup: the days (in
// canonical weekly order) and time windows the course occupies the room.
type RoomSchedule struct {
	Room string     `json:"room"`
	Days []DaySlots `json:"days"`
}

// RoomCapacity is the maximum seat count observed for a room.
type RoomCapacity struct {
	Room     string `json:"roomName" csv:"room"`
	Capacity int    `json:"capacity" csv:"capacity"`
}

// DayIntervals lists the free intervals of a room for one day. Free may be
// empty when the day is fully booked.
type DayIntervals struct {
	Day  DayCode    `json:"day"`
	Free []Interval `json:"free"`
}

// RoomGroup is one building bucket of an available-rooms result. Rooms are
// sorted lexicographically within the bucket.
type RoomGroup struct {
	Building string   `json:"building"`
	Rooms    []string `json:"rooms"`
}

// Conflict is a pair of sessions double-booking the same room and day with
// different courses.
type Conflict struct {
	Room   string        `json:"room"`
	Day    DayCode       `json:"day"`
	First  SessionRecord `json:"first"`
	Second SessionRecord `json:"second"`
}

// RoomOccupancy accumulates occupied versus remaining available slots for
// a room over a date range.
type RoomOccupancy struct {
	Room      string `json:"room" csv:"room"`
	Occupied  int    `json:"occupiedSlots" csv:"occupied_slots"`
	Available int    `json:"availableSlots" csv:"available_slots"`
}

// Rate returns the occupancy percentage and whether it is defined. A room
// with no available slots over the range has an undefined rate.
func (o RoomOccupancy) Rate() (float64, bool) {
	total := o.Occupied + o.Available
	if total == 0 {
		return 0, false
	}
	return float64(o.Occupied) / float64(total) * 100, true
}

// RoomRate pairs a room with its defined occupancy rate.
type RoomRate struct {
	Room string  `json:"room"`
	Rate float64 `json:"rate"`
}

// UtilizationReport lists rooms under and over the configured occupancy
// thresholds, each sorted by rising rate.
type UtilizationReport struct {
	Under []RoomRate `json:"under"`
	Over  []RoomRate `json:"over"`
}
