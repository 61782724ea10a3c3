package model

import "strings"

// Room name prefixes that denote non-building "exceptional" locations.
var exceptionalPrefixes = []string{"EXT", "IUT", "SPOR"}

// ExceptionalBucket is the building label under which exceptional rooms are
// grouped; it always sorts after real buildings.
const ExceptionalBucket = "EXCEPTIONS"

// SessionRecord is one scheduled course meeting parsed from an edt.cru
// file. Records are immutable after parse; queries never modify them.
type SessionRecord struct {
	Course    string  `json:"course" csv:"course"`
	ID        string  `json:"id" csv:"id"`
	Type      string  `json:"type" csv:"type"`
	Capacity  int     `json:"capacity" csv:"capacity"`
	Day       DayCode `json:"day" csv:"day"`
	StartTime string  `json:"startTime" csv:"start_time"`
	EndTime   string  `json:"endTime" csv:"end_time"`
	Index     string  `json:"index" csv:"index"`
	Room      string  `json:"room" csv:"room"`
}

// Interval returns the record's time window in minutes since midnight.
// Times are validated at parse time, so a failure here means the record
// was built by hand; it degrades to a zero-length interval.
func (r SessionRecord) Interval() Interval {
	iv, err := NewInterval(r.StartTime, r.EndTime)
	if err != nil {
		return Interval{}
	}
	return iv
}

// IsExceptionalRoom reports whether a room name denotes an exceptional
// (non-building) location such as EXT1, IUT or SPOR.
func IsExceptionalRoom(room string) bool {
	for _, prefix := range exceptionalPrefixes {
		if strings.HasPrefix(room, prefix) {
			return true
		}
	}
	return false
}

// BuildingOf returns the building bucket for a room: the first character
// of the name, or ExceptionalBucket for EXT/IUT/SPOR rooms.
func BuildingOf(room string) string {
	if IsExceptionalRoom(room) {
		return ExceptionalBucket
	}
	if room == "" {
		return ""
	}
	return room[:1]
}
