package model

import "time"

// DayCode is the weekday abbreviation used by edt.cru timetables.
type DayCode string

const (
	Monday    DayCode = "L"
	Tuesday   DayCode = "MA"
	Wednesday DayCode = "ME"
	Thursday  DayCode = "J"
	Friday    DayCode = "V"
	Saturday  DayCode = "S"
	Sunday    DayCode = "D"
)

// DayOrder lists the seven day codes in canonical weekly order.
var DayOrder = []DayCode{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = map[DayCode]string{
	Monday:    "Lundi",
	Tuesday:   "Mardi",
	Wednesday: "Mercredi",
	Thursday:  "Jeudi",
	Friday:    "Vendredi",
	Saturday:  "Samedi",
	Sunday:    "Dimanche",
}

// Name returns the full French day name, or the code itself if unknown.
func (d DayCode) Name() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return string(d)
}

// Rank returns the position of the day in the weekly order. Unknown codes
// sort after all valid days.
func (d DayCode) Rank() int {
	for i, code := range DayOrder {
		if code == d {
			return i
		}
	}
	return len(DayOrder)
}

// DayFromWeekday maps a calendar weekday onto its timetable day code.
// Date-range queries accept a custom mapping; this is the default.
func DayFromWeekday(w time.Weekday) DayCode {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
