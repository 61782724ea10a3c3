package tui

import (
	"fmt"
	"strings"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
	"edt-finder-cli/parser"
)

// queries are the menu entries; each renders its result as plain text (the
// scripted CLI offers the same queries with table output).
var queries = []queryItem{
	{
		title:  "Rooms for a course",
		desc:   "Where and when a course takes place",
		inputs: []string{"Course name"},
		run: func(records []model.SessionRecord, answers []string, _ Options) (string, error) {
			rooms, err := engine.RoomsForCourse(records, answers[0])
			if err != nil {
				return "", err
			}
			var b strings.Builder
			for _, room := range rooms {
				fmt.Fprintf(&b, "%s\n", room.Room)
				for _, day := range room.Days {
					for _, slot := range day.Slots {
						fmt.Fprintf(&b, "  %s %s\n", day.Day.Name(), slot)
					}
				}
			}
			return b.String(), nil
		},
	},
	{
		title:  "Room capacity",
		desc:   "Maximum seats observed for a room",
		inputs: []string{"Room name"},
		run: func(records []model.SessionRecord, answers []string, _ Options) (string, error) {
			result, err := engine.RoomCapacity(records, answers[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s: %d seats", result.Room, result.Capacity), nil
		},
	},
	{
		title:  "Free slots of a room",
		desc:   "When a room is free during the week",
		inputs: []string{"Room name"},
		run: func(records []model.SessionRecord, answers []string, opts Options) (string, error) {
			days, err := engine.RoomFreeIntervals(records, answers[0], opts.Window)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			for _, day := range days {
				if len(day.Free) == 0 {
					fmt.Fprintf(&b, "%s: fully booked\n", day.Day.Name())
					continue
				}
				slots := make([]string, 0, len(day.Free))
				for _, iv := range day.Free {
					slots = append(slots, iv.String())
				}
				fmt.Fprintf(&b, "%s: %s\n", day.Day.Name(), strings.Join(slots, ", "))
			}
			return b.String(), nil
		},
	},
	{
		title:  "Available rooms for a slot",
		desc:   "Rooms with no booking over a time window",
		inputs: []string{"Day code (L, MA, ME, J, V, S, D)", "Start (HH:MM)", "End (HH:MM)"},
		run: func(records []model.SessionRecord, answers []string, _ Options) (string, error) {
			if !parser.IsValidDay(answers[0]) {
				return "", fmt.Errorf("invalid day code %q (use L, MA, ME, J, V, S or D)", answers[0])
			}
			slot, err := model.NewInterval(answers[1], answers[2])
			if err != nil {
				return "", err
			}
			groups := engine.AvailableRooms(records, model.DayCode(answers[0]), slot)
			if len(groups) == 0 {
				return "No room available.", nil
			}
			var b strings.Builder
			for _, g := range groups {
				fmt.Fprintf(&b, "%s: %s\n", g.Building, strings.Join(g.Rooms, ", "))
			}
			return b.String(), nil
		},
	},
	{
		title: "Conflicts",
		desc:  "Rooms double-booked by different courses",
		run: func(records []model.SessionRecord, _ []string, _ Options) (string, error) {
			conflicts := engine.VerifyConflicts(records, nil, model.Interval{})
			if len(conflicts) == 0 {
				return "No conflict detected.", nil
			}
			var b strings.Builder
			for _, c := range conflicts {
				fmt.Fprintf(&b, "%s %s: %s %s vs %s %s\n",
					c.Room, c.Day.Name(),
					c.First.Course, c.First.Interval(),
					c.Second.Course, c.Second.Interval())
			}
			return b.String(), nil
		},
	},
	{
		title:  "Occupancy",
		desc:   "Occupancy rates over a date range",
		inputs: []string{"Start date (YYYY-MM-DD)", "End date (YYYY-MM-DD)"},
		run: func(records []model.SessionRecord, answers []string, opts Options) (string, error) {
			from, to, err := parseDateRange(answers)
			if err != nil {
				return "", err
			}
			occupancies, err := engine.RoomOccupancy(records, from, to, engine.OccupancyParams{
				Window:      opts.Window,
				SlotMinutes: opts.SlotMinutes,
			})
			if err != nil {
				return "", err
			}
			var b strings.Builder
			for _, o := range occupancies {
				if rate, ok := o.Rate(); ok {
					fmt.Fprintf(&b, "%s: %.2f%% (%d occupied / %d available)\n", o.Room, rate, o.Occupied, o.Available)
				} else {
					fmt.Fprintf(&b, "%s: no available slots\n", o.Room)
				}
			}
			return b.String(), nil
		},
	},
	{
		title:  "Capacity ranking",
		desc:   "Rooms ranked by maximum capacity",
		inputs: []string{"Minimum capacity"},
		run: func(records []model.SessionRecord, answers []string, _ Options) (string, error) {
			var min int
			if _, err := fmt.Sscanf(answers[0], "%d", &min); err != nil {
				return "", fmt.Errorf("invalid minimum capacity %q", answers[0])
			}
			ranked := engine.RankRoomsByCapacity(records, min, true)
			if len(ranked) == 0 {
				return fmt.Sprintf("No room has %d seats or more.", min), nil
			}
			var b strings.Builder
			for _, rc := range ranked {
				fmt.Fprintf(&b, "%s: %d seats\n", rc.Room, rc.Capacity)
			}
			return b.String(), nil
		},
	},
}
