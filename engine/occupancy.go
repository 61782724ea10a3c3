package engine

import (
	"fmt"
	"sort"
	"time"

	"edt-finder-cli/model"
)

// DefaultSlotMinutes is the occupancy accounting granularity.
const DefaultSlotMinutes = 30

// OccupancyParams configures an occupancy aggregation. Zero values fall
// back to the default opening window, slot size and weekday mapping.
type OccupancyParams struct {
	Window      model.Interval
	SlotMinutes int
	DayCodeFor  func(time.Weekday) model.DayCode
}

func (p OccupancyParams) withDefaults() OccupancyParams {
	if p.Window == (model.Interval{}) {
		p.Window = DefaultWindow
	}
	if p.SlotMinutes <= 0 {
		p.SlotMinutes = DefaultSlotMinutes
	}
	if p.DayCodeFor == nil {
		p.DayCodeFor = model.DayFromWeekday
	}
	return p
}

// RoomOccupancy aggregates occupied versus available slots for every known
// room over the calendar dates from..to inclusive. Each date contributes
// the opening window's slot count to every room; each booking whose day
// code matches the date contributes its occupied slots (duration rounded
// up to whole slots). Occupied is clamped to the window total, so the rate
// never exceeds 100% even when source bookings overlap. Rooms are sorted
// by building with exceptional rooms last, then by name.
func RoomOccupancy(records []model.SessionRecord, from, to time.Time, params OccupancyParams) ([]model.RoomOccupancy, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid date range: %s after %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	p := params.withDefaults()
	slotsPerDay := p.Window.Minutes() / p.SlotMinutes

	// Every known room appears in the result, even when no date in the
	// range matches one of its bookings.
	occupied := make(map[string]int)
	for _, r := range records {
		occupied[r.Room] = 0
	}

	days := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		days++
		code := p.DayCodeFor(date.Weekday())
		for _, r := range records {
			if r.Day != code {
				continue
			}
			minutes := r.Interval().Minutes()
			occupied[r.Room] += (minutes + p.SlotMinutes - 1) / p.SlotMinutes
		}
	}
	total := days * slotsPerDay

	out := make([]model.RoomOccupancy, 0, len(occupied))
	for room, used := range occupied {
		if used > total {
			used = total
		}
		out = append(out, model.RoomOccupancy{
			Room:      room,
			Occupied:  used,
			Available: total - used,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := model.BuildingOf(out[i].Room), model.BuildingOf(out[j].Room)
		if bi != bj {
			if bi == model.ExceptionalBucket {
				return false
			}
			if bj == model.ExceptionalBucket {
				return true
			}
			return bi < bj
		}
		return out[i].Room < out[j].Room
	})
	return out, nil
}

// ClassifyUtilization splits an occupancy result into rooms under and over
// the given percentage thresholds, each list sorted by rising rate. Rooms
// with an undefined rate are left out of both lists.
func ClassifyUtilization(occupancies []model.RoomOccupancy, underPct, overPct float64) model.UtilizationReport {
	var report model.UtilizationReport
	for _, o := range occupancies {
		rate, ok := o.Rate()
		if !ok {
			continue
		}
		switch {
		case rate < underPct:
			report.Under = append(report.Under, model.RoomRate{Room: o.Room, Rate: rate})
		case rate > overPct:
			report.Over = append(report.Over, model.RoomRate{Room: o.Room, Rate: rate})
		}
	}
	sort.Slice(report.Under, func(i, j int) bool { return report.Under[i].Rate < report.Under[j].Rate })
	sort.Slice(report.Over, func(i, j int) bool { return report.Over[i].Rate < report.Over[j].Rate })
	return report
}
