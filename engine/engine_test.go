package engine

import (
	"testing"
	"time"

	"edt-finder-cli/model"
)

func rec(course, room string, day model.DayCode, start, end string, capacity int) model.SessionRecord {
	return model.SessionRecord{
		Course:    course,
		ID:        "1",
		Type:      "C1",
		Capacity:  capacity,
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Index:     "F1",
		Room:      room,
	}
}

func TestRoomsForCourseCaseInsensitive(t *testing.T) {
	records := []model.SessionRecord{
		rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30),
	}
	upper, err := RoomsForCourse(records, "MATH02")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	lower, err := RoomsForCourse(records, "math02")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(upper) != 1 || len(lower) != 1 || upper[0].Room != lower[0].Room {
		t.Fatalf("case must not matter: %+v vs %+v", upper, lower)
	}
}

func TestRoomsForCourseDayOrderAndSlots(t *testing.T) {
	records := []model.SessionRecord{
		rec("GL02", "B203", model.Friday, "08:00", "10:00", 24),
		rec("GL02", "B203", model.Monday, "14:00", "16:00", 24),
		rec("GL02", "B203", model.Monday, "10:00", "12:00", 24),
	}
	rooms, err := RoomsForCourse(records, "GL02")
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected one room, got %+v", rooms)
	}
	days := rooms[0].Days
	if len(days) != 2 || days[0].Day != model.Monday || days[1].Day != model.Friday {
		t.Fatalf("expected canonical day order, got %+v", days)
	}
	if days[0].Slots[0].Start != 600 || days[0].Slots[1].Start != 840 {
		t.Fatalf("expected slots sorted by start, got %+v", days[0].Slots)
	}
}

func TestRoomsForCourseNotFound(t *testing.T) {
	_, err := RoomsForCourse(nil, "NOPE")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRoomCapacityMaxAggregation(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "08:00", "10:00", 30),
		rec("B", "B203", model.Tuesday, "08:00", "10:00", 45),
		rec("C", "b203", model.Friday, "08:00", "10:00", 40),
	}
	got, err := RoomCapacity(records, "B203")
	if err != nil {
		t.Fatal(err)
	}
	if got.Capacity != 45 {
		t.Fatalf("expected max capacity 45, got %d", got.Capacity)
	}
	if _, err := RoomCapacity(records, "Z999"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRankRoomsByCapacity(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "08:00", "10:00", 30),
		rec("A", "C101", model.Monday, "08:00", "10:00", 30),
		rec("A", "A100", model.Monday, "08:00", "10:00", 60),
		rec("A", "D300", model.Monday, "08:00", "10:00", 10),
	}
	ranked := RankRoomsByCapacity(records, 20, true)
	if len(ranked) != 3 {
		t.Fatalf("min filter failed, got %+v", ranked)
	}
	// Ascending: the tie between B203 and C101 breaks on room name.
	if ranked[0].Room != "B203" || ranked[1].Room != "C101" || ranked[2].Room != "A100" {
		t.Fatalf("unexpected order %+v", ranked)
	}
	desc := RankRoomsByCapacity(records, 0, false)
	if desc[0].Room != "A100" || desc[len(desc)-1].Room != "D300" {
		t.Fatalf("unexpected descending order %+v", desc)
	}
}

func TestRoomFreeIntervalsComplement(t *testing.T) {
	records := []model.SessionRecord{
		rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30),
	}
	days, err := RoomFreeIntervals(records, "B203", model.Interval{Start: 480, End: 1200})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("expected all seven days, got %d", len(days))
	}
	monday := days[0]
	if monday.Day != model.Monday {
		t.Fatalf("expected Monday first, got %s", monday.Day)
	}
	want := []model.Interval{{Start: 480, End: 600}, {Start: 720, End: 1200}}
	if len(monday.Free) != 2 || monday.Free[0] != want[0] || monday.Free[1] != want[1] {
		t.Fatalf("expected %+v, got %+v", want, monday.Free)
	}
	// A day with no booking keeps the whole window.
	tuesday := days[1]
	if len(tuesday.Free) != 1 || tuesday.Free[0] != (model.Interval{Start: 480, End: 1200}) {
		t.Fatalf("expected full window on Tuesday, got %+v", tuesday.Free)
	}
}

func TestRoomFreeIntervalsFullyBooked(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "08:00", "14:00", 30),
		rec("B", "B203", model.Monday, "14:00", "20:00", 30),
	}
	days, err := RoomFreeIntervals(records, "b203", model.Interval{Start: 480, End: 1200})
	if err != nil {
		t.Fatal(err)
	}
	if len(days[0].Free) != 0 {
		t.Fatalf("expected Monday fully booked, got %+v", days[0].Free)
	}
}

func TestAvailableRoomsGrouping(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "10:00", "12:00", 30),
		rec("B", "C101", model.Monday, "14:00", "16:00", 30),
		rec("C", "EXT1", model.Tuesday, "08:00", "10:00", 30),
		rec("D", "A100", model.Monday, "08:00", "09:00", 30),
	}
	groups := AvailableRooms(records, model.Monday, model.Interval{Start: 600, End: 720})
	// B203 is occupied 10:00-12:00; everything else is free.
	if len(groups) != 3 {
		t.Fatalf("expected 3 buckets, got %+v", groups)
	}
	if groups[0].Building != "A" || groups[1].Building != "C" {
		t.Fatalf("expected alphabetical buildings, got %+v", groups)
	}
	last := groups[len(groups)-1]
	if last.Building != model.ExceptionalBucket || last.Rooms[0] != "EXT1" {
		t.Fatalf("expected exceptional bucket last, got %+v", last)
	}
}

func TestAvailableRoomsTouchingSlotIsFree(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "12:00", "14:00", 30),
	}
	groups := AvailableRooms(records, model.Monday, model.Interval{Start: 600, End: 720})
	if len(groups) != 1 || groups[0].Rooms[0] != "B203" {
		t.Fatalf("a booking starting at the query end must not occupy, got %+v", groups)
	}
}

func TestVerifyConflictsDedup(t *testing.T) {
	a := rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30)
	b := rec("PHYS01", "B203", model.Monday, "11:00", "13:00", 30)

	forward := VerifyConflicts([]model.SessionRecord{a, b}, nil, model.Interval{})
	backward := VerifyConflicts([]model.SessionRecord{b, a}, nil, model.Interval{})
	if len(forward) != 1 || len(backward) != 1 {
		t.Fatalf("expected exactly one conflict each way, got %d and %d", len(forward), len(backward))
	}
	if forward[0].First.Course != backward[0].First.Course {
		t.Fatalf("conflict order must be canonical: %+v vs %+v", forward[0], backward[0])
	}
}

func TestVerifyConflictsSameCourseNotFlagged(t *testing.T) {
	a := rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30)
	b := rec("MATH02", "B203", model.Monday, "11:00", "13:00", 30)
	if got := VerifyConflicts([]model.SessionRecord{a, b}, nil, model.Interval{}); len(got) != 0 {
		t.Fatalf("two sections of one course must not conflict, got %+v", got)
	}
}

func TestVerifyConflictsTouchingNotFlagged(t *testing.T) {
	a := rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30)
	b := rec("PHYS01", "B203", model.Monday, "12:00", "14:00", 30)
	if got := VerifyConflicts([]model.SessionRecord{a, b}, nil, model.Interval{}); len(got) != 0 {
		t.Fatalf("touching intervals must not conflict, got %+v", got)
	}
}

func TestVerifyConflictsWindowFilter(t *testing.T) {
	a := rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30)
	b := rec("PHYS01", "B203", model.Monday, "11:00", "13:00", 30)
	afternoon := model.Interval{Start: 14 * 60, End: 18 * 60}
	if got := VerifyConflicts([]model.SessionRecord{a, b}, nil, afternoon); len(got) != 0 {
		t.Fatalf("conflict outside the window must not be reported, got %+v", got)
	}
	daySet := []model.DayCode{model.Tuesday}
	if got := VerifyConflicts([]model.SessionRecord{a, b}, daySet, model.Interval{}); len(got) != 0 {
		t.Fatalf("conflict on another day must not be reported, got %+v", got)
	}
}

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRoomOccupancyRate(t *testing.T) {
	records := []model.SessionRecord{
		// 2 hours on Monday: 4 slots of 30 minutes.
		rec("MATH02", "B203", model.Monday, "10:00", "12:00", 30),
	}
	// 2024-12-02 is a Monday.
	occ, err := RoomOccupancy(records, date("2024-12-02"), date("2024-12-02"), OccupancyParams{})
	if err != nil {
		t.Fatal(err)
	}
	if len(occ) != 1 {
		t.Fatalf("expected one room, got %+v", occ)
	}
	if occ[0].Occupied != 4 || occ[0].Available != 20 {
		t.Fatalf("expected 4 occupied / 20 available, got %+v", occ[0])
	}
	rate, ok := occ[0].Rate()
	if !ok {
		t.Fatal("expected a defined rate")
	}
	if rate < 16.6 || rate > 16.7 {
		t.Fatalf("expected about 16.67%%, got %f", rate)
	}
}

func TestRoomOccupancyClamp(t *testing.T) {
	// Overlapping bookings overstate occupancy; the clamp keeps the rate
	// at 100% instead of letting it overflow.
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "08:00", "20:00", 30),
		rec("B", "B203", model.Monday, "08:00", "20:00", 30),
	}
	occ, err := RoomOccupancy(records, date("2024-12-02"), date("2024-12-02"), OccupancyParams{})
	if err != nil {
		t.Fatal(err)
	}
	if occ[0].Occupied != 24 || occ[0].Available != 0 {
		t.Fatalf("expected clamp to 24/0, got %+v", occ[0])
	}
	rate, ok := occ[0].Rate()
	if !ok || rate != 100 {
		t.Fatalf("expected 100%%, got %f (%v)", rate, ok)
	}
}

func TestRoomOccupancyUndefinedRate(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "10:00", "12:00", 30),
	}
	// Zero-length opening window: no slots at all.
	occ, err := RoomOccupancy(records, date("2024-12-02"), date("2024-12-02"), OccupancyParams{
		Window: model.Interval{Start: 480, End: 480},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := occ[0].Rate(); ok {
		t.Fatalf("expected undefined rate, got %+v", occ[0])
	}
}

func TestRoomOccupancyInvalidRange(t *testing.T) {
	if _, err := RoomOccupancy(nil, date("2024-12-08"), date("2024-12-02"), OccupancyParams{}); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestRoomOccupancyCustomDayMapping(t *testing.T) {
	records := []model.SessionRecord{
		rec("A", "B203", model.Monday, "10:00", "12:00", 30),
	}
	// A mapping that never matches produces zero occupancy.
	occ, err := RoomOccupancy(records, date("2024-12-02"), date("2024-12-02"), OccupancyParams{
		DayCodeFor: func(time.Weekday) model.DayCode { return "" },
	})
	if err != nil {
		t.Fatal(err)
	}
	if occ[0].Occupied != 0 {
		t.Fatalf("expected no occupied slots, got %+v", occ[0])
	}
}

func TestClassifyUtilization(t *testing.T) {
	occ := []model.RoomOccupancy{
		{Room: "A100", Occupied: 1, Available: 23},  // ~4%
		{Room: "B203", Occupied: 23, Available: 1},  // ~96%
		{Room: "C101", Occupied: 12, Available: 12}, // 50%
		{Room: "D300", Occupied: 0, Available: 0},   // undefined
	}
	report := ClassifyUtilization(occ, 20, 80)
	if len(report.Under) != 1 || report.Under[0].Room != "A100" {
		t.Fatalf("unexpected under list %+v", report.Under)
	}
	if len(report.Over) != 1 || report.Over[0].Room != "B203" {
		t.Fatalf("unexpected over list %+v", report.Over)
	}
}
