package export

import (
	"strings"
	"testing"
	"time"

	"edt-finder-cli/model"
)

func testRecords() []model.SessionRecord {
	return []model.SessionRecord{
		{
			Course: "MATH02", ID: "1", Type: "C1", Capacity: 30,
			Day: model.Monday, StartTime: "10:00", EndTime: "12:00",
			Index: "F1", Room: "B203",
		},
		{
			Course: "GL02", ID: "2", Type: "D1", Capacity: 24,
			Day: model.Friday, StartTime: "08:00", EndTime: "10:00",
			Index: "F1", Room: "S102",
		},
	}
}

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWriteICS(t *testing.T) {
	var b strings.Builder
	// 2024-12-02 (Monday) through 2024-12-04 (Wednesday): only the Monday
	// session falls inside the range.
	err := WriteICS(&b, testRecords(), date("2024-12-02"), date("2024-12-04"), ICSOptions{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Fatal("missing calendar envelope")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("expected 1 event, got %d", got)
	}
	if !strings.Contains(out, "DTSTART:20241202T100000\r\n") {
		t.Fatal("missing event start")
	}
	if !strings.Contains(out, "DTEND:20241202T120000\r\n") {
		t.Fatal("missing event end")
	}
	if !strings.Contains(out, "SUMMARY:MATH02 (C1)\r\n") {
		t.Fatal("missing summary")
	}
	if !strings.Contains(out, "LOCATION:B203\r\n") {
		t.Fatal("missing location")
	}
}

func TestWriteICSWeekRange(t *testing.T) {
	var b strings.Builder
	// A full week covers both sessions once each.
	err := WriteICS(&b, testRecords(), date("2024-12-02"), date("2024-12-08"), ICSOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(b.String(), "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
}

func TestWriteICSInvalidRange(t *testing.T) {
	var b strings.Builder
	if err := WriteICS(&b, testRecords(), date("2024-12-08"), date("2024-12-02"), ICSOptions{}); err == nil {
		t.Fatal("expected error for inverted range")
	}
}
