package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"edt-finder-cli/model"
)

// ICSOptions configures calendar generation. A nil DayCodeFor uses the
// default weekday mapping.
type ICSOptions struct {
	CalendarName string
	DayCodeFor   func(time.Weekday) model.DayCode
}

// WriteICS emits an RFC 5545 calendar with one event per session record
// projected onto each matching calendar date between from and to
// inclusive. Times are written as floating local times, the way the
// timetable itself is expressed.
func WriteICS(w io.Writer, records []model.SessionRecord, from, to time.Time, opts ICSOptions) error {
	if to.Before(from) {
		return fmt.Errorf("invalid date range: %s after %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	name := opts.CalendarName
	if name == "" {
		name = "Emploi du Temps"
	}
	dayCodeFor := opts.DayCodeFor
	if dayCodeFor == nil {
		dayCodeFor = model.DayFromWeekday
	}

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//edt-finder-cli//EN")
	writeLine(&b, "X-WR-CALNAME:"+escapeText(name))

	stamp := time.Now().UTC().Format("20060102T150405Z")
	seq := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		code := dayCodeFor(date.Weekday())
		for _, r := range records {
			if r.Day != code {
				continue
			}
			iv := r.Interval()
			seq++
			writeLine(&b, "BEGIN:VEVENT")
			writeLine(&b, fmt.Sprintf("UID:%d-%s@edt-finder-cli", seq, date.Format("20060102")))
			writeLine(&b, "DTSTAMP:"+stamp)
			writeLine(&b, "DTSTART:"+date.Format("20060102")+"T"+clockStamp(iv.Start))
			writeLine(&b, "DTEND:"+date.Format("20060102")+"T"+clockStamp(iv.End))
			writeLine(&b, "SUMMARY:"+escapeText(r.Course+" ("+r.Type+")"))
			writeLine(&b, "LOCATION:"+escapeText(r.Room))
			description := fmt.Sprintf("ID : %s\nCours : %s (%s)\nCréneau : %s %s-%s\nSalle : %s\nCapacité : %d\nIndex : %s",
				r.ID, r.Course, r.Type, r.Day.Name(), r.StartTime, r.EndTime, r.Room, r.Capacity, r.Index)
			writeLine(&b, "DESCRIPTION:"+escapeText(description))
			writeLine(&b, "END:VEVENT")
		}
	}
	writeLine(&b, "END:VCALENDAR")

	_, err := io.WriteString(w, b.String())
	return err
}

func clockStamp(minutes int) string {
	return fmt.Sprintf("%02d%02d00", minutes/60, minutes%60)
}

// writeLine appends one content line with the CRLF ending the format
// requires, folding lines longer than 75 octets.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8Boundary(line, cut) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func utf8Boundary(s string, i int) bool {
	return i >= len(s) || (s[i]&0xC0) != 0x80
}

func escapeText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
