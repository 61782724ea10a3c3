package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a half-open clock interval [Start, End) expressed in minutes
// since midnight. Using minutes avoids lexicographic comparison bugs with
// "HH:MM" strings ("9:00" > "10:00").
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseClock converts an "HH:MM" string (single-digit hour allowed) to
// minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NewInterval builds an interval from two "HH:MM" strings.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Minutes returns the interval length; inverted intervals count as zero.
func (iv Interval) Minutes() int {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Overlaps reports whether two intervals share at least one minute.
// Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Subtract removes the booked interval from iv, returning the surviving
// pieces in order: zero when booked covers iv, one when it truncates an
// edge, two when it splits the middle.
func (iv Interval) Subtract(booked Interval) []Interval {
	if !iv.Overlaps(booked) {
		return []Interval{iv}
	}
	var out []Interval
	if iv.Start < booked.Start {
		out = append(out, Interval{Start: iv.Start, End: booked.Start})
	}
	if booked.End < iv.End {
		out = append(out, Interval{Start: booked.End, End: iv.End})
	}
	return out
}

func (iv Interval) String() string {
	return FormatClock(iv.Start) + "-" + FormatClock(iv.End)
}
