package parser

import (
	"fmt"
	"strconv"
	"strings"

	"edt-finder-cli/model"
)

// ParseLine turns one raw timetable line into session records: one for the
// base clause plus one per accepted "/"-separated continuation. A malformed
// base clause drops the whole line; a malformed continuation drops only
// itself. Problems are reported as diagnostics, never printed.
func ParseLine(raw, course string) ([]model.SessionRecord, []Diagnostic) {
	clauses := strings.Split(strings.TrimSpace(raw), "/")
	base, err := parseBaseClause(clauses[0], course)
	if err != nil {
		return nil, []Diagnostic{{
			Kind:   MalformedRecord,
			Detail: err.Error(),
			Input:  raw,
		}}
	}

	records := []model.SessionRecord{base}
	var diags []Diagnostic
	for _, clause := range clauses[1:] {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		extra, err := parseContinuation(clause, base)
		if err != nil {
			diags = append(diags, Diagnostic{
				Kind:   MalformedContinuation,
				Detail: err.Error(),
				Input:  clause,
			})
			continue
		}
		records = append(records, extra)
	}
	return records, diags
}

// parseBaseClause decomposes the six positional comma-separated fields
// {id, type, P=capacity, H=day time-range, index, S=room}. Trailing extra
// fields are tolerated and ignored, as in the source data.
func parseBaseClause(clause, course string) (model.SessionRecord, error) {
	parts := strings.Split(strings.TrimSpace(clause), ",")
	if len(parts) < 6 {
		return model.SessionRecord{}, fmt.Errorf("expected 6 fields, got %d", len(parts))
	}

	id := strings.TrimSpace(parts[0])
	if !idPattern.MatchString(id) {
		return model.SessionRecord{}, fmt.Errorf("invalid id %q", id)
	}

	kind := strings.TrimSpace(parts[1])
	if !typePattern.MatchString(kind) {
		return model.SessionRecord{}, fmt.Errorf("invalid type %q", kind)
	}

	capField := strings.TrimSpace(parts[2])
	capValue, ok := strings.CutPrefix(capField, "P=")
	if !ok {
		return model.SessionRecord{}, fmt.Errorf("missing capacity in %q", capField)
	}
	capacity, err := strconv.Atoi(capValue)
	if err != nil || capacity < 0 {
		return model.SessionRecord{}, fmt.Errorf("invalid capacity %q", capField)
	}

	timeField := strings.TrimSpace(parts[3])
	timeValue, ok := strings.CutPrefix(timeField, "H=")
	if !ok {
		return model.SessionRecord{}, fmt.Errorf("missing time in %q", timeField)
	}
	timeParts := strings.Fields(timeValue)
	if len(timeParts) < 2 {
		return model.SessionRecord{}, fmt.Errorf("invalid time field %q", timeField)
	}
	day, timeRange := timeParts[0], timeParts[1]
	if !IsValidDay(day) {
		return model.SessionRecord{}, fmt.Errorf("invalid day %q", day)
	}
	if !IsValidTimeRange(timeRange) {
		return model.SessionRecord{}, fmt.Errorf("invalid time range %q", timeRange)
	}
	startTime, endTime, _ := strings.Cut(timeRange, "-")

	index := strings.TrimSpace(parts[4])
	if !indexPattern.MatchString(index) {
		return model.SessionRecord{}, fmt.Errorf("invalid index %q", index)
	}

	roomField := strings.TrimSpace(parts[5])
	if !roomPattern.MatchString(roomField) {
		return model.SessionRecord{}, fmt.Errorf("invalid room %q", roomField)
	}
	room := strings.ReplaceAll(strings.TrimPrefix(roomField, "S="), "//", "")

	return model.SessionRecord{
		Course:    course,
		ID:        id,
		Type:      kind,
		Capacity:  capacity,
		Day:       model.DayCode(day),
		StartTime: startTime,
		EndTime:   endTime,
		Index:     index,
		Room:      room,
	}, nil
}

// parseContinuation clones the base record and applies overrides found in
// the clause. Tokens are type-sniffed, not positional: a new time range is
// mandatory, day/index/room override only when a valid token of that kind
// is present.
func parseContinuation(clause string, base model.SessionRecord) (model.SessionRecord, error) {
	record := base

	var newDay, newStart, newEnd, newIndex, newRoom string
	for _, field := range strings.Split(strings.TrimSpace(clause), ",") {
		for _, token := range strings.Fields(field) {
			switch ClassifyToken(token) {
			case TokenTime:
				newStart, newEnd, _ = strings.Cut(token, "-")
			case TokenDay:
				newDay = token
			case TokenIndex:
				newIndex = token
			case TokenRoom:
				newRoom = strings.TrimPrefix(token, "S=")
			}
		}
	}

	if newStart == "" || newEnd == "" {
		return model.SessionRecord{}, fmt.Errorf("no new time range")
	}
	record.StartTime = newStart
	record.EndTime = newEnd
	if newDay != "" {
		record.Day = model.DayCode(newDay)
	}
	if newIndex != "" {
		record.Index = newIndex
	}
	if newRoom != "" {
		record.Room = newRoom
	}
	return record, nil
}
