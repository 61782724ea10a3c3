package parser

import (
	"strings"

	"edt-finder-cli/model"
)

// Lines matching this prefix are per-page footers emitted by the system
// that generated the files; they carry no timetable data.
const pageFooterPrefix = "Page générée en"

// scanState is the fold accumulator threaded through the line scan: the
// course set by the last "+" header plus everything parsed so far. Keeping
// it explicit (instead of a captured variable) keeps per-file parsing
// independent.
type scanState struct {
	course  string
	records []model.SessionRecord
	diags   []Diagnostic
}

// ParseContent parses the full text of one edt.cru file. Blank lines and
// page footers are skipped; "+Name" lines start a new course; lines
// containing the room marker "S=" are parsed as session lines for the
// current course; anything else is reported as an ignored line.
func ParseContent(text string) ([]model.SessionRecord, []Diagnostic) {
	state := scanState{}
	for _, line := range strings.Split(text, "\n") {
		state = scanLine(state, strings.TrimSpace(line))
	}
	return state.records, state.diags
}

func scanLine(state scanState, line string) scanState {
	switch {
	case line == "" || strings.HasPrefix(line, pageFooterPrefix):
		return state
	case strings.HasPrefix(line, "+"):
		state.course = strings.TrimSpace(line[1:])
		return state
	case state.course != "" && strings.Contains(line, "S="):
		records, diags := ParseLine(line, state.course)
		state.records = append(state.records, records...)
		state.diags = append(state.diags, diags...)
		return state
	default:
		state.diags = append(state.diags, Diagnostic{
			Kind:   IgnoredLine,
			Detail: "not a course header or session line",
			Input:  line,
		})
		return state
	}
}
