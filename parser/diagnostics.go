package parser

import "fmt"

// DiagnosticKind labels a recovered parse-level problem.
type DiagnosticKind int

const (
	// MalformedRecord: a base clause failed structural validation; the
	// whole line yielded no records.
	MalformedRecord DiagnosticKind = iota
	// MalformedContinuation: a continuation clause lacked a valid new
	// time range; only that continuation was dropped.
	MalformedContinuation
	// UnreadableSource: a subdirectory or file could not be listed or
	// read; its contribution was skipped.
	UnreadableSource
	// IgnoredLine: a non-empty line that is neither a course header nor a
	// session line.
	IgnoredLine
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedRecord:
		return "malformed record"
	case MalformedContinuation:
		return "malformed continuation"
	case UnreadableSource:
		return "unreadable source"
	case IgnoredLine:
		return "ignored line"
	default:
		return "unknown"
	}
}

// Diagnostic describes one recovered problem during a parse or load. The
// core never prints; callers decide how to present these.
type Diagnostic struct {
	Kind   DiagnosticKind
	Detail string
	Input  string // offending line or clause, if any
	Path   string // source file or directory, if any
}

func (d Diagnostic) String() string {
	msg := d.Kind.String() + ": " + d.Detail
	if d.Input != "" {
		msg += fmt.Sprintf(" (%q)", d.Input)
	}
	if d.Path != "" {
		msg = d.Path + ": " + msg
	}
	return msg
}
