package parser

import "regexp"

// Patterns mirror the edt.cru line grammar. The time pattern accepts a
// single-digit hour ("9:00"), which real files contain.
var (
	idPattern        = regexp.MustCompile(`^\d+$`)
	typePattern      = regexp.MustCompile(`^[A-Z]\d+$`)
	dayPattern       = regexp.MustCompile(`^(L|MA|ME|J|V|S|D)$`)
	timeRangePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d-([01]?\d|2[0-3]):[0-5]\d$`)
	indexPattern     = regexp.MustCompile(`^F\d+$`)
	roomPattern      = regexp.MustCompile(`^S=\w+$`)
)

// IsValidDay reports whether token is one of the seven day codes.
func IsValidDay(token string) bool {
	return dayPattern.MatchString(token)
}

// IsValidTimeRange reports whether token is an "HH:MM-HH:MM" range with
// in-bounds hours and minutes. Ordering of the bounds is a caller concern.
func IsValidTimeRange(token string) bool {
	return timeRangePattern.MatchString(token)
}

// TokenKind classifies a continuation-clause token.
type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenTime
	TokenDay
	TokenIndex
	TokenRoom
)

// ClassifyToken sniffs a token by which grammar pattern it matches, first
// match wins. Continuation clauses are order-independent, so every token
// runs through this instead of positional parsing. Unknown tokens are
// ignored by the caller.
func ClassifyToken(token string) TokenKind {
	switch {
	case IsValidTimeRange(token):
		return TokenTime
	case IsValidDay(token):
		return TokenDay
	case indexPattern.MatchString(token):
		return TokenIndex
	case roomPattern.MatchString(token):
		return TokenRoom
	default:
		return TokenUnknown
	}
}
