package engine

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a query matches zero records. It is an
// expected outcome of user queries, distinct from a matching room that
// merely has no free or available data.
type NotFoundError struct {
	Kind string // "course" or "room"
	Name string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "not found"
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IsNotFound reports whether the error represents a zero-match query.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
