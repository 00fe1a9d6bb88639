package progress

import "fmt"

// ErrTravelActive is returned when a new leg is requested while one is
// already running.
type ErrTravelActive struct {
	Target string
}

func (e *ErrTravelActive) Error() string {
	return fmt.Sprintf("travel already in progress toward %q", e.Target)
}

// ErrBadTarget is returned for an empty, self-referential, or
// zero-distance travel target.
type ErrBadTarget struct {
	Target string
}

func (e *ErrBadTarget) Error() string {
	return fmt.Sprintf("invalid travel target %q", e.Target)
}
