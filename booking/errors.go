package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports incomplete or invalid user input. It is surfaced
// inline and never fatal.
type ValidationError struct {
	Reason  string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

// InvalidSeatError rejects a seat mutation at the boundary: the id is not in
// the active showtime grid, or the seat is already booked. The selection is
// left unchanged.
type InvalidSeatError struct {
	SeatId string
	Reason string
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("seat %s: %s", e.SeatId, e.Reason)
}
