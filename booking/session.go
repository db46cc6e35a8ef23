// Package booking accumulates a user's in-progress ticket selection between
// seat picking and payment.
package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/thaisring/ticket-show-world/model"
)

// TargetKind discriminates what a session is booking.
type TargetKind int

const (
	// TargetEvent books seats on one showtime of a catalog event, or a
	// flat-rate quantity when no showtime is selected.
	TargetEvent TargetKind = iota + 1
	// TargetShow books a flat-rate quantity of a community show.
	TargetShow
)

// Contact is the customer information collected before payment.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Pricing carries the configurable price constants.
type Pricing struct {
	UnitPrice      int
	ConvenienceFee int
}

// Summary is a computed price breakdown.
type Summary struct {
	Tickets        int
	UnitPrice      int
	ConvenienceFee int
	Total          int
}

// Session holds one in-progress booking. It is created when the user enters
// seat selection or the flat-rate booking form, and discarded on go-home or
// after a successful payment. The id fences late payment results: a result
// carrying a stale session id must never mutate seat state.
type Session struct {
	id            string
	kind          TargetKind
	event         *model.Event
	showtimeIndex int
	show          *model.UserShow
	seats         []string
	quantity      int
	contact       Contact
}

// ForEvent starts a seat-based session on one showtime of a catalog event.
func ForEvent(event *model.Event, showtimeIndex int) (*Session, error) {
	if event == nil {
		return nil, fmt.Errorf("booking target event is nil")
	}
	if showtimeIndex < 0 || showtimeIndex >= len(event.Showtimes) {
		return nil, fmt.Errorf("event %q has no showtime %d", event.Id, showtimeIndex)
	}
	return &Session{
		id:            uuid.NewString(),
		kind:          TargetEvent,
		event:         event,
		showtimeIndex: showtimeIndex,
		quantity:      1,
	}, nil
}

// ForShow starts a flat-rate session on a community show.
func ForShow(show *model.UserShow) (*Session, error) {
	if show == nil {
		return nil, fmt.Errorf("booking target show is nil")
	}
	return &Session{
		id:            uuid.NewString(),
		kind:          TargetShow,
		show:          show,
		showtimeIndex: -1,
		quantity:      1,
	}, nil
}

func (s *Session) ID() string       { return s.id }
func (s *Session) Kind() TargetKind { return s.kind }

func (s *Session) Event() *model.Event   { return s.event }
func (s *Session) Show() *model.UserShow { return s.show }
func (s *Session) ShowtimeIndex() int    { return s.showtimeIndex }

// Showtime returns the active showtime for a seat-based session.
func (s *Session) Showtime() *model.Showtime {
	if s.kind != TargetEvent || s.event == nil {
		return nil
	}
	return &s.event.Showtimes[s.showtimeIndex]
}

// Seats returns the selected seat ids in insertion order.
func (s *Session) Seats() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Session) HasSeat(seatId string) bool {
	for _, id := range s.seats {
		if id == seatId {
			return true
		}
	}
	return false
}

// AddSeat selects a seat. The seat must exist in the active showtime grid
// and not be booked; selecting an already-selected seat is a no-op.
func (s *Session) AddSeat(seatId string) error {
	showtime := s.Showtime()
	if showtime == nil {
		return &InvalidSeatError{SeatId: seatId, Reason: "no seat map for this booking"}
	}
	status, ok := showtime.Seats.StatusOf(seatId)
	if !ok {
		return &InvalidSeatError{SeatId: seatId, Reason: "not in the current seat map"}
	}
	if status == model.SeatBooked {
		return &InvalidSeatError{SeatId: seatId, Reason: "already booked"}
	}
	if !s.HasSeat(seatId) {
		s.seats = append(s.seats, seatId)
	}
	return nil
}

// RemoveSeat deselects a seat. Unknown ids are a no-op.
func (s *Session) RemoveSeat(seatId string) {
	for i, id := range s.seats {
		if id == seatId {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return
		}
	}
}

// ToggleSeat adds the seat if absent, removes it if present.
func (s *Session) ToggleSeat(seatId string) error {
	if s.HasSeat(seatId) {
		s.RemoveSeat(seatId)
		return nil
	}
	return s.AddSeat(seatId)
}

// SetQuantity sets the ticket count for flat-rate bookings.
func (s *Session) SetQuantity(n int) error {
	if n < 1 {
		return &ValidationError{Reason: "quantity must be at least 1"}
	}
	if s.kind == TargetShow && s.show.TotalSeats > 0 && n > s.show.TotalSeats {
		return &ValidationError{Reason: fmt.Sprintf("only %d seats available", s.show.TotalSeats)}
	}
	s.quantity = n
	return nil
}

func (s *Session) Quantity() int { return s.quantity }

// SubmitContact validates and stores the customer contact fields. All three
// are required.
func (s *Session) SubmitContact(name string, email string, phone string) error {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing contact fields", Missing: missing}
	}
	s.contact = Contact{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	return nil
}

func (s *Session) Contact() Contact { return s.contact }

// PriceSummary computes the total: ticket count times unit price, plus the
// flat convenience fee. Seat-based sessions count selected seats; flat-rate
// sessions count quantity at the show's own ticket price.
func (s *Session) PriceSummary(pricing Pricing) Summary {
	tickets := s.quantity
	unit := pricing.UnitPrice
	if s.kind == TargetShow {
		unit = s.show.TicketPrice
	} else if s.showtimeIndex >= 0 {
		tickets = len(s.seats)
	}
	return Summary{
		Tickets:        tickets,
		UnitPrice:      unit,
		ConvenienceFee: pricing.ConvenienceFee,
		Total:          tickets*unit + pricing.ConvenienceFee,
	}
}
