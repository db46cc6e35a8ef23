package model

import "time"

type ShowStatus string

const (
	ShowPending  ShowStatus = "pending"
	ShowApproved ShowStatus = "approved"
	ShowRejected ShowStatus = "rejected"
)

// UserShow is a community-submitted show. It has no seat map; bookings are
// flat-rate by quantity. Only approved shows are visible to the booking flow.
type UserShow struct {
	Id              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Genre           string     `json:"genre"`
	Venue           string     `json:"venue"`
	TicketPrice     int        `json:"ticket_price"`
	TotalSeats      int        `json:"total_seats"`
	ShowDate        string     `json:"show_date"`
	ShowTime        string     `json:"show_time"`
	DurationMinutes int        `json:"duration_minutes"`
	ContactEmail    string     `json:"contact_email"`
	ContactPhone    string     `json:"contact_phone"`
	Status          ShowStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
