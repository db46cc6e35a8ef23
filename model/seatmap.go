package model

import "fmt"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

// Seat is one seat in a showtime grid. The authoritative model only knows
// available and booked; "selected" is overlay state owned by the booking
// session, never stored here.
type Seat struct {
	Id     string     `json:"id"`
	Status SeatStatus `json:"status"`
}

// SeatMap is a rows×columns grid of seats. Row 0 is labeled "A", columns
// start at 1, so the seat at row 1, column 2 has id "B2".
type SeatMap [][]Seat

const maxSeatRows = 26 // row labels are single letters A..Z

// SeatId returns the id for a zero-based row/column pair.
func SeatId(row, col int) string {
	return fmt.Sprintf("%c%d", rune('A'+row), col+1)
}

// GenerateSeats builds a rows×cols grid with deterministic ids. Every id in
// booked must name a seat inside the grid; an unknown id is an error so that
// a typo in seed data surfaces instead of silently vanishing.
func GenerateSeats(rows int, cols int, booked []string) (SeatMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("seat grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows > maxSeatRows {
		return nil, fmt.Errorf("seat grid supports at most %d rows, got %d", maxSeatRows, rows)
	}

	pending := make(map[string]bool, len(booked))
	for _, id := range booked {
		pending[id] = true
	}

	grid := make(SeatMap, rows)
	for r := 0; r < rows; r++ {
		row := make([]Seat, cols)
		for c := 0; c < cols; c++ {
			id := SeatId(r, c)
			status := SeatAvailable
			if pending[id] {
				status = SeatBooked
				delete(pending, id)
			}
			row[c] = Seat{Id: id, Status: status}
		}
		grid[r] = row
	}

	if len(pending) > 0 {
		for id := range pending {
			return nil, fmt.Errorf("booked seat %q does not exist in a %dx%d grid", id, rows, cols)
		}
	}
	return grid, nil
}

// MarkBooked sets every listed seat to booked. Ids that do not exist or are
// already booked are skipped, so the operation is idempotent.
func (m SeatMap) MarkBooked(seatIds ...string) {
	if len(seatIds) == 0 {
		return
	}
	wanted := make(map[string]bool, len(seatIds))
	for _, id := range seatIds {
		wanted[id] = true
	}
	for r := range m {
		for c := range m[r] {
			if wanted[m[r][c].Id] {
				m[r][c].Status = SeatBooked
			}
		}
	}
}

// StatusOf reports the status of a seat id, and whether the id exists.
func (m SeatMap) StatusOf(seatId string) (SeatStatus, bool) {
	for r := range m {
		for c := range m[r] {
			if m[r][c].Id == seatId {
				return m[r][c].Status, true
			}
		}
	}
	return "", false
}

// Rows and Cols describe the grid bounds. A nil map is 0x0.
func (m SeatMap) Rows() int { return len(m) }

func (m SeatMap) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Available counts seats still open for selection.
func (m SeatMap) Available() int {
	count := 0
	for r := range m {
		for c := range m[r] {
			if m[r][c].Status == SeatAvailable {
				count++
			}
		}
	}
	return count
}
