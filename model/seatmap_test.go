package model

import (
	"fmt"
	"testing"
)

func TestGenerateSeats_AllAvailable(t *testing.T) {
	grid, err := GenerateSeats(5, 8, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if grid.Rows() != 5 || grid.Cols() != 8 {
		t.Fatalf("expected 5x8 grid, got %dx%d", grid.Rows(), grid.Cols())
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 8; c++ {
			want := fmt.Sprintf("%c%d", rune('A'+r), c+1)
			seat := grid[r][c]
			if seat.Id != want {
				t.Fatalf("expected id %q at (%d,%d), got %q", want, r, c, seat.Id)
			}
			if seat.Status != SeatAvailable {
				t.Fatalf("expected seat %s available, got %s", seat.Id, seat.Status)
			}
		}
	}
	if grid.Available() != 40 {
		t.Fatalf("expected 40 available seats, got %d", grid.Available())
	}
}

func TestGenerateSeats_PreBooked(t *testing.T) {
	booked := []string{"B2", "C5", "A1"}
	grid, err := GenerateSeats(5, 8, booked)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for _, id := range booked {
		status, ok := grid.StatusOf(id)
		if !ok {
			t.Fatalf("expected seat %s to exist", id)
		}
		if status != SeatBooked {
			t.Fatalf("expected seat %s booked, got %s", id, status)
		}
	}
	if grid.Available() != 37 {
		t.Fatalf("expected 37 available seats, got %d", grid.Available())
	}

	again, err := GenerateSeats(5, 8, booked)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != again[r][c] {
				t.Fatalf("regeneration not deterministic at (%d,%d): %+v vs %+v", r, c, grid[r][c], again[r][c])
			}
		}
	}
}

func TestGenerateSeats_UnknownBookedId(t *testing.T) {
	if _, err := GenerateSeats(2, 2, []string{"Z9"}); err == nil {
		t.Fatal("expected error for booked id outside the grid")
	}
	if _, err := GenerateSeats(2, 2, []string{"A3"}); err == nil {
		t.Fatal("expected error for booked column outside the grid")
	}
}

func TestGenerateSeats_InvalidDimensions(t *testing.T) {
	if _, err := GenerateSeats(0, 4, nil); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := GenerateSeats(4, 0, nil); err == nil {
		t.Fatal("expected error for zero cols")
	}
	if _, err := GenerateSeats(27, 4, nil); err == nil {
		t.Fatal("expected error for more rows than letters")
	}
}

func TestMarkBooked_Idempotent(t *testing.T) {
	grid, err := GenerateSeats(3, 3, []string{"B2"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	grid.MarkBooked("A1", "B2", "nope")
	if status, _ := grid.StatusOf("A1"); status != SeatBooked {
		t.Fatalf("expected A1 booked, got %s", status)
	}
	if status, _ := grid.StatusOf("B2"); status != SeatBooked {
		t.Fatalf("expected B2 booked, got %s", status)
	}
	if _, ok := grid.StatusOf("nope"); ok {
		t.Fatal("expected unknown id to stay unknown")
	}

	grid.MarkBooked("A1")
	if grid.Available() != 7 {
		t.Fatalf("expected 7 available after idempotent re-mark, got %d", grid.Available())
	}
	if status, _ := grid.StatusOf("C3"); status != SeatAvailable {
		t.Fatalf("expected untouched seat C3 available, got %s", status)
	}
}

func TestStatusOf_NotFound(t *testing.T) {
	grid, err := GenerateSeats(2, 2, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := grid.StatusOf("D9"); ok {
		t.Fatal("expected D9 to be reported missing")
	}
}
