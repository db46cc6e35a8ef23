package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/thaisring/ticket-show-world/model"
)

func TestCenterTextPadsByDisplayWidth(t *testing.T) {
	rule := strings.Repeat("─", 6) // 6 cells, 18 bytes
	got := centerText(rule, 10)
	if width := lipgloss.Width(got); width != 8 {
		t.Fatalf("centered width = %d, want 8 (2 pad + 6 rule)", width)
	}
	if !strings.HasPrefix(got, "  ") || strings.HasPrefix(got, "   ") {
		t.Fatalf("padding = %q, want exactly two leading spaces", got)
	}
}

func TestCenterTextWideInputUnchanged(t *testing.T) {
	if got := centerText("SCREEN", 3); got != "SCREEN" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderSeatGridMarksStates(t *testing.T) {
	seats, err := model.GenerateSeats(2, 3, []string{"A1"})
	if err != nil {
		t.Fatalf("GenerateSeats: %v", err)
	}
	out := renderSeatGrid(seats, map[string]bool{"B2": true}, 0, 0)
	if !strings.Contains(out, "××") {
		t.Fatal("booked marker missing")
	}
	if !strings.Contains(out, "()") {
		t.Fatal("selected marker missing")
	}
	if !strings.Contains(out, "[]") {
		t.Fatal("available marker missing")
	}
	if !strings.Contains(out, "SCREEN") {
		t.Fatal("screen label missing")
	}
}
