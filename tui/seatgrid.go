package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thaisring/ticket-show-world/model"
)

var (
	seatAvailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	seatBookedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	seatSelectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	seatCursorStyle    = lipgloss.NewStyle().Reverse(true)
	rowLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	screenStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	legendStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// renderSeatGrid draws the seat map with the current selection overlaid.
// The cursor cell is rendered inverted so it stays visible on any state.
func renderSeatGrid(seats model.SeatMap, selected map[string]bool, cursorRow, cursorCol int) string {
	if len(seats) == 0 {
		return "No seat map for this showtime."
	}

	var b strings.Builder
	width := seats.Cols()*3 + 4
	b.WriteString(screenStyle.Render(centerText("SCREEN", width)))
	b.WriteString("\n")
	b.WriteString(screenStyle.Render(centerText(strings.Repeat("─", seats.Cols()*3), width)))
	b.WriteString("\n\n")

	for r, row := range seats {
		b.WriteString(rowLabelStyle.Render(fmt.Sprintf("%c ", 'A'+r)))
		for c, seat := range row {
			cell := renderSeatCell(seat, selected[seat.Id])
			if r == cursorRow && c == cursorCol {
				cell = seatCursorStyle.Render(seatCellText(seat, selected[seat.Id]))
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(legendStyle.Render(fmt.Sprintf(
		"%s available  %s selected  %s booked",
		seatAvailableStyle.Render("[]"),
		seatSelectedStyle.Render("()"),
		seatBookedStyle.Render("××"),
	)))
	return b.String()
}

func seatCellText(seat model.Seat, isSelected bool) string {
	switch {
	case seat.Status == model.SeatBooked:
		return "××"
	case isSelected:
		return "()"
	default:
		return "[]"
	}
}

func renderSeatCell(seat model.Seat, isSelected bool) string {
	text := seatCellText(seat, isSelected)
	switch {
	case seat.Status == model.SeatBooked:
		return seatBookedStyle.Render(text)
	case isSelected:
		return seatSelectedStyle.Render(text)
	default:
		return seatAvailableStyle.Render(text)
	}
}

// centerText pads by display width, not byte length; the screen rule is
// drawn with multi-byte box characters.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s
}
