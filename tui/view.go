package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thaisring/ticket-show-world/payment"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	chipStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)
)

func (m appModel) View() string {
	header := m.headerView()
	body := ""
	switch m.state {
	case stateHome:
		body = m.homeList.View()
	case stateDetails:
		body = m.detailsView()
	case stateSeats:
		body = m.seatsView()
	case statePayment:
		body = m.paymentView()
	case stateConfirmation:
		body = m.confirmationView()
	case stateSeeAllMovies:
		body = m.movieList.View()
	case stateSeeAllComedy:
		body = m.comedyList.View()
	case stateSeeAllEvents:
		body = m.eventList.View()
	case stateSeeAllPremieres:
		body = m.premiereList.View()
	case statePremiereDetail:
		body = m.premiereDetailView()
	case stateExplore:
		body = m.exploreList.View()
	case stateShowDetail:
		body = m.showDetailView()
	case stateBooking:
		body = m.bookingView()
	case stateBookingSuccess:
		body = m.bookingSuccessView()
	case stateAuth:
		body = m.authView()
	case stateLiveCategory:
		body = m.liveList.View()
	}
	out := header + "\n\n" + body
	if m.statusMsg != "" {
		out += "\n\n" + errorStyle.Render(m.statusMsg)
	}
	return out
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Ticket Show World")
	sub := []string{}
	if m.auth.IsAuthenticated() {
		if name := m.auth.UserName(); name != "" {
			sub = append(sub, "Hi, "+name)
		} else {
			sub = append(sub, "Signed in")
		}
	}
	if m.state == stateHome && m.category != "all" {
		sub = append(sub, "Category: "+m.category)
	}
	if m.selectedEvent != nil && (m.state == stateDetails || m.state == stateSeats || m.state == statePayment) {
		sub = append(sub, m.selectedEvent.Title)
	}
	if showtime := m.currentShowtime(); showtime != nil && (m.state == stateSeats || m.state == statePayment) {
		sub = append(sub, fmt.Sprintf("%s • %s", showtime.Time, showtime.Venue))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + faintStyle.Render(meta)
	}
	return title + meta + "\n" + hint(m.hints())
}

func (m appModel) hints() string {
	switch m.state {
	case stateHome:
		return "ctrl+c quit • enter open • type to filter • tab category • ctrl+o sign out"
	case stateDetails:
		return "ctrl+c quit • esc back • enter pick seats for showtime"
	case stateSeats:
		return "ctrl+c quit • esc back • arrows move • space toggle seat • enter proceed to payment"
	case statePayment:
		return "ctrl+c quit • esc back to seats • left/right method • enter pay"
	case stateShowDetail:
		return "ctrl+c quit • esc back • enter book now"
	case stateBooking:
		return "ctrl+c quit • esc back • tab next field • +/- quantity • enter confirm & pay"
	case stateAuth:
		return "ctrl+c quit • esc back • tab switch field • enter sign in"
	case stateConfirmation, stateBookingSuccess:
		return "enter home • ctrl+c quit"
	case statePremiereDetail:
		return "esc back • enter home • ctrl+c quit"
	default:
		return "ctrl+c quit • esc back • enter open • type to filter"
	}
}

func (m appModel) detailsView() string {
	event := m.selectedEvent
	if event == nil {
		return faintStyle.Render("No event selected.")
	}
	about := fmt.Sprintf("%s • %s", event.Genre, event.Duration)
	return labelStyle.Render(about) + "\n" + faintStyle.Render(event.Description) + "\n\n" + m.showtimeList.View()
}

func (m appModel) seatsView() string {
	showtime := m.currentShowtime()
	if showtime == nil || m.session == nil {
		return faintStyle.Render("No showtime selected.")
	}
	selected := map[string]bool{}
	for _, id := range m.session.Seats() {
		selected[id] = true
	}
	grid := renderSeatGrid(showtime.Seats, selected, m.cursorRow, m.cursorCol)

	summary := m.session.PriceSummary(m.pricing)
	picked := strings.Join(m.session.Seats(), ", ")
	if picked == "" {
		picked = "none"
	}
	footer := fmt.Sprintf("Selected: %s\nTickets ₹%d + convenience fee ₹%d = %s",
		picked,
		summary.Tickets*summary.UnitPrice,
		summary.ConvenienceFee,
		titleStyle.Render(fmt.Sprintf("₹%d", summary.Total)),
	)
	return grid + "\n\n" + footer
}

func (m appModel) paymentView() string {
	if m.session == nil {
		return faintStyle.Render("No booking in progress.")
	}
	summary := m.session.PriceSummary(m.pricing)

	var methods []string
	for i, method := range payment.Methods() {
		label := method.Label()
		if i == m.payMethod {
			methods = append(methods, chipStyle.Render(label))
		} else {
			methods = append(methods, faintStyle.Render(label))
		}
	}

	lines := []string{
		labelStyle.Render("Order summary"),
		fmt.Sprintf("%d ticket(s) × ₹%d", summary.Tickets, summary.UnitPrice),
		fmt.Sprintf("Convenience fee ₹%d", summary.ConvenienceFee),
		titleStyle.Render(fmt.Sprintf("Total ₹%d", summary.Total)),
		"",
		labelStyle.Render("Payment method"),
		strings.Join(methods, "  "),
	}
	if m.paying {
		lines = append(lines, "", fmt.Sprintf("%s Processing payment...", m.spinner.View()))
	}
	if m.payErr != "" {
		lines = append(lines, "", errorStyle.Render(m.payErr), hint("Press enter to try again."))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) confirmationView() string {
	c := m.confirmed
	lines := []string{
		successStyle.Render("Booking confirmed!"),
		"",
		titleStyle.Render(c.title),
		faintStyle.Render(fmt.Sprintf("%s • %s", c.timeLabel, c.venue)),
		fmt.Sprintf("Seats: %s", strings.Join(c.seats, ", ")),
		fmt.Sprintf("Paid ₹%d via %s", c.summary.Total, c.method.Label()),
		faintStyle.Render("Reference: " + c.reference),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) bookingSuccessView() string {
	c := m.confirmed
	lines := []string{
		successStyle.Render("You're in!"),
		"",
		titleStyle.Render(c.title),
		faintStyle.Render(fmt.Sprintf("%s • %s", c.timeLabel, c.venue)),
		fmt.Sprintf("%d ticket(s) for %s", c.quantity, c.contact.Name),
		fmt.Sprintf("Paid ₹%d via %s", c.summary.Total, c.method.Label()),
		faintStyle.Render("Reference: " + c.reference),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) premiereDetailView() string {
	premieres := m.cat.Premieres()
	if m.selectedPremiere < 0 || m.selectedPremiere >= len(premieres) {
		return faintStyle.Render("No premiere selected.")
	}
	premiere := premieres[m.selectedPremiere]
	return strings.Join([]string{
		titleStyle.Render(premiere.Title),
		labelStyle.Render(premiere.Language),
		chipStyle.Render(premiere.Tag),
		"",
		faintStyle.Render("Tickets for this premiere are not on sale yet."),
	}, "\n")
}

func (m appModel) showDetailView() string {
	show := m.resolvedShow()
	if show == nil {
		return faintStyle.Render("This show is no longer available.")
	}
	return strings.Join([]string{
		titleStyle.Render(show.Title),
		labelStyle.Render(fmt.Sprintf("%s • %s %s", show.Venue, show.ShowDate, show.ShowTime)),
		faintStyle.Render(show.Description),
		"",
		fmt.Sprintf("₹%d per ticket • %d seats total", show.TicketPrice, show.TotalSeats),
		"",
		chipStyle.Render("ENTER") + "  Book now",
	}, "\n")
}

func (m appModel) bookingView() string {
	session := m.session
	if session == nil {
		return faintStyle.Render("No booking in progress.")
	}
	summary := session.PriceSummary(m.pricing)

	focusMark := func(focus int) string {
		if m.bookingFocus == focus {
			return "› "
		}
		return "  "
	}
	method := payment.Methods()[m.payMethod]

	lines := []string{
		labelStyle.Render("Book tickets"),
		"",
		fmt.Sprintf("%sQuantity: %d  (+/- to change)", focusMark(focusQuantity), session.Quantity()),
		fmt.Sprintf("%sName:  %s", focusMark(focusName), m.nameInput.View()),
		fmt.Sprintf("%sEmail: %s", focusMark(focusEmail), m.emailInput.View()),
		fmt.Sprintf("%sPhone: %s", focusMark(focusPhone), m.phoneInput.View()),
		fmt.Sprintf("%sPay with: %s  (left/right to change)", focusMark(focusMethod), method.Label()),
		"",
		titleStyle.Render(fmt.Sprintf("Total ₹%d", summary.Total)) +
			faintStyle.Render(fmt.Sprintf("  (%d × ₹%d + ₹%d fee)", summary.Tickets, summary.UnitPrice, summary.ConvenienceFee)),
	}
	if m.paying {
		lines = append(lines, "", fmt.Sprintf("%s Processing payment...", m.spinner.View()))
	}
	if m.payErr != "" {
		lines = append(lines, "", errorStyle.Render(m.payErr), hint("Press enter to try again."))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) authView() string {
	return strings.Join([]string{
		labelStyle.Render("Sign in to continue"),
		"",
		fmt.Sprintf("Name:  %s", m.signInName.View()),
		fmt.Sprintf("Email: %s", m.signInEmail.View()),
		"",
		hint("Booking needs an account; only a name is required."),
	}, "\n")
}

func hint(text string) string {
	return faintStyle.Render(text)
}
