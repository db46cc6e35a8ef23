// Package tui is the storefront's terminal frontend: one Bubble Tea model
// holding the current view and everything the views share, driven entirely
// by messages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thaisring/ticket-show-world/auth"
	"github.com/thaisring/ticket-show-world/booking"
	"github.com/thaisring/ticket-show-world/catalog"
	"github.com/thaisring/ticket-show-world/config"
	"github.com/thaisring/ticket-show-world/model"
	"github.com/thaisring/ticket-show-world/payment"
	"github.com/thaisring/ticket-show-world/store"
)

type appState int

const (
	stateHome appState = iota
	stateDetails
	stateSeats
	statePayment
	stateConfirmation
	stateSeeAllMovies
	stateSeeAllComedy
	stateSeeAllEvents
	stateSeeAllPremieres
	statePremiereDetail
	stateExplore
	stateShowDetail
	stateBooking
	stateBookingSuccess
	stateAuth
	stateLiveCategory
)

// Authenticator is what the frontend needs from an auth backend; both
// auth.FileSession and auth.Static satisfy it.
type Authenticator interface {
	auth.Provider
	SignIn(name string, email string) error
	UserName() string
}

// Booking form focus order.
const (
	focusQuantity = iota
	focusName
	focusEmail
	focusPhone
	focusMethod
	bookingFocusCount
)

type appModel struct {
	cat      *catalog.Store
	auth     Authenticator
	payments payment.Processor
	pricing  booking.Pricing

	state appState

	width  int
	height int

	selectedEvent        *model.Event
	selectedShowtime     int
	selectedShowId       string
	selectedPremiere     int
	selectedLiveCategory string
	category             string

	session *booking.Session

	cursorRow int
	cursorCol int

	payMethod  int
	payAttempt int
	paying     bool
	payErr     string

	confirmed confirmation

	statusMsg string

	homeList     list.Model
	showtimeList list.Model
	movieList    list.Model
	comedyList   list.Model
	eventList    list.Model
	premiereList list.Model
	exploreList  list.Model
	liveList     list.Model

	nameInput    textinput.Model
	emailInput   textinput.Model
	phoneInput   textinput.Model
	signInName   textinput.Model
	signInEmail  textinput.Model
	bookingFocus int
	authFocus    int

	spinner spinner.Model
}

// confirmation is a snapshot of the booking taken at the moment payment is
// approved. The session itself is discarded then, so the confirmation views
// render from this copy.
type confirmation struct {
	title     string
	venue     string
	timeLabel string
	seats     []string
	quantity  int
	summary   booking.Summary
	method    payment.Method
	reference string
	contact   booking.Contact
}

// paymentResultMsg carries the gateway's answer back into the update loop.
// sessionId and attempt fence the result: a late answer for an abandoned or
// resubmitted booking must never change state.
type paymentResultMsg struct {
	sessionId string
	attempt   int
	result    payment.Result
	err       error
}

func New(cat *catalog.Store, authenticator Authenticator, processor payment.Processor, cfg config.Config) tea.Model {
	m := appModel{
		cat:      cat,
		auth:     authenticator,
		payments: processor,
		pricing:  booking.Pricing{UnitPrice: cfg.UnitPrice, ConvenienceFee: cfg.ConvenienceFee},
		state:    stateHome,
		category: "all",

		selectedShowtime: -1,
		selectedPremiere: -1,
	}

	m.homeList = newList("Ticket Show World")
	m.showtimeList = newList("Showtimes")
	m.movieList = newList("All Movies")
	m.comedyList = newList("Comedy")
	m.eventList = newList("All Events")
	m.premiereList = newList("Premieres")
	m.exploreList = newList("Explore Live Events")
	m.liveList = newList("Live Events")

	m.homeList.SetItems(buildHomeItems(cat, m.category))

	m.nameInput = newInput("Full name", 64)
	m.emailInput = newInput("Email", 128)
	m.phoneInput = newInput("Phone", 20)
	m.signInName = newInput("Your name", 64)
	m.signInEmail = newInput("Email (optional)", 128)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateBooking:
			return m.handleBookingKey(msg)
		case stateAuth:
			return m.handleAuthKey(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.paying {
			return m, cmd
		}
		return m, nil

	case paymentResultMsg:
		return m.handlePaymentResult(msg), nil
	}

	var cmd tea.Cmd
	if listPtr := m.activeList(); listPtr != nil {
		*listPtr, cmd = listPtr.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.handleBack(), nil, true
	case "ctrl+h":
		return m.goHome(), nil, true
	case "ctrl+o":
		if m.auth.IsAuthenticated() {
			m.auth.SignOut()
			m.statusMsg = "Signed out."
		}
		return m, nil, true
	case "tab":
		if m.state == stateHome {
			return m.cycleCategory(), nil, true
		}
	}

	if m.state == stateSeats {
		return m.handleSeatsKey(msg)
	}
	if m.state == statePayment {
		return m.handlePaymentKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateHome:
			item, ok := m.homeList.SelectedItem().(entryItem)
			if !ok {
				return m, nil, true
			}
			return m.activateEntry(item), nil, true
		case stateDetails:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			return m.selectSeats(item.index), nil, true
		case stateShowDetail:
			return m.bookNow(), nil, true
		case stateSeeAllMovies, stateSeeAllComedy, stateSeeAllEvents, stateSeeAllPremieres, stateLiveCategory:
			item, ok := m.activeList().SelectedItem().(entryItem)
			if !ok {
				return m, nil, true
			}
			return m.viewDetails(item.id), nil, true
		case stateExplore:
			item, ok := m.exploreList.SelectedItem().(entryItem)
			if !ok {
				return m, nil, true
			}
			return m.liveCategoryClick(item.id), nil, true
		case statePremiereDetail:
			return m.goHome(), nil, true
		case stateConfirmation, stateBookingSuccess:
			return m.goHome(), nil, true
		}
	}
	return m, nil, false
}

func (m appModel) activateEntry(item entryItem) appModel {
	switch item.action {
	case actionViewDetails:
		return m.viewDetails(item.id)
	case actionExplore:
		return m.exploreNow()
	case actionSeeAllMovies:
		return m.seeAllMovies()
	case actionSeeAllComedy:
		return m.seeAllComedy()
	case actionSeeAllEvents:
		return m.seeAllEvents()
	case actionSeeAllPremieres:
		return m.seeAllPremieres()
	case actionLiveCategory:
		return m.liveCategoryClick(item.id)
	default:
		return m
	}
}

// viewDetails resolves a catalog id and opens the matching detail view.
// Premiere ids win over shows, shows over events; an unknown id leaves the
// current view in place with a status line.
func (m appModel) viewDetails(id string) appModel {
	res := m.cat.Resolve(id)
	switch res.Kind {
	case catalog.KindPremiere:
		m.selectedPremiere = res.PremiereIndex
		m.state = statePremiereDetail
		_ = store.RememberView(store.RecentView{ID: id, Title: res.Premiere.Title, Kind: "premiere"})
	case catalog.KindUserShow:
		m.selectedShowId = res.Show.Id
		m.state = stateShowDetail
		_ = store.RememberView(store.RecentView{ID: id, Title: res.Show.Title, Kind: "show"})
	case catalog.KindEvent:
		m.selectedEvent = res.Event
		m.selectedShowtime = -1
		m.showtimeList.Title = res.Event.Title
		m.showtimeList.SetItems(buildShowtimeItems(res.Event))
		m.state = stateDetails
		_ = store.RememberView(store.RecentView{ID: id, Title: res.Event.Title, Kind: "event"})
	default:
		m.statusMsg = fmt.Sprintf("Nothing in the catalog matches %q.", id)
	}
	return m
}

func (m appModel) exploreNow() appModel {
	m.exploreList.SetItems(buildCategoryItems(m.cat))
	m.state = stateExplore
	return m
}

func (m appModel) seeAllMovies() appModel {
	m.movieList.SetItems(buildMovieItems(m.cat))
	m.state = stateSeeAllMovies
	return m
}

func (m appModel) seeAllComedy() appModel {
	m.comedyList.SetItems(buildComedyItems(m.cat))
	m.state = stateSeeAllComedy
	return m
}

func (m appModel) seeAllEvents() appModel {
	m.eventList.SetItems(buildShowItems(m.cat, ""))
	m.state = stateSeeAllEvents
	return m
}

func (m appModel) seeAllPremieres() appModel {
	m.premiereList.SetItems(buildPremiereItems(m.cat))
	m.state = stateSeeAllPremieres
	return m
}

func (m appModel) liveCategoryClick(title string) appModel {
	m.selectedLiveCategory = title
	m.liveList.Title = title
	m.liveList.SetItems(buildShowItems(m.cat, title))
	m.state = stateLiveCategory
	return m
}

func (m appModel) cycleCategory() appModel {
	next := 0
	for i, c := range homeCategories {
		if c == m.category {
			next = (i + 1) % len(homeCategories)
			break
		}
	}
	m.category = homeCategories[next]
	m.homeList.SetItems(buildHomeItems(m.cat, m.category))
	return m
}

// selectSeats opens seat selection for one showtime. Unauthenticated users
// are redirected to sign-in instead; no session is created for them.
func (m appModel) selectSeats(showtimeIndex int) appModel {
	if !m.auth.IsAuthenticated() {
		m.auth.RedirectToSignIn()
		return m.openAuth()
	}
	if m.selectedEvent == nil {
		return m
	}
	session, err := booking.ForEvent(m.selectedEvent, showtimeIndex)
	if err != nil {
		m.statusMsg = err.Error()
		return m
	}
	m.session = session
	m.selectedShowtime = showtimeIndex
	m.cursorRow, m.cursorCol = 0, 0
	m.statusMsg = ""
	m.state = stateSeats
	return m
}

// bookNow opens the flat-rate booking form for the selected community show,
// behind the same auth gate as seat selection.
func (m appModel) bookNow() appModel {
	if !m.auth.IsAuthenticated() {
		m.auth.RedirectToSignIn()
		return m.openAuth()
	}
	show := m.resolvedShow()
	if show == nil {
		m.statusMsg = "This show is no longer available."
		return m
	}
	session, err := booking.ForShow(show)
	if err != nil {
		m.statusMsg = err.Error()
		return m
	}
	m.session = session
	m.statusMsg = ""
	m.payErr = ""
	m.payMethod = 0
	m.resetBookingForm()
	m.state = stateBooking
	return m
}

func (m appModel) handleSeatsKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	showtime := m.currentShowtime()
	if showtime == nil {
		return m, nil, true
	}
	rows := showtime.Seats.Rows()
	cols := showtime.Seats.Cols()

	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		return m, nil, true
	case "down", "j":
		if m.cursorRow < rows-1 {
			m.cursorRow++
		}
		return m, nil, true
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		return m, nil, true
	case "right", "l":
		if m.cursorCol < cols-1 {
			m.cursorCol++
		}
		return m, nil, true
	case " ", "x":
		return m.toggleSeatUnderCursor(), nil, true
	case "enter":
		return m.bookSeats(), nil, true
	}
	return m, nil, true
}

func (m appModel) toggleSeatUnderCursor() appModel {
	showtime := m.currentShowtime()
	if showtime == nil {
		return m
	}
	seatId := showtime.Seats[m.cursorRow][m.cursorCol].Id
	return m.seatClick(seatId)
}

// seatClick toggles one seat in the active session. Booked seats refuse with
// a status line; everything else flips membership.
func (m appModel) seatClick(seatId string) appModel {
	if m.session == nil {
		return m
	}
	if err := m.session.ToggleSeat(seatId); err != nil {
		m.statusMsg = err.Error()
		return m
	}
	m.statusMsg = ""
	return m
}

// bookSeats moves to payment, or stays put with a message when nothing is
// selected.
func (m appModel) bookSeats() appModel {
	if m.session == nil || len(m.session.Seats()) == 0 {
		m.statusMsg = "Select at least one seat first."
		return m
	}
	m.statusMsg = ""
	m.payErr = ""
	m.payMethod = 0
	m.state = statePayment
	return m
}

func (m appModel) handlePaymentKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if m.paying {
		return m, nil, true
	}
	switch msg.String() {
	case "left", "up", "shift+tab":
		m.payMethod = (m.payMethod + len(payment.Methods()) - 1) % len(payment.Methods())
		return m, nil, true
	case "right", "down", "tab":
		m.payMethod = (m.payMethod + 1) % len(payment.Methods())
		return m, nil, true
	case "enter":
		return m.startPayment()
	}
	return m, nil, true
}

func (m appModel) startPayment() (appModel, tea.Cmd, bool) {
	if m.session == nil {
		return m, nil, true
	}
	m.paying = true
	m.payErr = ""
	m.payAttempt++
	return m, tea.Batch(m.processPaymentCmd(), m.spinner.Tick), true
}

func (m appModel) processPaymentCmd() tea.Cmd {
	sessionId := m.session.ID()
	attempt := m.payAttempt
	method := payment.Methods()[m.payMethod]
	amount := m.session.PriceSummary(m.pricing).Total
	processor := m.payments
	return func() tea.Msg {
		result, err := processor.Process(context.Background(), method, amount)
		return paymentResultMsg{sessionId: sessionId, attempt: attempt, result: result, err: err}
	}
}

func (m appModel) handlePaymentResult(msg paymentResultMsg) appModel {
	// Results are fenced by session identity, by attempt number, and by the
	// in-flight flag: stepping back out of payment abandons the attempt, so
	// its result must not settle even if the user re-enters payment without
	// resubmitting. Anything stale is dropped without touching seat state.
	if !m.paying || m.session == nil || msg.sessionId != m.session.ID() || msg.attempt != m.payAttempt {
		return m
	}
	if m.state != statePayment && m.state != stateBooking {
		return m
	}
	m.paying = false
	if msg.err != nil {
		m.payErr = msg.err.Error()
		return m
	}
	if !msg.result.Approved {
		m.payErr = msg.result.Reason
		return m
	}
	return m.completePayment(msg.result)
}

// completePayment snapshots the booking, marks the seats booked in the
// catalog for seat-based bookings, discards the session, and lands on the
// matching success view.
func (m appModel) completePayment(result payment.Result) appModel {
	session := m.session
	method := payment.Methods()[m.payMethod]

	snapshot := confirmation{
		seats:     session.Seats(),
		quantity:  session.Quantity(),
		summary:   session.PriceSummary(m.pricing),
		method:    method,
		reference: result.Reference,
		contact:   session.Contact(),
	}

	next := stateBookingSuccess
	switch session.Kind() {
	case booking.TargetEvent:
		event := session.Event()
		snapshot.title = event.Title
		if showtime := session.Showtime(); showtime != nil {
			snapshot.venue = showtime.Venue
			snapshot.timeLabel = showtime.Time
			_ = m.cat.MarkBooked(event.Id, session.ShowtimeIndex(), session.Seats())
			next = stateConfirmation
		}
	case booking.TargetShow:
		show := session.Show()
		snapshot.title = show.Title
		snapshot.venue = show.Venue
		snapshot.timeLabel = strings.TrimSpace(show.ShowDate + " " + show.ShowTime)
	}

	m.confirmed = snapshot
	m.session = nil
	m.payErr = ""
	m.state = next
	return m
}

func (m appModel) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.paying {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.handleBack(), nil
	case "tab", "down":
		m.setBookingFocus((m.bookingFocus + 1) % bookingFocusCount)
		return m, nil
	case "shift+tab", "up":
		m.setBookingFocus((m.bookingFocus + bookingFocusCount - 1) % bookingFocusCount)
		return m, nil
	case "enter":
		return m.submitBooking()
	}

	switch m.bookingFocus {
	case focusQuantity:
		if m.session != nil {
			switch msg.String() {
			case "+", "right":
				if err := m.session.SetQuantity(m.session.Quantity() + 1); err != nil {
					m.statusMsg = err.Error()
				} else {
					m.statusMsg = ""
				}
			case "-", "left":
				if err := m.session.SetQuantity(m.session.Quantity() - 1); err != nil {
					m.statusMsg = err.Error()
				} else {
					m.statusMsg = ""
				}
			}
		}
		return m, nil
	case focusMethod:
		switch msg.String() {
		case "left":
			m.payMethod = (m.payMethod + len(payment.Methods()) - 1) % len(payment.Methods())
		case "right":
			m.payMethod = (m.payMethod + 1) % len(payment.Methods())
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.bookingFocus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focusEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case focusPhone:
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitBooking() (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	err := m.session.SubmitContact(m.nameInput.Value(), m.emailInput.Value(), m.phoneInput.Value())
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	m.statusMsg = ""
	next, cmd, _ := m.startPayment()
	return next, cmd
}

func (m *appModel) resetBookingForm() {
	m.nameInput.Reset()
	m.emailInput.Reset()
	m.phoneInput.Reset()
	m.setBookingFocus(focusQuantity)
}

func (m *appModel) setBookingFocus(focus int) {
	m.bookingFocus = focus
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.phoneInput.Blur()
	switch focus {
	case focusName:
		m.nameInput.Focus()
	case focusEmail:
		m.emailInput.Focus()
	case focusPhone:
		m.phoneInput.Focus()
	}
}

func (m appModel) openAuth() appModel {
	m.signInName.Reset()
	m.signInEmail.Reset()
	m.authFocus = 0
	m.signInName.Focus()
	m.signInEmail.Blur()
	m.statusMsg = ""
	m.state = stateAuth
	return m
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.handleBack(), nil
	case "tab", "down", "up", "shift+tab":
		m.authFocus = 1 - m.authFocus
		if m.authFocus == 0 {
			m.signInName.Focus()
			m.signInEmail.Blur()
		} else {
			m.signInName.Blur()
			m.signInEmail.Focus()
		}
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.signInName.Value())
		if name == "" {
			m.statusMsg = "Name is required to sign in."
			return m, nil
		}
		if err := m.auth.SignIn(name, strings.TrimSpace(m.signInEmail.Value())); err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Signed in as %s.", name)
		m.state = stateHome
		return m, nil
	}

	var cmd tea.Cmd
	if m.authFocus == 0 {
		m.signInName, cmd = m.signInName.Update(msg)
	} else {
		m.signInEmail, cmd = m.signInEmail.Update(msg)
	}
	return m, cmd
}

// handleBack is the escape key. Mid-flow views step back one screen so an
// in-progress selection survives; everything else returns home, and the
// terminal views reset the whole journey.
func (m appModel) handleBack() appModel {
	switch m.state {
	case stateSeats:
		m.state = stateDetails
		return m
	case statePayment:
		m.paying = false
		m.payErr = ""
		m.state = stateSeats
		return m
	case stateShowDetail, stateBooking, stateBookingSuccess, statePremiereDetail,
		stateExplore, stateLiveCategory, stateAuth:
		m.state = stateHome
		return m
	default:
		return m.goHome()
	}
}

// goHome resets every piece of journey state and returns to the home view.
func (m appModel) goHome() appModel {
	m.state = stateHome
	m.selectedEvent = nil
	m.selectedShowtime = -1
	m.selectedShowId = ""
	m.selectedPremiere = -1
	m.selectedLiveCategory = ""
	m.session = nil
	m.category = "all"
	m.cursorRow, m.cursorCol = 0, 0
	m.paying = false
	m.payErr = ""
	m.payMethod = 0
	m.confirmed = confirmation{}
	m.statusMsg = ""
	m.resetListFilters()
	m.homeList.SetItems(buildHomeItems(m.cat, m.category))
	return m
}

func (m *appModel) resetListFilters() {
	for _, l := range []*list.Model{
		&m.homeList, &m.showtimeList, &m.movieList, &m.comedyList,
		&m.eventList, &m.premiereList, &m.exploreList, &m.liveList,
	} {
		l.ResetFilter()
	}
}

func (m appModel) resolvedShow() *model.UserShow {
	if m.selectedShowId == "" {
		return nil
	}
	res := m.cat.Resolve(m.selectedShowId)
	if res.Kind != catalog.KindUserShow {
		return nil
	}
	return res.Show
}

func (m appModel) currentShowtime() *model.Showtime {
	if m.session == nil {
		return nil
	}
	return m.session.Showtime()
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateHome:
		return &m.homeList
	case stateDetails:
		return &m.showtimeList
	case stateSeeAllMovies:
		return &m.movieList
	case stateSeeAllComedy:
		return &m.comedyList
	case stateSeeAllEvents:
		return &m.eventList
	case stateSeeAllPremieres:
		return &m.premiereList
	case stateExplore:
		return &m.exploreList
	case stateLiveCategory:
		return &m.liveList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.homeList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.movieList.SetSize(m.width, h)
	m.comedyList.SetSize(m.width, h)
	m.eventList.SetSize(m.width, h)
	m.premiereList.SetSize(m.width, h)
	m.exploreList.SetSize(m.width, h)
	m.liveList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	return ti
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}
