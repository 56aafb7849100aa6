// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/session"
	"github.com/tickethub/tickethub/lib/tui"
)

// Page identifies which data view is active.
type Page int

const (
	// PageEvents shows the browsable event listing with the detail
	// pane. Available without signing in.
	PageEvents Page = iota
	// PageBookings shows the signed-in user's bookings.
	PageBookings
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the list cursor.
	FocusList FocusRegion = iota
	// FocusDetail means navigation keys scroll the detail viewport.
	FocusDetail
	// FocusFilter means keystrokes go to the fuzzy filter input.
	FocusFilter
	// FocusDropdown means the event type dropdown is active. All
	// keyboard input routes to it until the user selects or
	// dismisses.
	FocusDropdown
	// FocusAuthModal means the sign-in/registration modal is active.
	FocusAuthModal
	// FocusBookingModal means the booking modal is active.
	FocusBookingModal
	// FocusConfirmCancel means a cancel confirmation prompt is
	// showing in the status bar. y confirms; anything else dismisses.
	FocusConfirmCancel
)

// Split ratio bounds and step size for the events page panes.
const (
	splitRatioMin  = 0.30
	splitRatioMax  = 0.75
	splitRatioStep = 0.05
)

// pendingAction records what the user was doing when the sign-in
// modal interrupted them, so a successful auth can resume it.
type pendingAction int

const (
	pendingNone pendingAction = iota
	// pendingBookings resumes navigation to the My Bookings page.
	pendingBookings
	// pendingBook reopens the booking modal for the selected event.
	pendingBook
)

// notice is a transient status bar message. The sequence number lets
// a scheduled fade recognize it has been superseded.
type notice struct {
	text     string
	isError  bool
	sequence int
}

// Model is the top-level bubbletea model for the booking TUI.
type Model struct {
	client *api.Client
	store  session.Store
	theme  tui.Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Signed-in state. Nil when browsing anonymously.
	session *session.Session

	activePage Page

	// Events page state. tickets is the raw listing from the last
	// fetch; visible is the filtered/sorted view the list renders.
	tickets        []api.Ticket
	visible        []FilterResult
	ticketsLoading bool
	ticketsLoaded  bool
	typeFilter     string // Empty means all event types.
	filter         FilterModel

	// My Bookings page state.
	bookings        []api.Booking
	bookingsLoading bool

	// List cursor and scroll, shared across pages and reset on page
	// switch.
	cursor       int
	scrollOffset int

	// Two-pane layout on the events page.
	focusRegion    FocusRegion
	priorFocus     FocusRegion // Saved focus when entering filter mode.
	splitRatio     float64     // Fraction of width for the list pane.
	detailViewport viewport.Model
	detailTicketID string // Ticket currently rendered in the viewport.

	// Overlays. At most one is non-nil at a time.
	activeDropdown *tui.DropdownOverlay
	authForm       *AuthForm
	bookingForm    *BookingForm

	// Cancel confirmation: the booking awaiting a y/N answer.
	confirmCancelID string

	pending pendingAction

	statusNotice notice

	// Change animation on the bookings list.
	heatTracker *tui.HeatTracker
	tickRunning bool

	// Page tab click regions. Each entry maps a page to its X range
	// in the header line so mouse clicks on Y=0 can switch pages.
	pageHitRanges []pageHitRange
}

// pageHitRange maps a horizontal span in the header to a page.
type pageHitRange struct {
	startX int // Inclusive.
	endX   int // Exclusive.
	page   Page
}

// NewModel creates a Model backed by the given API client and session
// store. A previously persisted session (already loaded by the
// caller) may be passed to restore the signed-in state; nil starts
// anonymous.
func NewModel(client *api.Client, store session.Store, restored *session.Session) Model {
	return Model{
		client:      client,
		store:       store,
		theme:       tui.DefaultTheme,
		keys:        DefaultKeyMap,
		session:     restored,
		splitRatio:  0.50,
		heatTracker: tui.NewHeatTracker(),
	}
}

// SetDefaultEventType pre-selects the type filter before the program
// starts.
func (model *Model) SetDefaultEventType(eventType string) {
	model.typeFilter = eventType
}

// currentFilter returns the server-side listing filter in effect.
func (model Model) currentFilter() api.TicketFilter {
	return api.TicketFilter{EventType: model.typeFilter}
}

// Init implements tea.Model. Kicks off the initial event listing
// fetch.
func (model Model) Init() tea.Cmd {
	return fetchTickets(model.client, model.currentFilter())
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles fetch results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// Modal focuses capture all input first.
		switch model.focusRegion {
		case FocusFilter:
			return model.handleFilterKeys(message)
		case FocusDropdown:
			return model.handleDropdownKeys(message)
		case FocusAuthModal:
			return model.handleAuthModalKeys(message)
		case FocusBookingModal:
			return model.handleBookingModalKeys(message)
		case FocusConfirmCancel:
			return model.handleConfirmCancelKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.FocusToggle):
			if model.activePage != PageEvents {
				break
			}
			if model.focusRegion == FocusList {
				model.focusRegion = FocusDetail
			} else {
				model.focusRegion = FocusList
			}

		case key.Matches(message, model.keys.SplitGrow):
			model.splitRatio += splitRatioStep
			if model.splitRatio > splitRatioMax {
				model.splitRatio = splitRatioMax
			}
			model.updatePaneSizes()

		case key.Matches(message, model.keys.SplitShrink):
			model.splitRatio -= splitRatioStep
			if model.splitRatio < splitRatioMin {
				model.splitRatio = splitRatioMin
			}
			model.updatePaneSizes()

		case key.Matches(message, model.keys.PageEvents):
			model.switchPage(PageEvents)

		case key.Matches(message, model.keys.PageBookings):
			if model.session == nil {
				model.pending = pendingBookings
				model.openAuthModal()
				break
			}
			model.switchPage(PageBookings)
			model.bookingsLoading = true
			return model, fetchBookings(model.client, model.session.User.ID)

		case key.Matches(message, model.keys.TypeFilter):
			if model.activePage != PageEvents {
				break
			}
			model.openTypeDropdown()

		case key.Matches(message, model.keys.FilterActivate):
			if model.activePage != PageEvents {
				break
			}
			model.priorFocus = model.focusRegion
			model.focusRegion = FocusFilter
			model.filter.Active = true
			model.cursor = 0
			model.scrollOffset = 0

		case key.Matches(message, model.keys.FilterClear):
			if model.filter.Input != "" {
				model.filter.Clear()
				model.applyFilter()
			}

		case key.Matches(message, model.keys.Refresh):
			return model.refresh()

		case key.Matches(message, model.keys.Book):
			if model.activePage != PageEvents || model.focusRegion != FocusList {
				break
			}
			return model.startBooking()

		case key.Matches(message, model.keys.CancelBooking):
			if model.activePage != PageBookings {
				break
			}
			model.startCancelConfirmation()

		case key.Matches(message, model.keys.Account):
			return model.toggleAccount()

		default:
			if model.focusRegion == FocusDetail {
				var cmd tea.Cmd
				model.detailViewport, cmd = model.detailViewport.Update(message)
				return model, cmd
			}
			model.handleListKeys(message)
		}

	case tea.MouseMsg:
		return model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		model.computePageHitRanges()
		model.syncDetailPane()

	case ticketsLoadedMsg:
		return model.handleTicketsLoaded(message)

	case authResultMsg:
		return model.handleAuthResult(message)

	case bookingCreatedMsg:
		return model.handleBookingCreated(message)

	case bookingsLoadedMsg:
		model.bookingsLoading = false
		if message.err != nil {
			return model.showNotice("Loading bookings failed: "+message.err.Error(), true)
		}
		model.bookings = message.bookings
		model.clampCursor()
		return model, nil

	case bookingCancelledMsg:
		return model.handleBookingCancelled(message)

	case sessionSaveFailedMsg:
		return model.showNotice("Session not saved: "+message.err.Error(), true)

	case logRecordMsg:
		return model.showNotice(message.Summary, message.Level >= slog.LevelError)

	case noticeFadeMsg:
		if message.sequence == model.statusNotice.sequence {
			model.statusNotice.text = ""
		}

	case heatTickMsg:
		if model.heatTracker.HasHot(time.Now()) {
			return model, scheduleHeatTick()
		}
		model.tickRunning = false
	}

	return model, nil
}

// handleMouse routes mouse events. The wheel scrolls whichever pane
// the cursor is over; a left click on a header tab switches pages.
// Mouse input is ignored entirely while a modal overlay has focus.
func (model Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch model.focusRegion {
	case FocusAuthModal, FocusBookingModal, FocusConfirmCancel:
		return model, nil
	}
	if message.Action != tea.MouseActionPress {
		return model, nil
	}
	if model.focusRegion == FocusDropdown {
		return model.handleDropdownMouse(message)
	}

	overDetail := model.activePage == PageEvents && message.X > model.listWidth()

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if overDetail {
			model.detailViewport.LineUp(3)
		} else {
			model.moveCursor(-3)
		}
	case tea.MouseButtonWheelDown:
		if overDetail {
			model.detailViewport.LineDown(3)
		} else {
			model.moveCursor(3)
		}
	case tea.MouseButtonLeft:
		// The tab hit ranges only mean anything while the header line
		// is actually rendered; the filter bar replaces it.
		if message.Y == 0 && model.headerVisible() {
			for _, hitRange := range model.pageHitRanges {
				if message.X >= hitRange.startX && message.X < hitRange.endX {
					return model.switchPageByClick(hitRange.page)
				}
			}
		}
	}
	return model, nil
}

// handleDropdownMouse resolves a click while the type dropdown is
// open: clicking an option selects it, clicking anywhere else
// dismisses the dropdown.
func (model Model) handleDropdownMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	if message.Button != tea.MouseButtonLeft {
		return model, nil
	}
	if !model.activeDropdown.Contains(message.X, message.Y) {
		model.dismissDropdown()
		return model, nil
	}
	if index := model.activeDropdown.OptionAtY(message.Y); index >= 0 {
		model.activeDropdown.Cursor = index
		return model.handleDropdownKeys(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return model, nil
}

// switchPageByClick mirrors the 1/2 key handling, including the auth
// gate on My Bookings.
func (model Model) switchPageByClick(page Page) (tea.Model, tea.Cmd) {
	if page == PageBookings {
		if model.session == nil {
			model.pending = pendingBookings
			model.openAuthModal()
			return model, nil
		}
		model.switchPage(PageBookings)
		model.bookingsLoading = true
		return model, fetchBookings(model.client, model.session.User.ID)
	}
	model.switchPage(PageEvents)
	return model, nil
}

// computePageHitRanges calculates the X positions of each page label
// in the header line. Called on window resize so mouse clicks on the
// header can switch pages. Must match renderHeader's layout exactly.
func (model *Model) computePageHitRanges() {
	model.pageHitRanges = model.pageHitRanges[:0]
	cursor := 3 // Leading "───"

	for index, pageDef := range pageDefs {
		cursor++ // Space before label.
		labelStart := cursor
		cursor += lipgloss.Width(pageDef.label)

		model.pageHitRanges = append(model.pageHitRanges, pageHitRange{
			startX: labelStart,
			endX:   cursor,
			page:   pageDef.page,
		})

		cursor++ // Space after label.

		if index == len(pageDefs)-1 {
			cursor++
		} else {
			cursor += 3
		}
	}
}

// refresh re-fetches the data backing the active page.
func (model Model) refresh() (tea.Model, tea.Cmd) {
	if model.activePage == PageBookings {
		if model.session == nil {
			return model, nil
		}
		model.bookingsLoading = true
		return model, fetchBookings(model.client, model.session.User.ID)
	}
	model.ticketsLoading = true
	return model, fetchTickets(model.client, model.currentFilter())
}

// switchPage changes the active page and resets list position and
// focus.
func (model *Model) switchPage(page Page) {
	if model.activePage == page {
		return
	}
	model.activePage = page
	model.cursor = 0
	model.scrollOffset = 0
	model.focusRegion = FocusList
	model.syncDetailPane()
}

// handleTicketsLoaded applies a listing fetch result. Responses for a
// filter other than the current one are stale (the user switched the
// type filter while the fetch was in flight) and are dropped.
func (model Model) handleTicketsLoaded(message ticketsLoadedMsg) (tea.Model, tea.Cmd) {
	if message.filter != model.currentFilter() {
		return model, nil
	}
	model.ticketsLoading = false
	if message.err != nil {
		return model.showNotice("Loading events failed: "+message.err.Error(), true)
	}
	model.ticketsLoaded = true
	model.tickets = message.tickets
	model.applyFilter()
	return model, nil
}

// applyFilter rebuilds the visible event list from the raw tickets
// and the fuzzy filter, clamping the cursor into the new list.
func (model *Model) applyFilter() {
	model.visible = model.filter.Apply(model.tickets)
	model.clampCursor()
	model.syncDetailPane()
}

// handleFilterKeys processes input while the fuzzy filter owns the
// keyboard. Esc clears and restores, enter confirms and returns focus
// to the list keeping the filter applied.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.filter.Clear()
		model.focusRegion = model.priorFocus
		model.applyFilter()

	case tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusList

	case tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyFilter()
		} else {
			// Backspace on empty input exits filter mode.
			model.filter.Clear()
			model.focusRegion = model.priorFocus
		}

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.cursor = 0
		model.scrollOffset = 0
		model.applyFilter()

	case tea.KeyUp:
		model.moveCursor(-1)
	case tea.KeyDown:
		model.moveCursor(1)
	}
	return model, nil
}

// openTypeDropdown shows the event type dropdown anchored below the
// header line.
func (model *Model) openTypeDropdown() {
	options := []tui.DropdownOption{{Label: "all types", Value: ""}}
	for _, eventType := range api.EventTypes {
		options = append(options, tui.DropdownOption{Label: eventType, Value: eventType})
	}

	cursor := 0
	for index, option := range options {
		if option.Value == model.typeFilter {
			cursor = index
		}
	}

	model.activeDropdown = &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: 1,
		AnchorY: 1,
	}
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusDropdown
}

// handleDropdownKeys processes input while the type dropdown is
// active.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyEscape:
		model.dismissDropdown()

	case message.Type == tea.KeyEnter:
		selected := model.activeDropdown.Selected()
		model.dismissDropdown()
		if selected.Value == model.typeFilter {
			return model, nil
		}
		model.typeFilter = selected.Value
		model.cursor = 0
		model.scrollOffset = 0
		model.ticketsLoading = true
		return model, fetchTickets(model.client, model.currentFilter())

	case key.Matches(message, model.keys.Up):
		model.activeDropdown.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.activeDropdown.MoveDown()
	}
	return model, nil
}

func (model *Model) dismissDropdown() {
	model.activeDropdown = nil
	model.focusRegion = model.priorFocus
}

// openAuthModal shows the sign-in modal in login mode.
func (model *Model) openAuthModal() {
	model.authForm = NewAuthForm(model.theme)
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusAuthModal
}

// handleAuthModalKeys processes input while the sign-in modal is
// active. All submission state transitions run through here: enter
// submits unless a call is already in flight; esc abandons the modal
// and whatever action prompted it.
func (model Model) handleAuthModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := model.authForm

	switch message.Type {
	case tea.KeyEscape:
		model.authForm = nil
		model.pending = pendingNone
		model.focusRegion = model.priorFocus
		return model, nil

	case tea.KeyEnter:
		if form.InFlight {
			return model, nil
		}
		form.InFlight = true
		form.ErrorText = ""
		if form.Mode == AuthModeRegister {
			return model, submitRegistration(model.client, form.RegisterRequest())
		}
		return model, submitLogin(model.client, form.LoginRequest())

	case tea.KeyTab, tea.KeyDown:
		form.FocusNext()
		return model, nil

	case tea.KeyShiftTab, tea.KeyUp:
		form.FocusPrevious()
		return model, nil

	case tea.KeyCtrlT:
		form.ToggleMode()
		return model, nil
	}

	if !form.InFlight {
		form.HandleKey(message)
	}
	return model, nil
}

// handleAuthResult applies a login or registration outcome. Failure
// keeps the modal open with the error inline; success stores the
// session, persists it, and resumes whatever the modal interrupted.
func (model Model) handleAuthResult(message authResultMsg) (tea.Model, tea.Cmd) {
	if model.authForm == nil {
		// Modal already dismissed; drop the stale result.
		return model, nil
	}
	model.authForm.InFlight = false

	if message.err != nil {
		fallback := "sign-in failed, try again"
		if message.registered {
			fallback = "registration failed, try again"
		}
		model.authForm.ErrorText = api.Message(message.err, fallback)
		return model, nil
	}

	current := &session.Session{
		User:  message.response.User,
		Token: message.response.Token,
	}
	model.session = current
	model.client.SetToken(current.Token)
	model.authForm = nil
	model.focusRegion = model.priorFocus

	verb := "Signed in as "
	if message.registered {
		verb = "Account created: "
	}

	commands := []tea.Cmd{persistSession(model.store, current)}

	// Resume whatever the sign-in modal interrupted.
	action := model.pending
	model.pending = pendingNone
	switch action {
	case pendingBookings:
		model.switchPage(PageBookings)
		model.bookingsLoading = true
		commands = append(commands, fetchBookings(model.client, current.User.ID))
	case pendingBook:
		model.openBookingModal()
	}

	model, noticeCommand := model.showNotice(verb+current.User.Username, false)
	commands = append(commands, noticeCommand)

	return model, tea.Batch(commands...)
}

// selectedTicket returns the ticket under the events list cursor.
func (model Model) selectedTicket() (api.Ticket, bool) {
	if model.cursor < 0 || model.cursor >= len(model.visible) {
		return api.Ticket{}, false
	}
	return model.visible[model.cursor].Ticket, true
}

// selectedBooking returns the booking under the bookings list cursor.
func (model Model) selectedBooking() (api.Booking, bool) {
	if model.cursor < 0 || model.cursor >= len(model.bookings) {
		return api.Booking{}, false
	}
	return model.bookings[model.cursor], true
}

// startBooking opens the booking modal for the selected event, going
// through the sign-in modal first when anonymous. Sold-out events
// just show a notice.
func (model Model) startBooking() (tea.Model, tea.Cmd) {
	ticket, ok := model.selectedTicket()
	if !ok {
		return model, nil
	}
	if !ticket.Bookable() || ticket.AvailableSeats == 0 {
		return model.showNotice(ticket.EventName+" is sold out", false)
	}
	if model.session == nil {
		model.pending = pendingBook
		model.openAuthModal()
		return model, nil
	}
	model.openBookingModal()
	return model, nil
}

func (model *Model) openBookingModal() {
	ticket, ok := model.selectedTicket()
	if !ok {
		return
	}
	model.bookingForm = NewBookingForm(model.theme, ticket, model.session.User)
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusBookingModal
}

// handleBookingModalKeys processes input while the booking modal is
// active.
func (model Model) handleBookingModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := model.bookingForm

	switch message.Type {
	case tea.KeyEscape:
		model.bookingForm = nil
		model.focusRegion = model.priorFocus
		return model, nil

	case tea.KeyEnter:
		if form.InFlight {
			return model, nil
		}
		form.InFlight = true
		form.ErrorText = ""
		return model, submitBooking(model.client, form.Request(model.session.User))

	case tea.KeyTab, tea.KeyDown:
		form.FocusNext()
		return model, nil

	case tea.KeyShiftTab, tea.KeyUp:
		form.FocusPrevious()
		return model, nil
	}

	if !form.InFlight {
		form.HandleKey(message)
	}
	return model, nil
}

// handleBookingCreated applies a booking submission outcome. Success
// closes the modal and lands on My Bookings so the new booking is
// visible, glowing briefly.
func (model Model) handleBookingCreated(message bookingCreatedMsg) (tea.Model, tea.Cmd) {
	if model.bookingForm == nil {
		return model, nil
	}
	model.bookingForm.InFlight = false

	if message.err != nil {
		model.bookingForm.ErrorText = api.Message(message.err, "booking failed, try again")
		return model, nil
	}

	model.bookingForm = nil
	model.focusRegion = model.priorFocus
	model.switchPage(PageBookings)
	model.bookingsLoading = true

	model.heatTracker.Ignite(message.booking.ID, tui.HeatPut, time.Now())
	commands := []tea.Cmd{fetchBookings(model.client, model.session.User.ID)}
	if !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}

	noticeModel, noticeCommand := model.showNotice(
		"Booked "+message.booking.EventName+" ("+message.booking.BookingReference+")", false)
	return noticeModel, tea.Batch(append(commands, noticeCommand)...)
}

// startCancelConfirmation arms the y/N prompt for the selected
// booking. Already-cancelled bookings are skipped.
func (model *Model) startCancelConfirmation() {
	booking, ok := model.selectedBooking()
	if !ok || !booking.Cancellable() {
		return
	}
	model.confirmCancelID = booking.ID
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusConfirmCancel
}

// handleConfirmCancelKeys resolves the y/N prompt. Only y (or Y)
// confirms; any other key dismisses the prompt.
func (model Model) handleConfirmCancelKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	bookingID := model.confirmCancelID
	model.confirmCancelID = ""
	model.focusRegion = model.priorFocus

	if message.Type == tea.KeyRunes && len(message.Runes) == 1 {
		if message.Runes[0] == 'y' || message.Runes[0] == 'Y' {
			return model, cancelBooking(model.client, bookingID)
		}
	}
	return model, nil
}

// handleBookingCancelled applies a cancellation outcome. Success
// flips the local booking to cancelled without a re-fetch; the server
// has already released the seats.
func (model Model) handleBookingCancelled(message bookingCancelledMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		return model.showNotice("Cancellation failed: "+api.Message(message.err, message.err.Error()), true)
	}

	reference := ""
	for index := range model.bookings {
		if model.bookings[index].ID == message.bookingID {
			model.bookings[index].Status = api.BookingStatusCancelled
			reference = model.bookings[index].BookingReference
		}
	}

	model.heatTracker.Ignite(message.bookingID, tui.HeatRemove, time.Now())
	var commands []tea.Cmd
	if !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}

	noticeModel, noticeCommand := model.showNotice("Cancelled booking "+reference, false)
	return noticeModel, tea.Batch(append(commands, noticeCommand)...)
}

// toggleAccount opens the sign-in modal when anonymous, signs out
// when signed in. Signing out drops the token, clears the persisted
// session, and falls back to the events page.
func (model Model) toggleAccount() (tea.Model, tea.Cmd) {
	if model.session == nil {
		model.openAuthModal()
		return model, nil
	}

	username := model.session.User.Username
	model.session = nil
	model.client.ClearToken()
	model.bookings = nil
	model.switchPage(PageEvents)

	noticeModel, noticeCommand := model.showNotice("Signed out "+username, false)
	return noticeModel, tea.Batch(clearSession(model.store), noticeCommand)
}

// showNotice sets the transient status bar message and schedules its
// fade.
func (model Model) showNotice(text string, isError bool) (Model, tea.Cmd) {
	model.statusNotice.sequence++
	model.statusNotice.text = text
	model.statusNotice.isError = isError
	return model, scheduleNoticeFade(model.statusNotice.sequence)
}

// listLength returns the number of rows in the active page's list.
func (model Model) listLength() int {
	if model.activePage == PageBookings {
		return len(model.bookings)
	}
	return len(model.visible)
}

// handleListKeys processes navigation while the list has focus.
func (model *Model) handleListKeys(message tea.KeyMsg) {
	pageSize := model.visibleHeight() / 2
	if pageSize < 1 {
		pageSize = 1
	}

	switch {
	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-pageSize)
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(pageSize)
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.ensureCursorVisible()
		model.syncDetailPane()
	case key.Matches(message, model.keys.End):
		model.cursor = model.listLength() - 1
		if model.cursor < 0 {
			model.cursor = 0
		}
		model.ensureCursorVisible()
		model.syncDetailPane()
	}
}

// moveCursor moves the list cursor by delta, clamped to the list.
func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	model.clampCursor()
	model.syncDetailPane()
}

func (model *Model) clampCursor() {
	length := model.listLength()
	if model.cursor >= length {
		model.cursor = length - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureCursorVisible()
}

// ensureCursorVisible adjusts scrollOffset so the cursor stays within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := model.listLength() - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// Layout arithmetic. The chrome is one header line on top and a
// separator plus help bar on the bottom.

func (model Model) visibleHeight() int {
	return model.height - 3
}

// headerVisible reports whether the page-tab header occupies the top
// line. On the events page the filter bar takes its place while the
// filter is active or holds text.
func (model Model) headerVisible() bool {
	if model.activePage != PageEvents {
		return true
	}
	return !model.filter.Active && model.filter.Input == ""
}

// listWidth returns the width of the list pane on the events page.
// The bookings page uses the full width.
func (model Model) listWidth() int {
	if model.activePage == PageBookings {
		return model.width
	}
	return int(float64(model.width) * model.splitRatio)
}

// detailWidth returns the detail pane width: total minus the list and
// the one-column divider.
func (model Model) detailWidth() int {
	return model.width - model.listWidth() - 1
}

// updatePaneSizes recomputes the viewport dimensions after a resize
// or split change.
func (model *Model) updatePaneSizes() {
	model.detailViewport.Width = model.detailWidth()
	model.detailViewport.Height = model.visibleHeight()
	model.ensureCursorVisible()
	// Content reflows at the new width.
	model.detailTicketID = ""
	model.syncDetailPane()
}

// syncDetailPane renders the selected ticket into the detail viewport
// when the selection changed. Scroll position resets on a new ticket
// and is preserved otherwise.
func (model *Model) syncDetailPane() {
	if model.activePage != PageEvents || !model.ready {
		return
	}

	ticket, ok := model.selectedTicket()
	if !ok {
		model.detailTicketID = ""
		model.detailViewport.SetContent("")
		return
	}
	if ticket.ID == model.detailTicketID {
		return
	}

	model.detailTicketID = ticket.ID
	contentWidth := model.detailWidth() - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	content := renderTicketDetail(ticket, model.theme, contentWidth)
	// One-column gutter on each side of the pane.
	var padded strings.Builder
	for _, line := range strings.Split(content, "\n") {
		padded.WriteString(" ")
		padded.WriteString(line)
		padded.WriteString("\n")
	}
	model.detailViewport.SetContent(padded.String())
	model.detailViewport.GotoTop()
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: either the page bar or the filter bar. The
	// filter bar replaces the page bar so the layout doesn't shift.
	if model.headerVisible() {
		sections = append(sections, model.renderHeader())
	} else {
		sections = append(sections, model.filter.View(model.theme, model.width))
	}

	if model.activePage == PageBookings {
		sections = append(sections, model.renderBookingsPane())
	} else {
		listView := model.renderEventsPane()
		divider := model.renderDivider()
		detailView := model.detailViewport.View()
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView))
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)

	sections = append(sections, model.renderHelp())

	output := strings.Join(sections, "\n")

	if model.activeDropdown != nil {
		dropdownLines := model.activeDropdown.Render(model.theme)
		output = tui.SpliceOverlay(output, dropdownLines,
			model.activeDropdown.AnchorX, model.activeDropdown.AnchorY)
	}
	if model.authForm != nil {
		modalLines, anchorX, anchorY := model.authForm.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, modalLines, anchorX, anchorY)
	}
	if model.bookingForm != nil {
		modalLines, anchorX, anchorY := model.bookingForm.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, modalLines, anchorX, anchorY)
	}

	return output
}

// pageDefs is the fixed list of page tabs shown in the header.
var pageDefs = []struct {
	label string
	page  Page
}{
	{"1:Events", PageEvents},
	{"2:My Bookings", PageBookings},
}

// renderHeader renders the page bar as a single line in the btop
// style: page labels embedded in a horizontal rule with account and
// listing stats on the right.
//
// Example: ─── 1:Events ─── 2:My Bookings ────── 12 events · concert ── alice (user) ─
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)
	statsStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	sep := separatorStyle.Render("─")

	leftParts := sep + sep + sep
	cursor := 3

	for index, pageDef := range pageDefs {
		leftParts += " "
		cursor++

		if model.activePage == pageDef.page {
			leftParts += activeStyle.Render(pageDef.label)
		} else {
			leftParts += inactiveStyle.Render(pageDef.label)
		}
		cursor += lipgloss.Width(pageDef.label)

		leftParts += " "
		cursor++

		sepCount := 3
		if index == len(pageDefs)-1 {
			sepCount = 1
		}
		for range sepCount {
			leftParts += sep
			cursor++
		}
	}

	statsText := model.headerStats()
	accountText := "not signed in"
	if model.session != nil {
		accountText = model.session.User.Username
		if model.session.User.Role != "" {
			accountText += " (" + model.session.User.Role + ")"
		}
	}

	statsRendered := statsStyle.Render(statsText)
	accountRendered := statsStyle.Render(accountText)

	rightPortion := " " + statsRendered + " " + sep + sep + " " + accountRendered + " " + sep
	rightWidth := 1 + lipgloss.Width(statsText) + 1 + 2 + 1 + lipgloss.Width(accountText) + 1 + 1

	fillCount := model.width - cursor - rightWidth
	if fillCount < 1 {
		fillCount = 1
	}
	fill := ""
	for range fillCount {
		fill += sep
	}

	return leftParts + fill + rightPortion
}

// headerStats summarizes the active page's listing for the header.
func (model Model) headerStats() string {
	if model.activePage == PageBookings {
		confirmed := 0
		for _, booking := range model.bookings {
			if booking.Status == api.BookingStatusConfirmed {
				confirmed++
			}
		}
		return fmt.Sprintf("%d bookings · %d confirmed", len(model.bookings), confirmed)
	}

	stats := fmt.Sprintf("%d events", len(model.visible))
	if model.typeFilter != "" {
		stats += " · " + model.typeFilter
	}
	return stats
}

// renderEventsPane renders the event list with the heat-free column
// layout and a right scrollbar.
func (model Model) renderEventsPane() string {
	listWidth := model.listWidth()
	focused := model.focusRegion == FocusList
	rowWidth := listWidth - 1

	renderer := NewEventListRenderer(model.theme, rowWidth)

	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.visible); index++ {
		result := model.visible[index]
		rows = append(rows, renderer.RenderRow(result.Ticket, index == model.cursor, result.NamePositions))
	}

	if len(rows) == 0 {
		rows = append(rows, model.renderListPlaceholder(rowWidth))
	}

	rendered := len(rows)
	if rendered < visible {
		emptyStyle := lipgloss.NewStyle().Width(rowWidth)
		for padding := rendered; padding < visible; padding++ {
			rows = append(rows, emptyStyle.Render(""))
		}
	}

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		len(model.visible), visible, model.scrollOffset,
		focused,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderBookingsPane renders the full-width bookings list with heat
// tinting on recently changed rows.
func (model Model) renderBookingsPane() string {
	rowWidth := model.width - 1
	renderer := NewBookingListRenderer(model.theme, rowWidth)

	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	now := time.Now()
	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.bookings); index++ {
		booking := model.bookings[index]
		selected := index == model.cursor
		row := renderer.RenderRow(booking, selected)
		// Selection highlight takes priority over the change glow.
		if !selected {
			if heat := model.heatTracker.Heat(booking.ID, now); heat > 0 {
				accentColor := model.theme.HotAccentPut
				if model.heatTracker.Kind(booking.ID) == tui.HeatRemove {
					accentColor = model.theme.HotAccentRemove
				}
				row = lipgloss.NewStyle().
					Background(accentColor).
					Width(rowWidth).
					MaxWidth(rowWidth).
					Render(row)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		rows = append(rows, model.renderListPlaceholder(rowWidth))
	}

	rendered := len(rows)
	if rendered < visible {
		emptyStyle := lipgloss.NewStyle().Width(rowWidth)
		for padding := rendered; padding < visible; padding++ {
			rows = append(rows, emptyStyle.Render(""))
		}
	}

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		len(model.bookings), visible, model.scrollOffset,
		model.focusRegion == FocusList,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderListPlaceholder renders the loading/empty line shown when the
// active list has no rows.
func (model Model) renderListPlaceholder(width int) string {
	text := "No events found."
	switch {
	case model.activePage == PageBookings && model.bookingsLoading:
		text = "Loading bookings…"
	case model.activePage == PageBookings:
		text = "No bookings yet."
	case model.ticketsLoading || !model.ticketsLoaded:
		text = "Loading events…"
	case model.filter.Input != "":
		text = "No events match the filter."
	}

	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Width(width).
		Render(" " + text)
}

// renderDivider renders the single-column vertical divider between
// the list and detail panes.
func (model Model) renderDivider() string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	dividerStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}

	return dividerStyle.Width(1).Height(visible).Render(strings.Join(lines, "\n"))
}

// renderHelp renders the bottom help bar with the focus indicator,
// key hints, list position, and any active notice or confirmation
// prompt.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	// The cancel confirmation replaces the whole help line so the
	// question is unmissable.
	if model.confirmCancelID != "" {
		promptStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.NoticeError)
		reference := model.confirmCancelID
		for _, booking := range model.bookings {
			if booking.ID == model.confirmCancelID {
				reference = booking.BookingReference
			}
		}
		return promptStyle.Render(fmt.Sprintf(" Cancel booking %s? y/N", reference))
	}

	focusIndicator := "LIST"
	switch model.focusRegion {
	case FocusDetail:
		focusIndicator = "DETAIL"
	case FocusFilter:
		focusIndicator = "FILTER"
	case FocusDropdown:
		focusIndicator = "SELECT"
	case FocusAuthModal:
		focusIndicator = "SIGN IN"
	case FocusBookingModal:
		focusIndicator = "BOOK"
	}

	help := fmt.Sprintf(" [%s] q quit  ↑↓ navigate  1/2 pages", focusIndicator)
	if model.activePage == PageEvents {
		help += "  Enter book  Tab focus  ]/[ resize  f type  / filter  r refresh"
	} else {
		help += "  x cancel  r refresh"
	}
	help += "  a account"

	length := model.listLength()
	if length > 0 {
		help += fmt.Sprintf("  %d/%d", model.cursor+1, length)
	}

	loading := model.activePage == PageEvents && model.ticketsLoading ||
		model.activePage == PageBookings && model.bookingsLoading
	if loading {
		loadingStyle := lipgloss.NewStyle().
			Foreground(model.theme.AccentColor).
			Bold(true)
		help += "  " + loadingStyle.Render("loading…")
	}

	if model.statusNotice.text != "" {
		color := model.theme.NoticeInfo
		if model.statusNotice.isError {
			color = model.theme.NoticeError
		}
		noticeStyle := lipgloss.NewStyle().
			Foreground(color).
			Bold(true)
		help += "  " + noticeStyle.Render(model.statusNotice.text)
	}

	return style.Render(help)
}
