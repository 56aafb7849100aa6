// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/session"
)

// testClient builds a client pointed at a non-routable address. Model
// tests never execute the returned tea.Cmd closures, so no requests
// are actually made; results are injected as messages directly.
func testClient(t *testing.T) *api.Client {
	t.Helper()
	client, err := api.NewClient(api.ClientConfig{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func testTickets() []api.Ticket {
	return []api.Ticket{
		{
			ID:             "t1",
			EventName:      "Jazz Night at the Blue Room",
			EventType:      api.EventTypeConcert,
			Venue:          "Blue Room",
			Date:           "2026-10-01",
			Time:           "20:00",
			Price:          decimal.RequireFromString("49.50"),
			TotalSeats:     200,
			AvailableSeats: 120,
			Status:         api.TicketStatusActive,
			Description:    "An evening of **live jazz**.",
		},
		{
			ID:             "t2",
			EventName:      "Hamilton",
			EventType:      api.EventTypeTheater,
			Venue:          "Orpheum",
			Date:           "2026-11-05",
			Time:           "19:30",
			Price:          decimal.RequireFromString("189.00"),
			TotalSeats:     900,
			AvailableSeats: 0,
			Status:         api.TicketStatusSoldOut,
		},
		{
			ID:             "t3",
			EventName:      "City Derby",
			EventType:      api.EventTypeSports,
			Venue:          "North Stadium",
			Date:           "2026-09-20",
			Time:           "15:00",
			Price:          decimal.RequireFromString("35.00"),
			TotalSeats:     40000,
			AvailableSeats: 8200,
			Status:         api.TicketStatusActive,
		},
	}
}

func testBookings() []api.Booking {
	return []api.Booking{
		{
			ID:               "b1",
			BookingReference: "TKT-A1B2C3",
			UserID:           "u1",
			TicketID:         "t1",
			EventName:        "Jazz Night at the Blue Room",
			Venue:            "Blue Room",
			EventDate:        "2026-10-01",
			EventTime:        "20:00",
			Quantity:         2,
			TotalPrice:       decimal.RequireFromString("99.00"),
			Status:           api.BookingStatusConfirmed,
			CreatedAt:        "2026-09-01T10:00:00Z",
		},
		{
			ID:               "b2",
			BookingReference: "TKT-D4E5F6",
			UserID:           "u1",
			TicketID:         "t3",
			EventName:        "City Derby",
			Quantity:         1,
			TotalPrice:       decimal.RequireFromString("35.00"),
			Status:           api.BookingStatusCancelled,
			CreatedAt:        "2026-08-15T09:00:00Z",
		},
	}
}

func testUser() api.User {
	return api.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Role:     "user",
	}
}

// sizedModel builds a model with terminal dimensions and the given
// ticket listing already applied.
func sizedModel(t *testing.T, restored *session.Session) Model {
	t.Helper()
	model := NewModel(testClient(t), session.NewFileStore(t.TempDir()+"/session.json"), restored)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(ticketsLoadedMsg{tickets: testTickets()})
	return updated.(Model)
}

func keyRune(character rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}}
}

func TestModelView(t *testing.T) {
	model := NewModel(testClient(t), session.NewFileStore(t.TempDir()+"/s.json"), nil)

	// Before receiving WindowSizeMsg, View returns loading text.
	if view := model.View(); view != "Loading..." {
		t.Errorf("expected 'Loading...' before WindowSizeMsg, got %q", view)
	}

	model = sizedModel(t, nil)
	view := model.View()

	if !strings.Contains(view, "1:Events") {
		t.Error("view should contain page labels")
	}
	if !strings.Contains(view, "Jazz Night at the Blue Room") {
		t.Error("view should contain first event name")
	}
	if !strings.Contains(view, "sold out") {
		t.Error("view should mark the sold-out event")
	}
	if !strings.Contains(view, "$49.50") {
		t.Error("view should contain the first event price")
	}
	if !strings.Contains(view, "3 events") {
		t.Error("view should contain the listing count")
	}
	if !strings.Contains(view, "not signed in") {
		t.Error("view should show the anonymous account state")
	}
	if !strings.Contains(view, "q quit") {
		t.Error("view should contain help text")
	}
}

func TestModelNavigation(t *testing.T) {
	model := sizedModel(t, nil)

	if model.cursor != 0 {
		t.Fatalf("initial cursor should be 0, got %d", model.cursor)
	}

	updated, _ := model.Update(keyRune('j'))
	model = updated.(Model)
	if model.cursor != 1 {
		t.Errorf("cursor after j should be 1, got %d", model.cursor)
	}

	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	if model.cursor != 2 {
		t.Errorf("cursor should clamp at 2 (last event), got %d", model.cursor)
	}

	updated, _ = model.Update(keyRune('g'))
	model = updated.(Model)
	if model.cursor != 0 {
		t.Errorf("cursor after g should be 0, got %d", model.cursor)
	}

	updated, _ = model.Update(keyRune('G'))
	model = updated.(Model)
	if model.cursor != 2 {
		t.Errorf("cursor after G should be 2, got %d", model.cursor)
	}
}

func TestStaleTicketsDropped(t *testing.T) {
	model := sizedModel(t, nil)
	model.typeFilter = api.EventTypeConcert

	// A response for the old (unfiltered) listing arrives after the
	// filter changed. It must not replace the listing.
	updated, _ := model.Update(ticketsLoadedMsg{
		filter:  api.TicketFilter{},
		tickets: []api.Ticket{{ID: "stale", EventName: "Stale Event"}},
	})
	model = updated.(Model)

	for _, result := range model.visible {
		if result.Ticket.ID == "stale" {
			t.Fatal("stale listing response should have been dropped")
		}
	}

	// The matching response lands.
	updated, _ = model.Update(ticketsLoadedMsg{
		filter:  api.TicketFilter{EventType: api.EventTypeConcert},
		tickets: testTickets()[:1],
	})
	model = updated.(Model)
	if len(model.visible) != 1 || model.visible[0].Ticket.ID != "t1" {
		t.Fatalf("expected the concert listing to apply, got %d rows", len(model.visible))
	}
}

func TestFetchFailureShowsNotice(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(ticketsLoadedMsg{err: errors.New("connection refused")})
	model = updated.(Model)

	// The previous listing stays on screen alongside the notice.
	view := model.View()
	if !strings.Contains(view, "Loading events failed") {
		t.Error("view should contain the fetch failure notice")
	}
	if !strings.Contains(view, "Jazz Night at the Blue Room") {
		t.Error("previous listing should survive a failed refresh")
	}

	// The scheduled fade clears it; a stale fade for an older notice
	// is ignored.
	updated, _ = model.Update(noticeFadeMsg{sequence: model.statusNotice.sequence - 1})
	model = updated.(Model)
	if model.statusNotice.text == "" {
		t.Fatal("stale fade should not clear a newer notice")
	}
	updated, _ = model.Update(noticeFadeMsg{sequence: model.statusNotice.sequence})
	model = updated.(Model)
	if model.statusNotice.text != "" {
		t.Fatal("fade with matching sequence should clear the notice")
	}
}

func TestFuzzyFilterFlow(t *testing.T) {
	model := sizedModel(t, nil)

	// '/' activates the filter.
	updated, _ := model.Update(keyRune('/'))
	model = updated.(Model)
	if model.focusRegion != FocusFilter {
		t.Fatalf("focus should be FocusFilter, got %v", model.focusRegion)
	}

	// Type "jazz": only the jazz event remains.
	for _, character := range "jazz" {
		updated, _ = model.Update(keyRune(character))
		model = updated.(Model)
	}
	if len(model.visible) != 1 || model.visible[0].Ticket.ID != "t1" {
		t.Fatalf("expected only the jazz event to match, got %d rows", len(model.visible))
	}

	// Enter confirms and returns focus to the list, filter applied.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.focusRegion != FocusList {
		t.Errorf("enter should return focus to the list, got %v", model.focusRegion)
	}
	if len(model.visible) != 1 {
		t.Error("confirmed filter should stay applied")
	}

	// Esc clears the filter entirely.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if len(model.visible) != 3 {
		t.Errorf("cleared filter should restore all rows, got %d", len(model.visible))
	}
}

func TestBookingsPageRequiresAuth(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('2'))
	model = updated.(Model)

	if model.activePage != PageEvents {
		t.Error("page should not switch while anonymous")
	}
	if model.focusRegion != FocusAuthModal || model.authForm == nil {
		t.Fatal("pressing 2 while anonymous should open the sign-in modal")
	}
	if model.pending != pendingBookings {
		t.Error("the bookings navigation should be recorded as pending")
	}

	// Successful sign-in resumes the navigation.
	updated, command := model.Update(authResultMsg{
		response: &api.AuthResponse{User: testUser(), Token: "tok-1"},
	})
	model = updated.(Model)
	if command == nil {
		t.Fatal("auth success should produce commands (persist + fetch)")
	}
	if model.activePage != PageBookings {
		t.Errorf("auth success should land on the bookings page, got %v", model.activePage)
	}
	if model.authForm != nil {
		t.Error("modal should close on success")
	}
	if model.session == nil || model.session.User.Username != "alice" {
		t.Error("session should be populated from the auth response")
	}
}

func TestBookingsPageWithSession(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)

	updated, command := model.Update(keyRune('2'))
	model = updated.(Model)
	if model.activePage != PageBookings {
		t.Fatal("signed-in user should switch pages directly")
	}
	if command == nil {
		t.Fatal("switching to bookings should trigger a fetch")
	}

	updated, _ = model.Update(bookingsLoadedMsg{bookings: testBookings()})
	model = updated.(Model)

	view := model.View()
	if !strings.Contains(view, "TKT-A1B2C3") {
		t.Error("view should contain the booking reference")
	}
	if !strings.Contains(view, "alice (user)") {
		t.Error("header should show the signed-in account")
	}
	if !strings.Contains(view, "2 bookings · 1 confirmed") {
		t.Error("header should summarize the bookings")
	}
}

func TestAuthFailureKeepsModalOpen(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('a'))
	model = updated.(Model)
	if model.authForm == nil {
		t.Fatal("a should open the sign-in modal")
	}

	updated, _ = model.Update(authResultMsg{
		err: &api.Error{Message: "invalid credentials", StatusCode: 401},
	})
	model = updated.(Model)

	if model.authForm == nil {
		t.Fatal("modal should stay open on failure")
	}
	if model.authForm.ErrorText != "invalid credentials" {
		t.Errorf("server message should surface inline, got %q", model.authForm.ErrorText)
	}
	if model.authForm.InFlight {
		t.Error("in-flight flag should reset so the user can retry")
	}
	if model.session != nil {
		t.Error("no session should be created on failure")
	}
}

func TestBookingFlow(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)

	// Enter on the first event opens the booking modal with contact
	// fields pre-filled from the session user.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.focusRegion != FocusBookingModal || model.bookingForm == nil {
		t.Fatal("enter on a bookable event should open the booking modal")
	}
	request := model.bookingForm.Request(model.session.User)
	if request.ContactEmail != "alice@example.com" {
		t.Errorf("contact email should pre-fill from the profile, got %q", request.ContactEmail)
	}
	if request.Quantity != 1 {
		t.Errorf("quantity should default to 1, got %d", request.Quantity)
	}

	// Success closes the modal, lands on My Bookings, and announces
	// the reference.
	created := testBookings()[0]
	updated, command := model.Update(bookingCreatedMsg{booking: &created})
	model = updated.(Model)
	if model.bookingForm != nil {
		t.Error("modal should close on success")
	}
	if model.activePage != PageBookings {
		t.Error("success should navigate to My Bookings")
	}
	if command == nil {
		t.Fatal("success should trigger the bookings fetch")
	}
	if !strings.Contains(model.statusNotice.text, "TKT-A1B2C3") {
		t.Errorf("notice should include the booking reference, got %q", model.statusNotice.text)
	}
}

func TestBookingSoldOut(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)

	// Move to the sold-out event and try to book it.
	updated, _ := model.Update(keyRune('j'))
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if model.bookingForm != nil {
		t.Fatal("sold-out events must not open the booking modal")
	}
	if !strings.Contains(model.statusNotice.text, "sold out") {
		t.Errorf("expected a sold-out notice, got %q", model.statusNotice.text)
	}
}

func TestBookingFailureKeepsModalOpen(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	updated, _ = model.Update(bookingCreatedMsg{
		err: &api.Error{Message: "not enough seats available", StatusCode: 400},
	})
	model = updated.(Model)

	if model.bookingForm == nil {
		t.Fatal("modal should stay open on failure")
	}
	if model.bookingForm.ErrorText != "not enough seats available" {
		t.Errorf("server message should surface inline, got %q", model.bookingForm.ErrorText)
	}
	if model.activePage != PageEvents {
		t.Error("failure must not navigate away")
	}
}

func TestCancelConfirmationFlow(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)
	model.switchPage(PageBookings)
	updated, _ := model.Update(bookingsLoadedMsg{bookings: testBookings()})
	model = updated.(Model)

	// x arms the confirmation for the confirmed booking.
	updated, _ = model.Update(keyRune('x'))
	model = updated.(Model)
	if model.focusRegion != FocusConfirmCancel || model.confirmCancelID != "b1" {
		t.Fatalf("x should arm the confirmation for b1, got %q", model.confirmCancelID)
	}
	if !strings.Contains(model.View(), "Cancel booking TKT-A1B2C3? y/N") {
		t.Error("help bar should show the confirmation prompt")
	}

	// n dismisses without a command.
	updated, command := model.Update(keyRune('n'))
	model = updated.(Model)
	if command != nil {
		t.Error("declining must not issue the cancellation")
	}
	if model.confirmCancelID != "" || model.focusRegion != FocusList {
		t.Error("declining should dismiss the prompt")
	}

	// y issues the cancellation.
	updated, _ = model.Update(keyRune('x'))
	model = updated.(Model)
	updated, command = model.Update(keyRune('y'))
	model = updated.(Model)
	if command == nil {
		t.Fatal("confirming should issue the cancellation command")
	}

	// The result flips the local row without a re-fetch.
	updated, _ = model.Update(bookingCancelledMsg{bookingID: "b1"})
	model = updated.(Model)
	if model.bookings[0].Status != api.BookingStatusCancelled {
		t.Error("confirmed booking should flip to cancelled locally")
	}
}

func TestCancelSkipsCancelledBooking(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)
	model.switchPage(PageBookings)
	updated, _ := model.Update(bookingsLoadedMsg{bookings: testBookings()})
	model = updated.(Model)

	// Move to the already-cancelled booking.
	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	updated, _ = model.Update(keyRune('x'))
	model = updated.(Model)

	if model.confirmCancelID != "" || model.focusRegion == FocusConfirmCancel {
		t.Error("x on a cancelled booking should do nothing")
	}
}

func TestSignOut(t *testing.T) {
	restored := &session.Session{User: testUser(), Token: "tok-1"}
	model := sizedModel(t, restored)
	model.switchPage(PageBookings)

	updated, command := model.Update(keyRune('a'))
	model = updated.(Model)

	if model.session != nil {
		t.Error("a while signed in should sign out")
	}
	if model.activePage != PageEvents {
		t.Error("signing out should fall back to the events page")
	}
	if command == nil {
		t.Fatal("signing out should clear the persisted session")
	}
	if !strings.Contains(model.statusNotice.text, "Signed out") {
		t.Errorf("expected a sign-out notice, got %q", model.statusNotice.text)
	}
}

func TestTypeDropdownFlow(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('f'))
	model = updated.(Model)
	if model.focusRegion != FocusDropdown || model.activeDropdown == nil {
		t.Fatal("f should open the type dropdown")
	}
	// "all types" plus the six event types.
	if len(model.activeDropdown.Options) != 7 {
		t.Fatalf("expected 7 dropdown options, got %d", len(model.activeDropdown.Options))
	}

	// Select the second option (first real type) and confirm a fetch
	// with the new filter fires.
	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if model.activeDropdown != nil {
		t.Error("selection should dismiss the dropdown")
	}
	if model.typeFilter != api.EventTypeMovie {
		t.Errorf("type filter should be %q, got %q", api.EventTypeMovie, model.typeFilter)
	}
	if command == nil {
		t.Fatal("changing the type filter should re-fetch the listing")
	}

	// Esc dismisses without changing the filter.
	updated, _ = model.Update(keyRune('f'))
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if model.activeDropdown != nil {
		t.Error("esc should dismiss the dropdown")
	}
	if model.typeFilter != api.EventTypeMovie {
		t.Error("esc must not change the filter")
	}
}

func TestModelQuit(t *testing.T) {
	model := sizedModel(t, nil)

	_, command := model.Update(keyRune('q'))
	if command == nil {
		t.Fatal("q should produce the quit command")
	}
	if message := command(); message != (tea.QuitMsg{}) {
		t.Errorf("expected tea.QuitMsg, got %T", message)
	}
}

func clickAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func TestHeaderClickSwitchesPage(t *testing.T) {
	model := sizedModel(t, &session.Session{User: testUser(), Token: "tok"})

	// The "2:My Bookings" label sits after "───", a space, "1:Events",
	// a space, and three more rule characters.
	updated, command := model.Update(clickAt(20, 0))
	model = updated.(Model)
	if model.activePage != PageBookings {
		t.Fatal("clicking the bookings tab should switch pages")
	}
	if command == nil {
		t.Fatal("entering the bookings page should fetch bookings")
	}

	updated, _ = model.Update(clickAt(5, 0))
	model = updated.(Model)
	if model.activePage != PageEvents {
		t.Error("clicking the events tab should switch back")
	}
}

func TestHeaderClickRequiresAuth(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(clickAt(20, 0))
	model = updated.(Model)
	if model.activePage != PageEvents {
		t.Error("anonymous click on the bookings tab must not switch pages")
	}
	if model.focusRegion != FocusAuthModal || model.authForm == nil {
		t.Fatal("anonymous click on the bookings tab should open the auth modal")
	}
	if model.pending != pendingBookings {
		t.Error("the interrupted navigation should be pending")
	}
}

func TestWheelMovesListCursor(t *testing.T) {
	model := sizedModel(t, nil)

	wheel := tea.MouseMsg{
		X:      5,
		Y:      10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	}
	updated, _ := model.Update(wheel)
	model = updated.(Model)
	if model.cursor != 2 {
		t.Errorf("wheel down over the list should move the cursor, got %d", model.cursor)
	}
}

func TestDropdownClickSelects(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('f'))
	model = updated.(Model)
	if model.activeDropdown == nil {
		t.Fatal("f should open the type dropdown")
	}

	// Option 1 ("movie") renders one row below the dropdown anchor.
	updated, command := model.Update(clickAt(model.activeDropdown.AnchorX+2, model.activeDropdown.AnchorY+1))
	model = updated.(Model)
	if model.activeDropdown != nil {
		t.Error("selecting an option should dismiss the dropdown")
	}
	if model.typeFilter != api.EventTypeMovie {
		t.Errorf("click should select the movie filter, got %q", model.typeFilter)
	}
	if command == nil {
		t.Fatal("changing the type filter should re-fetch the listing")
	}
}

func TestDropdownClickOutsideDismisses(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('f'))
	model = updated.(Model)

	updated, _ = model.Update(clickAt(100, 20))
	model = updated.(Model)
	if model.activeDropdown != nil {
		t.Error("clicking outside should dismiss the dropdown")
	}
	if model.typeFilter != "" {
		t.Error("dismissing must not change the filter")
	}
}

func TestAuthSubmitWhileInFlight(t *testing.T) {
	model := sizedModel(t, nil)

	updated, _ := model.Update(keyRune('a'))
	model = updated.(Model)
	for _, character := range "alice" {
		updated, _ = model.Update(keyRune(character))
		model = updated.(Model)
	}

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if command == nil {
		t.Fatal("enter should dispatch the sign-in call")
	}
	if !model.authForm.InFlight {
		t.Fatal("a dispatched sign-in should mark the form in flight")
	}

	// A second enter while the call is out must not dispatch again.
	updated, command = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if command != nil {
		t.Error("enter during an in-flight sign-in must be a no-op")
	}
	if !model.authForm.InFlight {
		t.Error("the form should stay in flight")
	}

	// Editing keystrokes are swallowed too.
	updated, _ = model.Update(keyRune('x'))
	model = updated.(Model)
	if model.authForm.Username() != "alice" {
		t.Errorf("typing during an in-flight sign-in must not edit fields, got %q", model.authForm.Username())
	}
}

func TestBookingSubmitWhileInFlight(t *testing.T) {
	model := sizedModel(t, &session.Session{User: testUser(), Token: "tok"})

	updated, _ := model.Update(keyRune('b'))
	model = updated.(Model)
	if model.bookingForm == nil {
		t.Fatal("b on a bookable event should open the booking modal")
	}

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if command == nil {
		t.Fatal("enter should dispatch the booking call")
	}
	if !model.bookingForm.InFlight {
		t.Fatal("a dispatched booking should mark the form in flight")
	}

	updated, command = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if command != nil {
		t.Error("enter during an in-flight booking must be a no-op")
	}

	// Quantity editing is swallowed while the call is out.
	updated, _ = model.Update(keyRune('+'))
	model = updated.(Model)
	if model.bookingForm.Quantity() != 1 {
		t.Errorf("quantity must not change during an in-flight booking, got %d", model.bookingForm.Quantity())
	}
}

func TestHeaderClickIgnoredDuringFilter(t *testing.T) {
	model := sizedModel(t, nil)

	// The filter bar replaces the header line, so the tab positions no
	// longer correspond to anything visible.
	updated, _ := model.Update(keyRune('/'))
	model = updated.(Model)

	updated, _ = model.Update(clickAt(20, 0))
	model = updated.(Model)
	if model.activePage != PageEvents {
		t.Error("tab click with the filter bar shown must not switch pages")
	}
	if model.authForm != nil {
		t.Error("tab click with the filter bar shown must not open the auth modal")
	}
	if model.focusRegion != FocusFilter {
		t.Error("the filter should keep focus")
	}

	// Confirming the filter keeps its text on the top line; tabs stay
	// hidden and unclickable.
	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	updated, _ = model.Update(clickAt(20, 0))
	model = updated.(Model)
	if model.activePage != PageEvents || model.authForm != nil {
		t.Error("tab click with filter text shown must not switch pages")
	}
}
