// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/session"
	"github.com/tickethub/tickethub/lib/tui"
)

// ticketsLoadedMsg delivers the result of an event listing fetch.
// The filter is echoed back so a stale response (the user changed the
// type filter while the fetch was in flight) can be discarded.
type ticketsLoadedMsg struct {
	filter  api.TicketFilter
	tickets []api.Ticket
	err     error
}

// authResultMsg delivers the result of a login or registration call.
type authResultMsg struct {
	registered bool
	response   *api.AuthResponse
	err        error
}

// bookingCreatedMsg delivers the result of a booking submission.
type bookingCreatedMsg struct {
	booking *api.Booking
	err     error
}

// bookingsLoadedMsg delivers the result of a My Bookings fetch.
type bookingsLoadedMsg struct {
	bookings []api.Booking
	err      error
}

// bookingCancelledMsg delivers the result of a cancellation call. The
// booking ID is echoed back for the local status update.
type bookingCancelledMsg struct {
	bookingID string
	err       error
}

// sessionSaveFailedMsg reports a session persistence failure. The
// login itself succeeded; the token just won't survive a restart.
type sessionSaveFailedMsg struct {
	err error
}

// noticeFadeMsg clears a transient status bar notice after its delay.
type noticeFadeMsg struct {
	sequence int
}

// heatTickMsg drives the change glow animation on the bookings list.
type heatTickMsg struct{}

// noticeFadeDelay is how long status bar notices stay visible.
const noticeFadeDelay = 5 * time.Second

func fetchTickets(client *api.Client, filter api.TicketFilter) tea.Cmd {
	return func() tea.Msg {
		tickets, err := client.ListTickets(context.Background(), filter)
		return ticketsLoadedMsg{filter: filter, tickets: tickets, err: err}
	}
}

func submitLogin(client *api.Client, request api.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		response, err := client.Login(context.Background(), request)
		return authResultMsg{response: response, err: err}
	}
}

func submitRegistration(client *api.Client, request api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		response, err := client.Register(context.Background(), request)
		return authResultMsg{registered: true, response: response, err: err}
	}
}

func submitBooking(client *api.Client, request api.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		booking, err := client.CreateBooking(context.Background(), request)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

func fetchBookings(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		bookings, err := client.ListBookings(context.Background(), userID)
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

func cancelBooking(client *api.Client, bookingID string) tea.Cmd {
	return func() tea.Msg {
		err := client.CancelBooking(context.Background(), bookingID)
		return bookingCancelledMsg{bookingID: bookingID, err: err}
	}
}

// persistSession writes the session to the store off the Update
// loop. A write failure must not undo a successful login, so it only
// surfaces as a notice.
func persistSession(store session.Store, current *session.Session) tea.Cmd {
	return func() tea.Msg {
		if err := store.Save(current); err != nil {
			return sessionSaveFailedMsg{err: err}
		}
		return nil
	}
}

// clearSession removes the persisted session on sign-out.
func clearSession(store session.Store) tea.Cmd {
	return func() tea.Msg {
		if err := store.Clear(); err != nil {
			return sessionSaveFailedMsg{err: err}
		}
		return nil
	}
}

// scheduleNoticeFade arranges for the notice with the given sequence
// number to fade. A newer notice bumps the sequence, so stale fades
// are ignored.
func scheduleNoticeFade(sequence int) tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

// scheduleHeatTick drives the next animation frame while any booking
// rows are glowing.
func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}
