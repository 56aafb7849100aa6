// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui implements the interactive terminal UI for
// browsing events and managing bookings.
//
// The UI is a bubbletea program with two pages: the event listing
// (two-pane, list plus scrollable detail) and the signed-in user's
// bookings. All backend calls run as tea.Cmd closures against
// [api.Client] and deliver their results as messages, so the Update
// loop never blocks on the network.
//
// Input routing is focus-driven: modal overlays (sign-in form,
// booking form, type dropdown, cancel confirmation) capture the
// keyboard entirely while open; otherwise keys act on the focused
// pane. Fetch failures never tear down the UI — they surface as
// transient status bar notices and the last good listing stays on
// screen.
package bookingui
