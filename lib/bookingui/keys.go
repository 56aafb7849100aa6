// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the booking TUI.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or detail scrolling
	// depending on current focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching between the list and the detail pane.
	FocusToggle key.Binding

	// Splitter resize.
	SplitGrow   key.Binding // Grow list pane (push detail right).
	SplitShrink key.Binding // Shrink list pane (push detail left).

	// Page switching.
	PageEvents   key.Binding
	PageBookings key.Binding

	// Events page.
	TypeFilter     key.Binding // Open the event type dropdown.
	FilterActivate key.Binding // Enter fuzzy filter mode.
	FilterClear    key.Binding // Clear filter and exit filter mode.
	Refresh        key.Binding // Re-fetch the current listing.
	Book           key.Binding // Start the booking flow for the selected event.

	// My Bookings page.
	CancelBooking key.Binding // Open the cancel confirmation for the selected booking.

	// Account: opens the sign-in modal when signed out, signs out
	// when signed in.
	Account key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	SplitGrow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "grow list"),
	),
	SplitShrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "shrink list"),
	),
	PageEvents: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "events"),
	),
	PageBookings: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "bookings"),
	),
	TypeFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "type filter"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Book: key.NewBinding(
		key.WithKeys("enter", "b"),
		key.WithHelp("Enter", "book"),
	),
	CancelBooking: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel booking"),
	),
	Account: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "account"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
