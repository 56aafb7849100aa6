// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tickethub/tickethub/lib/api"
)

// Theme defines the color palette and visual properties for the
// TicketHub terminal UI. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic categories of the booking domain: event types get
// a color each so the listing scans well, and ticket and booking
// statuses color-code availability.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Event type colors, keyed by the wire values (movie, concert,
	// sports, theater, conference, other).
	EventTypeColors map[string]lipgloss.Color

	// Ticket availability.
	TicketActive  lipgloss.Color
	TicketSoldOut lipgloss.Color

	// Booking statuses.
	BookingConfirmed lipgloss.Color
	BookingCancelled lipgloss.Color

	// Prices and totals.
	PriceForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Status bar notices.
	NoticeInfo  lipgloss.Color
	NoticeError lipgloss.Color

	// Change animation: background tint for recently-changed rows.
	// HotAccentPut is used for created/updated bookings; HotAccentRemove
	// for cancellations.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Modal overlays.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// EventTypeColor returns the color for an event type. Unknown types
// get NormalText.
func (theme Theme) EventTypeColor(eventType string) lipgloss.Color {
	if color, ok := theme.EventTypeColors[eventType]; ok {
		return color
	}
	return theme.NormalText
}

// TicketStatusColor returns the color for a ticket's availability. A
// ticket with no remaining seats renders sold-out regardless of its
// status field.
func (theme Theme) TicketStatusColor(ticket api.Ticket) lipgloss.Color {
	if !ticket.Bookable() {
		return theme.TicketSoldOut
	}
	return theme.TicketActive
}

// BookingStatusColor returns the color for a booking status string.
// Unknown values get FaintText.
func (theme Theme) BookingStatusColor(status string) lipgloss.Color {
	switch status {
	case api.BookingStatusConfirmed:
		return theme.BookingConfirmed
	case api.BookingStatusCancelled:
		return theme.BookingCancelled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	EventTypeColors: map[string]lipgloss.Color{
		api.EventTypeMovie:      lipgloss.Color("75"),  // blue
		api.EventTypeConcert:    lipgloss.Color("141"), // light purple
		api.EventTypeSports:     lipgloss.Color("114"), // green
		api.EventTypeTheater:    lipgloss.Color("208"), // orange
		api.EventTypeConference: lipgloss.Color("220"), // amber
		api.EventTypeOther:      lipgloss.Color("245"), // gray
	},

	TicketActive:  lipgloss.Color("114"), // green
	TicketSoldOut: lipgloss.Color("196"), // red

	BookingConfirmed: lipgloss.Color("114"), // green
	BookingCancelled: lipgloss.Color("245"), // gray

	PriceForeground: lipgloss.Color("220"), // amber

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("220"),

	NoticeInfo:  lipgloss.Color("114"),
	NoticeError: lipgloss.Color("196"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	SearchHighlightBackground: lipgloss.Color("58"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}
