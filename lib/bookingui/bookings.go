// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/money"
	"github.com/tickethub/tickethub/lib/tui"
)

// Column widths for the bookings list. The event name column fills
// remaining space.
const (
	// columnWidthReference fits references like "TKT-A1B2C3D4".
	columnWidthReference = 15
	columnWidthWhen      = 18 // "2026-07-01 19:30"
	columnWidthQuantity  = 4  // "×12"
	columnWidthTotal     = 11
	columnWidthBooked    = 12 // "  2026-06-14"
	// bookingLeftWidth is indent (1) + status icon (1) + space (1).
	bookingLeftWidth = 3
)

// bookingStatusIcon returns the single-character status indicator for
// a booking.
func bookingStatusIcon(status string) string {
	switch status {
	case api.BookingStatusConfirmed:
		return "●"
	case api.BookingStatusCancelled:
		return "✗"
	default:
		return "○"
	}
}

// BookingListRenderer handles the table-style rendering of booking
// rows within a given width.
type BookingListRenderer struct {
	theme tui.Theme
	width int
}

// NewBookingListRenderer creates a BookingListRenderer for the given
// width.
func NewBookingListRenderer(theme tui.Theme, width int) BookingListRenderer {
	return BookingListRenderer{theme: theme, width: width}
}

// bookedOn extracts the calendar date from the booking's creation
// timestamp (RFC 3339 from the backend).
func bookedOn(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}

// RenderRow renders a single booking as a formatted table row.
//
// Row layout: indent + status icon + reference + event + when + qty +
// total + booked-on date.
//
//	● TKT-A1B2C3D4  Jazz Night at the Blue Room  2026-07-01 19:30  ×2   $99.00  2026-06-14
//	✗ TKT-E5F6G7H8  Hamilton                     2026-08-12 20:00  ×1  $189.00  2026-05-02
//
// Cancelled bookings render with faint text so confirmed ones stand
// out.
func (renderer BookingListRenderer) RenderRow(booking api.Booking, selected bool) string {
	nameWidth := renderer.width - bookingLeftWidth - columnWidthReference - columnWidthWhen - columnWidthQuantity - columnWidthTotal - columnWidthBooked
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := booking.EventName
	if lipgloss.Width(name) > nameWidth {
		name = truncateToWidth(name, nameWidth-1) + "…"
	}
	name += strings.Repeat(" ", nameWidth-lipgloss.Width(name))

	when := booking.EventDate
	if booking.EventTime != "" {
		when += " " + booking.EventTime
	}
	if lipgloss.Width(when) > columnWidthWhen {
		when = truncateToWidth(when, columnWidthWhen)
	}

	quantityText := fmt.Sprintf("×%d", booking.Quantity)
	totalText := money.FormatUSD(booking.TotalPrice)

	if selected {
		return renderer.renderSelectedRow(booking, name, when, quantityText, totalText)
	}
	return renderer.renderNormalRow(booking, name, when, quantityText, totalText)
}

func (renderer BookingListRenderer) renderNormalRow(booking api.Booking, name, when, quantityText, totalText string) string {
	statusColor := renderer.theme.BookingStatusColor(booking.Status)

	textColor := renderer.theme.NormalText
	priceColor := renderer.theme.PriceForeground
	if booking.Status == api.BookingStatusCancelled {
		textColor = renderer.theme.FaintText
		priceColor = renderer.theme.FaintText
	}

	statusStyle := lipgloss.NewStyle().Foreground(statusColor)
	referenceStyle := lipgloss.NewStyle().
		Width(columnWidthReference).
		Foreground(statusColor)
	textStyle := lipgloss.NewStyle().Foreground(textColor)
	whenStyle := lipgloss.NewStyle().
		Width(columnWidthWhen).
		Foreground(renderer.theme.FaintText)
	quantityStyle := lipgloss.NewStyle().
		Width(columnWidthQuantity).
		Foreground(textColor)
	totalStyle := lipgloss.NewStyle().
		Width(columnWidthTotal).
		Align(lipgloss.Right).
		Foreground(priceColor)
	bookedStyle := lipgloss.NewStyle().
		Width(columnWidthBooked).
		Align(lipgloss.Right).
		Foreground(renderer.theme.FaintText)

	row := " " +
		statusStyle.Render(bookingStatusIcon(booking.Status)) +
		" " +
		referenceStyle.Render(booking.BookingReference) +
		textStyle.Render(name) +
		whenStyle.Render(when) +
		quantityStyle.Render(quantityText) +
		totalStyle.Render(totalText) +
		bookedStyle.Render(bookedOn(booking.CreatedAt))

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

func (renderer BookingListRenderer) renderSelectedRow(booking api.Booking, name, when, quantityText, totalText string) string {
	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)

	row := " " +
		baseStyle.Render(bookingStatusIcon(booking.Status)) +
		" " +
		baseStyle.Width(columnWidthReference).Render(booking.BookingReference) +
		baseStyle.Render(name) +
		baseStyle.Width(columnWidthWhen).Render(when) +
		baseStyle.Width(columnWidthQuantity).Render(quantityText) +
		baseStyle.Width(columnWidthTotal).Align(lipgloss.Right).Render(totalText) +
		baseStyle.Width(columnWidthBooked).Align(lipgloss.Right).Render(bookedOn(booking.CreatedAt))

	return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}
