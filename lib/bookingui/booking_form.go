// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/money"
	"github.com/tickethub/tickethub/lib/tui"
)

// Booking form field indices. Quantity is edited with +/- and digit
// keys rather than a text field, so only the contact fields use
// TextField.
const (
	bookingFieldQuantity = iota
	bookingFieldEmail
	bookingFieldPhone
	bookingFieldCount
)

// BookingForm is the modal for reserving seats on a ticket. Quantity
// stays clamped to [1, availableSeats] at all times; the total price
// recomputes from the ticket's decimal price on every change.
type BookingForm struct {
	Ticket api.Ticket

	// ErrorText renders above the fields when a submission fails.
	ErrorText string

	// InFlight blocks re-submission while a call is out.
	InFlight bool

	quantity   int
	email      tui.TextField
	phone      tui.TextField
	focusIndex int
	theme      tui.Theme
}

// NewBookingForm creates a booking form for the given ticket with
// quantity 1 and contact fields pre-filled from the signed-in user.
func NewBookingForm(theme tui.Theme, ticket api.Ticket, user api.User) *BookingForm {
	form := &BookingForm{
		Ticket:   ticket,
		quantity: 1,
		email:    tui.NewTextField("email"),
		phone:    tui.NewTextField("phone"),
		theme:    theme,
	}
	form.email.SetValue(user.Email)
	form.phone.SetValue(user.Phone)
	return form
}

// Quantity returns the current clamped seat count.
func (form *BookingForm) Quantity() int {
	return form.quantity
}

// clampQuantity keeps quantity within [1, availableSeats]. A ticket
// reporting zero available seats still clamps to 1; the server rejects
// the booking and the form shows its error.
func (form *BookingForm) clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if form.Ticket.AvailableSeats > 0 && quantity > form.Ticket.AvailableSeats {
		return form.Ticket.AvailableSeats
	}
	return quantity
}

// AdjustQuantity moves the quantity by delta, clamped.
func (form *BookingForm) AdjustQuantity(delta int) {
	form.quantity = form.clampQuantity(form.quantity + delta)
}

// typeQuantityDigit appends a typed digit to the quantity as if it
// were being entered left to right, clamped. Typing "12" yields 12
// when enough seats remain, the seat cap otherwise.
func (form *BookingForm) typeQuantityDigit(digit int) {
	form.quantity = form.clampQuantity(form.quantity*10 + digit)
}

// FocusNext moves focus to the next field, wrapping.
func (form *BookingForm) FocusNext() {
	form.focusIndex = (form.focusIndex + 1) % bookingFieldCount
}

// FocusPrevious moves focus to the previous field, wrapping.
func (form *BookingForm) FocusPrevious() {
	form.focusIndex--
	if form.focusIndex < 0 {
		form.focusIndex = bookingFieldCount - 1
	}
}

// HandleKey routes a keystroke to the focused field. On the quantity
// row, +/- step the count and digits type it directly; backspace
// drops the last digit.
func (form *BookingForm) HandleKey(message tea.KeyMsg) {
	if form.focusIndex != bookingFieldQuantity {
		switch form.focusIndex {
		case bookingFieldEmail:
			form.email.Update(message)
		case bookingFieldPhone:
			form.phone.Update(message)
		}
		return
	}

	switch message.Type {
	case tea.KeyBackspace:
		form.quantity = form.clampQuantity(form.quantity / 10)
	case tea.KeyRunes:
		for _, character := range message.Runes {
			switch {
			case character == '+' || character == '=':
				form.AdjustQuantity(1)
			case character == '-':
				form.AdjustQuantity(-1)
			case character >= '0' && character <= '9':
				form.typeQuantityDigit(int(character - '0'))
			}
		}
	}
}

// TotalPrice returns quantity times the ticket's unit price.
func (form *BookingForm) TotalPrice() decimal.Decimal {
	return money.Total(form.Ticket.Price, form.quantity)
}

// Request builds the booking payload for the signed-in user.
func (form *BookingForm) Request(user api.User) api.BookingRequest {
	return api.BookingRequest{
		UserID:       user.ID,
		Username:     user.Username,
		TicketID:     form.Ticket.ID,
		Quantity:     form.quantity,
		ContactEmail: strings.TrimSpace(form.email.Value()),
		ContactPhone: strings.TrimSpace(form.phone.Value()),
	}
}

const (
	bookingLabelWidth = 8
	bookingInputWidth = 30
)

// Render produces the modal overlay lines and the centered anchor
// position.
func (form *BookingForm) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := bookingLabelWidth + 1 + bookingInputWidth

	backgroundStyle := lipgloss.NewStyle().
		Background(form.theme.TooltipBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(form.theme.HeaderForeground).
		Background(form.theme.TooltipBackground)
	faintStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText).
		Background(form.theme.TooltipBackground)
	errorStyle := lipgloss.NewStyle().
		Foreground(form.theme.NoticeError).
		Background(form.theme.TooltipBackground)
	priceStyle := lipgloss.NewStyle().
		Foreground(form.theme.PriceForeground).
		Background(form.theme.TooltipBackground)

	title := "Book: " + form.Ticket.EventName
	if form.InFlight {
		title += " …"
	}
	if ansi.StringWidth(title) > innerWidth {
		title = ansi.Truncate(title, innerWidth-1, "…")
	}

	var lines []string
	lines = append(lines, padModalLine(titleStyle.Render(title), innerWidth, backgroundStyle))
	lines = append(lines, padModalLine(
		faintStyle.Render(fmt.Sprintf("%s · %d seats left", form.Ticket.Venue, form.Ticket.AvailableSeats)),
		innerWidth, backgroundStyle))

	for _, excerptLine := range tui.ExtractExcerpt(form.Ticket.Description, innerWidth, 2) {
		lines = append(lines, padModalLine(faintStyle.Render(excerptLine), innerWidth, backgroundStyle))
	}

	if form.ErrorText != "" {
		message := form.ErrorText
		if ansi.StringWidth(message) > innerWidth {
			message = ansi.Truncate(message, innerWidth-1, "…")
		}
		lines = append(lines, padModalLine(errorStyle.Render(message), innerWidth, backgroundStyle))
	}

	lines = append(lines, padModalLine("", innerWidth, backgroundStyle))
	lines = append(lines, form.renderQuantityRow(innerWidth, backgroundStyle))
	lines = append(lines, padModalLine(form.email.Render(
		form.theme, bookingLabelWidth, bookingInputWidth, form.focusIndex == bookingFieldEmail && !form.InFlight),
		innerWidth, backgroundStyle))
	lines = append(lines, padModalLine(form.phone.Render(
		form.theme, bookingLabelWidth, bookingInputWidth, form.focusIndex == bookingFieldPhone && !form.InFlight),
		innerWidth, backgroundStyle))

	lines = append(lines, padModalLine("", innerWidth, backgroundStyle))
	totalLine := faintStyle.Render(strings.Repeat(" ", bookingLabelWidth-5)+"total ") +
		priceStyle.Render(money.FormatUSD(form.TotalPrice()))
	lines = append(lines, padModalLine(totalLine, innerWidth, backgroundStyle))
	lines = append(lines, padModalLine(
		faintStyle.Render("Enter book  +/- seats  Esc close"), innerWidth, backgroundStyle))

	return renderModalBox(lines, form.theme, screenWidth, screenHeight)
}

// renderQuantityRow draws the seat-count line in the same layout as a
// text field row.
func (form *BookingForm) renderQuantityRow(innerWidth int, backgroundStyle lipgloss.Style) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText).
		Background(form.theme.TooltipBackground)
	valueStyle := lipgloss.NewStyle().
		Foreground(form.theme.NormalText).
		Background(form.theme.TooltipBackground)
	if form.focusIndex == bookingFieldQuantity && !form.InFlight {
		valueStyle = valueStyle.Reverse(true)
	}

	label := "seats"
	if gap := bookingLabelWidth - len(label); gap > 0 {
		label = strings.Repeat(" ", gap) + label
	}
	line := labelStyle.Render(label+" ") + valueStyle.Render(strconv.Itoa(form.quantity))
	return padModalLine(line, innerWidth, backgroundStyle)
}
