// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/tui"
)

func testBookingForm(availableSeats int) *BookingForm {
	ticket := api.Ticket{
		ID:             "t1",
		EventName:      "Jazz Night at the Blue Room",
		EventType:      api.EventTypeConcert,
		Venue:          "Blue Room",
		Price:          decimal.RequireFromString("49.50"),
		TotalSeats:     200,
		AvailableSeats: availableSeats,
		Status:         api.TicketStatusActive,
	}
	return NewBookingForm(tui.DefaultTheme, ticket, testUser())
}

func pressQuantity(form *BookingForm, character rune) {
	form.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
}

func TestBookingFormQuantityClamps(t *testing.T) {
	form := testBookingForm(5)

	if form.Quantity() != 1 {
		t.Fatalf("initial quantity = %d, want 1", form.Quantity())
	}

	// Minus at the floor stays at 1.
	pressQuantity(form, '-')
	if form.Quantity() != 1 {
		t.Errorf("quantity after - at floor = %d, want 1", form.Quantity())
	}

	// Plus steps up to the seat cap and no further.
	for range 10 {
		pressQuantity(form, '+')
	}
	if form.Quantity() != 5 {
		t.Errorf("quantity should cap at 5 available seats, got %d", form.Quantity())
	}

	pressQuantity(form, '-')
	if form.Quantity() != 4 {
		t.Errorf("quantity after - = %d, want 4", form.Quantity())
	}
}

func TestBookingFormTypedQuantity(t *testing.T) {
	form := testBookingForm(30)

	// Typing digits builds the number left to right. The starting 1
	// is replaced by backspacing to the clamp floor first.
	form.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	pressQuantity(form, '2')
	if form.Quantity() != 12 {
		// Backspace clamps 1/10=0 back to 1; typing 2 yields 12.
		t.Fatalf("quantity = %d, want 12", form.Quantity())
	}

	// Typing past the cap clamps to available seats.
	pressQuantity(form, '9')
	if form.Quantity() != 30 {
		t.Errorf("typed quantity should clamp to 30, got %d", form.Quantity())
	}

	// Non-digit runes on the quantity row are ignored.
	pressQuantity(form, 'x')
	if form.Quantity() != 30 {
		t.Errorf("non-digit input should be ignored, got %d", form.Quantity())
	}
}

func TestBookingFormTotalPrice(t *testing.T) {
	form := testBookingForm(10)

	pressQuantity(form, '+')
	pressQuantity(form, '+') // Quantity 3.

	want := decimal.RequireFromString("148.50")
	if !form.TotalPrice().Equal(want) {
		t.Errorf("total = %s, want %s", form.TotalPrice(), want)
	}
}

func TestBookingFormRequest(t *testing.T) {
	form := testBookingForm(10)
	pressQuantity(form, '+')

	request := form.Request(testUser())
	if request.UserID != "u1" || request.Username != "alice" {
		t.Error("request should carry the signed-in user")
	}
	if request.TicketID != "t1" {
		t.Errorf("ticketId = %q, want t1", request.TicketID)
	}
	if request.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", request.Quantity)
	}
	if request.ContactEmail != "alice@example.com" {
		t.Errorf("contact email should pre-fill from the profile, got %q", request.ContactEmail)
	}
	if request.ContactPhone != "555-0100" {
		t.Errorf("contact phone should pre-fill from the profile, got %q", request.ContactPhone)
	}
}

func TestBookingFormContactEditing(t *testing.T) {
	form := testBookingForm(10)

	// Move to the email field and replace its content.
	form.FocusNext()
	form.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlU})
	for range len("alice@example.com") {
		form.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	for _, character := range "work@example.com" {
		form.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}

	request := form.Request(testUser())
	if request.ContactEmail != "work@example.com" {
		t.Errorf("edited contact email = %q", request.ContactEmail)
	}
}

func TestBookingFormRender(t *testing.T) {
	form := testBookingForm(120)
	pressQuantity(form, '+')

	lines, _, _ := form.Render(120, 40)
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, "Jazz Night at the Blue Room") {
		t.Error("modal should show the event name")
	}
	if !strings.Contains(joined, "120 seats left") {
		t.Error("modal should show the availability")
	}
	if !strings.Contains(joined, "$99.00") {
		t.Error("modal should show the running total")
	}

	form.ErrorText = "not enough seats available"
	lines, _, _ = form.Render(120, 40)
	if !strings.Contains(strings.Join(lines, "\n"), "not enough seats") {
		t.Error("error text should render inline")
	}
}
