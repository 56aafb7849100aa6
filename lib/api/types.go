// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/shopspring/decimal"

// User is the account profile returned by the backend on login or
// registration. The client treats it as read-only.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Role is a display-only label (e.g., "user", "admin") shown as a
	// badge next to the username.
	Role string `json:"role"`
}

// Event type values accepted by the tickets filter and returned in
// Ticket.EventType.
const (
	EventTypeMovie      = "movie"
	EventTypeConcert    = "concert"
	EventTypeSports     = "sports"
	EventTypeTheater    = "theater"
	EventTypeConference = "conference"
	EventTypeOther      = "other"
)

// EventTypes lists the filterable event types in display order.
var EventTypes = []string{
	EventTypeMovie,
	EventTypeConcert,
	EventTypeSports,
	EventTypeTheater,
	EventTypeConference,
	EventTypeOther,
}

// Ticket status values.
const (
	TicketStatusActive  = "active"
	TicketStatusSoldOut = "sold-out"
)

// Ticket is a bookable event listing. Owned entirely by the backend;
// the client only reads.
type Ticket struct {
	ID             string          `json:"_id"`
	EventName      string          `json:"eventName"`
	EventType      string          `json:"eventType"`
	Venue          string          `json:"venue"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Price          decimal.Decimal `json:"price"`
	TotalSeats     int             `json:"totalSeats"`
	AvailableSeats int             `json:"availableSeats"`
	Status         string          `json:"status"`
	Description    string          `json:"description,omitempty"`
}

// Bookable reports whether the booking action should be offered for
// this ticket. Only active tickets can be booked.
func (ticket Ticket) Bookable() bool {
	return ticket.Status == TicketStatusActive
}

// Booking status values.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a user's reservation against a ticket. The event fields
// are a snapshot taken at booking time, so the booking renders
// correctly even if the ticket later changes or disappears.
type Booking struct {
	ID               string          `json:"_id"`
	BookingReference string          `json:"bookingReference"`
	UserID           string          `json:"userId"`
	TicketID         string          `json:"ticketId"`
	EventName        string          `json:"eventName"`
	Venue            string          `json:"venue"`
	EventDate        string          `json:"eventDate"`
	EventTime        string          `json:"eventTime"`
	Quantity         int             `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"createdAt"`
}

// Cancellable reports whether the cancel action should be offered.
// Only confirmed bookings can be cancelled.
func (booking Booking) Cancellable() bool {
	return booking.Status == BookingStatusConfirmed
}

// TicketFilter narrows the ticket listing. The zero value requests
// everything.
type TicketFilter struct {
	// EventType restricts results to one event type. Empty means all.
	EventType string
}

// LoginRequest is the credential payload for POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /api/users/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// AuthResponse is the success body of both auth endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// BookingRequest is the payload for POST /api/bookings. The username
// travels alongside the user ID because the backend denormalizes it
// into the booking record.
type BookingRequest struct {
	UserID       string `json:"userId" validate:"required"`
	Username     string `json:"username" validate:"required"`
	TicketID     string `json:"ticketId" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone"`
}

// bookingResponse is the success body of POST /api/bookings: the
// created booking wrapped in a "booking" field.
type bookingResponse struct {
	Booking Booking `json:"booking"`
}
