// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the REST client for the booking backend.
//
// The backend exposes a small JSON API: a public event listing, a
// user login/registration pair, and authenticated booking endpoints.
// All error responses carry a JSON body of the form
// {"error": "message"}; the client decodes these into *Error so
// callers can surface the backend's own message with Message().
//
// Requests that carry user input (login, registration, booking) are
// validated locally before any network traffic, and a validation
// failure is reported through the same *Error type as a backend
// rejection.
package api
