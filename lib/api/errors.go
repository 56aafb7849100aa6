// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Error represents a structured error response from the booking
// backend. Every non-2xx response with a JSON body decodes to one.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) {
//	    if apiErr.StatusCode == http.StatusUnauthorized { ... }
//	}
type Error struct {
	// Message is the human-readable error description from the
	// server's "error" field.
	Message string `json:"error"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Message extracts the server-provided message from an error chain,
// falling back to the given text when the error carries no *Error or
// the server message is empty. This is the single helper behind every
// "server error or generic fallback" display in the forms.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
