// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the base URL of the booking backend (e.g.,
	// "https://tickethub.example.com").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the booking backend's REST API. It holds the base
// URL, the HTTP transport, and the current bearer token. A single
// Client is shared by the whole UI; the token is guarded because
// requests run on command goroutines while the UI loop sets and
// clears it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	validate   *validator.Validate

	tokenMutex sync.RWMutex
	token      string
}

// NewClient creates a Client for the backend at config.BaseURL.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	// Validate the URL structure. The string form (trailing slash
	// stripped) is stored and request URLs are built by direct
	// concatenation.
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		validate:   newValidator(),
	}, nil
}

// newValidator builds the request validator with JSON field names in
// its error output, so a client-side validation failure reads the
// same as the backend's own messages ("contactEmail must be a valid
// email address", not "ContactEmail").
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()
	c.token = token
}

// ClearToken detaches the bearer token from subsequent requests.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// currentToken returns the token to attach, or "" for none.
func (c *Client) currentToken() string {
	c.tokenMutex.RLock()
	defer c.tokenMutex.RUnlock()
	return c.token
}

// ListTickets returns the event listing, optionally narrowed by the
// filter's event type.
func (c *Client) ListTickets(ctx context.Context, filter TicketFilter) ([]Ticket, error) {
	var query url.Values
	if filter.EventType != "" {
		query = url.Values{"eventType": []string{filter.EventType}}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/tickets", nil, query)
	if err != nil {
		return nil, fmt.Errorf("api: list tickets failed: %w", err)
	}

	var tickets []Ticket
	if err := json.Unmarshal(body, &tickets); err != nil {
		return nil, fmt.Errorf("api: failed to parse tickets response: %w", err)
	}
	return tickets, nil
}

// Login authenticates with username and password. On success the
// caller owns attaching the returned token via SetToken — the client
// does not do it implicitly, because the UI persists the session
// first and treats the two steps as one transaction.
func (c *Client) Login(ctx context.Context, request LoginRequest) (*AuthResponse, error) {
	if err := c.validateRequest(request); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/users/login", request, nil)
	if err != nil {
		return nil, fmt.Errorf("api: login failed: %w", err)
	}

	var response AuthResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse login response: %w", err)
	}

	c.logger.Info("logged in", "username", response.User.Username)
	return &response, nil
}

// Register creates a new account and returns the same user+token
// shape as Login.
func (c *Client) Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error) {
	if err := c.validateRequest(request); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/users/register", request, nil)
	if err != nil {
		return nil, fmt.Errorf("api: registration failed: %w", err)
	}

	var response AuthResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse register response: %w", err)
	}

	c.logger.Info("registered account", "username", response.User.Username)
	return &response, nil
}

// CreateBooking posts a booking request and returns the created
// booking.
func (c *Client) CreateBooking(ctx context.Context, request BookingRequest) (*Booking, error) {
	if err := c.validateRequest(request); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/bookings", request, nil)
	if err != nil {
		return nil, fmt.Errorf("api: create booking failed: %w", err)
	}

	var response bookingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse booking response: %w", err)
	}

	c.logger.Info("created booking",
		"reference", response.Booking.BookingReference,
		"quantity", response.Booking.Quantity,
	)
	return &response.Booking, nil
}

// ListBookings returns the given user's bookings.
func (c *Client) ListBookings(ctx context.Context, userID string) ([]Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("api: userID is required to list bookings")
	}

	query := url.Values{"userId": []string{userID}}
	body, err := c.doRequest(ctx, http.MethodGet, "/api/bookings", nil, query)
	if err != nil {
		return nil, fmt.Errorf("api: list bookings failed: %w", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, fmt.Errorf("api: failed to parse bookings response: %w", err)
	}
	return bookings, nil
}

// CancelBooking cancels the booking with the given ID. The backend
// responds with status only; the caller reconciles local state.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return fmt.Errorf("api: bookingID is required to cancel")
	}

	path := "/api/bookings/" + url.PathEscape(bookingID)
	if _, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("api: cancel booking failed: %w", err)
	}
	return nil
}

// validateRequest runs struct validation and converts the first
// failure into an *Error so the forms display it exactly like a
// server-side rejection.
func (c *Client) validateRequest(request any) error {
	err := c.validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("api: request validation failed: %w", err)
	}

	return &Error{Message: fieldErrorMessage(fieldErrors[0])}
}

// fieldErrorMessage renders a single validation failure as a
// human-readable sentence.
func fieldErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fieldError.Field() + " is required"
	case "email":
		return fieldError.Field() + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldError.Field(), fieldError.Param())
	default:
		return fieldError.Field() + " is invalid"
	}
}

// doRequest performs an HTTP request and returns the response body.
// On 2xx, returns the body. On 4xx/5xx with a JSON body, returns an
// *Error. The bearer token is attached when present; every request
// carries a generated X-Request-ID for correlation with backend logs.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	request.Header.Set("X-Request-ID", uuid.NewString())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// Error responses carry {"error": "..."}. A non-JSON error body
	// should not happen with this backend, but fail loud with the raw
	// body when it does.
	var apiErr Error
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil || apiErr.Message == "" {
		return nil, fmt.Errorf("api: unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode

	return nil, &apiErr
}
