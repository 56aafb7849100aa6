// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tickethub/tickethub/lib/tui"
)

func typeInto(form *AuthForm, text string) {
	for _, character := range text {
		form.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func TestAuthFormLoginRequest(t *testing.T) {
	form := NewAuthForm(tui.DefaultTheme)

	typeInto(form, "alice")
	form.FocusNext()
	typeInto(form, "hunter2")

	request := form.LoginRequest()
	if request.Username != "alice" {
		t.Errorf("username = %q, want alice", request.Username)
	}
	if request.Password != "hunter2" {
		t.Errorf("password = %q, want hunter2", request.Password)
	}
}

func TestAuthFormModeToggleKeepsSharedFields(t *testing.T) {
	form := NewAuthForm(tui.DefaultTheme)

	typeInto(form, "alice")
	form.FocusNext()
	typeInto(form, "hunter2")

	form.ToggleMode()
	if form.Mode != AuthModeRegister {
		t.Fatal("toggle should switch to register mode")
	}

	// Fill the register-only fields.
	form.FocusNext()
	typeInto(form, "alice@example.com")

	request := form.RegisterRequest()
	if request.Username != "alice" || request.Password != "hunter2" {
		t.Error("shared fields should survive the mode toggle")
	}
	if request.Email != "alice@example.com" {
		t.Errorf("email = %q", request.Email)
	}

	// Toggling back preserves them too.
	form.ToggleMode()
	if form.Mode != AuthModeLogin {
		t.Fatal("second toggle should return to login mode")
	}
	if form.LoginRequest().Username != "alice" {
		t.Error("username should survive toggling back")
	}
}

func TestAuthFormFocusClampsOnToggle(t *testing.T) {
	form := NewAuthForm(tui.DefaultTheme)
	form.ToggleMode() // Register: six fields.

	// Move focus to the last register field.
	for range 5 {
		form.FocusNext()
	}
	if form.focusIndex != authFieldLastName {
		t.Fatalf("focus should be on the last field, got %d", form.focusIndex)
	}

	// Back to login: focus must clamp into the two visible fields.
	form.ToggleMode()
	if form.focusIndex >= form.visibleFieldCount() {
		t.Errorf("focus %d out of range after toggle", form.focusIndex)
	}
}

func TestAuthFormFocusWraps(t *testing.T) {
	form := NewAuthForm(tui.DefaultTheme)

	form.FocusNext()
	form.FocusNext()
	if form.focusIndex != 0 {
		t.Errorf("focus should wrap to 0, got %d", form.focusIndex)
	}

	form.FocusPrevious()
	if form.focusIndex != 1 {
		t.Errorf("focus should wrap to the last field, got %d", form.focusIndex)
	}
}

func TestAuthFormRender(t *testing.T) {
	form := NewAuthForm(tui.DefaultTheme)
	typeInto(form, "alice")

	lines, anchorX, anchorY := form.Render(120, 40)
	if len(lines) == 0 {
		t.Fatal("render should produce lines")
	}
	if anchorX <= 0 || anchorY <= 0 {
		t.Errorf("modal should be centered on a large screen, got anchor (%d, %d)", anchorX, anchorY)
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Sign in") {
		t.Error("login mode should render the sign-in title")
	}
	if !strings.Contains(joined, "alice") {
		t.Error("typed username should be visible")
	}

	form.ErrorText = "invalid credentials"
	joined = strings.Join(renderLines(form), "\n")
	if !strings.Contains(joined, "invalid credentials") {
		t.Error("error text should render inline")
	}

	form.ToggleMode()
	joined = strings.Join(renderLines(form), "\n")
	if !strings.Contains(joined, "Create account") {
		t.Error("register mode should render the registration title")
	}
	if !strings.Contains(joined, "first name") {
		t.Error("register mode should show the name fields")
	}
}

func renderLines(form *AuthForm) []string {
	lines, _, _ := form.Render(120, 40)
	return lines
}
