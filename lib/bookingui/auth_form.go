// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/tui"
)

// AuthMode selects between the two faces of the auth modal.
type AuthMode int

const (
	// AuthModeLogin shows username and password.
	AuthModeLogin AuthMode = iota
	// AuthModeRegister adds email, phone, and name fields.
	AuthModeRegister
)

// Field indices into AuthForm.fields. Login shows the first two;
// register shows all. Keeping one backing slice means toggling modes
// preserves whatever the user already typed in the shared fields.
const (
	authFieldUsername = iota
	authFieldPassword
	authFieldEmail
	authFieldPhone
	authFieldFirstName
	authFieldLastName
	authFieldCount
)

// AuthForm is the login/registration modal. The model routes all key
// input here while the modal has focus; submission and the in-flight
// flag live on the model because the network call outlives the form's
// key handling.
type AuthForm struct {
	Mode AuthMode

	// ErrorText renders above the fields: a server rejection or a
	// local validation failure. Cleared on the next submission.
	ErrorText string

	// InFlight blocks re-submission while a call is out.
	InFlight bool

	fields     [authFieldCount]tui.TextField
	focusIndex int
	theme      tui.Theme
}

// NewAuthForm creates an empty auth form in login mode.
func NewAuthForm(theme tui.Theme) *AuthForm {
	form := &AuthForm{theme: theme}
	form.fields[authFieldUsername] = tui.NewTextField("username")
	form.fields[authFieldPassword] = tui.NewMaskedField("password")
	form.fields[authFieldEmail] = tui.NewTextField("email")
	form.fields[authFieldPhone] = tui.NewTextField("phone")
	form.fields[authFieldFirstName] = tui.NewTextField("first name")
	form.fields[authFieldLastName] = tui.NewTextField("last name")
	return form
}

// visibleFieldCount returns how many fields the current mode shows.
func (form *AuthForm) visibleFieldCount() int {
	if form.Mode == AuthModeLogin {
		return 2
	}
	return authFieldCount
}

// ToggleMode switches between login and registration, keeping the
// shared username/password content. Focus clamps into the new mode's
// field range.
func (form *AuthForm) ToggleMode() {
	if form.Mode == AuthModeLogin {
		form.Mode = AuthModeRegister
	} else {
		form.Mode = AuthModeLogin
	}
	if form.focusIndex >= form.visibleFieldCount() {
		form.focusIndex = form.visibleFieldCount() - 1
	}
	form.ErrorText = ""
}

// FocusNext moves focus to the next field, wrapping.
func (form *AuthForm) FocusNext() {
	form.focusIndex = (form.focusIndex + 1) % form.visibleFieldCount()
}

// FocusPrevious moves focus to the previous field, wrapping.
func (form *AuthForm) FocusPrevious() {
	form.focusIndex--
	if form.focusIndex < 0 {
		form.focusIndex = form.visibleFieldCount() - 1
	}
}

// HandleKey routes an editing keystroke to the focused field.
func (form *AuthForm) HandleKey(message tea.KeyMsg) {
	form.fields[form.focusIndex].Update(message)
}

// Username returns the current username field content.
func (form *AuthForm) Username() string {
	return form.fields[authFieldUsername].Value()
}

// LoginRequest builds the login payload from the form fields.
func (form *AuthForm) LoginRequest() api.LoginRequest {
	return api.LoginRequest{
		Username: strings.TrimSpace(form.fields[authFieldUsername].Value()),
		Password: form.fields[authFieldPassword].Value(),
	}
}

// RegisterRequest builds the registration payload from the form fields.
func (form *AuthForm) RegisterRequest() api.RegisterRequest {
	return api.RegisterRequest{
		Username:  strings.TrimSpace(form.fields[authFieldUsername].Value()),
		Password:  form.fields[authFieldPassword].Value(),
		Email:     strings.TrimSpace(form.fields[authFieldEmail].Value()),
		Phone:     strings.TrimSpace(form.fields[authFieldPhone].Value()),
		FirstName: strings.TrimSpace(form.fields[authFieldFirstName].Value()),
		LastName:  strings.TrimSpace(form.fields[authFieldLastName].Value()),
	}
}

// Auth modal layout: label column, input column, and the chrome the
// border adds.
const (
	authLabelWidth = 10
	authInputWidth = 28
)

// Render produces the modal overlay lines and the centered anchor
// position.
func (form *AuthForm) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := authLabelWidth + 1 + authInputWidth

	backgroundStyle := lipgloss.NewStyle().
		Background(form.theme.TooltipBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(form.theme.HeaderForeground).
		Background(form.theme.TooltipBackground)
	errorStyle := lipgloss.NewStyle().
		Foreground(form.theme.NoticeError).
		Background(form.theme.TooltipBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText).
		Background(form.theme.TooltipBackground)

	title := "Sign in"
	footer := "Enter submit  Ctrl+T register  Esc close"
	if form.Mode == AuthModeRegister {
		title = "Create account"
		footer = "Enter submit  Ctrl+T sign in  Esc close"
	}
	if form.InFlight {
		title += " …"
	}

	var lines []string
	lines = append(lines, padModalLine(titleStyle.Render(title), innerWidth, backgroundStyle))

	if form.ErrorText != "" {
		message := form.ErrorText
		if ansi.StringWidth(message) > innerWidth {
			message = ansi.Truncate(message, innerWidth-1, "…")
		}
		lines = append(lines, padModalLine(errorStyle.Render(message), innerWidth, backgroundStyle))
	}

	lines = append(lines, padModalLine("", innerWidth, backgroundStyle))
	for index := 0; index < form.visibleFieldCount(); index++ {
		focused := index == form.focusIndex && !form.InFlight
		lines = append(lines, padModalLine(form.fields[index].Render(
			form.theme, authLabelWidth, authInputWidth, focused), innerWidth, backgroundStyle))
	}
	lines = append(lines, padModalLine("", innerWidth, backgroundStyle))
	lines = append(lines, padModalLine(footerStyle.Render(footer), innerWidth, backgroundStyle))

	return renderModalBox(lines, form.theme, screenWidth, screenHeight)
}

// padModalLine pads styled content to the modal's inner width, adding
// the one-column gutter on each side with the tooltip background.
func padModalLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	return tui.PadOverlayLine(styledContent, innerWidth, innerWidth+2, backgroundStyle)
}

// renderModalBox wraps the content lines in a rounded border and
// computes the centered anchor for overlay splicing. The lines carry
// their own side gutters, so the border adds no padding.
func renderModalBox(lines []string, theme tui.Theme, screenWidth, screenHeight int) ([]string, int, int) {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Background(theme.TooltipBackground)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}
