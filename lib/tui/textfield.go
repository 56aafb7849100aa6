// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextField is a single-line text input with cursor tracking. Form
// modals stack several of these and route key input to whichever has
// focus. A masked field renders bullets instead of its content
// (passwords).
type TextField struct {
	// Label is shown to the left of the input area.
	Label string
	// Masked replaces the rendered content with bullets.
	Masked bool

	runes  []rune
	cursor int
}

// NewTextField creates an empty text field with the given label.
func NewTextField(label string) TextField {
	return TextField{Label: label}
}

// NewMaskedField creates an empty masked text field with the given
// label.
func NewMaskedField(label string) TextField {
	return TextField{Label: label, Masked: true}
}

// Value returns the current content of the field.
func (field TextField) Value() string {
	return string(field.runes)
}

// SetValue replaces the content and moves the cursor to the end.
func (field *TextField) SetValue(value string) {
	field.runes = []rune(value)
	field.cursor = len(field.runes)
}

// Reset clears the content and cursor.
func (field *TextField) Reset() {
	field.runes = nil
	field.cursor = 0
}

// Update processes a key message for the field's editor.
func (field *TextField) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			field.insertRune(character)
		}

	case tea.KeyBackspace:
		if field.cursor > 0 {
			field.runes = append(field.runes[:field.cursor-1], field.runes[field.cursor:]...)
			field.cursor--
		}

	case tea.KeyDelete:
		if field.cursor < len(field.runes) {
			field.runes = append(field.runes[:field.cursor], field.runes[field.cursor+1:]...)
		}

	case tea.KeyLeft:
		if field.cursor > 0 {
			field.cursor--
		}

	case tea.KeyRight:
		if field.cursor < len(field.runes) {
			field.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		field.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		field.cursor = len(field.runes)

	case tea.KeyCtrlU:
		field.runes = append([]rune{}, field.runes[field.cursor:]...)
		field.cursor = 0
	}
}

// insertRune inserts a single rune at the cursor position.
func (field *TextField) insertRune(character rune) {
	newRunes := make([]rune, len(field.runes)+1)
	copy(newRunes, field.runes[:field.cursor])
	newRunes[field.cursor] = character
	copy(newRunes[field.cursor+1:], field.runes[field.cursor:])
	field.runes = newRunes
	field.cursor++
}

// display returns the runes to render: the content, or a bullet per
// rune when masked.
func (field TextField) display() []rune {
	if !field.Masked {
		return field.runes
	}
	masked := make([]rune, len(field.runes))
	for index := range masked {
		masked[index] = '•'
	}
	return masked
}

// Render produces a single styled line: right-aligned label, then the
// input area padded to inputWidth. The cursor is drawn in reverse
// video when the field has focus.
func (field TextField) Render(theme Theme, labelWidth, inputWidth int, focused bool) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.TooltipBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Background(theme.TooltipBackground)
	cursorStyle := lipgloss.NewStyle().
		Reverse(true)

	label := field.Label
	if labelGap := labelWidth - ansi.StringWidth(label); labelGap > 0 {
		label = strings.Repeat(" ", labelGap) + label
	}

	display := field.display()
	var input string
	if focused {
		if field.cursor >= len(display) {
			input = textStyle.Render(string(display)) + cursorStyle.Render(" ")
		} else {
			before := textStyle.Render(string(display[:field.cursor]))
			atCursor := cursorStyle.Render(string(display[field.cursor : field.cursor+1]))
			after := textStyle.Render(string(display[field.cursor+1:]))
			input = before + atCursor + after
		}
	} else {
		input = textStyle.Render(string(display))
	}

	line := labelStyle.Render(label+" ") + input
	if pad := labelWidth + 1 + inputWidth - ansi.StringWidth(line); pad > 0 {
		line += textStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}
