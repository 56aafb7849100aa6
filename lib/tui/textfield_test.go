// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeString(field *TextField, s string) {
	for _, character := range s {
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func TestTextFieldTyping(t *testing.T) {
	field := NewTextField("username")
	typeString(&field, "ada")
	if field.Value() != "ada" {
		t.Errorf("Value() = %q, want %q", field.Value(), "ada")
	}
}

func TestTextFieldBackspace(t *testing.T) {
	field := NewTextField("username")
	typeString(&field, "adaa")
	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "ada" {
		t.Errorf("Value() = %q, want %q", field.Value(), "ada")
	}
	// Backspace on an empty field is a no-op.
	field.Reset()
	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "" {
		t.Errorf("Value() = %q, want empty", field.Value())
	}
}

func TestTextFieldCursorEditing(t *testing.T) {
	field := NewTextField("email")
	typeString(&field, "aa@example.com")
	// Move to the start and fix the typo: delete one 'a', insert 'd'.
	field.Update(tea.KeyMsg{Type: tea.KeyHome})
	field.Update(tea.KeyMsg{Type: tea.KeyRight})
	field.Update(tea.KeyMsg{Type: tea.KeyDelete})
	typeString(&field, "da")
	if field.Value() != "ada@example.com" {
		t.Errorf("Value() = %q, want %q", field.Value(), "ada@example.com")
	}
}

func TestTextFieldCtrlUClearsToStart(t *testing.T) {
	field := NewTextField("venue")
	typeString(&field, "Blue Hall")
	field.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if field.Value() != "" {
		t.Errorf("Value() = %q, want empty after ctrl+u at end", field.Value())
	}
}

func TestTextFieldMaskedRender(t *testing.T) {
	field := NewMaskedField("password")
	typeString(&field, "hunter2")

	rendered := ansi.Strip(field.Render(DefaultTheme, 10, 20, false))
	if strings.Contains(rendered, "hunter2") {
		t.Error("masked field must not render its content")
	}
	if !strings.Contains(rendered, "•••••••") {
		t.Errorf("masked field should render bullets, got %q", rendered)
	}
}

func TestTextFieldRenderWidth(t *testing.T) {
	field := NewTextField("username")
	typeString(&field, "ada")

	unfocused := field.Render(DefaultTheme, 10, 20, false)
	if width := ansi.StringWidth(unfocused); width != 31 {
		t.Errorf("rendered width = %d, want 31 (label 10 + gap 1 + input 20)", width)
	}
	focused := field.Render(DefaultTheme, 10, 20, true)
	if width := ansi.StringWidth(focused); width != 31 {
		t.Errorf("focused width = %d, want 31", width)
	}
}
