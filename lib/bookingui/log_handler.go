// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the bubbletea model for
// display in the status bar. Only records at or above the handler's
// configured level are delivered.
type logRecordMsg struct {
	// Summary is the human-readable one-line message for the status bar.
	Summary string

	// Level is the slog level for styling (warn vs error).
	Level slog.Level
}

// logRecordFadeDelay is how long log messages stay visible in the
// status bar before fading back to the keyboard help line.
const logRecordFadeDelay = 5 * time.Second

// TUILogHandler is a slog.Handler that routes log records into a
// bubbletea program as messages. Records below the configured level
// are silently dropped. Records at or above the level are formatted
// and sent via program.Send(). Writing them to stderr instead would
// corrupt the alt screen.
//
// The handler must be created before the program starts. Call
// SetProgram once the tea.Program is created to enable message
// delivery. Records arriving before SetProgram is called are dropped.
//
// All handlers derived via WithAttrs/WithGroup share the same program
// pointer, so a single SetProgram call propagates to every derived
// handler.
type TUILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
}

// NewTUILogHandler creates a handler that delivers log records at or
// above the given level to the bubbletea program. Call SetProgram
// after creating the tea.Program.
func NewTUILogHandler(level slog.Level) *TUILogHandler {
	return &TUILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine. Propagates to all handlers derived
// from this one via WithAttrs/WithGroup (they share the same atomic
// pointer).
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it to the bubbletea program.
// If the program has not been set yet, the record is silently dropped.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	// Build the summary line: "message (key=value, ...)"
	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(attrParts) > 0 {
		summary += " (" + strings.Join(attrParts, ", ") + ")"
	}

	program.Send(logRecordMsg{
		Summary: summary,
		Level:   record.Level,
	})
	return nil
}

// WithAttrs returns a new handler with the given attributes appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(handler.attrs)+len(attrs))
	merged = append(merged, handler.attrs...)
	merged = append(merged, attrs...)
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   merged,
	}
}

// WithGroup returns the handler unchanged. Group nesting adds nothing
// to a one-line status bar summary.
func (handler *TUILogHandler) WithGroup(string) slog.Handler {
	return handler
}
