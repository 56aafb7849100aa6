// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/money"
	"github.com/tickethub/tickethub/lib/tui"
)

// Column widths for the event list. The name column fills remaining
// space; the availability and price columns are fixed.
const (
	// columnWidthSeats fits "sold out" and up to 5-digit seat counts
	// ("12345 left").
	columnWidthSeats = 10
	// columnWidthPrice fits prices up to "$99,999.99".
	columnWidthPrice = 11
	// eventLeftWidth is the fixed left portion: 1 (indent) + 2 (type
	// icon) + 1 (space).
	eventLeftWidth = 4
)

// eventTypeIcon returns a double-width emoji for the event type so
// the category reads at a glance without a text badge.
func eventTypeIcon(eventType string) string {
	switch eventType {
	case api.EventTypeMovie:
		return "🎬"
	case api.EventTypeConcert:
		return "🎵"
	case api.EventTypeSports:
		return "⚽"
	case api.EventTypeTheater:
		return "🎭"
	case api.EventTypeConference:
		return "🎤"
	default:
		return "  " // 2 spaces to match emoji width
	}
}

// EventListRenderer handles the table-style rendering of ticket rows
// within a given width.
type EventListRenderer struct {
	theme tui.Theme
	width int
}

// NewEventListRenderer creates an EventListRenderer for the given width.
func NewEventListRenderer(theme tui.Theme, width int) EventListRenderer {
	return EventListRenderer{theme: theme, width: width}
}

// RenderRow renders a single ticket as a formatted table row. The
// matchPositions parameter contains rune indices in the event name
// that matched the current fuzzy filter query; when non-nil, those
// characters are highlighted with the search highlight background.
//
// Row layout: indent + icon + name + availability + price
//
//	🎵 Jazz Night at the Blue Room     120 left     $49.50
//	🎭 Hamilton                        sold out    $189.00
func (renderer EventListRenderer) RenderRow(ticket api.Ticket, selected bool, matchPositions []int) string {
	nameWidth := renderer.width - eventLeftWidth - columnWidthSeats - columnWidthPrice
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := ticket.EventName
	if lipgloss.Width(name) > nameWidth {
		name = truncateToWidth(name, nameWidth-1) + "…"
	}
	namePadding := nameWidth - lipgloss.Width(name)

	seatsText := fmt.Sprintf("%d left", ticket.AvailableSeats)
	if !ticket.Bookable() || ticket.AvailableSeats == 0 {
		seatsText = "sold out"
	}
	priceText := money.FormatUSD(ticket.Price)

	if selected {
		return renderer.renderSelectedRow(ticket, name, namePadding, seatsText, priceText, matchPositions)
	}
	return renderer.renderNormalRow(ticket, name, namePadding, seatsText, priceText, matchPositions)
}

// renderNormalRow renders a row with per-component foreground colors
// and the default terminal background.
func (renderer EventListRenderer) renderNormalRow(ticket api.Ticket, name string, namePadding int, seatsText, priceText string, matchPositions []int) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.NormalText)
	seatsStyle := lipgloss.NewStyle().
		Width(columnWidthSeats).
		Align(lipgloss.Right).
		Foreground(renderer.theme.TicketStatusColor(ticket))
	priceStyle := lipgloss.NewStyle().
		Width(columnWidthPrice).
		Align(lipgloss.Right).
		Foreground(renderer.theme.PriceForeground)

	var nameRendered string
	if len(matchPositions) > 0 {
		highlightStyle := lipgloss.NewStyle().
			Foreground(renderer.theme.NormalText).
			Background(renderer.theme.SearchHighlightBackground)
		nameRendered = highlightRunes(name, matchPositions, nameStyle, highlightStyle)
	} else {
		nameRendered = nameStyle.Render(name)
	}

	row := " " +
		eventTypeIcon(ticket.EventType) +
		" " +
		nameRendered +
		strings.Repeat(" ", namePadding) +
		seatsStyle.Render(seatsText) +
		priceStyle.Render(priceText)

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// renderSelectedRow renders the selected row with a highlight
// background and uniform foreground. Fuzzy matches use bold+underline
// since a background tint would vanish against the selection color.
func (renderer EventListRenderer) renderSelectedRow(ticket api.Ticket, name string, namePadding int, seatsText, priceText string, matchPositions []int) string {
	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)

	var nameRendered string
	if len(matchPositions) > 0 {
		highlightStyle := baseStyle.Bold(true).Underline(true)
		nameRendered = highlightRunes(name, matchPositions, baseStyle, highlightStyle)
	} else {
		nameRendered = baseStyle.Render(name)
	}

	row := " " +
		eventTypeIcon(ticket.EventType) +
		" " +
		nameRendered +
		baseStyle.Render(strings.Repeat(" ", namePadding)) +
		baseStyle.Width(columnWidthSeats).Align(lipgloss.Right).Render(seatsText) +
		baseStyle.Width(columnWidthPrice).Align(lipgloss.Right).Render(priceText)

	return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// highlightRunes renders text with character-level highlighting at
// the given rune positions. Consecutive runs of same-style characters
// are batched into a single Render call to keep ANSI output compact.
func highlightRunes(text string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(text)
	var result strings.Builder
	runStart := 0
	isHighlighted := len(runes) > 0 && positionSet[0]

	for index := 1; index <= len(runes); index++ {
		currentHighlighted := index < len(runes) && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}

	return result.String()
}

// truncateToWidth truncates a string to maxWidth visual characters.
// Handles double-width characters via lipgloss width measurement.
func truncateToWidth(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// renderTicketDetail builds the detail pane content for a ticket: a
// header block with the event facts, then the markdown-rendered
// description.
func renderTicketDetail(ticket api.Ticket, theme tui.Theme, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground)
	typeStyle := lipgloss.NewStyle().
		Foreground(theme.EventTypeColor(ticket.EventType))
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText)
	valueStyle := lipgloss.NewStyle().
		Foreground(theme.NormalText)
	priceStyle := lipgloss.NewStyle().
		Foreground(theme.PriceForeground)
	statusStyle := lipgloss.NewStyle().
		Foreground(theme.TicketStatusColor(ticket))

	fact := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%8s ", label)) + valueStyle.Render(value)
	}

	availability := fmt.Sprintf("%d of %d seats available", ticket.AvailableSeats, ticket.TotalSeats)
	if !ticket.Bookable() {
		availability = "sold out"
	}

	lines := []string{
		titleStyle.Render(ticket.EventName),
		typeStyle.Render(eventTypeIcon(ticket.EventType) + " " + ticket.EventType),
		"",
		fact("venue", ticket.Venue),
		fact("date", ticket.Date),
		fact("time", ticket.Time),
		labelStyle.Render(fmt.Sprintf("%8s ", "price")) + priceStyle.Render(money.FormatUSD(ticket.Price)),
		labelStyle.Render(fmt.Sprintf("%8s ", "seats")) + statusStyle.Render(availability),
	}

	if ticket.Description != "" {
		lines = append(lines, "", tui.RenderMarkdown(ticket.Description, theme, width))
	}

	return strings.Join(lines, "\n")
}
