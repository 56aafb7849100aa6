// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/tui"
)

// FilterModel implements fzf-style fuzzy matching over the event
// listing: name, venue, and event type. The filter composes with the
// type dropdown: the dropdown chooses the base set server-side, and
// the text filter narrows it client-side without another fetch.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// FilterResult pairs a ticket with its match score and the rune
// positions matched in the event name, for highlight rendering.
type FilterResult struct {
	Ticket        api.Ticket
	Score         int
	NamePositions []int
}

// Apply runs the fuzzy filter over the tickets. An empty filter
// returns everything in input order with zero scores. Otherwise each
// ticket is matched on event name, venue, and type; the best field
// score wins, non-matching tickets are dropped, and results sort by
// descending score (stable, so backend order breaks ties).
func (filter *FilterModel) Apply(tickets []api.Ticket) []FilterResult {
	if filter.Input == "" {
		results := make([]FilterResult, len(tickets))
		for index, ticket := range tickets {
			results[index] = FilterResult{Ticket: ticket}
		}
		return results
	}

	pattern := []rune(strings.ToLower(filter.Input))
	slab := tui.NewFuzzySlab()

	var results []FilterResult
	for _, ticket := range tickets {
		nameMatch := tui.FuzzyMatch(ticket.EventName, pattern, slab)
		venueMatch := tui.FuzzyMatch(ticket.Venue, pattern, slab)
		typeMatch := tui.FuzzyMatch(ticket.EventType, pattern, slab)

		best := nameMatch.Score
		if venueMatch.Score > best {
			best = venueMatch.Score
		}
		if typeMatch.Score > best {
			best = typeMatch.Score
		}
		if best <= 0 {
			continue
		}

		results = append(results, FilterResult{
			Ticket:        ticket,
			Score:         best,
			NamePositions: nameMatch.Positions,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results
}

// HandleRune appends a character typed while the filter is active.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	// Inactive but has text — show the filter as a subtle indicator.
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
