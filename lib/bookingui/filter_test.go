// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"
	"testing"

	"github.com/tickethub/tickethub/lib/tui"
)

func TestFilterEmptyReturnsAll(t *testing.T) {
	filter := FilterModel{}
	results := filter.Apply(testTickets())

	if len(results) != 3 {
		t.Fatalf("empty filter should return all tickets, got %d", len(results))
	}
	// Backend order is preserved.
	if results[0].Ticket.ID != "t1" || results[2].Ticket.ID != "t3" {
		t.Error("empty filter should preserve input order")
	}
	if results[0].Score != 0 || results[0].NamePositions != nil {
		t.Error("empty filter results should carry no match data")
	}
}

func TestFilterMatchesName(t *testing.T) {
	filter := FilterModel{Input: "jazz"}
	results := filter.Apply(testTickets())

	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Ticket.ID != "t1" {
		t.Errorf("matched %s, want t1", results[0].Ticket.ID)
	}
	if len(results[0].NamePositions) == 0 {
		t.Error("name match should report highlight positions")
	}
	// Positions point at the matched characters in the event name.
	name := []rune(results[0].Ticket.EventName)
	var matched strings.Builder
	for _, position := range results[0].NamePositions {
		matched.WriteRune(name[position])
	}
	if !strings.EqualFold(matched.String(), "jazz") {
		t.Errorf("highlight positions spell %q, want jazz", matched.String())
	}
}

func TestFilterMatchesVenueAndType(t *testing.T) {
	// "stadium" only appears in a venue.
	filter := FilterModel{Input: "stadium"}
	results := filter.Apply(testTickets())
	if len(results) != 1 || results[0].Ticket.ID != "t3" {
		t.Fatalf("venue match failed: %d results", len(results))
	}
	// Venue matches carry no name highlight positions.
	if len(results[0].NamePositions) != 0 {
		t.Error("venue-only match should not highlight the name")
	}

	// "theater" only matches the event type field.
	filter = FilterModel{Input: "theater"}
	results = filter.Apply(testTickets())
	if len(results) != 1 || results[0].Ticket.ID != "t2" {
		t.Fatalf("type match failed: %d results", len(results))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	filter := FilterModel{Input: "JAZZ"}
	if results := filter.Apply(testTickets()); len(results) != 1 {
		t.Fatalf("uppercase query should match, got %d results", len(results))
	}
}

func TestFilterNoMatches(t *testing.T) {
	filter := FilterModel{Input: "zzzzqqq"}
	if results := filter.Apply(testTickets()); len(results) != 0 {
		t.Fatalf("expected no matches, got %d", len(results))
	}
}

func TestFilterView(t *testing.T) {
	filter := FilterModel{}

	if view := filter.View(tui.DefaultTheme, 80); view != "" {
		t.Error("inactive empty filter should render nothing")
	}

	filter.Active = true
	filter.HandleRune('j')
	filter.HandleRune('a')
	if view := filter.View(tui.DefaultTheme, 80); !strings.Contains(view, "ja") {
		t.Error("active filter should show the input")
	}

	// Confirmed filter (inactive with text) shows the indicator.
	filter.Active = false
	if view := filter.View(tui.DefaultTheme, 80); !strings.Contains(view, "filter: ja") {
		t.Error("inactive filter with text should show the indicator")
	}

	filter.Clear()
	if filter.Input != "" || filter.Active {
		t.Error("clear should reset input and active state")
	}
}
