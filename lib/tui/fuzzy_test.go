// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("Hamilton at the Orpheum", []rune("orpheum"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "jzn" should match "Jazz Night" — j from Jazz, z from Jazz, n
	// from Night.
	result := FuzzyMatch("Jazz Night", []rune("jzn"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Jazz Night", []rune("xqv"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	// Pattern is lowercase, text has uppercase. The wrapper lowercases
	// the candidate, so this should match.
	result := FuzzyMatch("DERBY FINAL", []rune("derby"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchPositionsInBounds(t *testing.T) {
	candidate := "City Arena"
	result := FuzzyMatch(candidate, []rune("ca"), nil)
	if result.Score <= 0 {
		t.Fatal("expected a match")
	}
	for _, position := range result.Positions {
		if position < 0 || position >= len([]rune(candidate)) {
			t.Errorf("position %d out of bounds for %q", position, candidate)
		}
	}
}

func TestFuzzyMatchWithSlab(t *testing.T) {
	slab := NewFuzzySlab()
	first := FuzzyMatch("Jazz Night", []rune("jazz"), slab)
	second := FuzzyMatch("Jazz Night", []rune("jazz"), nil)
	if first.Score != second.Score {
		t.Errorf("slab should not affect scoring: %d != %d", first.Score, second.Score)
	}
}
