// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	spliced := SpliceOverlay(view, []string{"XXX"}, 3, 1)
	lines := strings.Split(spliced, "\n")

	if ansi.Strip(lines[0]) != "aaaaaaaaaa" {
		t.Errorf("line above overlay changed: %q", lines[0])
	}
	if got := ansi.Strip(lines[1]); got != "bbbXXXbbbb" {
		t.Errorf("overlay line = %q, want bbbXXXbbbb", got)
	}
	if ansi.Strip(lines[2]) != "cccccccccc" {
		t.Errorf("line below overlay changed: %q", lines[2])
	}
}

func TestSpliceOverlayOutOfBounds(t *testing.T) {
	view := "only line"
	spliced := SpliceOverlay(view, []string{"X", "Y"}, 0, 5)
	if ansi.Strip(spliced) != "only line" {
		t.Errorf("overlay outside the view should be dropped, got %q", spliced)
	}
}

func TestExtractExcerpt(t *testing.T) {
	body := "\n\nFirst line.\n\n  Second line.  \nThird line.\n"
	excerpt := ExtractExcerpt(body, 40, 2)
	if len(excerpt) != 2 {
		t.Fatalf("got %d lines, want 2", len(excerpt))
	}
	if excerpt[0] != "First line." || excerpt[1] != "Second line." {
		t.Errorf("excerpt = %v", excerpt)
	}
}

func TestExtractExcerptTruncates(t *testing.T) {
	excerpt := ExtractExcerpt("a very long description line that keeps going", 20, 1)
	if len(excerpt) != 1 {
		t.Fatalf("got %d lines, want 1", len(excerpt))
	}
	if ansi.StringWidth(excerpt[0]) > 20 {
		t.Errorf("excerpt line too wide: %q", excerpt[0])
	}
	if !strings.HasSuffix(excerpt[0], "…") {
		t.Errorf("truncated line should end with ellipsis: %q", excerpt[0])
	}
}

func TestHeatTrackerDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Now()
	tracker.Ignite("b1", HeatRemove, start)

	if heat := tracker.Heat("b1", start); heat != 1.0 {
		t.Errorf("heat at ignition = %f, want 1.0", heat)
	}
	midpoint := start.Add(HeatDecayDuration / 2)
	if heat := tracker.Heat("b1", midpoint); heat < 0.4 || heat > 0.6 {
		t.Errorf("heat at midpoint = %f, want ~0.5", heat)
	}
	if heat := tracker.Heat("b1", start.Add(HeatDecayDuration)); heat != 0.0 {
		t.Errorf("heat after full decay = %f, want 0.0", heat)
	}
	if tracker.Kind("b1") != HeatRemove {
		t.Error("kind should survive as HeatRemove")
	}

	if !tracker.HasHot(midpoint) {
		t.Error("tracker should be hot at midpoint")
	}
	if tracker.HasHot(start.Add(HeatDecayDuration + time.Second)) {
		t.Error("tracker should be cold after decay")
	}
}
