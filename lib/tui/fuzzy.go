// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult holds the outcome of matching a pattern against a
// single candidate string.
type FuzzyResult struct {
	// Score is the fzf match quality. Zero means no match; higher is
	// better. Contiguous matches and word-boundary hits score above
	// scattered character matches.
	Score int
	// Positions are rune indices into the candidate that matched the
	// pattern, for highlight rendering. Empty when there is no match.
	Positions []int
}

// FuzzyMatch runs fzf's V2 matching algorithm against a single
// candidate string. Matching is case-insensitive: both sides are
// lowercased, so callers should lowercase the pattern once and pass
// it for every candidate.
//
// The slab is fzf's scratch allocation arena. Passing nil allocates
// per call, which is fine for tests; interactive filtering should
// allocate one with [NewFuzzySlab] and reuse it across a batch of
// candidates.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = *positions
	}
	return FuzzyResult{Score: result.Score, Positions: matched}
}

// NewFuzzySlab allocates a scratch arena for a batch of FuzzyMatch
// calls. The sizes match fzf's own defaults.
func NewFuzzySlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}
