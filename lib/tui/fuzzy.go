// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var initScoring sync.Once

// FuzzyResult is the outcome of matching one string against a pattern.
type FuzzyResult struct {
	Matched bool
	Score   int
	Start   int // Rune offset of the first matched character.
	End     int // Rune offset one past the last matched character.
}

// NewFuzzySlab allocates scratch space for FuzzyMatch. A slab may be
// reused across calls but not shared between goroutines.
func NewFuzzySlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch scores text against pattern with fzf's default scheme,
// ignoring case. An empty pattern matches everything with score zero.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}
	initScoring.Do(func() { algo.Init("default") })

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, lowered, false, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}
	return FuzzyResult{
		Matched: true,
		Score:   int(result.Score),
		Start:   int(result.Start),
		End:     int(result.End),
	}
}
