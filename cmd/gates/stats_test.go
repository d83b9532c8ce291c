package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/logic-gates/internal/sokoban"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

func TestStatsTable(t *testing.T) {
	levels := sokoban.MustLoadLevels()
	stats := []storage.LevelStats{
		{Level: 0, Gate: "AND", Attempts: 4, Passes: 1, BestMoves: 3, LastPlayed: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{Level: 2, Gate: "NOT", Attempts: 1},
	}

	out := statsTable(levels, stats)
	for _, want := range []string{"Attempts", "AND", "25%", "2026-01-02 03:04", "XNOR"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Header, separator and borders plus one row per level.
	if rows := strings.Count(out, "\n"); rows < len(levels) {
		t.Errorf("table has %d lines, want at least %d", rows, len(levels))
	}
}

func TestRecentTable(t *testing.T) {
	levels := sokoban.MustLoadLevels()
	attempts := []storage.Attempt{
		{SessionID: "0123456789abcdef", Level: 1, Gate: "OR", Moves: 42, Correct: true},
		{SessionID: "s", Level: 99, Gate: "AND", Moves: 3},
	}

	out := recentTable(levels, attempts)
	for _, want := range []string{"01234567", levels[1].Name, "42", "correct", "wrong", "?"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789") {
		t.Error("session IDs should be shortened")
	}
}
