package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/jezrium/internal/game"
	"github.com/vovakirdan/jezrium/internal/storage"
)

func TestPathSummary(t *testing.T) {
	tests := []struct {
		path     []string
		expected string
	}{
		{nil, "-"},
		{[]string{game.ChoiceContinue}, "stay"},
		{[]string{game.ChoiceReturnEarly, game.ChoiceContinue}, "leave → stay"},
	}

	for _, tt := range tests {
		if got := PathSummary(tt.path); got != tt.expected {
			t.Errorf("PathSummary(%v) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestRunRow(t *testing.T) {
	row := RunRow(storage.RunRecord{
		Session:     "alice",
		Path:        []string{game.ChoiceReturnEarly, game.ChoiceContinue},
		PortalLoops: 1,
		Ticks:       1800,
		TickRate:    60,
	})

	if row[1] != "alice" || row[2] != "leave → stay" || row[3] != "1" || row[4] != "30s" {
		t.Errorf("RunRow() = %q", row)
	}
}

func TestRunRowUsesRecordedTickRate(t *testing.T) {
	tests := []struct {
		rate     int
		expected string
	}{
		{30, "1m0s"},
		{60, "30s"},
		{120, "15s"},
		{0, "30s"}, // journals without a rate assume 60
	}

	for _, tc := range tests {
		row := RunRow(storage.RunRecord{Ticks: 1800, TickRate: tc.rate})
		if row[4] != tc.expected {
			t.Errorf("RunRow(rate %d) time = %q, expected %q", tc.rate, row[4], tc.expected)
		}
	}
}

func TestStatsLine(t *testing.T) {
	if got := StatsLine(nil); got != "no runs recorded" {
		t.Errorf("StatsLine(nil) = %q", got)
	}
	got := StatsLine(&storage.RunStats{Runs: 3, StayedFirstTime: 2, TotalLoops: 1})
	if !strings.HasPrefix(got, "3 runs") {
		t.Errorf("StatsLine() = %q", got)
	}
}

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := NewHistoryModel(store, 100, 30)
	if err != nil {
		t.Fatalf("NewHistoryModel() failed: %v", err)
	}
	if !strings.Contains(empty.View(), "No runs recorded yet.") {
		t.Error("empty history should say so")
	}

	store.SaveRun(storage.RunRecord{Session: "bob", Path: []string{game.ChoiceContinue}, ShotsFired: 5})

	m, err := NewHistoryModel(store, 100, 30)
	if err != nil {
		t.Fatalf("NewHistoryModel() failed: %v", err)
	}
	if len(m.runs) != 1 {
		t.Fatalf("loaded %d runs, expected 1", len(m.runs))
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("history view should list the run")
	}
}
