package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/breakout-host/internal/registry"
	"github.com/vovakirdan/breakout-host/internal/storage"
)

func TestWriteSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		score int
		speed float64
	}{{4, 300}, {12, 500}} {
		if _, err := store.SaveScore("breakout", s.score, s.speed); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats failed: %v", err)
	}

	var buf bytes.Buffer
	writeSummary(&buf, stats, registry.List())
	out := buf.String()

	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Breakout") {
			row = line
		}
	}
	if row == "" {
		t.Fatalf("summary has no Breakout row:\n%s", out)
	}
	fields := strings.Fields(row)
	// Breakout  best  runs  avg-score  avg-speed  date  time
	if len(fields) < 5 || fields[1] != "12" || fields[2] != "2" || fields[3] != "8.0" || fields[4] != "400" {
		t.Errorf("unexpected Breakout row %q", row)
	}
	if strings.Contains(out, "Hello, World") {
		t.Error("games without scores should be left out")
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, map[string]*storage.GameStats{}, registry.List())

	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}
