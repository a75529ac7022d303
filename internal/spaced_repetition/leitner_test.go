package spaced_repetition

import (
	"math/rand"
	"testing"
	"time"

	"github.com/example/deutschbuddy/pkg/models"
)

var day = func(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReviewPromotion(t *testing.T) {
	l := NewLeitner()
	today := day("2026-08-28")

	tests := []struct {
		box     int
		correct bool
		wantBox int
		wantDue string
	}{
		{0, true, 1, "2026-08-29"},
		{1, true, 2, "2026-08-31"},
		{2, true, 3, "2026-09-04"},
		{3, true, 4, "2026-09-13"},
		{4, true, 4, "2026-09-13"}, // capped at the top box
		{0, false, 0, "2026-08-28"},
		{1, false, 0, "2026-08-28"},
		{2, false, 1, "2026-08-29"},
		{4, false, 3, "2026-09-04"},
	}

	for _, tc := range tests {
		got := l.Review(models.SRSEntry{Box: tc.box}, tc.correct, today)
		if got.Box != tc.wantBox || got.Due != tc.wantDue {
			t.Errorf("Review(box=%d, correct=%v) = {%d %s}, want {%d %s}",
				tc.box, tc.correct, got.Box, got.Due, tc.wantBox, tc.wantDue)
		}
	}
}

func TestWordAtBoxTwoAnsweredIncorrectly(t *testing.T) {
	// A word at box 2 (3-day interval) answered wrong drops to box 1 and is
	// due tomorrow.
	l := NewLeitner()
	today := day("2026-08-28")

	got := l.Review(models.SRSEntry{Box: 2, Due: "2026-08-31"}, false, today)
	if got.Box != 1 {
		t.Errorf("box = %d, want 1", got.Box)
	}
	if got.Due != "2026-08-29" {
		t.Errorf("due = %s, want 2026-08-29", got.Due)
	}
}

func TestIsDue(t *testing.T) {
	l := NewLeitner()
	today := day("2026-08-28")

	tests := []struct {
		due  string
		want bool
	}{
		{"2026-08-27", true},
		{"2026-08-28", true},
		{"2026-08-29", false},
		{"garbage", true}, // unparseable dates count as due
		{"", true},
	}
	for _, tc := range tests {
		if got := l.IsDue(models.SRSEntry{Due: tc.due}, today); got != tc.want {
			t.Errorf("IsDue(%q) = %v, want %v", tc.due, got, tc.want)
		}
	}
}

func TestDueCount(t *testing.T) {
	l := NewLeitner()
	today := day("2026-08-28")
	srs := map[string]models.SRSEntry{
		"1": {Box: 1, Due: "2026-08-27"},
		"2": {Box: 2, Due: "2026-08-28"},
		"3": {Box: 3, Due: "2026-09-10"},
	}
	if got := l.DueCount(srs, today); got != 2 {
		t.Errorf("DueCount = %d, want 2", got)
	}
}

func TestLevelWindow(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"A1", []string{"A1", "A2"}},
		{"A2", []string{"A1", "A2", "B1"}},
		{"B1", []string{"A2", "B1", "B2"}},
		{"B2", []string{"B1", "B2"}},
		{"", []string{"A1", "A2", "B1", "B2"}},
	}
	for _, tc := range tests {
		window := LevelWindow(tc.level)
		if len(window) != len(tc.want) {
			t.Errorf("LevelWindow(%q) has %d levels, want %d", tc.level, len(window), len(tc.want))
			continue
		}
		for _, l := range tc.want {
			if !window[l] {
				t.Errorf("LevelWindow(%q) missing %s", tc.level, l)
			}
		}
	}
}

func bank() []models.Word {
	return []models.Word{
		{ID: 1, German: "die Erfahrung", Persian: "تجربه", Level: "B1"},
		{ID: 2, German: "die Vereinbarung", Persian: "توافق", Level: "B2"},
		{ID: 3, German: "plötzlich", Persian: "ناگهان", Level: "A2"},
		{ID: 4, German: "vorbereiten", Persian: "آماده کردن", Level: "A2"},
		{ID: 5, German: "die Lösung", Persian: "راه‌حل", Level: "A2/B1"},
		{ID: 6, German: "nachhaltig", Persian: "پایدار", Level: "B2"},
	}
}

func TestSelectWordsDueFirst(t *testing.T) {
	l := NewLeitner()
	today := day("2026-08-28")
	p := models.DefaultProfile()
	p.Level = models.LevelB1
	p.SRS["2"] = models.SRSEntry{Box: 1, Due: "2026-08-27"}
	p.SRS["6"] = models.SRSEntry{Box: 3, Due: "2026-09-20"} // not due

	got := l.SelectWords(p, bank(), 3, today, rand.New(rand.NewSource(1)))
	if len(got) != 3 {
		t.Fatalf("selected %d words, want 3", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("first word = %d, want the due word 2", got[0].ID)
	}
	seen := map[int]bool{}
	for _, w := range got {
		if seen[w.ID] {
			t.Errorf("word %d selected twice", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestSelectWordsFallsBackToFullBank(t *testing.T) {
	l := NewLeitner()
	today := day("2026-08-28")
	p := models.DefaultProfile()
	p.Level = models.LevelA1
	// Everything already seen: the unseen pool is empty and selection must
	// still fill from the rest of the bank.
	for _, w := range bank() {
		p.MarkSeen(w.ID)
	}

	got := l.SelectWords(p, bank(), 4, today, rand.New(rand.NewSource(1)))
	if len(got) != 4 {
		t.Errorf("selected %d words, want 4", len(got))
	}
}

func TestSelectWordsTruncatesToBank(t *testing.T) {
	l := NewLeitner()
	got := l.SelectWords(models.DefaultProfile(), bank(), 20, day("2026-08-28"), rand.New(rand.NewSource(1)))
	if len(got) != len(bank()) {
		t.Errorf("selected %d words, want %d", len(got), len(bank()))
	}
}
