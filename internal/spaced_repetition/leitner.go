package spaced_repetition

import (
	"strconv"
	"time"

	"github.com/example/deutschbuddy/pkg/models"
)

// Leitner implements a fixed-interval Leitner box schedule. A word sits in
// one of len(Offsets) boxes; the box index picks the day offset until the
// next review.
type Leitner struct {
	// Offsets holds the review interval in days, indexed by box.
	Offsets []int
}

// NewLeitner creates a scheduler with the default five-box intervals.
func NewLeitner() *Leitner {
	return &Leitner{Offsets: []int{0, 1, 3, 7, 16}}
}

// MaxBox returns the highest box index.
func (l *Leitner) MaxBox() int {
	return len(l.Offsets) - 1
}

// Review applies an answer to an entry and returns the updated entry.
// A correct answer promotes the word one box (capped), an incorrect answer
// demotes it one box (floored); the new due date is today plus the new
// box's offset.
func (l *Leitner) Review(e models.SRSEntry, correct bool, today time.Time) models.SRSEntry {
	box := e.Box
	if correct {
		box++
	} else {
		box--
	}
	if box > l.MaxBox() {
		box = l.MaxBox()
	}
	if box < 0 {
		box = 0
	}
	due := today.AddDate(0, 0, l.Offsets[box])
	return models.SRSEntry{Box: box, Due: due.Format(models.DateLayout)}
}

// IsDue reports whether an entry is due on the given day. Entries with an
// unparseable due date count as due, so a damaged record gets reviewed
// instead of lost.
func (l *Leitner) IsDue(e models.SRSEntry, today time.Time) bool {
	due, err := time.Parse(models.DateLayout, e.Due)
	if err != nil {
		return true
	}
	day := today.Format(models.DateLayout)
	return !due.After(mustDay(day))
}

// DueCount counts the due entries in an SRS map.
func (l *Leitner) DueCount(srs map[string]models.SRSEntry, today time.Time) int {
	n := 0
	for _, e := range srs {
		if l.IsDue(e, today) {
			n++
		}
	}
	return n
}

// Entry returns the SRS state for a word, treating missing records as a
// fresh box-0 entry due immediately.
func Entry(srs map[string]models.SRSEntry, wordID int) models.SRSEntry {
	if e, ok := srs[Key(wordID)]; ok {
		return e
	}
	return models.SRSEntry{Box: 0}
}

// Key converts a word ID to its SRS map key.
func Key(wordID int) string {
	return strconv.Itoa(wordID)
}

func mustDay(day string) time.Time {
	t, _ := time.Parse(models.DateLayout, day)
	return t
}
