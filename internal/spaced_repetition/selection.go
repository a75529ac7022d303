package spaced_repetition

import (
	"math/rand"
	"strings"
	"time"

	"github.com/example/deutschbuddy/pkg/models"
)

// LevelWindow returns the set of proficiency levels in range for a user:
// the level itself plus its immediate neighbors. An empty or unknown level
// opens the window to all levels.
func LevelWindow(level string) map[string]bool {
	idx := -1
	for i, l := range models.Levels {
		if l == level {
			idx = i
			break
		}
	}
	window := make(map[string]bool, len(models.Levels))
	if idx < 0 {
		for _, l := range models.Levels {
			window[l] = true
		}
		return window
	}
	for i := idx - 1; i <= idx+1; i++ {
		if i >= 0 && i < len(models.Levels) {
			window[models.Levels[i]] = true
		}
	}
	return window
}

// inWindow matches compound level tags like "A2/B1" if any part is in range.
func inWindow(window map[string]bool, levelTag string) bool {
	for _, part := range strings.Split(levelTag, "/") {
		if window[strings.TrimSpace(part)] {
			return true
		}
	}
	return false
}

// SelectWords picks up to limit distinct words for a learning session.
// Priority: words whose review is due, then unseen words inside the user's
// level window, then whatever is left in the bank.
func (l *Leitner) SelectWords(p models.Profile, bank []models.Word, limit int, today time.Time, rng *rand.Rand) []models.Word {
	if limit <= 0 {
		return nil
	}

	picked := make([]models.Word, 0, limit)
	taken := make(map[int]bool)
	add := func(ws []models.Word) {
		for _, w := range ws {
			if len(picked) >= limit {
				return
			}
			if taken[w.ID] {
				continue
			}
			taken[w.ID] = true
			picked = append(picked, w)
		}
	}

	var due, unseen, rest []models.Word
	window := LevelWindow(p.Level)
	for _, w := range bank {
		if e, ok := p.SRS[Key(w.ID)]; ok && l.IsDue(e, today) {
			due = append(due, w)
			continue
		}
		if _, tracked := p.SRS[Key(w.ID)]; !tracked && !p.HasSeen(w.ID) && inWindow(window, w.Level) {
			unseen = append(unseen, w)
			continue
		}
		rest = append(rest, w)
	}

	if rng != nil {
		rng.Shuffle(len(due), func(i, j int) { due[i], due[j] = due[j], due[i] })
		rng.Shuffle(len(unseen), func(i, j int) { unseen[i], unseen[j] = unseen[j], unseen[i] })
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	}

	add(due)
	add(unseen)
	add(rest)
	return picked
}
