package models

// Interface languages supported by the bot.
const (
	LangFa = "fa"
	LangDe = "de"
)

// Proficiency levels, ordered.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
)

// Levels lists all proficiency levels in ascending order.
var Levels = []string{LevelA1, LevelA2, LevelB1, LevelB2}

// Learning goals.
const (
	GoalLernen = "lernen"
	GoalReview = "review"
)

// DateLayout is the calendar-date format used for SRS due dates and the
// daily-challenge gate.
const DateLayout = "2006-01-02"

// SeenWordsCap bounds the seen_words list; oldest entries are evicted first.
const SeenWordsCap = 1000

// GrammarHistoryCap bounds the grammar topic history.
const GrammarHistoryCap = 20

// SRSEntry is the per-word spaced-repetition state: a Leitner box and the
// date on/after which the word is due for review.
type SRSEntry struct {
	Box int    `json:"box"`
	Due string `json:"due"`
}

// GrammarProgress tracks the user's position in the level-based grammar
// roadmap. History holds (level, topic) pairs, most recent last.
type GrammarProgress struct {
	Level   string      `json:"level,omitempty"`
	Index   int         `json:"index"`
	History [][2]string `json:"history,omitempty"`
}

// Profile is the per-chat learning state. One record exists per chat ID,
// created on first access and mutated by every module. Every field has a
// default so that records written by older versions load cleanly.
type Profile struct {
	Language     string              `json:"language"`
	Level        string              `json:"level,omitempty"`
	Goal         string              `json:"goal,omitempty"`
	Progress     map[string]int      `json:"progress"`
	SeenWords    []int               `json:"seen_words"`
	SRS          map[string]SRSEntry `json:"srs"`
	DailyStreak  int                 `json:"daily_streak"`
	LastDaily    string              `json:"last_daily,omitempty"`
	Grammar      GrammarProgress     `json:"grammar_progress"`
	LastActivity string              `json:"last_activity,omitempty"`
	LastContext  string              `json:"last_context,omitempty"`
}

// DefaultProfile returns a fresh profile with all defaults filled in.
func DefaultProfile() Profile {
	return Profile{
		Language:  LangFa,
		Progress:  map[string]int{},
		SeenWords: []int{},
		SRS:       map[string]SRSEntry{},
	}
}

// MarkSeen appends a word ID to the seen list, deduplicating and evicting
// the oldest entries once the cap is reached.
func (p *Profile) MarkSeen(wordID int) {
	for _, id := range p.SeenWords {
		if id == wordID {
			return
		}
	}
	p.SeenWords = append(p.SeenWords, wordID)
	if len(p.SeenWords) > SeenWordsCap {
		p.SeenWords = p.SeenWords[len(p.SeenWords)-SeenWordsCap:]
	}
}

// HasSeen reports whether a word ID is in the seen list.
func (p *Profile) HasSeen(wordID int) bool {
	for _, id := range p.SeenWords {
		if id == wordID {
			return true
		}
	}
	return false
}

// Bump increments a progress counter. Counters only ever go up.
func (p *Profile) Bump(activity string, n int) {
	if p.Progress == nil {
		p.Progress = map[string]int{}
	}
	p.Progress[activity] += n
}
