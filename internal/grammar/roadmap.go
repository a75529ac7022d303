package grammar

import (
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

// Roadmap is the level-based grammar curriculum.
var Roadmap = map[string][]string{
	models.LevelA1: {
		"Artikel & Plural (der/die/das)",
		"Personalpronomen & sein/haben",
		"Präsens Grundform (Verbzweit)",
		"Fragesätze & W-Fragen",
		"Modalverben (können/müssen/…)",
		"Akkusativ vs. Nominativ (Grundlagen)",
	},
	models.LevelA2: {
		"Trennbare/Untrennbare Verben",
		"Perfekt mit haben/sein",
		"Dativ-Grundlagen (mit/bei/zu …)",
		"Nebensätze mit weil/dass",
		"Steigerung der Adjektive (Komparativ/Superlativ)",
	},
	models.LevelB1: {
		"Konjunktiv II (Höflichkeit & Irreales)",
		"Passiv Präsens/Präteritum",
		"Relativsätze (der/die/das …)",
		"Temporal-Sätze (wenn/als/nachdem)",
		"Wortstellung im Nebensatz (Verb am Ende)",
	},
	models.LevelB2: {
		"Konjunktiv I/II in der indirekten Rede",
		"Partizipialkonstruktionen",
		"Nominalisierung von Verben/Adjektiven",
		"Präpositionen mit fester Rektion (B2-typisch)",
		"Verbklammer & erweiterte Satzklammer",
	},
}

// Position is the user's place on the roadmap: the current topic with its
// neighbors for navigation.
type Position struct {
	Level string
	Index int
	Prev  string
	Cur   string
	Next  string
}

// Tracker maintains per-user roadmap progress in the profile.
type Tracker struct {
	store *store.Store
}

// NewTracker creates a roadmap tracker.
func NewTracker(st *store.Store) *Tracker {
	return &Tracker{store: st}
}

// Current returns the user's roadmap position, initializing progress from
// the profile level on first use.
func (t *Tracker) Current(chatID int64) Position {
	p := t.store.Get(chatID)
	gp := normalized(p)
	return position(gp.Level, gp.Index)
}

// Advance moves the roadmap position by delta (clamped to the topic list),
// persists it and records the new topic in the bounded history.
func (t *Tracker) Advance(chatID int64, delta int) (Position, error) {
	var pos Position
	err := t.store.Update(chatID, func(p *models.Profile) {
		gp := normalized(*p)
		topics := Roadmap[gp.Level]
		idx := gp.Index + delta
		if idx < 0 {
			idx = 0
		}
		if idx > len(topics)-1 {
			idx = len(topics) - 1
		}
		gp.Index = idx
		pos = position(gp.Level, idx)
		appendHistory(&gp, gp.Level, pos.Cur)
		p.Grammar = gp
	})
	return pos, err
}

// Record stores a visited topic in the history without moving the index;
// used for ad-hoc topic lookups outside the roadmap.
func (t *Tracker) Record(chatID int64, topic string) error {
	return t.store.Update(chatID, func(p *models.Profile) {
		gp := normalized(*p)
		appendHistory(&gp, gp.Level, topic)
		p.Grammar = gp
	})
}

// Visit marks the current roadmap topic as visited.
func (t *Tracker) Visit(chatID int64) (Position, error) {
	var pos Position
	err := t.store.Update(chatID, func(p *models.Profile) {
		gp := normalized(*p)
		pos = position(gp.Level, gp.Index)
		if n := len(gp.History); n == 0 || gp.History[n-1] != [2]string{gp.Level, pos.Cur} {
			appendHistory(&gp, gp.Level, pos.Cur)
		}
		p.Grammar = gp
	})
	return pos, err
}

// normalized backfills grammar progress from the profile level, mirroring
// how profile reads synthesize missing fields.
func normalized(p models.Profile) models.GrammarProgress {
	gp := p.Grammar
	if _, ok := Roadmap[gp.Level]; !ok {
		gp.Level = p.Level
		if _, ok := Roadmap[gp.Level]; !ok {
			gp.Level = models.LevelA1
		}
		gp.Index = 0
	}
	topics := Roadmap[gp.Level]
	if gp.Index < 0 {
		gp.Index = 0
	}
	if gp.Index > len(topics)-1 {
		gp.Index = len(topics) - 1
	}
	return gp
}

func appendHistory(gp *models.GrammarProgress, level, topic string) {
	gp.History = append(gp.History, [2]string{level, topic})
	if len(gp.History) > models.GrammarHistoryCap {
		gp.History = gp.History[len(gp.History)-models.GrammarHistoryCap:]
	}
}

func position(level string, index int) Position {
	topics := Roadmap[level]
	pos := Position{Level: level, Index: index, Cur: topics[index]}
	if index > 0 {
		pos.Prev = topics[index-1]
	}
	if index+1 < len(topics) {
		pos.Next = topics[index+1]
	}
	return pos
}
