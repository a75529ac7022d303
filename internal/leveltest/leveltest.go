package leveltest

import (
	"sync"

	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

// Question is one placement-test item.
type Question struct {
	Text    string
	Options []string
	Answer  int
}

// DefaultQuestions is the built-in placement test.
var DefaultQuestions = []Question{
	{
		Text:    "Wie heißt der bestimmte Artikel für „Buch“?",
		Options: []string{"der", "die", "das", "den"},
		Answer:  2,
	},
	{
		Text:    "Gestern ____ ich ins Kino gegangen.",
		Options: []string{"habe", "bin", "war", "werde"},
		Answer:  1,
	},
	{
		Text:    "Wähle den korrekten Satz:",
		Options: []string{"Ich weiß, dass er kommt morgen.", "Ich weiß, dass er morgen kommt.", "Ich weiß, er dass morgen kommt.", "Ich weiß, dass morgen er kommt."},
		Answer:  1,
	},
	{
		Text:    "Wenn ich Zeit ____, würde ich mehr lesen.",
		Options: []string{"habe", "hatte", "hätte", "gehabt"},
		Answer:  2,
	},
}

// ThresholdTable maps a placement score to a level: the entry at index
// score applies, scores past the end get the last entry. This is policy,
// not formula; callers may supply their own table.
type ThresholdTable []string

// DefaultThresholds: score 0-1 → A1, 2 → A2, 3 → B1, 4+ → B2.
var DefaultThresholds = ThresholdTable{
	models.LevelA1, models.LevelA1, models.LevelA2, models.LevelB1, models.LevelB2,
}

// Level resolves a score against the table.
func (t ThresholdTable) Level(score int) string {
	if len(t) == 0 {
		return models.LevelA1
	}
	if score < 0 {
		score = 0
	}
	if score >= len(t) {
		score = len(t) - 1
	}
	return t[score]
}

// progress is the ephemeral per-chat test state; it is discarded when the
// test finishes or restarts.
type progress struct {
	index   int
	score   int
	answers []int
}

// Outcome describes the result of one answer submission.
type Outcome struct {
	Correct   bool
	Finished  bool
	Score     int
	Level     string
	Next      *Question
	NextIndex int
	Total     int
}

// Test runs the multi-question level placement flow. The previously stored
// level stays authoritative until a rerun finishes.
type Test struct {
	store      *store.Store
	questions  []Question
	thresholds ThresholdTable

	mu     sync.Mutex
	active map[int64]*progress
}

// New creates a placement test over the given questions and score table.
func New(st *store.Store, questions []Question, thresholds ThresholdTable) *Test {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	return &Test{
		store:      st,
		questions:  questions,
		thresholds: thresholds,
		active:     make(map[int64]*progress),
	}
}

// Start begins (or restarts) the test for a chat and returns the first
// question.
func (t *Test) Start(chatID int64) (Question, int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active[chatID] = &progress{}
	return t.questions[0], 0, len(t.questions)
}

// Answer records the chosen option for a question. Submissions for a
// question index other than the current one, or with no test running, are
// silently ignored. Finishing the last question computes the score, maps it
// to a level, persists the level and discards the test state.
func (t *Test) Answer(chatID int64, questionIndex, option int) (Outcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prog, ok := t.active[chatID]
	if !ok || questionIndex != prog.index {
		return Outcome{}, false
	}

	q := t.questions[prog.index]
	correct := option == q.Answer
	if correct {
		prog.score++
	}
	prog.answers = append(prog.answers, option)
	prog.index++

	out := Outcome{
		Correct: correct,
		Score:   prog.score,
		Total:   len(t.questions),
	}
	if prog.index >= len(t.questions) {
		out.Finished = true
		out.Level = t.thresholds.Level(prog.score)
		delete(t.active, chatID)
		if err := t.store.Update(chatID, func(p *models.Profile) {
			p.Level = out.Level
		}); err != nil {
			return out, true
		}
		return out, true
	}

	next := t.questions[prog.index]
	out.Next = &next
	out.NextIndex = prog.index
	return out, true
}

// Running reports whether a test is in progress for the chat.
func (t *Test) Running(chatID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[chatID]
	return ok
}
