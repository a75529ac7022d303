package daily

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/example/deutschbuddy/internal/spaced_repetition"
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

// mcqShare is the probability that a generated task is multiple-choice
// rather than fill-in-the-blank.
const mcqShare = 0.6

// GapSentence is one fill-in-the-blank item of the daily pool.
type GapSentence struct {
	Prompt string
	Answer string
	Level  string
}

// State classifies the outcome of a daily-challenge request.
type State int

const (
	// StateNew means a fresh official task was generated and the gate state
	// (last_daily, streak) was updated.
	StateNew State = iota
	// StatePending means an unanswered task already existed and was
	// re-delivered unchanged.
	StatePending
	// StateDone means today's official challenge is already completed; the
	// caller should offer a training task instead.
	StateDone
)

// AnswerResult is the feedback for one submitted daily answer.
type AnswerResult struct {
	Correct  bool
	Expected string
	Task     models.DailyTask
}

// Gate hands out at most one official daily challenge per calendar day and
// tracks the completion streak. Pending tasks are ephemeral per-chat state;
// starting a new task discards the previous one.
type Gate struct {
	store *store.Store
	vocab []models.Word
	gaps  []GapSentence

	mu      sync.Mutex
	pending map[int64]*models.DailyTask

	rng *rand.Rand
	now func() time.Time
}

// New creates a gate over the given vocabulary and gap-sentence pools.
func New(st *store.Store, vocab []models.Word, gaps []GapSentence) *Gate {
	return &Gate{
		store:   st,
		vocab:   vocab,
		gaps:    gaps,
		pending: make(map[int64]*models.DailyTask),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// Request returns the chat's daily task. A pending unanswered task is
// re-delivered as-is. If today's challenge is already completed the caller
// gets StateDone and no task. Otherwise a new official task is generated,
// last_daily moves to today and the streak is recomputed.
func (g *Gate) Request(chatID int64) (*models.DailyTask, State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if task, ok := g.pending[chatID]; ok {
		return task, StatePending, nil
	}

	p := g.store.Get(chatID)
	today := g.today()
	if p.LastDaily == today {
		return nil, StateDone, nil
	}

	task := g.generate(p.Level, false)
	err := g.store.Update(chatID, func(p *models.Profile) {
		yesterday := g.now().AddDate(0, 0, -1).Format(models.DateLayout)
		switch p.LastDaily {
		case today:
			// completed concurrently, leave the streak alone
		case yesterday:
			p.DailyStreak++
		default:
			p.DailyStreak = 1
		}
		p.LastDaily = today
	})
	if err != nil {
		return nil, StateNew, fmt.Errorf("failed to update daily gate state: %w", err)
	}

	g.pending[chatID] = task
	return task, StateNew, nil
}

// RequestExtra generates a training task. It replaces any pending task but
// never touches last_daily or the streak.
func (g *Gate) RequestExtra(chatID int64) *models.DailyTask {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.Get(chatID)
	task := g.generate(p.Level, true)
	g.pending[chatID] = task
	return task
}

// Pending returns the chat's unanswered task, if any.
func (g *Gate) Pending(chatID int64) (*models.DailyTask, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	task, ok := g.pending[chatID]
	return task, ok
}

// AnswerText checks a free-text submission against a pending gap task.
// Submissions with no pending gap task are ignored.
func (g *Gate) AnswerText(chatID int64, text string) (AnswerResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	task, ok := g.pending[chatID]
	if !ok || task.Mode != models.TaskModeGap {
		return AnswerResult{}, false
	}
	delete(g.pending, chatID)
	return AnswerResult{
		Correct:  Normalize(text) == task.Expected,
		Expected: task.Expected,
		Task:     *task,
	}, true
}

// AnswerOption checks an option-index submission against a pending mcq task.
// Submissions with no pending mcq task are ignored.
func (g *Gate) AnswerOption(chatID int64, option int) (AnswerResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	task, ok := g.pending[chatID]
	if !ok || task.Mode != models.TaskModeMCQ {
		return AnswerResult{}, false
	}
	delete(g.pending, chatID)
	return AnswerResult{
		Correct:  option == task.Answer,
		Expected: task.Options[task.Answer],
		Task:     *task,
	}, true
}

// Normalize prepares a gap answer for comparison: trimmed and lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (g *Gate) today() string {
	return g.now().Format(models.DateLayout)
}

// generate builds either an mcq vocabulary item or a gap sentence, biased
// mcqShare/1-mcqShare. Pools are filtered to the user's level window where
// possible.
func (g *Gate) generate(level string, training bool) *models.DailyTask {
	wantMCQ := g.rng.Float64() < mcqShare
	if len(g.gaps) == 0 {
		wantMCQ = true
	}
	if len(g.vocab) == 0 {
		wantMCQ = false
	}
	if wantMCQ {
		return g.generateMCQ(level, training)
	}
	return g.generateGap(level, training)
}

func (g *Gate) generateMCQ(level string, training bool) *models.DailyTask {
	window := spaced_repetition.LevelWindow(level)
	pool := make([]models.Word, 0, len(g.vocab))
	for _, w := range g.vocab {
		if window[w.Level] {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		pool = g.vocab
	}
	w := pool[g.rng.Intn(len(pool))]

	options := []string{w.Persian}
	used := map[string]bool{w.Persian: true}
	others := append([]models.Word(nil), g.vocab...)
	g.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	for _, cand := range others {
		if len(options) == 4 {
			break
		}
		if cand.ID == w.ID || used[cand.Persian] {
			continue
		}
		used[cand.Persian] = true
		options = append(options, cand.Persian)
	}

	answer := 0
	g.rng.Shuffle(len(options), func(i, j int) {
		if i == answer {
			answer = j
		} else if j == answer {
			answer = i
		}
		options[i], options[j] = options[j], options[i]
	})

	return &models.DailyTask{
		Mode:     models.TaskModeMCQ,
		Level:    w.Level,
		Prompt:   w.German,
		Options:  options,
		Answer:   answer,
		WordID:   w.ID,
		Training: training,
	}
}

func (g *Gate) generateGap(level string, training bool) *models.DailyTask {
	window := spaced_repetition.LevelWindow(level)
	pool := make([]GapSentence, 0, len(g.gaps))
	for _, s := range g.gaps {
		if s.Level == "" || window[s.Level] {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		pool = g.gaps
	}
	s := pool[g.rng.Intn(len(pool))]

	return &models.DailyTask{
		Mode:     models.TaskModeGap,
		Level:    s.Level,
		Prompt:   s.Prompt,
		Expected: Normalize(s.Answer),
		Training: training,
	}
}
