package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/example/deutschbuddy/internal/spaced_repetition"
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

// DefaultSessionLength is the number of questions in one vocabulary quiz.
const DefaultSessionLength = 8

// Direction of a vocabulary question.
type Direction int

const (
	// DeToFa shows the German word and asks for the Persian translation.
	DeToFa Direction = iota
	// FaToDe shows the Persian translation and asks for the German word.
	FaToDe
)

// Question is one multiple-choice vocabulary item: a prompt, four options
// (one correct, three distractors drawn from the word bank) and the index
// of the correct option.
type Question struct {
	WordID    int
	Direction Direction
	Prompt    string
	Options   []string
	Correct   int
}

// Session is the ephemeral state of one running quiz. It lives in memory
// only and is discarded on completion or when a new quiz starts.
type Session struct {
	Questions []Question
	Index     int
	Score     int
	Training  bool
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.Index >= len(s.Questions)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// Result describes the outcome of one answer submission.
type Result struct {
	Correct       bool
	CorrectOption string
	Word          models.Word
	Completed     bool
	Score         int
	Total         int
	Training      bool
}

// Engine runs quiz sessions per chat: it builds question lists from the
// word bank, validates answers and feeds results back into the SRS state.
type Engine struct {
	store  *store.Store
	srs    *spaced_repetition.Leitner
	length int

	mu       sync.Mutex
	sessions map[int64]*Session
	byWordID map[int]models.Word

	rng *rand.Rand
	now func() time.Time
}

// NewEngine creates a quiz engine with the given session length.
func NewEngine(st *store.Store, srs *spaced_repetition.Leitner, length int) *Engine {
	if length <= 0 {
		length = DefaultSessionLength
	}
	return &Engine{
		store:    st,
		srs:      srs,
		length:   length,
		sessions: make(map[int64]*Session),
		byWordID: make(map[int]models.Word),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Start builds a new session for a chat from the word bank and replaces any
// session already in progress. Training sessions run the same mechanics but
// are reported as non-counted practice.
func (e *Engine) Start(chatID int64, bank []models.Word, training bool) (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.store.Get(chatID)
	words := e.srs.SelectWords(p, bank, e.length, e.now(), e.rng)
	if len(words) == 0 {
		delete(e.sessions, chatID)
		return nil, false
	}

	questions := make([]Question, 0, len(words))
	for _, w := range words {
		e.byWordID[w.ID] = w
		questions = append(questions, e.buildQuestion(w, bank))
	}

	s := &Session{Questions: questions, Training: training}
	e.sessions[chatID] = s
	return s, true
}

// Session returns the chat's running session, if any.
func (e *Engine) Session(chatID int64) (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[chatID]
	return s, ok
}

// Answer validates a submission against the current question. Submissions
// for a different question index, or when no session is running, are
// silently ignored. A valid answer updates the word's SRS state, marks the
// word seen and advances the session; completing the last question clears
// the session.
func (e *Engine) Answer(chatID int64, questionIndex, option int) (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[chatID]
	if !ok || s.Done() || questionIndex != s.Index {
		return Result{}, false
	}
	q := s.Questions[s.Index]
	correct := option >= 0 && option == q.Correct
	if correct {
		s.Score++
	}

	today := e.now()
	err := e.store.Update(chatID, func(p *models.Profile) {
		key := spaced_repetition.Key(q.WordID)
		p.SRS[key] = e.srs.Review(spaced_repetition.Entry(p.SRS, q.WordID), correct, today)
		p.MarkSeen(q.WordID)
		p.Bump("wortschatz", 1)
	})
	_ = err // a failed state write must not stall the quiz; the next answer retries

	s.Index++
	res := Result{
		Correct:       correct,
		CorrectOption: q.Options[q.Correct],
		Word:          e.byWordID[q.WordID],
		Score:         s.Score,
		Total:         len(s.Questions),
		Training:      s.Training,
	}
	if s.Done() {
		res.Completed = true
		delete(e.sessions, chatID)
	}
	return res, true
}

// Reset discards the chat's session, if any.
func (e *Engine) Reset(chatID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, chatID)
}

// buildQuestion assembles a multiple-choice question for a word: the correct
// option plus up to three distractors drawn without replacement from the
// rest of the bank, shuffled with the correct index tracked through the
// swaps.
func (e *Engine) buildQuestion(w models.Word, bank []models.Word) Question {
	dir := DeToFa
	if e.rng.Intn(2) == 1 {
		dir = FaToDe
	}

	prompt := w.German
	correct := w.Persian
	pick := func(cand models.Word) string { return cand.Persian }
	if dir == FaToDe {
		prompt = w.Persian
		correct = w.German
		pick = func(cand models.Word) string { return cand.German }
	}

	others := make([]models.Word, 0, len(bank))
	for _, cand := range bank {
		if cand.ID != w.ID {
			others = append(others, cand)
		}
	}
	e.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	options := []string{correct}
	used := map[string]bool{correct: true}
	for _, cand := range others {
		if len(options) == 4 {
			break
		}
		opt := pick(cand)
		if used[opt] {
			continue
		}
		used[opt] = true
		options = append(options, opt)
	}

	correctIdx := 0
	e.rng.Shuffle(len(options), func(i, j int) {
		if i == correctIdx {
			correctIdx = j
		} else if j == correctIdx {
			correctIdx = i
		}
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		WordID:    w.ID,
		Direction: dir,
		Prompt:    prompt,
		Options:   options,
		Correct:   correctIdx,
	}
}
