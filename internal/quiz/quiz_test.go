package quiz

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/deutschbuddy/internal/spaced_repetition"
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

func testBank() []models.Word {
	return []models.Word{
		{ID: 1, German: "die Erfahrung", Persian: "تجربه", Level: "B1"},
		{ID: 2, German: "die Gelegenheit", Persian: "فرصت", Level: "B1"},
		{ID: 3, German: "verfügbar", Persian: "در دسترس", Level: "B1"},
		{ID: 4, German: "stattfinden", Persian: "برگزار شدن", Level: "B1"},
		{ID: 5, German: "plötzlich", Persian: "ناگهان", Level: "A2"},
		{ID: 6, German: "die Lösung", Persian: "راه‌حل", Level: "A2/B1"},
	}
}

func testEngine(t *testing.T, length int) (*Engine, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"))
	e := NewEngine(st, spaced_repetition.NewLeitner(), length)
	e.rng = rand.New(rand.NewSource(7))
	e.now = func() time.Time { return mustDay("2026-08-28") }
	return e, st
}

func mustDay(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStartBuildsDistinctQuestions(t *testing.T) {
	e, _ := testEngine(t, 4)

	s, ok := e.Start(10, testBank(), false)
	require.True(t, ok)
	require.Len(t, s.Questions, 4)

	seen := map[int]bool{}
	for _, q := range s.Questions {
		assert.False(t, seen[q.WordID], "word %d appears twice", q.WordID)
		seen[q.WordID] = true
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestStartTruncatesToBankSize(t *testing.T) {
	e, _ := testEngine(t, 10)
	s, ok := e.Start(10, testBank()[:3], false)
	require.True(t, ok)
	assert.Len(t, s.Questions, 3)
}

func TestStartWithEmptyBank(t *testing.T) {
	e, _ := testEngine(t, 5)
	_, ok := e.Start(10, nil, false)
	assert.False(t, ok)
}

func TestDistractorsExcludeCorrectAnswer(t *testing.T) {
	e, _ := testEngine(t, 6)
	s, ok := e.Start(10, testBank(), false)
	require.True(t, ok)

	for _, q := range s.Questions {
		correct := q.Options[q.Correct]
		count := 0
		for _, opt := range q.Options {
			if opt == correct {
				count++
			}
		}
		assert.Equal(t, 1, count, "correct option duplicated among distractors")
	}
}

func TestAnswerFlowToCompletion(t *testing.T) {
	e, st := testEngine(t, 4)
	s, ok := e.Start(10, testBank(), false)
	require.True(t, ok)

	var last Result
	wantScore := 0
	for i := range s.Questions {
		q := s.Questions[i]
		// Answer the even questions correctly, the odd ones wrong.
		opt := q.Correct
		if i%2 == 1 {
			opt = (q.Correct + 1) % len(q.Options)
		} else {
			wantScore++
		}
		res, accepted := e.Answer(10, i, opt)
		require.True(t, accepted)
		last = res
	}

	assert.True(t, last.Completed)
	assert.Equal(t, wantScore, last.Score)
	assert.Equal(t, 4, last.Total)

	// Session is cleared after completion.
	_, running := e.Session(10)
	assert.False(t, running)

	// Every answered word got an SRS record and is marked seen.
	p := st.Get(10)
	assert.Len(t, p.SRS, 4)
	assert.Len(t, p.SeenWords, 4)
	assert.Equal(t, 4, p.Progress["wortschatz"])
}

func TestAnswerUpdatesSRS(t *testing.T) {
	e, st := testEngine(t, 1)
	s, ok := e.Start(10, testBank(), false)
	require.True(t, ok)

	q := s.Questions[0]
	res, accepted := e.Answer(10, 0, q.Correct)
	require.True(t, accepted)
	require.True(t, res.Correct)

	entry := st.Get(10).SRS[spaced_repetition.Key(q.WordID)]
	assert.Equal(t, 1, entry.Box)
	assert.Equal(t, "2026-08-29", entry.Due)
}

func TestStaleSubmissionsIgnored(t *testing.T) {
	e, _ := testEngine(t, 3)

	// No session at all.
	_, accepted := e.Answer(10, 0, 0)
	assert.False(t, accepted)

	s, ok := e.Start(10, testBank(), false)
	require.True(t, ok)

	// Wrong question index.
	_, accepted = e.Answer(10, 2, 0)
	assert.False(t, accepted)
	assert.Equal(t, 0, s.Index)

	// Different chat.
	_, accepted = e.Answer(11, 0, 0)
	assert.False(t, accepted)
}

func TestStartReplacesRunningSession(t *testing.T) {
	e, _ := testEngine(t, 3)
	_, ok := e.Start(10, testBank(), false)
	require.True(t, ok)
	_, accepted := e.Answer(10, 0, 0)
	require.True(t, accepted)

	s2, ok := e.Start(10, testBank(), false)
	require.True(t, ok)
	assert.Equal(t, 0, s2.Index)
	assert.Equal(t, 0, s2.Score)
}

func TestTrainingSessionNeverTouchesDailyGate(t *testing.T) {
	e, st := testEngine(t, 4)
	require.NoError(t, st.Update(10, func(p *models.Profile) {
		p.DailyStreak = 4
		p.LastDaily = "2026-08-27"
	}))

	s, ok := e.Start(10, testBank(), true)
	require.True(t, ok)
	assert.True(t, s.Training)

	for i := range s.Questions {
		res, accepted := e.Answer(10, i, s.Questions[i].Correct)
		require.True(t, accepted)
		assert.True(t, res.Training)
	}

	p := st.Get(10)
	assert.Equal(t, 4, p.DailyStreak)
	assert.Equal(t, "2026-08-27", p.LastDaily)
}
