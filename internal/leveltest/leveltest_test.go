package leveltest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "state.json"))
}

func TestThresholdTable(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, models.LevelA1},
		{1, models.LevelA1},
		{2, models.LevelA2},
		{3, models.LevelB1},
		{4, models.LevelB2},
		{9, models.LevelB2},
	}
	for _, tc := range tests {
		if got := DefaultThresholds.Level(tc.score); got != tc.want {
			t.Errorf("Level(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestThreeOfFourCorrectYieldsB1(t *testing.T) {
	st := testStore(t)
	lt := New(st, nil, nil)

	q, idx, total := lt.Start(1)
	require.Equal(t, 0, idx)
	require.Equal(t, 4, total)

	var out Outcome
	var ok bool
	for i := 0; i < total; i++ {
		opt := q.Answer
		if i == 3 {
			opt = (q.Answer + 1) % len(q.Options) // miss the last one
		}
		out, ok = lt.Answer(1, i, opt)
		require.True(t, ok)
		if out.Next != nil {
			q = *out.Next
		}
	}

	assert.True(t, out.Finished)
	assert.Equal(t, 3, out.Score)
	assert.Equal(t, models.LevelB1, out.Level)
	assert.Equal(t, models.LevelB1, st.Get(1).Level)
	assert.False(t, lt.Running(1))
}

func TestOldLevelAuthoritativeUntilFinished(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Update(1, func(p *models.Profile) { p.Level = models.LevelA2 }))
	lt := New(st, nil, nil)

	q, _, _ := lt.Start(1)
	_, ok := lt.Answer(1, 0, q.Answer)
	require.True(t, ok)

	// Mid-test the stored level is untouched.
	assert.Equal(t, models.LevelA2, st.Get(1).Level)
}

func TestStaleAnswersIgnored(t *testing.T) {
	st := testStore(t)
	lt := New(st, nil, nil)

	// No test running.
	_, ok := lt.Answer(1, 0, 0)
	assert.False(t, ok)

	lt.Start(1)
	// Wrong question index.
	_, ok = lt.Answer(1, 2, 0)
	assert.False(t, ok)
}

func TestRestartDiscardsProgress(t *testing.T) {
	st := testStore(t)
	lt := New(st, nil, nil)

	q, _, _ := lt.Start(1)
	_, ok := lt.Answer(1, 0, q.Answer)
	require.True(t, ok)

	q2, idx, _ := lt.Start(1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, DefaultQuestions[0].Text, q2.Text)

	// The old answer no longer counts: index restarted at 0.
	out, ok := lt.Answer(1, 0, (q2.Answer+1)%len(q2.Options))
	require.True(t, ok)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, out.Score)
}

func TestCustomThresholds(t *testing.T) {
	st := testStore(t)
	strict := ThresholdTable{models.LevelA1, models.LevelA1, models.LevelA1, models.LevelA2, models.LevelB1}
	lt := New(st, nil, strict)

	q, _, total := lt.Start(1)
	var out Outcome
	for i := 0; i < total; i++ {
		out, _ = lt.Answer(1, i, q.Answer)
		if out.Next != nil {
			q = *out.Next
		}
	}
	require.True(t, out.Finished)
	assert.Equal(t, 4, out.Score)
	assert.Equal(t, models.LevelB1, out.Level)
}
