package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

func testTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"))
	return NewTracker(st), st
}

func TestWelcomeBackForNewChat(t *testing.T) {
	tr, _ := testTracker(t)
	assert.True(t, tr.ShouldWelcomeBack(1))
}

func TestWelcomeBackGating(t *testing.T) {
	tr, _ := testTracker(t)
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tr.now = func() time.Time { return base }
	tr.Touch(1, "daily")

	tr.now = func() time.Time { return base.Add(4 * time.Hour) }
	assert.False(t, tr.ShouldWelcomeBack(1))

	tr.now = func() time.Time { return base.Add(5 * time.Hour) }
	assert.True(t, tr.ShouldWelcomeBack(1))
}

func TestWelcomeBackOnUnparseableTimestamp(t *testing.T) {
	tr, st := testTracker(t)
	require.NoError(t, st.Update(1, func(p *models.Profile) { p.LastActivity = "not a time" }))
	assert.True(t, tr.ShouldWelcomeBack(1))
}

func TestTouchRecordsContext(t *testing.T) {
	tr, st := testTracker(t)

	tr.Touch(1, "grammar")
	assert.Equal(t, "grammar", tr.LastContext(1))
	assert.NotEmpty(t, st.Get(1).LastActivity)

	// Touch without a context keeps the previous one.
	tr.Touch(1, "")
	assert.Equal(t, "grammar", tr.LastContext(1))
}
