package session

import (
	"time"

	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/pkg/models"
)

// WelcomeBackAfter is how long a chat must be quiet before the next message
// triggers the welcome-back card.
const WelcomeBackAfter = 5 * time.Hour

// Tracker records per-chat activity and decides when to greet a returning
// user.
type Tracker struct {
	store *store.Store
	now   func() time.Time
}

// NewTracker creates an activity tracker.
func NewTracker(st *store.Store) *Tracker {
	return &Tracker{store: st, now: time.Now}
}

// Touch records the current time as the chat's last activity and, when
// contextName is non-empty, the module the user last interacted with.
func (t *Tracker) Touch(chatID int64, contextName string) {
	// Activity bookkeeping is best effort; a failed write only delays the
	// next welcome-back card.
	_ = t.store.Update(chatID, func(p *models.Profile) {
		p.LastActivity = t.now().UTC().Format(time.RFC3339)
		if contextName != "" {
			p.LastContext = contextName
		}
	})
}

// ShouldWelcomeBack reports whether the chat has been inactive long enough
// for a welcome-back card. Chats with no or unparseable activity records
// always qualify.
func (t *Tracker) ShouldWelcomeBack(chatID int64) bool {
	p := t.store.Get(chatID)
	if p.LastActivity == "" {
		return true
	}
	last, err := time.Parse(time.RFC3339, p.LastActivity)
	if err != nil {
		return true
	}
	return t.now().UTC().Sub(last) >= WelcomeBackAfter
}

// LastContext returns the module the user last interacted with.
func (t *Tracker) LastContext(chatID int64) string {
	return t.store.Get(chatID).LastContext
}
