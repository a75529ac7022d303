package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/deutschbuddy/internal/spaced_repetition"
	"github.com/example/deutschbuddy/internal/store"
)

// Default reminder window in UTC hours.
const (
	DefaultNotificationStartHour = 6
	DefaultNotificationEndHour   = 20
)

// Notifier delivers review reminders to a chat.
type Notifier interface {
	SendReviewReminder(chatID int64, dueCount int) error
}

// Scheduler runs the hourly due-word reminder job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *store.Store
	srs       *spaced_repetition.Leitner
	notifier  Notifier

	now func() time.Time
}

// New creates a scheduler over the profile store.
func New(st *store.Store, srs *spaced_repetition.Leitner, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     st,
		srs:       srs,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Start begins the hourly reminder checks without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	now := s.now().UTC()
	startHour, endHour := notificationWindow()
	if now.Hour() < startHour || now.Hour() > endHour {
		return
	}

	for _, chatID := range s.store.ChatIDs() {
		profile := s.store.Get(chatID)
		due := s.srs.DueCount(profile.SRS, now)
		if due == 0 {
			continue
		}
		if err := s.notifier.SendReviewReminder(chatID, due); err != nil {
			log.Printf("Error sending reminder to chat %d: %v", chatID, err)
		}
	}
}

// RunManualCheck forces a reminder check for one chat.
func (s *Scheduler) RunManualCheck(chatID int64) error {
	profile := s.store.Get(chatID)
	if due := s.srs.DueCount(profile.SRS, s.now().UTC()); due > 0 {
		return s.notifier.SendReviewReminder(chatID, due)
	}
	return nil
}

func notificationWindow() (int, int) {
	start := DefaultNotificationStartHour
	end := DefaultNotificationEndHour
	if v := os.Getenv("NOTIFICATION_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			start = h
		}
	}
	if v := os.Getenv("NOTIFICATION_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			end = h
		}
	}
	return start, end
}
