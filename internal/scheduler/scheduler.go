// Package scheduler runs the daily due-review reminder outside the
// synchronous core.
package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/vocabtrack/internal/review"
	"github.com/example/vocabtrack/internal/vocabulary"
	"github.com/go-co-op/gocron"
)

// DefaultReminderHour is the hour of day reminders fire at when
// REMINDER_HOUR is not set.
const DefaultReminderHour = 9

// Notifier interface for delivering reminders
type Notifier interface {
	SendDueReminder(count int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *vocabulary.Store
	review    *review.Scheduler
	notifier  Notifier
}

// New creates a new scheduler instance
func New(store *vocabulary.Store, rev *review.Scheduler, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		review:    rev,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	hour := DefaultReminderHour
	if hourStr := os.Getenv("REMINDER_HOUR"); hourStr != "" {
		if h, err := strconv.Atoi(hourStr); err == nil && h >= 0 && h <= 23 {
			hour = h
		}
	}

	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunManualCheck forces an immediate due check.
func (s *Scheduler) RunManualCheck() error {
	words, err := s.store.List()
	if err != nil {
		return err
	}
	due := s.review.Due(words, time.Now())
	if len(due) == 0 {
		return nil
	}
	return s.notifier.SendDueReminder(len(due))
}

// checkAndRemind counts due entries and sends a reminder when any exist.
func (s *Scheduler) checkAndRemind() {
	words, err := s.store.List()
	if err != nil {
		log.Printf("Error loading words for reminder: %v", err)
		return
	}

	due := s.review.Due(words, time.Now())
	if len(due) == 0 {
		return
	}

	if err := s.notifier.SendDueReminder(len(due)); err != nil {
		log.Printf("Error sending due reminder: %v", err)
	}
}
