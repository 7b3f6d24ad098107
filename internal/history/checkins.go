package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/vocabtrack/pkg/models"
)

// CheckinStorage is the persistence contract for the checkin log.
type CheckinStorage interface {
	Append(models.CheckinRecord) error
	Load() ([]models.CheckinRecord, error)
}

// CheckinLedger is the append-only log of learning checkins.
type CheckinLedger struct {
	storage CheckinStorage
}

// NewCheckinLedger creates a ledger over the given storage backend.
func NewCheckinLedger(storage CheckinStorage) *CheckinLedger {
	return &CheckinLedger{storage: storage}
}

// Record appends a study checkin for the user with the words learned
// today.
func (l *CheckinLedger) Record(user string, wordsLearned []string, now time.Time) error {
	record := models.CheckinRecord{
		User:         user,
		Timestamp:    now.Format(models.TimestampLayout),
		Kind:         models.CheckinKindStudy,
		WordsLearned: wordsLearned,
	}
	if err := l.storage.Append(record); err != nil {
		return fmt.Errorf("failed to append checkin: %v", err)
	}
	return nil
}

// List returns all checkins in append order.
func (l *CheckinLedger) List() ([]models.CheckinRecord, error) {
	checkins, err := l.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load checkins: %v", err)
	}
	return checkins, nil
}

// StreakStats summarizes checkin activity by calendar day.
type StreakStats struct {
	TotalDays     int
	LongestStreak int
}

// StreakStats computes the number of unique checkin days and the longest
// run of consecutive calendar days.
func (l *CheckinLedger) StreakStats() (StreakStats, error) {
	checkins, err := l.storage.Load()
	if err != nil {
		return StreakStats{}, fmt.Errorf("failed to load checkins: %v", err)
	}
	return ComputeStreak(checkins), nil
}

// ComputeStreak deduplicates checkins to unique calendar dates, sorts
// them and finds the longest run where each date follows the previous by
// exactly one day.
func ComputeStreak(checkins []models.CheckinRecord) StreakStats {
	seen := make(map[string]bool)
	for i := range checkins {
		seen[checkins[i].Date()] = true
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	maxStreak := 0
	streak := 0
	var last time.Time
	for _, d := range dates {
		day, err := time.Parse(models.DateLayout, d)
		if err != nil {
			continue
		}
		if last.IsZero() || day.Sub(last) == 24*time.Hour {
			streak++
		} else {
			streak = 1
		}
		if streak > maxStreak {
			maxStreak = streak
		}
		last = day
	}

	return StreakStats{TotalDays: len(dates), LongestStreak: maxStreak}
}
