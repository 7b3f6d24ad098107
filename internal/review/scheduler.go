package review

import (
	"math/rand"
	"time"

	"github.com/example/vocabtrack/pkg/models"
)

// Scheduler implements the leveled spaced-repetition policy. Each level
// maps to a fixed review interval in days; recall feedback moves an entry
// one level up or down, clamped to [MinLevel, MaxLevel].
type Scheduler struct {
	// Review interval in days per level
	Intervals map[int]int
}

// New creates a scheduler with the default interval table.
func New() *Scheduler {
	return &Scheduler{
		Intervals: map[int]int{1: 1, 2: 3, 3: 7, 4: 13, 5: 21},
	}
}

// interval returns the review interval for a level, defaulting to the
// shortest one for out-of-range values.
func (s *Scheduler) interval(level int) int {
	if days, ok := s.Intervals[level]; ok {
		return days
	}
	return s.Intervals[models.MinLevel]
}

// Due returns the entries due for review on the given day. An entry that
// has never been reviewed is always due. Entries at the top level are
// never part of the active queue; they only surface in Permanent.
func (s *Scheduler) Due(words []models.WordEntry, today time.Time) []models.WordEntry {
	var due []models.WordEntry
	for _, w := range words {
		last, ok := w.LastReviewDate()
		if !ok {
			due = append(due, w)
			continue
		}
		if w.Level < models.MaxLevel && daysBetween(last, today) >= s.interval(w.Level) {
			due = append(due, w)
		}
	}
	return due
}

// Permanent returns the mastered entries: top level and rested a full
// top-level interval since the last review. This is a read-only showcase
// list, not an actionable queue.
func (s *Scheduler) Permanent(words []models.WordEntry, today time.Time) []models.WordEntry {
	var permanent []models.WordEntry
	for _, w := range words {
		if w.Level != models.MaxLevel {
			continue
		}
		last, ok := w.LastReviewDate()
		if !ok {
			continue
		}
		if daysBetween(last, today) >= s.interval(models.MaxLevel) {
			permanent = append(permanent, w)
		}
	}
	return permanent
}

// RecordFeedback applies a recall decision to an entry: one level up when
// remembered, one level down when forgotten, clamped to the level bounds.
// The last review date is always set to today. This is the sole
// level-transition rule.
func (s *Scheduler) RecordFeedback(entry *models.WordEntry, remembered bool, today time.Time) {
	if remembered {
		if entry.Level < models.MaxLevel {
			entry.Level++
		}
	} else {
		if entry.Level > models.MinLevel {
			entry.Level--
		}
	}
	if entry.Level < models.MinLevel {
		entry.Level = models.MinLevel
	}
	entry.LastReview = today.Format(models.DateLayout)
}

// LevelDistribution groups word keys by level for the memory-status view.
func LevelDistribution(words []models.WordEntry) map[int][]string {
	dist := make(map[int][]string, models.MaxLevel)
	for i := models.MinLevel; i <= models.MaxLevel; i++ {
		dist[i] = nil
	}
	for _, w := range words {
		if w.Level >= models.MinLevel && w.Level <= models.MaxLevel {
			dist[w.Level] = append(dist[w.Level], w.Word)
		}
	}
	return dist
}

// daysBetween returns the number of whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Session is a single pass over a snapshot of the due set. The queue is
// shuffled once at session start and fixed afterwards: entries that
// become due later are not injected, and queued entries stay even if an
// external edit removes them from due status.
type Session struct {
	queue []models.WordEntry
	index int
}

// NewSession draws a shuffled review queue from the due entries. A nil
// rnd falls back to a time-seeded source.
func NewSession(due []models.WordEntry, rnd *rand.Rand) *Session {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	queue := make([]models.WordEntry, len(due))
	copy(queue, due)
	rnd.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return &Session{queue: queue}
}

// Current returns the entry under review, or false when the session is
// finished.
func (s *Session) Current() (models.WordEntry, bool) {
	if s.index >= len(s.queue) {
		return models.WordEntry{}, false
	}
	return s.queue[s.index], true
}

// Advance moves to the next queued entry.
func (s *Session) Advance() {
	if s.index < len(s.queue) {
		s.index++
	}
}

// Done reports whether every queued entry has been presented.
func (s *Session) Done() bool {
	return s.index >= len(s.queue)
}

// Remaining returns the number of entries still queued.
func (s *Session) Remaining() int {
	return len(s.queue) - s.index
}
