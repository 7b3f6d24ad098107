package models

import "time"

// DateLayout is the layout used for review dates in storage.
const DateLayout = "2006-01-02"

// Level bounds for the spaced-repetition ladder.
const (
	MinLevel = 1
	MaxLevel = 5
)

// WordEntry represents a vocabulary entry in the word bank.
// Word is a case-insensitively unique key. LastReview is a DateLayout
// date string; empty means the entry has never been reviewed.
type WordEntry struct {
	Word       string `json:"word" db:"word"`
	Meaning    string `json:"meaning" db:"meaning"`
	Level      int    `json:"level" db:"level"`
	LastReview string `json:"last_review" db:"last_review"`
}

// LastReviewDate parses the stored review date. The second return value
// is false when the entry has never been reviewed.
func (w *WordEntry) LastReviewDate() (time.Time, bool) {
	if w.LastReview == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, w.LastReview)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
