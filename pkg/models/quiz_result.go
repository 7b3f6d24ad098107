package models

import "fmt"

// TimestampLayout is the layout used for quiz result and checkin timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// WrongWordsNone is stored in WrongWords when every answer was correct.
const WrongWordsNone = "none"

// QuizResult summarizes one completed quiz.
type QuizResult struct {
	TakenAt       string   `json:"taken_at" db:"taken_at"`
	QuestionCount int      `json:"question_count" db:"question_count"`
	Accuracy      float64  `json:"accuracy" db:"accuracy"`
	WrongWords    string   `json:"wrong_words" db:"wrong_words"`
	Words         []string `json:"words"`
}

// AccuracyString formats the accuracy the way the result ledger compares
// it: two decimals with a trailing percent sign.
func (r *QuizResult) AccuracyString() string {
	return fmt.Sprintf("%.2f%%", r.Accuracy)
}

// WordSet returns the quizzed words as a set.
func (r *QuizResult) WordSet() map[string]bool {
	set := make(map[string]bool, len(r.Words))
	for _, w := range r.Words {
		set[w] = true
	}
	return set
}
