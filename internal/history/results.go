package history

import (
	"fmt"

	"github.com/example/vocabtrack/pkg/models"
)

// ResultStorage is the persistence contract for quiz results. Save
// replaces the full record list.
type ResultStorage interface {
	Load() ([]models.QuizResult, error)
	Save([]models.QuizResult) error
}

// ResultLedger is the append-only history of completed quizzes with an
// idempotence guard against saving identical repeated outcomes.
type ResultLedger struct {
	storage ResultStorage
}

// NewResultLedger creates a ledger over the given storage backend.
func NewResultLedger(storage ResultStorage) *ResultLedger {
	return &ResultLedger{storage: storage}
}

// List returns all recorded quiz results in append order.
func (l *ResultLedger) List() ([]models.QuizResult, error) {
	results, err := l.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz results: %v", err)
	}
	return results, nil
}

// Record appends a quiz result unless an existing record matches it on
// question count, formatted accuracy, wrong-words string and word set all
// at once. It returns whether the record was appended. Two identical
// quizzes run at different times are indistinguishable and only the
// first is kept.
func (l *ResultLedger) Record(result models.QuizResult) (bool, error) {
	results, err := l.storage.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load quiz results: %v", err)
	}

	for i := range results {
		if isDuplicate(&results[i], &result) {
			return false, nil
		}
	}

	results = append(results, result)
	if err := l.storage.Save(results); err != nil {
		return false, fmt.Errorf("failed to save quiz results: %v", err)
	}
	return true, nil
}

// Clear deletes the whole quiz history.
func (l *ResultLedger) Clear() error {
	if err := l.storage.Save([]models.QuizResult{}); err != nil {
		return fmt.Errorf("failed to save quiz results: %v", err)
	}
	return nil
}

// isDuplicate reports whether two results describe the same quiz outcome.
func isDuplicate(existing, candidate *models.QuizResult) bool {
	if existing.QuestionCount != candidate.QuestionCount {
		return false
	}
	if existing.AccuracyString() != candidate.AccuracyString() {
		return false
	}
	if existing.WrongWords != candidate.WrongWords {
		return false
	}
	return sameWordSet(existing.WordSet(), candidate.WordSet())
}

func sameWordSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for w := range a {
		if !b[w] {
			return false
		}
	}
	return true
}
