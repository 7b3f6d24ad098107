package database

import (
	"fmt"

	"github.com/example/vocabtrack/pkg/models"
)

// WordRepository implements the word-bank persistence contract on the
// database: Load reads the full entry list, Save replaces it.
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// Load returns all word entries ordered by word.
func (r *WordRepository) Load() ([]models.WordEntry, error) {
	var entries []models.WordEntry
	err := DB.Select(&entries, "SELECT word, meaning, level, last_review FROM words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %v", err)
	}
	return entries, nil
}

// Save replaces the full word table with the given entries inside a
// transaction.
func (r *WordRepository) Save(entries []models.WordEntry) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear words: %v", err)
	}

	query := DB.Rebind("INSERT INTO words (word, meaning, level, last_review) VALUES (?, ?, ?, ?)")
	for _, e := range entries {
		if _, err := tx.Exec(query, e.Word, e.Meaning, e.Level, e.LastReview); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert word %q: %v", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %v", err)
	}
	return nil
}
