package database

import (
	"fmt"

	"github.com/example/vocabtrack/pkg/models"
)

// AnswerLogRepository implements the append-only answer-log contract on
// the database.
type AnswerLogRepository struct{}

// NewAnswerLogRepository creates a new repository instance
func NewAnswerLogRepository() *AnswerLogRepository {
	return &AnswerLogRepository{}
}

// Append inserts one answer record.
func (r *AnswerLogRepository) Append(record models.AnswerRecord) error {
	query := DB.Rebind(`
		INSERT INTO answer_log (word, your_answer, correct_answer, is_correct)
		VALUES (?, ?, ?, ?)
	`)
	_, err := DB.Exec(query, record.Word, record.YourAnswer, record.CorrectAnswer, record.IsCorrect)
	if err != nil {
		return fmt.Errorf("failed to append answer record: %v", err)
	}
	return nil
}

// Load returns the answer log in append order.
func (r *AnswerLogRepository) Load() ([]models.AnswerRecord, error) {
	var records []models.AnswerRecord
	err := DB.Select(&records, "SELECT word, your_answer, correct_answer, is_correct FROM answer_log ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load answer log: %v", err)
	}
	return records, nil
}
