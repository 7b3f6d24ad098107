package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/vocabtrack/pkg/models"
)

// QuizResultRepository implements the quiz-result persistence contract on
// the database. The word list of each result is stored as a JSON column.
type QuizResultRepository struct{}

// NewQuizResultRepository creates a new repository instance
func NewQuizResultRepository() *QuizResultRepository {
	return &QuizResultRepository{}
}

// Load returns all quiz results in append order.
func (r *QuizResultRepository) Load() ([]models.QuizResult, error) {
	rows, err := DB.Query("SELECT taken_at, question_count, accuracy, wrong_words, words FROM quiz_results ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz results: %v", err)
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var result models.QuizResult
		var words string
		if err := rows.Scan(&result.TakenAt, &result.QuestionCount, &result.Accuracy, &result.WrongWords, &words); err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %v", err)
		}
		if err := json.Unmarshal([]byte(words), &result.Words); err != nil {
			return nil, fmt.Errorf("failed to decode word list: %v", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load quiz results: %v", err)
	}
	return results, nil
}

// Save replaces the full quiz result table inside a transaction.
func (r *QuizResultRepository) Save(results []models.QuizResult) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if _, err := tx.Exec("DELETE FROM quiz_results"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear quiz results: %v", err)
	}

	query := DB.Rebind(`
		INSERT INTO quiz_results (taken_at, question_count, accuracy, wrong_words, words)
		VALUES (?, ?, ?, ?, ?)
	`)
	for i := range results {
		words, err := json.Marshal(results[i].Words)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode word list: %v", err)
		}
		_, err = tx.Exec(query,
			results[i].TakenAt,
			results[i].QuestionCount,
			results[i].Accuracy,
			results[i].WrongWords,
			string(words),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert quiz result: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quiz results: %v", err)
	}
	return nil
}
