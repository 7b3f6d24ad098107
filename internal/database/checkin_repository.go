package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/vocabtrack/pkg/models"
)

// CheckinRepository implements the append-only checkin contract on the
// database. The learned-word list is stored as a JSON column.
type CheckinRepository struct{}

// NewCheckinRepository creates a new repository instance
func NewCheckinRepository() *CheckinRepository {
	return &CheckinRepository{}
}

// Append inserts one checkin record.
func (r *CheckinRepository) Append(record models.CheckinRecord) error {
	words, err := json.Marshal(record.WordsLearned)
	if err != nil {
		return fmt.Errorf("failed to encode learned words: %v", err)
	}

	query := DB.Rebind(`
		INSERT INTO checkins (user_name, checked_at, kind, words_learned)
		VALUES (?, ?, ?, ?)
	`)
	_, err = DB.Exec(query, record.User, record.Timestamp, record.Kind, string(words))
	if err != nil {
		return fmt.Errorf("failed to append checkin: %v", err)
	}
	return nil
}

// Load returns the checkin log in append order.
func (r *CheckinRepository) Load() ([]models.CheckinRecord, error) {
	rows, err := DB.Query("SELECT user_name, checked_at, kind, words_learned FROM checkins ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load checkins: %v", err)
	}
	defer rows.Close()

	var records []models.CheckinRecord
	for rows.Next() {
		var record models.CheckinRecord
		var words string
		if err := rows.Scan(&record.User, &record.Timestamp, &record.Kind, &words); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %v", err)
		}
		if err := json.Unmarshal([]byte(words), &record.WordsLearned); err != nil {
			return nil, fmt.Errorf("failed to decode learned words: %v", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load checkins: %v", err)
	}
	return records, nil
}
