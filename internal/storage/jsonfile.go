// Package storage provides JSON-file implementations of the persistence
// contracts. Each collection lives in its own pretty-printed file; a
// missing file reads as an empty collection.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/vocabtrack/pkg/models"
)

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return nil
}

// WordFile stores the word bank as a JSON array.
type WordFile struct {
	Path string
}

// NewWordFile creates a word-bank file store.
func NewWordFile(path string) *WordFile {
	return &WordFile{Path: path}
}

// Load reads all word entries; an absent file is an empty bank.
func (f *WordFile) Load() ([]models.WordEntry, error) {
	var entries []models.WordEntry
	if err := readJSON(f.Path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save replaces the whole file with the given entries.
func (f *WordFile) Save(entries []models.WordEntry) error {
	if entries == nil {
		entries = []models.WordEntry{}
	}
	return writeJSON(f.Path, entries)
}

// QuizResultFile stores the quiz result history as a JSON array.
type QuizResultFile struct {
	Path string
}

// NewQuizResultFile creates a quiz-result file store.
func NewQuizResultFile(path string) *QuizResultFile {
	return &QuizResultFile{Path: path}
}

// Load reads all quiz results.
func (f *QuizResultFile) Load() ([]models.QuizResult, error) {
	var results []models.QuizResult
	if err := readJSON(f.Path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Save replaces the whole file with the given results.
func (f *QuizResultFile) Save(results []models.QuizResult) error {
	if results == nil {
		results = []models.QuizResult{}
	}
	return writeJSON(f.Path, results)
}

// AnswerLogFile stores the permanent answer log as a JSON array.
type AnswerLogFile struct {
	Path string
}

// NewAnswerLogFile creates an answer-log file store.
func NewAnswerLogFile(path string) *AnswerLogFile {
	return &AnswerLogFile{Path: path}
}

// Load reads the answer log in append order.
func (f *AnswerLogFile) Load() ([]models.AnswerRecord, error) {
	var records []models.AnswerRecord
	if err := readJSON(f.Path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Append rewrites the file with the record added at the end.
func (f *AnswerLogFile) Append(record models.AnswerRecord) error {
	records, err := f.Load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return writeJSON(f.Path, records)
}

// CheckinFile stores the checkin log as a JSON array.
type CheckinFile struct {
	Path string
}

// NewCheckinFile creates a checkin file store.
func NewCheckinFile(path string) *CheckinFile {
	return &CheckinFile{Path: path}
}

// Load reads the checkin log in append order.
func (f *CheckinFile) Load() ([]models.CheckinRecord, error) {
	var records []models.CheckinRecord
	if err := readJSON(f.Path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Append rewrites the file with the record added at the end.
func (f *CheckinFile) Append(record models.CheckinRecord) error {
	records, err := f.Load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return writeJSON(f.Path, records)
}
