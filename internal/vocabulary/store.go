package vocabulary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/vocabtrack/pkg/models"
)

// ErrDuplicateWord is returned when a rename would collide with an
// existing entry. The store is left unchanged.
var ErrDuplicateWord = errors.New("word already exists")

// ErrWordNotFound is returned when an operation targets a word that is
// not in the store.
var ErrWordNotFound = errors.New("word not found")

// Storage is the persistence contract for the word bank. Save replaces
// the full entry list.
type Storage interface {
	Load() ([]models.WordEntry, error)
	Save([]models.WordEntry) error
}

// Store owns the durable set of vocabulary entries. Every mutation is a
// read-modify-write of the full collection and is persisted before the
// call returns.
type Store struct {
	storage Storage
}

// NewStore creates a word store over the given storage backend.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// List returns all entries in the word bank.
func (s *Store) List() ([]models.WordEntry, error) {
	entries, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %v", err)
	}
	return entries, nil
}

// Upsert adds a word or updates the meaning of an existing one. The match
// is case-insensitive; an update touches only the meaning, leaving level
// and last review date as they are. A new entry starts at level 1 with
// last review set to today.
func (s *Store) Upsert(word, meaning string, today time.Time) (models.WordEntry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	meaning = strings.TrimSpace(meaning)
	if word == "" || meaning == "" {
		return models.WordEntry{}, fmt.Errorf("word and meaning must not be empty")
	}

	entries, err := s.storage.Load()
	if err != nil {
		return models.WordEntry{}, fmt.Errorf("failed to load words: %v", err)
	}

	for i := range entries {
		if strings.EqualFold(entries[i].Word, word) {
			entries[i].Meaning = meaning
			if err := s.storage.Save(entries); err != nil {
				return models.WordEntry{}, fmt.Errorf("failed to save words: %v", err)
			}
			return entries[i], nil
		}
	}

	entry := models.WordEntry{
		Word:       word,
		Meaning:    meaning,
		Level:      models.MinLevel,
		LastReview: today.Format(models.DateLayout),
	}
	entries = append(entries, entry)
	if err := s.storage.Save(entries); err != nil {
		return models.WordEntry{}, fmt.Errorf("failed to save words: %v", err)
	}
	return entry, nil
}

// Rename changes the key of an existing entry. It fails with
// ErrDuplicateWord when newWord already names a different entry; the
// comparison is case-sensitive against the current snapshot.
func (s *Store) Rename(oldWord, newWord string) error {
	newWord = strings.TrimSpace(newWord)
	if newWord == "" {
		return fmt.Errorf("new word must not be empty")
	}

	entries, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load words: %v", err)
	}

	idx := -1
	for i := range entries {
		if entries[i].Word == oldWord {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrWordNotFound
	}
	if newWord == oldWord {
		return nil
	}
	for i := range entries {
		if i != idx && entries[i].Word == newWord {
			return ErrDuplicateWord
		}
	}

	entries[idx].Word = newWord
	if err := s.storage.Save(entries); err != nil {
		return fmt.Errorf("failed to save words: %v", err)
	}
	return nil
}

// UpdateMeaning replaces the meaning of an existing entry, matched by
// exact word. Level and last review date are untouched.
func (s *Store) UpdateMeaning(word, meaning string) error {
	meaning = strings.TrimSpace(meaning)
	if meaning == "" {
		return fmt.Errorf("meaning must not be empty")
	}

	entries, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load words: %v", err)
	}

	for i := range entries {
		if entries[i].Word == word {
			entries[i].Meaning = meaning
			if err := s.storage.Save(entries); err != nil {
				return fmt.Errorf("failed to save words: %v", err)
			}
			return nil
		}
	}
	return ErrWordNotFound
}

// Delete removes an entry from the store.
func (s *Store) Delete(word string) error {
	entries, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load words: %v", err)
	}

	for i := range entries {
		if entries[i].Word == word {
			entries = append(entries[:i], entries[i+1:]...)
			if err := s.storage.Save(entries); err != nil {
				return fmt.Errorf("failed to save words: %v", err)
			}
			return nil
		}
	}
	return ErrWordNotFound
}

// SaveAll writes back a full entry list. Used by callers that mutate
// borrowed entries, such as review feedback.
func (s *Store) SaveAll(entries []models.WordEntry) error {
	if err := s.storage.Save(entries); err != nil {
		return fmt.Errorf("failed to save words: %v", err)
	}
	return nil
}

// Clear removes every entry from the word bank.
func (s *Store) Clear() error {
	if err := s.storage.Save([]models.WordEntry{}); err != nil {
		return fmt.Errorf("failed to save words: %v", err)
	}
	return nil
}
