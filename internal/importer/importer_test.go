package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrack/internal/storage"
	"github.com/example/vocabtrack/internal/vocabulary"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestStore(t *testing.T) *vocabulary.Store {
	t.Helper()
	return vocabulary.NewStore(storage.NewWordFile(filepath.Join(t.TempDir(), "words.json")))
}

func TestImportFromCSV(t *testing.T) {
	store := newTestStore(t)
	today := time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC)

	path := writeCSV(t, "word,meaning\napple,fruit\nbanana,yellow fruit\n,missing word\ncherry,\n")
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(store, config, today)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, result.Errors)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, 1, entries[0].Level)
	assert.Equal(t, "2024-05-24", entries[0].LastReview)
}

func TestImportUpdatesExistingWords(t *testing.T) {
	store := newTestStore(t)
	today := time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC)

	_, err := store.Upsert("apple", "old meaning", today.AddDate(0, 0, -30))
	require.NoError(t, err)

	path := writeCSV(t, "word,meaning\nApple,fruit\nbanana,yellow fruit\n")
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(store, config, today)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fruit", entries[0].Meaning)
	// An update must not reset the review schedule
	assert.Equal(t, "2024-04-24", entries[0].LastReview)
}

func TestImportDuplicateRowsCountOnce(t *testing.T) {
	store := newTestStore(t)

	path := writeCSV(t, "word,meaning\napple,fruit\napple,red fruit\n")
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(store, config, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "red fruit", entries[0].Meaning)
}

func TestImportMissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := ImportWords(newTestStore(t), config, time.Now())
	assert.Error(t, err)
}
