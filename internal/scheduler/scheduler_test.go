package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrack/internal/review"
	"github.com/example/vocabtrack/internal/vocabulary"
	"github.com/example/vocabtrack/pkg/models"
)

type memWordStorage struct {
	entries []models.WordEntry
}

func (m *memWordStorage) Load() ([]models.WordEntry, error) {
	return append([]models.WordEntry(nil), m.entries...), nil
}

func (m *memWordStorage) Save(entries []models.WordEntry) error {
	m.entries = entries
	return nil
}

type memNotifier struct {
	counts []int
}

func (m *memNotifier) SendDueReminder(count int) error {
	m.counts = append(m.counts, count)
	return nil
}

func TestRunManualCheckSendsDueCount(t *testing.T) {
	storage := &memWordStorage{entries: []models.WordEntry{
		{Word: "fresh", Level: 1, LastReview: ""},
		{Word: "due", Level: 1, LastReview: time.Now().AddDate(0, 0, -2).Format(models.DateLayout)},
		{Word: "recent", Level: 3, LastReview: time.Now().Format(models.DateLayout)},
	}}
	notifier := &memNotifier{}
	s := New(vocabulary.NewStore(storage), review.New(), notifier)

	require.NoError(t, s.RunManualCheck())
	assert.Equal(t, []int{2}, notifier.counts)
}

func TestRunManualCheckSilentWhenNothingDue(t *testing.T) {
	storage := &memWordStorage{entries: []models.WordEntry{
		{Word: "recent", Level: 3, LastReview: time.Now().Format(models.DateLayout)},
	}}
	notifier := &memNotifier{}
	s := New(vocabulary.NewStore(storage), review.New(), notifier)

	require.NoError(t, s.RunManualCheck())
	assert.Empty(t, notifier.counts)
}
