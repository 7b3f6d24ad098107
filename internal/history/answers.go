package history

import (
	"fmt"
	"math"
	"sort"

	"github.com/example/vocabtrack/pkg/models"
)

// AnswerLogStorage is the persistence contract for the permanent answer
// log: durable, append-only, readable as an ordered sequence.
type AnswerLogStorage interface {
	Append(models.AnswerRecord) error
	Load() ([]models.AnswerRecord, error)
}

// WordCount pairs a word with how often it was answered wrong.
type WordCount struct {
	Word  string
	Count int
}

// AnswerStats is the aggregate view over the permanent answer log.
type AnswerStats struct {
	Total     int
	Correct   int
	Wrong     int
	Accuracy  float64
	ErrorRate float64
	// Wrongly answered words, most frequent first
	WrongCounts []WordCount
}

// AnswerAnalyzer reads the permanent answer log for progress analytics.
type AnswerAnalyzer struct {
	storage AnswerLogStorage
}

// NewAnswerAnalyzer creates an analyzer over the given answer log.
func NewAnswerAnalyzer(storage AnswerLogStorage) *AnswerAnalyzer {
	return &AnswerAnalyzer{storage: storage}
}

// Stats loads the answer log and aggregates it.
func (a *AnswerAnalyzer) Stats() (AnswerStats, error) {
	records, err := a.storage.Load()
	if err != nil {
		return AnswerStats{}, fmt.Errorf("failed to load answer log: %v", err)
	}
	return ComputeAnswerStats(records), nil
}

// ComputeAnswerStats aggregates answer records into overall accuracy and
// a per-word wrong-answer ranking. Ties in the ranking keep
// first-occurrence order.
func ComputeAnswerStats(records []models.AnswerRecord) AnswerStats {
	stats := AnswerStats{Total: len(records)}

	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if rec.IsCorrect {
			stats.Correct++
			continue
		}
		stats.Wrong++
		if counts[rec.Word] == 0 {
			order = append(order, rec.Word)
		}
		counts[rec.Word]++
	}

	if stats.Total > 0 {
		stats.Accuracy = math.Round(float64(stats.Correct)/float64(stats.Total)*100*100) / 100
		stats.ErrorRate = math.Round((100-stats.Accuracy)*100) / 100
	}

	for _, w := range order {
		stats.WrongCounts = append(stats.WrongCounts, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(stats.WrongCounts, func(i, j int) bool {
		return stats.WrongCounts[i].Count > stats.WrongCounts[j].Count
	})

	return stats
}
