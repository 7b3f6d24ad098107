package quiz

import (
	"math/rand"
	"time"

	"github.com/example/vocabtrack/pkg/models"
)

// MaxOptions is the option count cap per question: one correct meaning
// plus up to three distractors.
const MaxOptions = 4

// Generator builds multiple-choice questions from the word bank.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator. A nil rnd falls back to a time-seeded
// source.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Generate builds one question per word with a non-empty meaning.
// Distractors are sampled without replacement from the meanings of the
// other usable words, capped at three, so every question carries between
// 2 and 4 options. Fewer than two usable words is not an error: the
// result is simply empty and the caller must check for it.
func (g *Generator) Generate(words []models.WordEntry) []models.Question {
	usable := make([]models.WordEntry, 0, len(words))
	for _, w := range words {
		if w.Meaning != "" {
			usable = append(usable, w)
		}
	}
	if len(usable) < 2 {
		return nil
	}

	questions := make([]models.Question, 0, len(usable))
	for _, w := range usable {
		pool := make([]string, 0, len(usable)-1)
		for _, other := range usable {
			if other.Word != w.Word {
				pool = append(pool, other.Meaning)
			}
		}

		options := append([]string{w.Meaning}, g.sample(pool, MaxOptions-1)...)
		g.rnd.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		// The answer index is recovered by value, so a distractor that
		// happens to equal the correct meaning resolves as correct.
		answerIndex := 0
		for i, opt := range options {
			if opt == w.Meaning {
				answerIndex = i
				break
			}
		}

		questions = append(questions, models.Question{
			Word:        w.Word,
			Options:     options,
			AnswerIndex: answerIndex,
		})
	}
	return questions
}

// SelectQuestions picks count questions at random without replacement.
// When count covers the whole set, the questions are returned in
// generation order without reshuffling.
func (g *Generator) SelectQuestions(questions []models.Question, count int) []models.Question {
	if count <= 0 {
		return nil
	}
	if count >= len(questions) {
		return questions
	}
	picked := make([]models.Question, len(questions))
	copy(picked, questions)
	g.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:count]
}

// sample draws up to count elements from pool without replacement.
func (g *Generator) sample(pool []string, count int) []string {
	if count > len(pool) {
		count = len(pool)
	}
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}
