package quiz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/example/vocabtrack/pkg/models"
)

// State is the quiz session lifecycle stage.
type State int

const (
	// NotStarted means the session holds questions but none were asked yet.
	NotStarted State = iota
	// InProgress means at least one question is still unanswered.
	InProgress
	// Completed is terminal; only Reset leaves it.
	Completed
)

// AnswerLog is the durable append-only log every submitted answer is
// written to, correct or not.
type AnswerLog interface {
	Append(models.AnswerRecord) error
}

// Session runs a single pass over a fixed question list, tracking
// progress, score and an answer log.
type Session struct {
	questions []models.Question
	current   int
	score     int
	log       []models.AnswerRecord
	state     State
	answerLog AnswerLog
}

// NewSession creates a session over the given questions. answerLog may be
// nil when no durable log is wanted, e.g. in a dry run.
func NewSession(questions []models.Question, answerLog AnswerLog) *Session {
	return &Session{
		questions: questions,
		state:     NotStarted,
		answerLog: answerLog,
	}
}

// Start moves the session into progress. An empty question list completes
// immediately.
func (s *Session) Start() error {
	if s.state != NotStarted {
		return fmt.Errorf("session already started")
	}
	if len(s.questions) == 0 {
		s.state = Completed
		return nil
	}
	s.state = InProgress
	return nil
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// Current returns the question waiting for an answer, or false when the
// session is not in progress.
func (s *Session) Current() (models.Question, bool) {
	if s.state != InProgress || s.current >= len(s.questions) {
		return models.Question{}, false
	}
	return s.questions[s.current], true
}

// Progress returns the number of answered questions and the total.
func (s *Session) Progress() (answered, total int) {
	return s.current, len(s.questions)
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Log returns the answer records of this session in submission order.
func (s *Session) Log() []models.AnswerRecord {
	return s.log
}

// SubmitAnswer grades a choice against the current question. The answer
// record is appended to the durable log and the session log regardless of
// correctness, then the cursor advances, so a question can never be
// answered twice. Submitting outside of a running session is a no-op.
// A durable-log write failure is returned after the session state has
// been updated; the caller decides whether to abort or warn.
func (s *Session) SubmitAnswer(choice string) (bool, error) {
	if s.state != InProgress {
		return false, nil
	}

	q := s.questions[s.current]
	correct := choice == q.CorrectOption()
	if correct {
		s.score++
	}

	record := models.AnswerRecord{
		Word:          q.Word,
		YourAnswer:    choice,
		CorrectAnswer: q.CorrectOption(),
		IsCorrect:     correct,
	}
	s.log = append(s.log, record)

	s.current++
	if s.current == len(s.questions) {
		s.state = Completed
	}

	if s.answerLog != nil {
		if err := s.answerLog.Append(record); err != nil {
			return correct, fmt.Errorf("failed to append answer log: %v", err)
		}
	}
	return correct, nil
}

// Reset clears every session field and returns to NotStarted with an
// empty question list.
func (s *Session) Reset() {
	s.questions = nil
	s.current = 0
	s.score = 0
	s.log = nil
	s.state = NotStarted
}

// Result builds the quiz result record for a completed session. Wrong
// words are collected in first-occurrence order; when there are none the
// sentinel is stored instead of an empty string.
func (s *Session) Result(now time.Time) (models.QuizResult, error) {
	if s.state != Completed {
		return models.QuizResult{}, fmt.Errorf("session is not completed")
	}

	total := len(s.questions)
	accuracy := 0.0
	if total > 0 {
		accuracy = math.Round(float64(s.score)/float64(total)*100*100) / 100
	}

	var wrong []string
	for _, rec := range s.log {
		if !rec.IsCorrect {
			wrong = append(wrong, rec.Word)
		}
	}
	wrongWords := models.WrongWordsNone
	if len(wrong) > 0 {
		wrongWords = strings.Join(wrong, ", ")
	}

	words := make([]string, 0, total)
	for _, q := range s.questions {
		words = append(words, q.Word)
	}

	return models.QuizResult{
		TakenAt:       now.Format(models.TimestampLayout),
		QuestionCount: total,
		Accuracy:      accuracy,
		WrongWords:    wrongWords,
		Words:         words,
	}, nil
}
