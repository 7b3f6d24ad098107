package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrack/pkg/models"
)

// memAnswerLog is an in-memory durable answer log for tests.
type memAnswerLog struct {
	records   []models.AnswerRecord
	appendErr error
}

func (m *memAnswerLog) Append(record models.AnswerRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

func threeQuestions() []models.Question {
	return []models.Question{
		{Word: "a", Options: []string{"mean2", "mean1", "mean3"}, AnswerIndex: 1},
		{Word: "b", Options: []string{"mean2", "mean3", "mean1"}, AnswerIndex: 0},
		{Word: "c", Options: []string{"mean3", "mean1", "mean2"}, AnswerIndex: 0},
	}
}

func TestSessionLifecycle(t *testing.T) {
	session := NewSession(threeQuestions(), &memAnswerLog{})
	assert.Equal(t, NotStarted, session.State())

	require.NoError(t, session.Start())
	assert.Equal(t, InProgress, session.State())

	assert.Error(t, session.Start(), "double start")
}

func TestSessionPerfectRun(t *testing.T) {
	log := &memAnswerLog{}
	session := NewSession(threeQuestions(), log)
	require.NoError(t, session.Start())

	for i := 0; i < 3; i++ {
		q, ok := session.Current()
		require.True(t, ok)
		correct, err := session.SubmitAnswer(q.CorrectOption())
		require.NoError(t, err)
		assert.True(t, correct)
	}

	assert.Equal(t, Completed, session.State())
	assert.Equal(t, 3, session.Score())
	assert.Len(t, log.records, 3)

	result, err := session.Result(time.Date(2024, 5, 24, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, result.QuestionCount)
	assert.Equal(t, 100.0, result.Accuracy)
	assert.Equal(t, models.WrongWordsNone, result.WrongWords)
	assert.Equal(t, []string{"a", "b", "c"}, result.Words)
	assert.Equal(t, "2024-05-24 15:30:00", result.TakenAt)
}

func TestSessionWrongAnswersLogged(t *testing.T) {
	log := &memAnswerLog{}
	session := NewSession(threeQuestions(), log)
	require.NoError(t, session.Start())

	correct, err := session.SubmitAnswer("mean1") // right for a
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = session.SubmitAnswer("mean3") // wrong for b
	require.NoError(t, err)
	assert.False(t, correct)

	correct, err = session.SubmitAnswer("mean1") // wrong for c
	require.NoError(t, err)
	assert.False(t, correct)

	// Wrong or right, every submission reaches the durable log
	require.Len(t, log.records, 3)
	assert.True(t, log.records[0].IsCorrect)
	assert.False(t, log.records[1].IsCorrect)
	assert.Equal(t, "mean3", log.records[1].YourAnswer)
	assert.Equal(t, "mean2", log.records[1].CorrectAnswer)

	result, err := session.Result(time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 33.33, result.Accuracy, 0.001)
	assert.Equal(t, "b, c", result.WrongWords)
}

func TestSubmitAfterCompletionIsNoOp(t *testing.T) {
	log := &memAnswerLog{}
	session := NewSession(threeQuestions()[:1], log)
	require.NoError(t, session.Start())

	_, err := session.SubmitAnswer("mean1")
	require.NoError(t, err)
	assert.Equal(t, Completed, session.State())

	correct, err := session.SubmitAnswer("mean1")
	assert.NoError(t, err)
	assert.False(t, correct)
	assert.Len(t, log.records, 1)
	assert.Equal(t, 1, session.Score())
}

func TestSubmitBeforeStartIsNoOp(t *testing.T) {
	log := &memAnswerLog{}
	session := NewSession(threeQuestions(), log)

	correct, err := session.SubmitAnswer("mean1")
	assert.NoError(t, err)
	assert.False(t, correct)
	assert.Empty(t, log.records)
}

func TestSubmitPropagatesLogFailure(t *testing.T) {
	log := &memAnswerLog{appendErr: errors.New("disk full")}
	session := NewSession(threeQuestions(), log)
	require.NoError(t, session.Start())

	correct, err := session.SubmitAnswer("mean1")
	assert.Error(t, err)
	assert.True(t, correct)

	// The session still advanced; the caller decides what to do
	answered, _ := session.Progress()
	assert.Equal(t, 1, answered)
}

func TestEmptySessionCompletesOnStart(t *testing.T) {
	session := NewSession(nil, nil)
	require.NoError(t, session.Start())
	assert.Equal(t, Completed, session.State())

	result, err := session.Result(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, result.QuestionCount)
	assert.Equal(t, 0.0, result.Accuracy)
}

func TestReset(t *testing.T) {
	session := NewSession(threeQuestions(), &memAnswerLog{})
	require.NoError(t, session.Start())
	_, err := session.SubmitAnswer("mean1")
	require.NoError(t, err)

	session.Reset()
	assert.Equal(t, NotStarted, session.State())
	assert.Equal(t, 0, session.Score())
	assert.Empty(t, session.Log())
	answered, total := session.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 0, total)
}

func TestResultRequiresCompletion(t *testing.T) {
	session := NewSession(threeQuestions(), nil)
	require.NoError(t, session.Start())

	_, err := session.Result(time.Now())
	assert.Error(t, err)
}

// End to end: generate from three words, answer everything correctly.
func TestGenerateAndRunQuiz(t *testing.T) {
	words := []models.WordEntry{
		{Word: "a", Level: 1, Meaning: "mean1"},
		{Word: "b", Level: 2, Meaning: "mean2"},
		{Word: "c", Level: 3, Meaning: "mean3"},
	}
	g := NewGenerator(testRand())

	questions := g.Generate(words)
	require.Len(t, questions, 3)
	for _, q := range questions {
		// Only two other meanings exist, so 1 correct + 2 distractors
		assert.Len(t, q.Options, 3)
	}

	log := &memAnswerLog{}
	session := NewSession(questions, log)
	require.NoError(t, session.Start())

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		_, err := session.SubmitAnswer(q.CorrectOption())
		require.NoError(t, err)
	}

	assert.Equal(t, 3, session.Score())
	result, err := session.Result(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Accuracy)
	assert.Equal(t, models.WrongWordsNone, result.WrongWords)
	assert.Len(t, log.records, 3)
}
