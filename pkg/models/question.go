package models

// Question is a single multiple-choice question. It is derived from the
// word bank per quiz and never persisted.
type Question struct {
	Word        string   `json:"word"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// CorrectOption returns the option text the answer index points at.
func (q *Question) CorrectOption() string {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.AnswerIndex]
}
