package models

// AnswerRecord is one submitted quiz answer. Every submission is appended
// to the permanent answer log, correct or not.
type AnswerRecord struct {
	Word          string `json:"word" db:"word"`
	YourAnswer    string `json:"your_answer" db:"your_answer"`
	CorrectAnswer string `json:"correct_answer" db:"correct_answer"`
	IsCorrect     bool   `json:"is_correct" db:"is_correct"`
}
