package models

// CheckinKindStudy marks a checkin written after a study session.
const CheckinKindStudy = "study"

// CheckinRecord is one timestamped learning checkin.
type CheckinRecord struct {
	User         string   `json:"user" db:"user"`
	Timestamp    string   `json:"timestamp" db:"timestamp"`
	Kind         string   `json:"kind" db:"kind"`
	WordsLearned []string `json:"words_learned"`
}

// Date returns the calendar-date portion of the timestamp.
func (c *CheckinRecord) Date() string {
	if len(c.Timestamp) < len("2006-01-02") {
		return c.Timestamp
	}
	return c.Timestamp[:len("2006-01-02")]
}
