package domain

import "time"

// Persona is a target customer profile built with the persona builder.
type Persona struct {
	ID         int64
	UserID     int64
	Name       string
	AgeRange   string
	Occupation string
	Goals      []string
	PainPoints []string
	Channels   []string
	CreatedAt  time.Time
}

// TutorialProgress tracks how far a user got in a tutorial.
type TutorialProgress struct {
	UserID     int64
	TutorialID string
	StepIndex  int
	Completed  bool
	UpdatedAt  time.Time
}

// QuizAttempt is a single graded quiz submission.
type QuizAttempt struct {
	ID        int64
	UserID    int64
	QuizID    string
	Score     int
	Total     int
	CreatedAt time.Time
}

// Percent returns the score as a percentage of the total.
func (a QuizAttempt) Percent() float64 {
	if a.Total <= 0 {
		return 0
	}
	return float64(a.Score) * 100 / float64(a.Total)
}
