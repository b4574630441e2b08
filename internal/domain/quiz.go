package domain

import (
	"fmt"
	"math"
	"time"
)

// QuizOptionCount is the number of answer options every question carries.
const QuizOptionCount = 4

// DefaultExplanation fills in when the model omitted one.
const DefaultExplanation = "No explanation provided."

// QuizQuestion is a single multiple-choice question. Options always has
// exactly QuizOptionCount entries and CorrectAnswer indexes into it.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate enforces the question shape invariants.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) != QuizOptionCount {
		return NewInvalidInputError(fmt.Sprintf("question must have exactly %d options", QuizOptionCount))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= QuizOptionCount {
		return NewInvalidInputError(fmt.Sprintf("correct answer index must be between 0 and %d", QuizOptionCount-1))
	}
	if q.Explanation == "" {
		q.Explanation = DefaultExplanation
	}
	return nil
}

// Quiz is a persisted question set. It is created once with questions and no
// completion state, transitions exactly once to completed via Submit, and is
// immutable thereafter.
type Quiz struct {
	ID             string
	UserID         string
	DocumentID     string
	Questions      []QuizQuestion
	UserAnswers    []int
	Score          *int
	TotalQuestions int
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// QuizResult is the outcome of a submission.
type QuizResult struct {
	Score          int `json:"score"`
	CorrectCount   int `json:"correctCount"`
	TotalQuestions int `json:"totalQuestions"`
}

// Submit scores the given answers against the quiz and marks it completed.
// Scoring is one-shot: a quiz that already has a completion timestamp refuses
// re-submission regardless of the answers supplied. Answers shorter than the
// question set leave the remaining questions unanswered (never correct), and
// the score is the correct ratio as a percentage rounded half-up.
func (q *Quiz) Submit(answers []int, now time.Time) (*QuizResult, error) {
	if q.CompletedAt != nil {
		return nil, NewQuizCompletedError()
	}

	total := q.TotalQuestions
	if total == 0 {
		total = len(q.Questions)
	}
	if total == 0 {
		return nil, NewInvalidInputError("quiz has no questions")
	}

	correctCount := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correctCount++
		}
	}

	score := int(math.Round(float64(correctCount) / float64(total) * 100))

	completedAt := now
	q.UserAnswers = answers
	q.Score = &score
	q.CompletedAt = &completedAt

	return &QuizResult{
		Score:          score,
		CorrectCount:   correctCount,
		TotalQuestions: total,
	}, nil
}
