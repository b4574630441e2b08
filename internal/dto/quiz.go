package dto

import "time"

// SaveQuizRequest persists a set of generated questions against a document.
type SaveQuizRequest struct {
	DocumentID string                `json:"documentId"`
	Questions  []QuizQuestionContent `json:"questions"`
}

// SubmitQuizRequest carries the user's answers, index-aligned with the
// quiz's questions. Unanswered questions may be marked with -1.
type SubmitQuizRequest struct {
	Answers []int `json:"answers"`
}

// QuizResponse is the full quiz representation.
type QuizResponse struct {
	ID             string                `json:"id"`
	DocumentID     string                `json:"documentId"`
	Questions      []QuizQuestionContent `json:"questions"`
	UserAnswers    []int                 `json:"userAnswers,omitempty"`
	Score          *int                  `json:"score,omitempty"`
	TotalQuestions int                   `json:"totalQuestions"`
	CompletedAt    *time.Time            `json:"completedAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// QuizSummaryResponse is the list-view projection without question bodies.
type QuizSummaryResponse struct {
	ID             string     `json:"id"`
	DocumentID     string     `json:"documentId"`
	TotalQuestions int        `json:"totalQuestions"`
	Score          *int       `json:"score,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// QuizResultResponse reports the outcome of a submission.
type QuizResultResponse struct {
	Score          int   `json:"score"`
	CorrectCount   int   `json:"correctCount"`
	TotalQuestions int   `json:"totalQuestions"`
	UserAnswers    []int `json:"userAnswers"`
}
