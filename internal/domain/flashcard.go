package domain

import "time"

// FlashcardContent is the question/answer pair produced by generation, before
// any identity or ownership is assigned.
type FlashcardContent struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcard is a persisted card belonging to a user and a document.
type Flashcard struct {
	ID         string
	UserID     string
	DocumentID string
	Question   string
	Answer     string
	IsFavorite bool
	CreatedAt  time.Time
}
