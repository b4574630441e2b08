package dto

import "time"

// SaveFlashcardsRequest persists a batch of generated cards against a document.
type SaveFlashcardsRequest struct {
	DocumentID string             `json:"documentId"`
	Flashcards []FlashcardContent `json:"flashcards"`
}

// CreateFlashcardRequest creates a single card by hand.
type CreateFlashcardRequest struct {
	DocumentID string `json:"documentId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// FlashcardResponse is the full flashcard representation.
type FlashcardResponse struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SaveFlashcardsResponse reports the persisted cards.
type SaveFlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
	Count      int                 `json:"count"`
}
