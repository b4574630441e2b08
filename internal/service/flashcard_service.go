package service

import (
	"context"
	"strings"

	"study-byte/internal/domain"
	"study-byte/internal/repository"
	"study-byte/internal/util"
)

// FlashcardService persists and manages a user's flashcards.
type FlashcardService interface {
	SaveFlashcards(ctx context.Context, userID, documentID string, cards []domain.FlashcardContent) ([]*domain.Flashcard, error)
	CreateFlashcard(ctx context.Context, userID, documentID, question, answer string) (*domain.Flashcard, error)
	ListFlashcards(ctx context.Context, userID string) ([]*domain.Flashcard, error)
	ListFlashcardsByDocument(ctx context.Context, userID, documentID string) ([]*domain.Flashcard, error)
	ListFavorites(ctx context.Context, userID string) ([]*domain.Flashcard, error)
	ToggleFavorite(ctx context.Context, userID, flashcardID string) (*domain.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID, flashcardID string) error
}

type flashcardService struct {
	cardRepo repository.FlashcardRepository
	docRepo  repository.DocumentRepository
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(cardRepo repository.FlashcardRepository, docRepo repository.DocumentRepository) FlashcardService {
	return &flashcardService{cardRepo: cardRepo, docRepo: docRepo}
}

func (s *flashcardService) checkDocument(ctx context.Context, userID, documentID string) error {
	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return domain.NewInternalError("failed to load document", err)
	}
	if doc == nil || doc.UserID != userID {
		return domain.NewNotFoundError("Document not found or access denied")
	}
	return nil
}

// SaveFlashcards stores a batch of generated cards. Cards with an empty
// question or answer are dropped rather than rejected, since generation is
// lenient about individual malformed cards.
func (s *flashcardService) SaveFlashcards(ctx context.Context, userID, documentID string, cards []domain.FlashcardContent) ([]*domain.Flashcard, error) {
	if err := s.checkDocument(ctx, userID, documentID); err != nil {
		return nil, err
	}

	saved := make([]*domain.Flashcard, 0, len(cards))
	for _, content := range cards {
		question := strings.TrimSpace(content.Question)
		answer := strings.TrimSpace(content.Answer)
		if question == "" || answer == "" {
			continue
		}
		saved = append(saved, &domain.Flashcard{
			ID:         util.NewULID(),
			UserID:     userID,
			DocumentID: documentID,
			Question:   question,
			Answer:     answer,
		})
	}
	if len(saved) == 0 {
		return nil, domain.NewInvalidInputError("no valid flashcards to save")
	}

	if err := s.cardRepo.CreateFlashcards(ctx, saved); err != nil {
		return nil, domain.NewInternalError("failed to save flashcards", err)
	}
	return saved, nil
}

func (s *flashcardService) CreateFlashcard(ctx context.Context, userID, documentID, question, answer string) (*domain.Flashcard, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return nil, domain.NewInvalidInputError("question and answer are required")
	}
	if err := s.checkDocument(ctx, userID, documentID); err != nil {
		return nil, err
	}

	card := &domain.Flashcard{
		ID:         util.NewULID(),
		UserID:     userID,
		DocumentID: documentID,
		Question:   question,
		Answer:     answer,
	}
	if err := s.cardRepo.CreateFlashcard(ctx, card); err != nil {
		return nil, domain.NewInternalError("failed to create flashcard", err)
	}
	return card, nil
}

func (s *flashcardService) ListFlashcards(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	cards, err := s.cardRepo.GetFlashcardsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list flashcards", err)
	}
	return cards, nil
}

func (s *flashcardService) ListFlashcardsByDocument(ctx context.Context, userID, documentID string) ([]*domain.Flashcard, error) {
	cards, err := s.cardRepo.GetFlashcardsByDocument(ctx, userID, documentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list flashcards", err)
	}
	return cards, nil
}

func (s *flashcardService) ListFavorites(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	cards, err := s.cardRepo.GetFavoriteFlashcards(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list favorite flashcards", err)
	}
	return cards, nil
}

func (s *flashcardService) getOwnedFlashcard(ctx context.Context, userID, flashcardID string) (*domain.Flashcard, error) {
	card, err := s.cardRepo.GetFlashcardByID(ctx, flashcardID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load flashcard", err)
	}
	if card == nil || card.UserID != userID {
		return nil, domain.NewNotFoundError("Flashcard not found or access denied")
	}
	return card, nil
}

func (s *flashcardService) ToggleFavorite(ctx context.Context, userID, flashcardID string) (*domain.Flashcard, error) {
	card, err := s.getOwnedFlashcard(ctx, userID, flashcardID)
	if err != nil {
		return nil, err
	}

	card.IsFavorite = !card.IsFavorite
	if err := s.cardRepo.SetFavorite(ctx, card.ID, card.IsFavorite); err != nil {
		return nil, domain.NewInternalError("failed to update flashcard", err)
	}
	return card, nil
}

func (s *flashcardService) DeleteFlashcard(ctx context.Context, userID, flashcardID string) error {
	if _, err := s.getOwnedFlashcard(ctx, userID, flashcardID); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteFlashcard(ctx, flashcardID); err != nil {
		return domain.NewInternalError("failed to delete flashcard", err)
	}
	return nil
}

var _ FlashcardService = (*flashcardService)(nil)
