package service

import (
	"context"
	"testing"

	"study-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveFlashcards(t *testing.T) {
	t.Run("DropsEmptyCardsAndSavesRest", func(t *testing.T) {
		cardRepo := new(mockFlashcardRepository)
		docRepo := new(mockDocumentRepository)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		cardRepo.On("CreateFlashcards", mock.Anything, mock.MatchedBy(func(cards []*domain.Flashcard) bool {
			return len(cards) == 2
		})).Return(nil)

		svc := NewFlashcardService(cardRepo, docRepo)
		saved, err := svc.SaveFlashcards(context.Background(), "user1", "doc1", []domain.FlashcardContent{
			{Question: "Q1", Answer: "A1"},
			{Question: "", Answer: "orphan answer"},
			{Question: "Q3", Answer: "A3"},
		})

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, "Q1", saved[0].Question)
		assert.Equal(t, "Q3", saved[1].Question)
		assert.NotEmpty(t, saved[0].ID)
		cardRepo.AssertExpectations(t)
	})

	t.Run("AllCardsEmpty", func(t *testing.T) {
		cardRepo := new(mockFlashcardRepository)
		docRepo := new(mockDocumentRepository)
		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)

		svc := NewFlashcardService(cardRepo, docRepo)
		_, err := svc.SaveFlashcards(context.Background(), "user1", "doc1", []domain.FlashcardContent{
			{Question: "", Answer: ""},
		})

		assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
		cardRepo.AssertNotCalled(t, "CreateFlashcards")
	})

	t.Run("UnknownDocument", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		docRepo.On("GetDocumentByID", mock.Anything, "missing").Return(nil, nil)

		svc := NewFlashcardService(new(mockFlashcardRepository), docRepo)
		_, err := svc.SaveFlashcards(context.Background(), "user1", "missing", []domain.FlashcardContent{
			{Question: "Q", Answer: "A"},
		})

		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	})
}

func TestToggleFavorite(t *testing.T) {
	t.Run("FlipsFlag", func(t *testing.T) {
		cardRepo := new(mockFlashcardRepository)
		cardRepo.On("GetFlashcardByID", mock.Anything, "card1").
			Return(&domain.Flashcard{ID: "card1", UserID: "user1", IsFavorite: false}, nil)
		cardRepo.On("SetFavorite", mock.Anything, "card1", true).Return(nil)

		svc := NewFlashcardService(cardRepo, new(mockDocumentRepository))
		card, err := svc.ToggleFavorite(context.Background(), "user1", "card1")

		require.NoError(t, err)
		assert.True(t, card.IsFavorite)
		cardRepo.AssertExpectations(t)
	})

	t.Run("OtherUsersCardLooksMissing", func(t *testing.T) {
		cardRepo := new(mockFlashcardRepository)
		cardRepo.On("GetFlashcardByID", mock.Anything, "card1").
			Return(&domain.Flashcard{ID: "card1", UserID: "user2"}, nil)

		svc := NewFlashcardService(cardRepo, new(mockDocumentRepository))
		_, err := svc.ToggleFavorite(context.Background(), "user1", "card1")

		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
		cardRepo.AssertNotCalled(t, "SetFavorite")
	})
}

func TestCreateFlashcard(t *testing.T) {
	t.Run("RequiresBothFields", func(t *testing.T) {
		svc := NewFlashcardService(new(mockFlashcardRepository), new(mockDocumentRepository))

		_, err := svc.CreateFlashcard(context.Background(), "user1", "doc1", "Q", "")
		assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))

		_, err = svc.CreateFlashcard(context.Background(), "user1", "doc1", "  ", "A")
		assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
	})

	t.Run("Success", func(t *testing.T) {
		cardRepo := new(mockFlashcardRepository)
		docRepo := new(mockDocumentRepository)
		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		cardRepo.On("CreateFlashcard", mock.Anything, mock.AnythingOfType("*domain.Flashcard")).Return(nil)

		svc := NewFlashcardService(cardRepo, docRepo)
		card, err := svc.CreateFlashcard(context.Background(), "user1", "doc1", " Q ", " A ")

		require.NoError(t, err)
		assert.Equal(t, "Q", card.Question)
		assert.Equal(t, "A", card.Answer)
		assert.NotEmpty(t, card.ID)
	})
}
