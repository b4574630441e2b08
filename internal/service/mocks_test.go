package service

import (
	"context"
	"time"

	"study-byte/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockTextGenerator struct {
	mock.Mock
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

type mockModelCatalog struct {
	mock.Mock
}

func (m *mockModelCatalog) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	args := m.Called(ctx)
	if models, ok := args.Get(0).([]domain.ModelInfo); ok {
		return models, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGenerationService struct {
	mock.Mock
}

func (m *mockGenerationService) Chat(ctx context.Context, sourceText, question string) (string, error) {
	args := m.Called(ctx, sourceText, question)
	return args.String(0), args.Error(1)
}

func (m *mockGenerationService) GenerateSummary(ctx context.Context, sourceText string) (string, error) {
	args := m.Called(ctx, sourceText)
	return args.String(0), args.Error(1)
}

func (m *mockGenerationService) ExplainConcept(ctx context.Context, sourceText, concept string) (string, error) {
	args := m.Called(ctx, sourceText, concept)
	return args.String(0), args.Error(1)
}

func (m *mockGenerationService) GenerateFlashcards(ctx context.Context, sourceText string, count int) ([]domain.FlashcardContent, error) {
	args := m.Called(ctx, sourceText, count)
	if cards, ok := args.Get(0).([]domain.FlashcardContent); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenerationService) GenerateQuiz(ctx context.Context, sourceText string, questionCount int) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, sourceText, questionCount)
	if questions, ok := args.Get(0).([]domain.QuizQuestion); ok {
		return questions, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenerationService) CheckHealth(ctx context.Context) *domain.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(*domain.HealthStatus)
}

func (m *mockGenerationService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	args := m.Called(ctx)
	if models, ok := args.Get(0).([]domain.ModelInfo); ok {
		return models, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) CreateDocument(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepository) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(*domain.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentRepository) GetDocumentsByUser(ctx context.Context, userID string) ([]*domain.Document, error) {
	args := m.Called(ctx, userID)
	if docs, ok := args.Get(0).([]*domain.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentRepository) UpdateSummary(ctx context.Context, id, summary string) error {
	args := m.Called(ctx, id, summary)
	return args.Error(0)
}

func (m *mockDocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockQuizRepository struct {
	mock.Mock
}

func (m *mockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *mockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuizRepository) GetQuizzesByUser(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, userID)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuizRepository) GetQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, userID, documentID)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuizRepository) CompleteQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *mockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockQuizRepository) DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error {
	args := m.Called(ctx, userID, documentID)
	return args.Error(0)
}

type mockFlashcardRepository struct {
	mock.Mock
}

func (m *mockFlashcardRepository) CreateFlashcard(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *mockFlashcardRepository) CreateFlashcards(ctx context.Context, cards []*domain.Flashcard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *mockFlashcardRepository) GetFlashcardByID(ctx context.Context, id string) (*domain.Flashcard, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*domain.Flashcard); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlashcardRepository) GetFlashcardsByUser(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	args := m.Called(ctx, userID)
	if cards, ok := args.Get(0).([]*domain.Flashcard); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlashcardRepository) GetFlashcardsByDocument(ctx context.Context, userID, documentID string) ([]*domain.Flashcard, error) {
	args := m.Called(ctx, userID, documentID)
	if cards, ok := args.Get(0).([]*domain.Flashcard); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlashcardRepository) GetFavoriteFlashcards(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	args := m.Called(ctx, userID)
	if cards, ok := args.Get(0).([]*domain.Flashcard); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlashcardRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	args := m.Called(ctx, id, favorite)
	return args.Error(0)
}

func (m *mockFlashcardRepository) DeleteFlashcard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}
