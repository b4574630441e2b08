package service

import (
	"context"
	"time"

	"study-byte/internal/domain"
	"study-byte/internal/repository"
	"study-byte/internal/util"
)

// QuizService persists quizzes and runs the submit/score lifecycle.
type QuizService interface {
	SaveQuiz(ctx context.Context, userID, documentID string, questions []domain.QuizQuestion) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, userID string) ([]*domain.Quiz, error)
	ListQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error)
	SubmitQuiz(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error)
	DeleteQuiz(ctx context.Context, userID, quizID string) error
	DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
	docRepo  repository.DocumentRepository
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo repository.QuizRepository, docRepo repository.DocumentRepository) QuizService {
	return &quizService{quizRepo: quizRepo, docRepo: docRepo}
}

// SaveQuiz stores a set of generated questions as a new quiz on one of the
// user's documents. Every question must be well formed before anything is
// written.
func (s *quizService) SaveQuiz(ctx context.Context, userID, documentID string, questions []domain.QuizQuestion) (*domain.Quiz, error) {
	if len(questions) == 0 {
		return nil, domain.NewInvalidInputError("quiz must contain at least one question")
	}

	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load document", err)
	}
	if doc == nil || doc.UserID != userID {
		return nil, domain.NewNotFoundError("Document not found or access denied")
	}

	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, err
		}
	}

	quiz := &domain.Quiz{
		ID:             util.NewULID(),
		UserID:         userID,
		DocumentID:     documentID,
		Questions:      questions,
		TotalQuestions: len(questions),
	}
	if err := s.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("failed to save quiz", err)
	}
	return quiz, nil
}

// getOwnedQuiz loads a quiz and enforces ownership.
func (s *quizService) getOwnedQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz", err)
	}
	if quiz == nil || quiz.UserID != userID {
		return nil, domain.NewNotFoundError("Quiz not found or access denied")
	}
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
	return s.getOwnedQuiz(ctx, userID, quizID)
}

func (s *quizService) ListQuizzes(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	quizzes, err := s.quizRepo.GetQuizzesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	return quizzes, nil
}

func (s *quizService) ListQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error) {
	quizzes, err := s.quizRepo.GetQuizzesByDocument(ctx, userID, documentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	return quizzes, nil
}

// SubmitQuiz scores the user's answers and marks the quiz completed. A quiz
// can only be completed once; the repository enforces the same guard against
// concurrent submissions.
func (s *quizService) SubmitQuiz(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error) {
	quiz, err := s.getOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	result, err := quiz.Submit(answers, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.quizRepo.CompleteQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, userID, quizID string) error {
	if _, err := s.getOwnedQuiz(ctx, userID, quizID); err != nil {
		return err
	}
	if err := s.quizRepo.DeleteQuiz(ctx, quizID); err != nil {
		return domain.NewInternalError("failed to delete quiz", err)
	}
	return nil
}

// DeleteQuizzesByDocument removes every quiz the user has created for a
// document they own.
func (s *quizService) DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error {
	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return domain.NewInternalError("failed to load document", err)
	}
	if doc == nil || doc.UserID != userID {
		return domain.NewNotFoundError("Document not found or access denied")
	}
	if err := s.quizRepo.DeleteQuizzesByDocument(ctx, userID, documentID); err != nil {
		return domain.NewInternalError("failed to delete quizzes", err)
	}
	return nil
}

var _ QuizService = (*quizService)(nil)
