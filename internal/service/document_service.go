package service

import (
	"context"
	"strings"

	"study-byte/internal/domain"
	"study-byte/internal/repository"
	"study-byte/internal/util"
)

// DocumentService manages a user's uploaded documents. Text extraction is
// performed by the upload pipeline; this service receives the result.
type DocumentService interface {
	CreateDocument(ctx context.Context, userID string, doc *domain.Document) (*domain.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]*domain.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
}

type documentService struct {
	docRepo  repository.DocumentRepository
	quizRepo repository.QuizRepository
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(docRepo repository.DocumentRepository, quizRepo repository.QuizRepository) DocumentService {
	return &documentService{docRepo: docRepo, quizRepo: quizRepo}
}

func (s *documentService) CreateDocument(ctx context.Context, userID string, doc *domain.Document) (*domain.Document, error) {
	if strings.TrimSpace(doc.OriginalName) == "" {
		return nil, domain.NewInvalidInputError("document name is required")
	}
	if strings.TrimSpace(doc.ExtractedText) == "" {
		return nil, domain.NewInvalidInputError("extracted text is required")
	}

	doc.ID = util.NewULID()
	doc.UserID = userID
	if doc.Filename == "" {
		doc.Filename = doc.OriginalName
	}
	if err := s.docRepo.CreateDocument(ctx, doc); err != nil {
		return nil, domain.NewInternalError("failed to create document", err)
	}
	return doc, nil
}

func (s *documentService) getOwnedDocument(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load document", err)
	}
	if doc == nil || doc.UserID != userID {
		return nil, domain.NewNotFoundError("Document not found or access denied")
	}
	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	return s.getOwnedDocument(ctx, userID, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, userID string) ([]*domain.Document, error) {
	docs, err := s.docRepo.GetDocumentsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list documents", err)
	}
	return docs, nil
}

// DeleteDocument removes a document along with the quizzes built from it.
// Flashcards survive so saved study material outlives the source file.
func (s *documentService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	if _, err := s.getOwnedDocument(ctx, userID, documentID); err != nil {
		return err
	}
	if err := s.quizRepo.DeleteQuizzesByDocument(ctx, userID, documentID); err != nil {
		return domain.NewInternalError("failed to delete document quizzes", err)
	}
	if err := s.docRepo.DeleteDocument(ctx, documentID); err != nil {
		return domain.NewInternalError("failed to delete document", err)
	}
	return nil
}

var _ DocumentService = (*documentService)(nil)
