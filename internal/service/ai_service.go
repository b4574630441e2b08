package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"study-byte/internal/cache"
	"study-byte/internal/domain"
	"study-byte/internal/logger"
	"study-byte/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// responseCacheTTL bounds how long chat and explanation responses are reused.
const responseCacheTTL = 6 * time.Hour

// AIService runs generation tasks against a user's documents. It owns
// document access checks, response caching, and summary persistence; the
// model conversation itself lives in GenerationService.
type AIService interface {
	Chat(ctx context.Context, userID, documentID, question string) (answer string, cached bool, err error)
	Summarize(ctx context.Context, userID, documentID string) (summary string, cached bool, err error)
	Explain(ctx context.Context, userID, documentID, concept string) (explanation string, cached bool, err error)
	GenerateFlashcards(ctx context.Context, userID, documentID string, count int) ([]domain.FlashcardContent, error)
	GenerateQuiz(ctx context.Context, userID, documentID string, questionCount int) ([]domain.QuizQuestion, error)
	CheckHealth(ctx context.Context) *domain.HealthStatus
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}

type aiService struct {
	docRepo    repository.DocumentRepository
	generation GenerationService
	cache      domain.Cache
	summaries  singleflight.Group
}

// NewAIService creates a new AIService. cacheClient may be nil, in which case
// chat and explanation responses are generated fresh on every call.
func NewAIService(docRepo repository.DocumentRepository, generation GenerationService, cacheClient domain.Cache) AIService {
	return &aiService{
		docRepo:    docRepo,
		generation: generation,
		cache:      cacheClient,
	}
}

// fetchDocument loads a document and enforces ownership. A missing document
// and someone else's document are indistinguishable to the caller.
func (s *aiService) fetchDocument(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load document", err)
	}
	if doc == nil || doc.UserID != userID {
		return nil, domain.NewNotFoundError("Document not found or access denied")
	}
	if doc.ExtractedText == "" {
		return nil, domain.NewInvalidInputError("Document text not available. The document may still be processing.")
	}
	return doc, nil
}

func responseCacheKey(task, documentID, input string) string {
	digest := sha256.Sum256([]byte(input))
	return cache.GenerateCacheKey("ai", task, documentID, hex.EncodeToString(digest[:]))
}

// cachedResponse looks up a prior response. Cache failures are logged and
// treated as misses.
func (s *aiService) cachedResponse(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("response cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (s *aiService) storeResponse(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, responseCacheTTL); err != nil {
		logger.Get().Warn("response cache store failed", zap.String("key", key), zap.Error(err))
	}
}

// Chat answers a question about a document. Identical questions against the
// same document are served from cache.
func (s *aiService) Chat(ctx context.Context, userID, documentID, question string) (string, bool, error) {
	doc, err := s.fetchDocument(ctx, userID, documentID)
	if err != nil {
		return "", false, err
	}

	key := responseCacheKey("chat", doc.ID, question)
	if answer, ok := s.cachedResponse(ctx, key); ok {
		return answer, true, nil
	}

	answer, err := s.generation.Chat(ctx, doc.ExtractedText, question)
	if err != nil {
		return "", false, err
	}

	s.storeResponse(ctx, key, answer)
	return answer, false, nil
}

// Summarize returns the document's summary, generating and persisting one on
// first use. Concurrent requests for the same document share one generation.
func (s *aiService) Summarize(ctx context.Context, userID, documentID string) (string, bool, error) {
	doc, err := s.fetchDocument(ctx, userID, documentID)
	if err != nil {
		return "", false, err
	}
	if doc.Summary != "" {
		return doc.Summary, true, nil
	}

	result, err, shared := s.summaries.Do(doc.ID, func() (interface{}, error) {
		summary, genErr := s.generation.GenerateSummary(ctx, doc.ExtractedText)
		if genErr != nil {
			return nil, genErr
		}
		if updateErr := s.docRepo.UpdateSummary(ctx, doc.ID, summary); updateErr != nil {
			// The summary is still worth returning; only persistence failed.
			logger.Get().Error("failed to persist document summary",
				zap.String("documentID", doc.ID), zap.Error(updateErr))
		}
		return summary, nil
	})
	if err != nil {
		return "", false, err
	}
	return result.(string), shared, nil
}

// Explain explains a concept in the document's context, with response caching.
func (s *aiService) Explain(ctx context.Context, userID, documentID, concept string) (string, bool, error) {
	doc, err := s.fetchDocument(ctx, userID, documentID)
	if err != nil {
		return "", false, err
	}

	key := responseCacheKey("explain", doc.ID, concept)
	if explanation, ok := s.cachedResponse(ctx, key); ok {
		return explanation, true, nil
	}

	explanation, err := s.generation.ExplainConcept(ctx, doc.ExtractedText, concept)
	if err != nil {
		return "", false, err
	}

	s.storeResponse(ctx, key, explanation)
	return explanation, false, nil
}

// GenerateFlashcards produces flashcards from a document. Results are not
// cached so repeated calls yield fresh cards.
func (s *aiService) GenerateFlashcards(ctx context.Context, userID, documentID string, count int) ([]domain.FlashcardContent, error) {
	doc, err := s.fetchDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	return s.generation.GenerateFlashcards(ctx, doc.ExtractedText, count)
}

// GenerateQuiz produces quiz questions from a document.
func (s *aiService) GenerateQuiz(ctx context.Context, userID, documentID string, questionCount int) ([]domain.QuizQuestion, error) {
	doc, err := s.fetchDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	return s.generation.GenerateQuiz(ctx, doc.ExtractedText, questionCount)
}

func (s *aiService) CheckHealth(ctx context.Context) *domain.HealthStatus {
	return s.generation.CheckHealth(ctx)
}

func (s *aiService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	models, err := s.generation.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return models, nil
}

var _ AIService = (*aiService)(nil)
