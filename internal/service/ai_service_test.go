package service

import (
	"context"
	"testing"

	"study-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownedDocument() *domain.Document {
	return &domain.Document{
		ID:            "doc1",
		UserID:        "user1",
		OriginalName:  "notes.pdf",
		ExtractedText: "the document text",
	}
}

func TestAIServiceChat(t *testing.T) {
	t.Run("CacheMissGeneratesAndStores", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)
		cacheClient := new(mockCache)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		cacheClient.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", domain.ErrCacheMiss)
		generation.On("Chat", mock.Anything, "the document text", "what?").Return("an answer", nil)
		cacheClient.On("Set", mock.Anything, mock.AnythingOfType("string"), "an answer", responseCacheTTL).Return(nil)

		svc := NewAIService(docRepo, generation, cacheClient)
		answer, cached, err := svc.Chat(context.Background(), "user1", "doc1", "what?")

		require.NoError(t, err)
		assert.Equal(t, "an answer", answer)
		assert.False(t, cached)
		cacheClient.AssertExpectations(t)
	})

	t.Run("CacheHitSkipsGeneration", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)
		cacheClient := new(mockCache)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		cacheClient.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("cached answer", nil)

		svc := NewAIService(docRepo, generation, cacheClient)
		answer, cached, err := svc.Chat(context.Background(), "user1", "doc1", "what?")

		require.NoError(t, err)
		assert.Equal(t, "cached answer", answer)
		assert.True(t, cached)
		generation.AssertNotCalled(t, "Chat")
	})

	t.Run("NilCacheStillWorks", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		generation.On("Chat", mock.Anything, "the document text", "what?").Return("an answer", nil)

		svc := NewAIService(docRepo, generation, nil)
		answer, cached, err := svc.Chat(context.Background(), "user1", "doc1", "what?")

		require.NoError(t, err)
		assert.Equal(t, "an answer", answer)
		assert.False(t, cached)
	})

	t.Run("UnknownDocument", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		docRepo.On("GetDocumentByID", mock.Anything, "missing").Return(nil, nil)

		svc := NewAIService(docRepo, new(mockGenerationService), nil)
		_, _, err := svc.Chat(context.Background(), "user1", "missing", "what?")

		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	})

	t.Run("SomeoneElsesDocumentLooksMissing", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		doc := ownedDocument()
		doc.UserID = "user2"
		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(doc, nil)

		svc := NewAIService(docRepo, new(mockGenerationService), nil)
		_, _, err := svc.Chat(context.Background(), "user1", "doc1", "what?")

		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	})

	t.Run("DocumentWithoutText", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		doc := ownedDocument()
		doc.ExtractedText = ""
		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(doc, nil)

		svc := NewAIService(docRepo, new(mockGenerationService), nil)
		_, _, err := svc.Chat(context.Background(), "user1", "doc1", "what?")

		assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
	})
}

func TestAIServiceSummarize(t *testing.T) {
	t.Run("StoredSummaryShortCircuits", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)

		doc := ownedDocument()
		doc.Summary = "existing summary"
		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(doc, nil)

		svc := NewAIService(docRepo, generation, nil)
		summary, cached, err := svc.Summarize(context.Background(), "user1", "doc1")

		require.NoError(t, err)
		assert.Equal(t, "existing summary", summary)
		assert.True(t, cached)
		generation.AssertNotCalled(t, "GenerateSummary")
	})

	t.Run("GeneratesAndPersists", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		generation.On("GenerateSummary", mock.Anything, "the document text").Return("fresh summary", nil)
		docRepo.On("UpdateSummary", mock.Anything, "doc1", "fresh summary").Return(nil)

		svc := NewAIService(docRepo, generation, nil)
		summary, cached, err := svc.Summarize(context.Background(), "user1", "doc1")

		require.NoError(t, err)
		assert.Equal(t, "fresh summary", summary)
		assert.False(t, cached)
		docRepo.AssertExpectations(t)
	})

	t.Run("PersistenceFailureStillReturnsSummary", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		generation.On("GenerateSummary", mock.Anything, "the document text").Return("fresh summary", nil)
		docRepo.On("UpdateSummary", mock.Anything, "doc1", "fresh summary").
			Return(assert.AnError)

		svc := NewAIService(docRepo, generation, nil)
		summary, _, err := svc.Summarize(context.Background(), "user1", "doc1")

		require.NoError(t, err)
		assert.Equal(t, "fresh summary", summary)
	})

	t.Run("GenerationFailurePassesThrough", func(t *testing.T) {
		docRepo := new(mockDocumentRepository)
		generation := new(mockGenerationService)

		docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
		generation.On("GenerateSummary", mock.Anything, "the document text").
			Return("", domain.NewEndpointUnavailableError(nil))

		svc := NewAIService(docRepo, generation, nil)
		_, _, err := svc.Summarize(context.Background(), "user1", "doc1")

		assert.True(t, domain.IsCode(err, domain.ErrEndpointUnavailable))
	})
}

func TestAIServiceGenerateFlashcards(t *testing.T) {
	docRepo := new(mockDocumentRepository)
	generation := new(mockGenerationService)

	docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
	generation.On("GenerateFlashcards", mock.Anything, "the document text", 10).
		Return([]domain.FlashcardContent{{Question: "Q", Answer: "A"}}, nil)

	svc := NewAIService(docRepo, generation, nil)
	cards, err := svc.GenerateFlashcards(context.Background(), "user1", "doc1", 10)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Q", cards[0].Question)
}

func TestAIServiceGenerateQuiz(t *testing.T) {
	docRepo := new(mockDocumentRepository)
	generation := new(mockGenerationService)

	docRepo.On("GetDocumentByID", mock.Anything, "doc1").Return(ownedDocument(), nil)
	generation.On("GenerateQuiz", mock.Anything, "the document text", 5).
		Return([]domain.QuizQuestion{{Question: "Q", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 0}}, nil)

	svc := NewAIService(docRepo, generation, nil)
	questions, err := svc.GenerateQuiz(context.Background(), "user1", "doc1", 5)

	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestResponseCacheKey(t *testing.T) {
	key1 := responseCacheKey("chat", "doc1", "question one")
	key2 := responseCacheKey("chat", "doc1", "question two")
	key3 := responseCacheKey("chat", "doc2", "question one")

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, key1, key3)
	assert.Equal(t, key1, responseCacheKey("chat", "doc1", "question one"))
	assert.Contains(t, key1, "studybyte:")
}
