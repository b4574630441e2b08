package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/handler"
	"study-byte/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockQuizService struct {
	SaveQuizFunc              func(ctx context.Context, userID, documentID string, questions []domain.QuizQuestion) (*domain.Quiz, error)
	GetQuizFunc               func(ctx context.Context, userID, quizID string) (*domain.Quiz, error)
	ListQuizzesFunc           func(ctx context.Context, userID string) ([]*domain.Quiz, error)
	ListQuizzesByDocumentFunc func(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error)
	SubmitQuizFunc            func(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error)
	DeleteQuizFunc            func(ctx context.Context, userID, quizID string) error
	DeleteQuizzesByDocFunc    func(ctx context.Context, userID, documentID string) error
}

func (m *MockQuizService) SaveQuiz(ctx context.Context, userID, documentID string, questions []domain.QuizQuestion) (*domain.Quiz, error) {
	if m.SaveQuizFunc != nil {
		return m.SaveQuizFunc(ctx, userID, documentID, questions)
	}
	panic("MockQuizService.SaveQuizFunc not implemented")
}

func (m *MockQuizService) GetQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, userID, quizID)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) ListQuizzes(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx, userID)
	}
	panic("MockQuizService.ListQuizzesFunc not implemented")
}

func (m *MockQuizService) ListQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error) {
	if m.ListQuizzesByDocumentFunc != nil {
		return m.ListQuizzesByDocumentFunc(ctx, userID, documentID)
	}
	panic("MockQuizService.ListQuizzesByDocumentFunc not implemented")
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, userID, quizID, answers)
	}
	panic("MockQuizService.SubmitQuizFunc not implemented")
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, userID, quizID string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, userID, quizID)
	}
	panic("MockQuizService.DeleteQuizFunc not implemented")
}

func (m *MockQuizService) DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error {
	if m.DeleteQuizzesByDocFunc != nil {
		return m.DeleteQuizzesByDocFunc(ctx, userID, documentID)
	}
	panic("MockQuizService.DeleteQuizzesByDocFunc not implemented")
}

func newQuizTestApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user1")
		return c.Next()
	})

	h := handler.NewQuizHandler(svc)
	app.Post("/api/quizzes", h.SaveQuiz)
	app.Get("/api/quizzes", h.ListQuizzes)
	app.Get("/api/quizzes/:id", h.GetQuiz)
	app.Post("/api/quizzes/:id/submit", h.SubmitQuiz)
	app.Delete("/api/quizzes/document/:documentId", h.DeleteQuizzesByDocument)
	app.Delete("/api/quizzes/:id", h.DeleteQuiz)
	return app
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizService{
			SubmitQuizFunc: func(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error) {
				assert.Equal(t, "user1", userID)
				assert.Equal(t, "quiz1", quizID)
				assert.Equal(t, []int{0, 1, 0}, answers)
				return &domain.QuizResult{Score: 67, CorrectCount: 2, TotalQuestions: 3}, nil
			},
		}
		app := newQuizTestApp(svc)

		payload, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []int{0, 1, 0}})
		req := httptest.NewRequest("POST", "/api/quizzes/quiz1/submit", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.QuizResultResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 67, body.Score)
		assert.Equal(t, 2, body.CorrectCount)
	})

	t.Run("AlreadyCompletedMapsTo400", func(t *testing.T) {
		svc := &MockQuizService{
			SubmitQuizFunc: func(ctx context.Context, userID, quizID string, answers []int) (*domain.QuizResult, error) {
				return nil, domain.NewQuizCompletedError()
			},
		}
		app := newQuizTestApp(svc)

		payload, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []int{0}})
		req := httptest.NewRequest("POST", "/api/quizzes/quiz1/submit", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, string(domain.ErrQuizCompleted), body.Code)
	})
}

func TestQuizHandler_SaveQuiz(t *testing.T) {
	svc := &MockQuizService{
		SaveQuizFunc: func(ctx context.Context, userID, documentID string, questions []domain.QuizQuestion) (*domain.Quiz, error) {
			assert.Equal(t, "doc1", documentID)
			require.Len(t, questions, 1)
			return &domain.Quiz{
				ID:             "quiz1",
				UserID:         userID,
				DocumentID:     documentID,
				Questions:      questions,
				TotalQuestions: 1,
			}, nil
		},
	}
	app := newQuizTestApp(svc)

	payload, _ := json.Marshal(dto.SaveQuizRequest{
		DocumentID: "doc1",
		Questions: []dto.QuizQuestionContent{{
			Question: "Q", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 0, Explanation: "e",
		}},
	})
	req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body dto.QuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "quiz1", body.ID)
	assert.Nil(t, body.Score)
}

func TestQuizHandler_ListQuizzesByDocument(t *testing.T) {
	svc := &MockQuizService{
		ListQuizzesByDocumentFunc: func(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error) {
			assert.Equal(t, "doc1", documentID)
			return []*domain.Quiz{{ID: "quiz1", DocumentID: documentID, TotalQuestions: 3}}, nil
		},
	}
	app := newQuizTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes?documentId=doc1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.QuizSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "quiz1", body[0].ID)
}

func TestQuizHandler_DeleteQuizzesByDocument(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizService{
			DeleteQuizzesByDocFunc: func(ctx context.Context, userID, documentID string) error {
				assert.Equal(t, "user1", userID)
				assert.Equal(t, "doc1", documentID)
				return nil
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/quizzes/document/doc1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Quizzes deleted", body.Message)
	})

	t.Run("UnknownDocumentMapsTo404", func(t *testing.T) {
		svc := &MockQuizService{
			DeleteQuizzesByDocFunc: func(ctx context.Context, userID, documentID string) error {
				return domain.NewNotFoundError("Document not found or access denied")
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/quizzes/document/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestQuizHandler_GetQuizNotFound(t *testing.T) {
	svc := &MockQuizService{
		GetQuizFunc: func(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
			return nil, domain.NewNotFoundError("Quiz not found or access denied")
		},
	}
	app := newQuizTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
