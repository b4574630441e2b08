package main

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"study-byte/internal/config"
	"study-byte/internal/domain"
	"study-byte/internal/handler"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

// stubAIService returns canned answers so router tests exercise only the
// middleware chain, never the pipeline.
type stubAIService struct{}

func (stubAIService) Chat(ctx context.Context, userID, documentID, question string) (string, bool, error) {
	return "answer", false, nil
}

func (stubAIService) Summarize(ctx context.Context, userID, documentID string) (string, bool, error) {
	return "summary", false, nil
}

func (stubAIService) Explain(ctx context.Context, userID, documentID, concept string) (string, bool, error) {
	return "explanation", false, nil
}

func (stubAIService) GenerateFlashcards(ctx context.Context, userID, documentID string, count int) ([]domain.FlashcardContent, error) {
	return nil, nil
}

func (stubAIService) GenerateQuiz(ctx context.Context, userID, documentID string, questionCount int) ([]domain.QuizQuestion, error) {
	return nil, nil
}

func (stubAIService) CheckHealth(ctx context.Context) *domain.HealthStatus {
	return &domain.HealthStatus{Status: domain.HealthOK, Message: "Ollama is running", Model: "llama3.2"}
}

func (stubAIService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	return []domain.ModelInfo{{Name: "llama3.2"}}, nil
}

// newTestRouter builds the production router with a stub AI service. The
// other handlers are wired but never reached by these tests.
func newTestRouter() *fiber.App {
	authService := service.NewAuthService(nil, config.AuthConfig{
		JWTSecret:       testSecret,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	return newRouter(config.ServerConfig{},
		authService,
		handler.NewAIHandler(stubAIService{}),
		handler.NewAuthHandler(authService),
		handler.NewDocumentHandler(nil),
		handler.NewFlashcardHandler(nil),
		handler.NewQuizHandler(nil),
	)
}

func signAccessToken(t *testing.T, userID string) string {
	t.Helper()
	now := time.Now()
	claims := service.Claims{
		UserID:    userID,
		TokenType: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAIHealthRouteRequiresAuth(t *testing.T) {
	app := newTestRouter()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ai/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/ai/health", nil)
	req.Header.Set("Authorization", "Bearer "+signAccessToken(t, "user1"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGenerationRoutesRateLimited(t *testing.T) {
	app := newTestRouter()
	token := signAccessToken(t, "user1")

	for i := 0; i < 30; i++ {
		req := httptest.NewRequest("POST", "/api/ai/chat/doc1", strings.NewReader(`{"question":"q"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest("POST", "/api/ai/chat/doc1", strings.NewReader(`{"question":"q"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

// Model listing is cheap and stays outside the generation budget.
func TestModelsRouteNotGenerationLimited(t *testing.T) {
	app := newTestRouter()
	token := signAccessToken(t, "user1")

	for i := 0; i < 31; i++ {
		req := httptest.NewRequest("GET", "/api/ai/models", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
