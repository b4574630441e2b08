package handler

import (
	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/middleware"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultFlashcardCount = 10
	defaultQuestionCount  = 5
)

// AIHandler exposes the generation endpoints.
type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// CheckHealth reports whether the inference endpoint is reachable and serving
// the configured model.
// @Summary AI health check
// @Description Reports inference endpoint availability and model status.
// @Tags ai
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /ai/health [get]
func (h *AIHandler) CheckHealth(c *fiber.Ctx) error {
	status := h.aiService.CheckHealth(c.Context())
	return c.JSON(dto.HealthResponse{
		Status:  status.Status,
		Message: status.Message,
		Model:   status.Model,
	})
}

// ListModels lists the models available at the inference endpoint.
// @Summary List available models
// @Tags ai
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ModelsResponse
// @Failure 503 {object} dto.ErrorResponse "Endpoint unavailable"
// @Router /ai/models [get]
func (h *AIHandler) ListModels(c *fiber.Ctx) error {
	models, err := h.aiService.ListModels(c.Context())
	if err != nil {
		return err
	}

	resp := dto.ModelsResponse{Models: make([]dto.ModelInfo, 0, len(models))}
	for _, m := range models {
		resp.Models = append(resp.Models, dto.ModelInfo{Name: m.Name, Size: m.Size})
	}
	return c.JSON(resp)
}

// Chat answers a question about a document.
// @Summary Chat about a document
// @Tags ai
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param request body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 503 {object} dto.ErrorResponse "Endpoint unavailable"
// @Router /ai/chat/{documentId} [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	answer, cached, err := h.aiService.Chat(c.Context(), middleware.UserID(c), c.Params("documentId"), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChatResponse{Question: req.Question, Answer: answer, Cached: cached})
}

// Summarize returns the document's summary, generating it on first use.
// @Summary Summarize a document
// @Tags ai
// @Security ApiKeyAuth
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 503 {object} dto.ErrorResponse "Endpoint unavailable"
// @Router /ai/summary/{documentId} [post]
func (h *AIHandler) Summarize(c *fiber.Ctx) error {
	summary, cached, err := h.aiService.Summarize(c.Context(), middleware.UserID(c), c.Params("documentId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{Summary: summary, Cached: cached})
}

// Explain explains a concept in the document's context.
// @Summary Explain a concept
// @Tags ai
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param request body dto.ExplainRequest true "Concept"
// @Success 200 {object} dto.ExplainResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /ai/explain/{documentId} [post]
func (h *AIHandler) Explain(c *fiber.Ctx) error {
	var req dto.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	explanation, cached, err := h.aiService.Explain(c.Context(), middleware.UserID(c), c.Params("documentId"), req.Concept)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExplainResponse{Concept: req.Concept, Explanation: explanation, Cached: cached})
}

// GenerateFlashcards generates flashcards from a document.
// @Summary Generate flashcards
// @Tags ai
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param request body dto.GenerateFlashcardsRequest false "Options"
// @Success 200 {object} dto.GenerateFlashcardsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 502 {object} dto.ErrorResponse "Extraction failed"
// @Router /ai/flashcards/{documentId} [post]
func (h *AIHandler) GenerateFlashcards(c *fiber.Ctx) error {
	req := dto.GenerateFlashcardsRequest{Count: defaultFlashcardCount}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
		if req.Count == 0 {
			req.Count = defaultFlashcardCount
		}
	}

	cards, err := h.aiService.GenerateFlashcards(c.Context(), middleware.UserID(c), c.Params("documentId"), req.Count)
	if err != nil {
		return err
	}

	resp := dto.GenerateFlashcardsResponse{
		Flashcards: make([]dto.FlashcardContent, 0, len(cards)),
		Count:      len(cards),
	}
	for _, card := range cards {
		resp.Flashcards = append(resp.Flashcards, dto.FlashcardContent{Question: card.Question, Answer: card.Answer})
	}
	return c.JSON(resp)
}

// GenerateQuiz generates quiz questions from a document.
// @Summary Generate a quiz
// @Tags ai
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param request body dto.GenerateQuizRequest false "Options"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 502 {object} dto.ErrorResponse "Extraction failed"
// @Router /ai/quiz/{documentId} [post]
func (h *AIHandler) GenerateQuiz(c *fiber.Ctx) error {
	req := dto.GenerateQuizRequest{QuestionCount: defaultQuestionCount}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
		if req.QuestionCount == 0 {
			req.QuestionCount = defaultQuestionCount
		}
	}

	questions, err := h.aiService.GenerateQuiz(c.Context(), middleware.UserID(c), c.Params("documentId"), req.QuestionCount)
	if err != nil {
		return err
	}

	resp := dto.GenerateQuizResponse{
		Questions: make([]dto.QuizQuestionContent, 0, len(questions)),
		Count:     len(questions),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionContent{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return c.JSON(resp)
}
