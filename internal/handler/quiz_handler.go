package handler

import (
	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/middleware"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler exposes quiz persistence and submission endpoints.
type QuizHandler struct {
	quizService service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func toQuizResponse(quiz *domain.Quiz) dto.QuizResponse {
	questions := make([]dto.QuizQuestionContent, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuizQuestionContent{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return dto.QuizResponse{
		ID:             quiz.ID,
		DocumentID:     quiz.DocumentID,
		Questions:      questions,
		UserAnswers:    quiz.UserAnswers,
		Score:          quiz.Score,
		TotalQuestions: quiz.TotalQuestions,
		CompletedAt:    quiz.CompletedAt,
		CreatedAt:      quiz.CreatedAt,
	}
}

func toQuizSummary(quiz *domain.Quiz) dto.QuizSummaryResponse {
	return dto.QuizSummaryResponse{
		ID:             quiz.ID,
		DocumentID:     quiz.DocumentID,
		TotalQuestions: quiz.TotalQuestions,
		Score:          quiz.Score,
		CompletedAt:    quiz.CompletedAt,
		CreatedAt:      quiz.CreatedAt,
	}
}

// SaveQuiz persists a set of generated questions as a new quiz.
// @Summary Save a quiz
// @Tags quizzes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveQuizRequest true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /quizzes [post]
func (h *QuizHandler) SaveQuiz(c *fiber.Ctx) error {
	var req dto.SaveQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	questions := make([]domain.QuizQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, domain.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz, err := h.quizService.SaveQuiz(c.Context(), middleware.UserID(c), req.DocumentID, questions)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toQuizResponse(quiz))
}

// ListQuizzes lists the user's quizzes without question bodies.
// @Summary List quizzes
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param documentId query string false "Filter by document"
// @Success 200 {array} dto.QuizSummaryResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var (
		quizzes []*domain.Quiz
		err     error
	)
	if documentID := c.Query("documentId"); documentID != "" {
		quizzes, err = h.quizService.ListQuizzesByDocument(c.Context(), userID, documentID)
	} else {
		quizzes, err = h.quizService.ListQuizzes(c.Context(), userID)
	}
	if err != nil {
		return err
	}

	resp := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		resp = append(resp, toQuizSummary(quiz))
	}
	return c.JSON(resp)
}

// GetQuiz returns a single quiz with its questions.
// @Summary Get a quiz
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuiz(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toQuizResponse(quiz))
}

// SubmitQuiz scores the user's answers and marks the quiz completed.
// @Summary Submit quiz answers
// @Tags quizzes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Answers"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already completed"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), middleware.UserID(c), c.Params("id"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResultResponse{
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		UserAnswers:    req.Answers,
	})
}

// DeleteQuiz removes a quiz.
// @Summary Delete a quiz
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuiz(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted"})
}

// DeleteQuizzesByDocument removes all of the user's quizzes for a document.
// @Summary Delete all quizzes for a document
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /quizzes/document/{documentId} [delete]
func (h *QuizHandler) DeleteQuizzesByDocument(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuizzesByDocument(c.Context(), middleware.UserID(c), c.Params("documentId")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quizzes deleted"})
}
