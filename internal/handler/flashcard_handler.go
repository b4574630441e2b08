package handler

import (
	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/middleware"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FlashcardHandler exposes flashcard persistence endpoints.
type FlashcardHandler struct {
	flashcardService service.FlashcardService
}

func NewFlashcardHandler(flashcardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcardService: flashcardService}
}

func toFlashcardResponse(card *domain.Flashcard) dto.FlashcardResponse {
	return dto.FlashcardResponse{
		ID:         card.ID,
		DocumentID: card.DocumentID,
		Question:   card.Question,
		Answer:     card.Answer,
		IsFavorite: card.IsFavorite,
		CreatedAt:  card.CreatedAt,
	}
}

func toFlashcardResponses(cards []*domain.Flashcard) []dto.FlashcardResponse {
	resp := make([]dto.FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, toFlashcardResponse(card))
	}
	return resp
}

// SaveFlashcards persists a batch of generated cards.
// @Summary Save generated flashcards
// @Tags flashcards
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveFlashcardsRequest true "Cards"
// @Success 201 {object} dto.SaveFlashcardsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /flashcards/batch [post]
func (h *FlashcardHandler) SaveFlashcards(c *fiber.Ctx) error {
	var req dto.SaveFlashcardsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	contents := make([]domain.FlashcardContent, 0, len(req.Flashcards))
	for _, card := range req.Flashcards {
		contents = append(contents, domain.FlashcardContent{Question: card.Question, Answer: card.Answer})
	}

	saved, err := h.flashcardService.SaveFlashcards(c.Context(), middleware.UserID(c), req.DocumentID, contents)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaveFlashcardsResponse{
		Flashcards: toFlashcardResponses(saved),
		Count:      len(saved),
	})
}

// CreateFlashcard creates a single card by hand.
// @Summary Create a flashcard
// @Tags flashcards
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFlashcardRequest true "Card"
// @Success 201 {object} dto.FlashcardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /flashcards [post]
func (h *FlashcardHandler) CreateFlashcard(c *fiber.Ctx) error {
	var req dto.CreateFlashcardRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	card, err := h.flashcardService.CreateFlashcard(c.Context(), middleware.UserID(c), req.DocumentID, req.Question, req.Answer)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toFlashcardResponse(card))
}

// ListFlashcards lists the user's cards, optionally scoped to a document.
// @Summary List flashcards
// @Tags flashcards
// @Security ApiKeyAuth
// @Produce json
// @Param documentId query string false "Filter by document"
// @Success 200 {array} dto.FlashcardResponse
// @Router /flashcards [get]
func (h *FlashcardHandler) ListFlashcards(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var (
		cards []*domain.Flashcard
		err   error
	)
	if documentID := c.Query("documentId"); documentID != "" {
		cards, err = h.flashcardService.ListFlashcardsByDocument(c.Context(), userID, documentID)
	} else {
		cards, err = h.flashcardService.ListFlashcards(c.Context(), userID)
	}
	if err != nil {
		return err
	}
	return c.JSON(toFlashcardResponses(cards))
}

// ListFavorites lists the user's favorite cards.
// @Summary List favorite flashcards
// @Tags flashcards
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.FlashcardResponse
// @Router /flashcards/favorites [get]
func (h *FlashcardHandler) ListFavorites(c *fiber.Ctx) error {
	cards, err := h.flashcardService.ListFavorites(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(toFlashcardResponses(cards))
}

// ToggleFavorite flips a card's favorite flag.
// @Summary Toggle flashcard favorite
// @Tags flashcards
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Flashcard ID"
// @Success 200 {object} dto.FlashcardResponse
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id}/favorite [patch]
func (h *FlashcardHandler) ToggleFavorite(c *fiber.Ctx) error {
	card, err := h.flashcardService.ToggleFavorite(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toFlashcardResponse(card))
}

// DeleteFlashcard removes a card.
// @Summary Delete a flashcard
// @Tags flashcards
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Flashcard ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id} [delete]
func (h *FlashcardHandler) DeleteFlashcard(c *fiber.Ctx) error {
	if err := h.flashcardService.DeleteFlashcard(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Flashcard deleted"})
}
