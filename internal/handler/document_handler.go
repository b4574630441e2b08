package handler

import (
	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/middleware"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler exposes document registration and retrieval endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func toDocumentResponse(doc *domain.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:           doc.ID,
		Filename:     doc.Filename,
		OriginalName: doc.OriginalName,
		FileSize:     doc.FileSize,
		HasSummary:   doc.Summary != "",
		UploadDate:   doc.UploadDate,
	}
}

// CreateDocument registers a document whose text was extracted upstream.
// @Summary Register a document
// @Tags documents
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentRequest true "Document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	doc, err := h.documentService.CreateDocument(c.Context(), middleware.UserID(c), &domain.Document{
		Filename:      req.Filename,
		OriginalName:  req.OriginalName,
		FileSize:      req.FileSize,
		ExtractedText: req.ExtractedText,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// ListDocuments lists the user's documents, newest first.
// @Summary List documents
// @Tags documents
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.DocumentResponse
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	docs, err := h.documentService.ListDocuments(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toDocumentResponse(doc))
	}
	return c.JSON(resp)
}

// GetDocument returns one document including its extracted text.
// @Summary Get a document
// @Tags documents
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.documentService.GetDocument(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DocumentDetailResponse{
		DocumentResponse: toDocumentResponse(doc),
		ExtractedText:    doc.ExtractedText,
		Summary:          doc.Summary,
	})
}

// DeleteDocument removes a document along with its quizzes.
// @Summary Delete a document
// @Tags documents
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.documentService.DeleteDocument(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Document deleted"})
}
