package dto

import "time"

// CreateDocumentRequest registers a document whose text was extracted upstream.
type CreateDocumentRequest struct {
	Filename      string `json:"filename"`
	OriginalName  string `json:"originalName"`
	FileSize      int64  `json:"fileSize"`
	ExtractedText string `json:"extractedText"`
}

// DocumentResponse is the list-view document representation.
type DocumentResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"`
	HasSummary   bool      `json:"hasSummary"`
	UploadDate   time.Time `json:"uploadDate"`
}

// DocumentDetailResponse includes the extracted text and stored summary.
type DocumentDetailResponse struct {
	DocumentResponse
	ExtractedText string `json:"extractedText"`
	Summary       string `json:"summary,omitempty"`
}
