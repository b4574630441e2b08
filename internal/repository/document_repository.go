package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-byte/internal/domain"
	"study-byte/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// DocumentRepository defines the interface for document data operations.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *domain.Document) error
	GetDocumentByID(ctx context.Context, id string) (*domain.Document, error)
	GetDocumentsByUser(ctx context.Context, userID string) ([]*domain.Document, error)
	UpdateSummary(ctx context.Context, id, summary string) error
	DeleteDocument(ctx context.Context, id string) error
}

type sqlxDocumentRepository struct {
	db *sqlx.DB
}

// NewSQLXDocumentRepository creates a new instance of sqlxDocumentRepository.
func NewSQLXDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &sqlxDocumentRepository{db: db}
}

func toDomainDocument(m *models.Document) *domain.Document {
	return &domain.Document{
		ID:            m.ID,
		UserID:        m.UserID,
		Filename:      m.Filename,
		OriginalName:  m.OriginalName,
		FileSize:      m.FileSize,
		ExtractedText: m.ExtractedText.String,
		Summary:       m.Summary.String,
		UploadDate:    m.UploadDate,
	}
}

// CreateDocument inserts a new document.
func (r *sqlxDocumentRepository) CreateDocument(ctx context.Context, doc *domain.Document) error {
	doc.UploadDate = time.Now()

	record := &models.Document{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Filename:      doc.Filename,
		OriginalName:  doc.OriginalName,
		FileSize:      doc.FileSize,
		ExtractedText: sql.NullString{String: doc.ExtractedText, Valid: doc.ExtractedText != ""},
		Summary:       sql.NullString{String: doc.Summary, Valid: doc.Summary != ""},
		UploadDate:    doc.UploadDate,
	}

	query := `INSERT INTO documents (id, user_id, filename, original_name, file_size, extracted_text, summary, upload_date)
	          VALUES (:id, :user_id, :filename, :original_name, :file_size, :extracted_text, :summary, :upload_date)`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetDocumentByID retrieves one document. Returns nil, nil when not found;
// ownership is the service layer's concern.
func (r *sqlxDocumentRepository) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc models.Document
	query := `SELECT * FROM documents WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetDocumentByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &doc, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return toDomainDocument(&doc), nil
}

// GetDocumentsByUser lists a user's documents, newest first.
func (r *sqlxDocumentRepository) GetDocumentsByUser(ctx context.Context, userID string) ([]*domain.Document, error) {
	var records []models.Document
	query := `SELECT * FROM documents WHERE user_id = :user_id ORDER BY upload_date DESC`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetDocumentsByUser: %w", err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &records, map[string]interface{}{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*domain.Document, 0, len(records))
	for i := range records {
		docs = append(docs, toDomainDocument(&records[i]))
	}
	return docs, nil
}

// UpdateSummary stores a generated summary on the document row. Last write
// wins across processes.
func (r *sqlxDocumentRepository) UpdateSummary(ctx context.Context, id, summary string) error {
	query := `UPDATE documents SET summary = :summary WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":      id,
		"summary": summary,
	})
	if err != nil {
		return fmt.Errorf("failed to update document summary: %w", err)
	}
	return nil
}

// DeleteDocument removes a document row.
func (r *sqlxDocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
