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

// FlashcardRepository defines the interface for flashcard data operations.
type FlashcardRepository interface {
	CreateFlashcard(ctx context.Context, card *domain.Flashcard) error
	CreateFlashcards(ctx context.Context, cards []*domain.Flashcard) error
	GetFlashcardByID(ctx context.Context, id string) (*domain.Flashcard, error)
	GetFlashcardsByUser(ctx context.Context, userID string) ([]*domain.Flashcard, error)
	GetFlashcardsByDocument(ctx context.Context, userID, documentID string) ([]*domain.Flashcard, error)
	GetFavoriteFlashcards(ctx context.Context, userID string) ([]*domain.Flashcard, error)
	SetFavorite(ctx context.Context, id string, favorite bool) error
	DeleteFlashcard(ctx context.Context, id string) error
}

type sqlxFlashcardRepository struct {
	db *sqlx.DB
}

// NewSQLXFlashcardRepository creates a new instance of sqlxFlashcardRepository.
func NewSQLXFlashcardRepository(db *sqlx.DB) FlashcardRepository {
	return &sqlxFlashcardRepository{db: db}
}

func toDomainFlashcard(m *models.Flashcard) *domain.Flashcard {
	return &domain.Flashcard{
		ID:         m.ID,
		UserID:     m.UserID,
		DocumentID: m.DocumentID,
		Question:   m.Question,
		Answer:     m.Answer,
		IsFavorite: m.IsFavorite,
		CreatedAt:  m.CreatedAt,
	}
}

func toFlashcardModel(card *domain.Flashcard) *models.Flashcard {
	return &models.Flashcard{
		ID:         card.ID,
		UserID:     card.UserID,
		DocumentID: card.DocumentID,
		Question:   card.Question,
		Answer:     card.Answer,
		IsFavorite: card.IsFavorite,
		CreatedAt:  card.CreatedAt,
	}
}

const insertFlashcardQuery = `INSERT INTO flashcards (id, user_id, document_id, question, answer, is_favorite, created_at)
	VALUES (:id, :user_id, :document_id, :question, :answer, :is_favorite, :created_at)`

// CreateFlashcard inserts a single card.
func (r *sqlxFlashcardRepository) CreateFlashcard(ctx context.Context, card *domain.Flashcard) error {
	card.CreatedAt = time.Now()
	if _, err := r.db.NamedExecContext(ctx, insertFlashcardQuery, toFlashcardModel(card)); err != nil {
		return fmt.Errorf("failed to create flashcard: %w", err)
	}
	return nil
}

// CreateFlashcards inserts a generated batch in one transaction so a partial
// save never survives a failure.
func (r *sqlxFlashcardRepository) CreateFlashcards(ctx context.Context, cards []*domain.Flashcard) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, card := range cards {
		card.CreatedAt = now
		if _, err := tx.NamedExecContext(ctx, insertFlashcardQuery, toFlashcardModel(card)); err != nil {
			return fmt.Errorf("failed to create flashcard batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit flashcard batch: %w", err)
	}
	return nil
}

// GetFlashcardByID returns nil, nil when not found.
func (r *sqlxFlashcardRepository) GetFlashcardByID(ctx context.Context, id string) (*domain.Flashcard, error) {
	var card models.Flashcard
	query := `SELECT * FROM flashcards WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetFlashcardByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &card, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get flashcard by id: %w", err)
	}
	return toDomainFlashcard(&card), nil
}

func (r *sqlxFlashcardRepository) selectFlashcards(ctx context.Context, query string, args map[string]interface{}) ([]*domain.Flashcard, error) {
	var records []models.Flashcard

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare flashcard query: %w", err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &records, args); err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}

	cards := make([]*domain.Flashcard, 0, len(records))
	for i := range records {
		cards = append(cards, toDomainFlashcard(&records[i]))
	}
	return cards, nil
}

// GetFlashcardsByUser lists a user's cards, newest first.
func (r *sqlxFlashcardRepository) GetFlashcardsByUser(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	return r.selectFlashcards(ctx,
		`SELECT * FROM flashcards WHERE user_id = :user_id ORDER BY created_at DESC`,
		map[string]interface{}{"user_id": userID})
}

// GetFlashcardsByDocument lists a user's cards for one document.
func (r *sqlxFlashcardRepository) GetFlashcardsByDocument(ctx context.Context, userID, documentID string) ([]*domain.Flashcard, error) {
	return r.selectFlashcards(ctx,
		`SELECT * FROM flashcards WHERE user_id = :user_id AND document_id = :document_id ORDER BY created_at DESC`,
		map[string]interface{}{"user_id": userID, "document_id": documentID})
}

// GetFavoriteFlashcards lists a user's favorite cards.
func (r *sqlxFlashcardRepository) GetFavoriteFlashcards(ctx context.Context, userID string) ([]*domain.Flashcard, error) {
	return r.selectFlashcards(ctx,
		`SELECT * FROM flashcards WHERE user_id = :user_id AND is_favorite = 1 ORDER BY created_at DESC`,
		map[string]interface{}{"user_id": userID})
}

// SetFavorite flips the favorite flag.
func (r *sqlxFlashcardRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	query := `UPDATE flashcards SET is_favorite = :is_favorite WHERE id = :id`

	favoriteFlag := 0
	if favorite {
		favoriteFlag = 1
	}

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          id,
		"is_favorite": favoriteFlag,
	})
	if err != nil {
		return fmt.Errorf("failed to update flashcard favorite: %w", err)
	}
	return nil
}

// DeleteFlashcard removes a card.
func (r *sqlxFlashcardRepository) DeleteFlashcard(ctx context.Context, id string) error {
	query := `DELETE FROM flashcards WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete flashcard: %w", err)
	}
	return nil
}
