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

// QuizRepository defines the interface for quiz data operations.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *domain.Quiz) error
	GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error)
	GetQuizzesByUser(ctx context.Context, userID string) ([]*domain.Quiz, error)
	GetQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error)
	CompleteQuiz(ctx context.Context, quiz *domain.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
	DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error
}

type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	quiz := &domain.Quiz{
		ID:             m.ID,
		UserID:         m.UserID,
		DocumentID:     m.DocumentID,
		Questions:      []domain.QuizQuestion(m.Questions),
		UserAnswers:    []int(m.UserAnswers),
		TotalQuestions: m.TotalQuestions,
		CreatedAt:      m.CreatedAt,
	}
	if m.Score.Valid {
		score := int(m.Score.Int64)
		quiz.Score = &score
	}
	if m.CompletedAt.Valid {
		completedAt := m.CompletedAt.Time
		quiz.CompletedAt = &completedAt
	}
	return quiz
}

// CreateQuiz inserts a freshly generated quiz with no completion state.
func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	quiz.CreatedAt = time.Now()

	record := &models.Quiz{
		ID:             quiz.ID,
		UserID:         quiz.UserID,
		DocumentID:     quiz.DocumentID,
		Questions:      models.QuestionSlice(quiz.Questions),
		UserAnswers:    models.IntSlice{},
		TotalQuestions: quiz.TotalQuestions,
		CreatedAt:      quiz.CreatedAt,
	}

	query := `INSERT INTO quizzes (id, user_id, document_id, questions, user_answers, total_questions, created_at)
	          VALUES (:id, :user_id, :document_id, :questions, :user_answers, :total_questions, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetQuizByID returns nil, nil when not found.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var record models.Quiz
	query := `SELECT * FROM quizzes WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetQuizByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &record, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&record), nil
}

func (r *sqlxQuizRepository) selectQuizzes(ctx context.Context, query string, args map[string]interface{}) ([]*domain.Quiz, error) {
	var records []models.Quiz

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare quiz query: %w", err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &records, args); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(records))
	for i := range records {
		quizzes = append(quizzes, toDomainQuiz(&records[i]))
	}
	return quizzes, nil
}

// GetQuizzesByUser lists a user's quizzes, newest first.
func (r *sqlxQuizRepository) GetQuizzesByUser(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	return r.selectQuizzes(ctx,
		`SELECT * FROM quizzes WHERE user_id = :user_id ORDER BY created_at DESC`,
		map[string]interface{}{"user_id": userID})
}

// GetQuizzesByDocument lists a user's quizzes for one document.
func (r *sqlxQuizRepository) GetQuizzesByDocument(ctx context.Context, userID, documentID string) ([]*domain.Quiz, error) {
	return r.selectQuizzes(ctx,
		`SELECT * FROM quizzes WHERE user_id = :user_id AND document_id = :document_id ORDER BY created_at DESC`,
		map[string]interface{}{"user_id": userID, "document_id": documentID})
}

// CompleteQuiz persists a submission. The completed_at IS NULL guard makes
// the completion transition one-shot even under concurrent submissions: the
// loser of the race affects zero rows and gets the already-completed error.
func (r *sqlxQuizRepository) CompleteQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.Score == nil || quiz.CompletedAt == nil {
		return domain.NewInternalError("quiz has no completion state to persist", nil)
	}

	query := `UPDATE quizzes
	          SET user_answers = :user_answers, score = :score, completed_at = :completed_at
	          WHERE id = :id AND completed_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":           quiz.ID,
		"user_answers": models.IntSlice(quiz.UserAnswers),
		"score":        *quiz.Score,
		"completed_at": *quiz.CompletedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to complete quiz: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read completion result: %w", err)
	}
	if affected == 0 {
		return domain.NewQuizCompletedError()
	}
	return nil
}

// DeleteQuiz removes one quiz.
func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	query := `DELETE FROM quizzes WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}

// DeleteQuizzesByDocument removes all of a user's quizzes for a document.
func (r *sqlxQuizRepository) DeleteQuizzesByDocument(ctx context.Context, userID, documentID string) error {
	query := `DELETE FROM quizzes WHERE user_id = :user_id AND document_id = :document_id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"user_id":     userID,
		"document_id": documentID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete document quizzes: %w", err)
	}
	return nil
}
