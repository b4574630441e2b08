package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"study-byte/internal/domain"
)

// QuestionSlice stores a quiz's question set as a JSON document in a CLOB
// column.
type QuestionSlice []domain.QuizQuestion

// Value implements the driver.Valuer interface
func (s QuestionSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *QuestionSlice) Scan(value interface{}) error {
	bytesToParse, err := clobBytes(value)
	if err != nil {
		return fmt.Errorf("QuestionSlice Scan: %w", err)
	}
	if bytesToParse == nil {
		*s = QuestionSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// IntSlice stores submitted answer indexes as a JSON array.
type IntSlice []int

// Value implements the driver.Valuer interface
func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *IntSlice) Scan(value interface{}) error {
	bytesToParse, err := clobBytes(value)
	if err != nil {
		return fmt.Errorf("IntSlice Scan: %w", err)
	}
	if bytesToParse == nil {
		*s = IntSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// clobBytes normalizes the driver's CLOB representation. NULL, empty and the
// literal "null" all mean "no data".
func clobBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}

// User row in the USERS table.
type User struct {
	ID           string    `db:"ID"`
	Name         string    `db:"NAME"`
	Email        string    `db:"EMAIL"`
	PasswordHash string    `db:"PASSWORD_HASH"`
	CreatedAt    time.Time `db:"CREATED_AT"`
	UpdatedAt    time.Time `db:"UPDATED_AT"`
}

// Document row in the DOCUMENTS table. Summary and ExtractedText are NULL
// until produced.
type Document struct {
	ID            string         `db:"ID"`
	UserID        string         `db:"USER_ID"`
	Filename      string         `db:"FILENAME"`
	OriginalName  string         `db:"ORIGINAL_NAME"`
	FileSize      int64          `db:"FILE_SIZE"`
	ExtractedText sql.NullString `db:"EXTRACTED_TEXT"`
	Summary       sql.NullString `db:"SUMMARY"`
	UploadDate    time.Time      `db:"UPLOAD_DATE"`
}

// Flashcard row in the FLASHCARDS table.
type Flashcard struct {
	ID         string    `db:"ID"`
	UserID     string    `db:"USER_ID"`
	DocumentID string    `db:"DOCUMENT_ID"`
	Question   string    `db:"QUESTION"`
	Answer     string    `db:"ANSWER"`
	IsFavorite bool      `db:"IS_FAVORITE"`
	CreatedAt  time.Time `db:"CREATED_AT"`
}

// Quiz row in the QUIZZES table. Questions and UserAnswers are JSON CLOBs;
// Score and CompletedAt stay NULL until submission.
type Quiz struct {
	ID             string        `db:"ID"`
	UserID         string        `db:"USER_ID"`
	DocumentID     string        `db:"DOCUMENT_ID"`
	Questions      QuestionSlice `db:"QUESTIONS"`
	UserAnswers    IntSlice      `db:"USER_ANSWERS"`
	Score          sql.NullInt64 `db:"SCORE"`
	TotalQuestions int           `db:"TOTAL_QUESTIONS"`
	CompletedAt    sql.NullTime  `db:"COMPLETED_AT"`
	CreatedAt      time.Time     `db:"CREATED_AT"`
}
