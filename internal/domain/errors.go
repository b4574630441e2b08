package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// AI pipeline errors
	ErrEndpointUnavailable ErrorCode = "AI_ENDPOINT_UNAVAILABLE"
	ErrModelNotFound       ErrorCode = "AI_MODEL_NOT_FOUND"
	ErrExtractionFailed    ErrorCode = "AI_EXTRACTION_FAILED"

	// Quiz errors
	ErrQuizCompleted ErrorCode = "QUIZ_ALREADY_COMPLETED"
)

// DomainError represents a domain-specific error. Code is the stable value
// callers branch on; Hint carries the user-actionable remediation; Err holds
// the internal cause (logged, never serialized); Context carries structured
// diagnostics such as the offending element index.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Hint    string                 `json:"hint,omitempty"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Hint    string `json:"hint,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Hint:    e.Hint,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsDomainError unwraps err into a *DomainError if there is one in the chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code ErrorCode) bool {
	if de, ok := AsDomainError(err); ok {
		return de.Code == code
	}
	return false
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewEndpointUnavailableError covers connection-refused, timeouts and any
// other transport failure reaching the inference endpoint.
func NewEndpointUnavailableError(err error) *DomainError {
	return &DomainError{
		Code:    ErrEndpointUnavailable,
		Message: "AI service is unavailable",
		Hint:    "Ollama is not running. Start it with: ollama serve",
		Err:     err,
	}
}

// NewModelNotFoundError means the endpoint answered but the configured model
// is not pulled/loaded.
func NewModelNotFoundError(model string, err error) *DomainError {
	return &DomainError{
		Code:    ErrModelNotFound,
		Message: fmt.Sprintf("Model %q not found", model),
		Hint:    fmt.Sprintf("Pull it with: ollama pull %s", model),
		Err:     err,
	}
}

// NewExtractionError means the model output could not be parsed into the
// required structured shape. index < 0 means no specific element is at fault.
func NewExtractionError(reason string, index int, err error) *DomainError {
	de := &DomainError{
		Code:    ErrExtractionFailed,
		Message: reason,
		Err:     err,
	}
	if index >= 0 {
		de.Context = map[string]interface{}{"index": index}
	}
	return de
}

// NewGenerationFailedError wraps an extraction failure with the generic
// retry-suggesting message that is safe to surface to end users. The internal
// cause and structured context (offending index) ride along for logging and
// diagnostics.
func NewGenerationFailedError(what string, err error) *DomainError {
	de := &DomainError{
		Code:    ErrExtractionFailed,
		Message: fmt.Sprintf("Failed to generate %s. Please try again.", what),
		Err:     err,
	}
	if cause, ok := AsDomainError(err); ok {
		de.Context = cause.Context
	}
	return de
}

func NewQuizCompletedError() *DomainError {
	return NewError(ErrQuizCompleted, "Quiz already completed", nil)
}
