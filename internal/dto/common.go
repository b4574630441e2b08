package dto

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// MessageResponse is a minimal success envelope for delete-style operations.
type MessageResponse struct {
	Message string `json:"message"`
}
