package dto

// ErrorResponse is the wire shape for every failed request: a non-2xx status
// with a single error message. The admin client string-matches the
// "Unauthorized." message to trigger its login redirect, so that exact text
// is part of the contract.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageUnauthorized is returned for every guarded action without a valid
// admin session.
const MessageUnauthorized = "Unauthorized."

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
