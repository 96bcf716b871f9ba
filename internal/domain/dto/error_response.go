package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
//
// Fields match the API contract:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: underlying error text, when one is available.
//   - Timestamp: moment the error response was created.
type ErrorResponse struct {
	Message      string    `json:"message" example:"upstream request failed"`
	ErrorDetails string    `json:"error,omitempty" example:"six request failed (503)"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// error-typed plumbing when convenient.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
