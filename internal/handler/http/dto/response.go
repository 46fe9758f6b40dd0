package dto

import "github.com/cleanwave/cleanwave/internal/domain/entity"

// SessionResponse wraps the current session user.
type SessionResponse struct {
	User entity.User `json:"user"`
}

// MutationResponse reports whether a catalog mutation changed the
// collection. Refused joins, repeated leaves and unknown ids come back with
// Updated false and no error, matching the store's silent no-op policy.
type MutationResponse struct {
	Updated bool `json:"updated"`
}

// QuizScoreResponse is the result of scoring a quiz submission.
type QuizScoreResponse struct {
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
