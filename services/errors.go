package services

import "net/http"

// AppError is the error taxonomy surfaced to the HTTP layer. Every
// precondition failure aborts the whole operation; nothing is retried or
// partially applied.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NotFound: a referenced decision, assessment or meta conclusion id is unknown.
func NotFound(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "not_found", Message: msg}
}

// InvalidState: the operation is not permitted in the current lifecycle state.
func InvalidState(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "invalid_state", Message: msg}
}

// Forbidden: the operation is blocked by an ownership or gating rule.
func Forbidden(msg string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "forbidden", Message: msg}
}
