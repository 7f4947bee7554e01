package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-contacts-api/internal/domain"
)

// Stable machine-readable error codes. Clients dispatch on these, never on
// the human message text.
const (
	CodeValidation   = "validation_error"
	CodeConflict     = "conflict"
	CodeUnauthorized = "unauthorized"
	CodeInvalidOTP   = "invalid_otp"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
)

var errInvalidBody = errors.New("invalid request body")

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// RegisterEnvelope wraps a successful registration.
type RegisterEnvelope struct {
	Success     bool   `json:"success"`
	ID          string `json:"_id"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// LoginEnvelope wraps a successful login.
type LoginEnvelope struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

// ContactEnvelope wraps contact reads and creates.
type ContactEnvelope struct {
	Success bool            `json:"success"`
	Contact *domain.Contact `json:"contact"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, Code: code})
}

// writeDomainError maps a service error onto the flat 400 + code contract.
// Only the auth gate returns 401; flow failures are uniformly 400.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error(), errorCode(err))
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return CodeValidation
	case errors.Is(err, domain.ErrConflict):
		return CodeConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, domain.ErrInvalidOTP):
		return CodeInvalidOTP
	case errors.Is(err, domain.ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
