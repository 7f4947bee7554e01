package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-contacts-api/internal/application/account"
	"github.com/go-contacts-api/internal/domain"
	"github.com/go-contacts-api/internal/pkg/validate"
	"github.com/go-contacts-api/internal/transport/http/middleware"
)

// UserHandler handles the /api/users endpoints.
type UserHandler struct {
	svc account.Service
}

func NewUserHandler(svc account.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", CodeValidation)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}
	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RegisterEnvelope{
		Success:     true,
		ID:          res.User.UserID,
		Email:       res.User.Email,
		Message:     "Submit the OTP",
		AccessToken: res.AccessToken,
	})
}

func (h *UserHandler) SubmitOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	var req domain.SubmitOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", CodeValidation)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}
	if err := h.svc.SubmitOTP(r.Context(), claims.UserID, req.OTP); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "user verified"})
}

func (h *UserHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	if err := h.svc.SendOTP(r.Context(), claims.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "OTP sent"})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", CodeValidation)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}
	bearer, err := h.svc.Login(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginEnvelope{Success: true, AccessToken: bearer})
}

// Current returns the caller's account record. Credential material
// (password hash, pending OTP) is never serialized.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	u, err := h.svc.Current(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
