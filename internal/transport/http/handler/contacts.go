package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-contacts-api/internal/application/contact"
	"github.com/go-contacts-api/internal/domain"
	"github.com/go-contacts-api/internal/pkg/validate"
	"github.com/go-contacts-api/internal/transport/http/middleware"
)

// ContactHandler handles the /api/contacts endpoints. All operations are
// scoped to the authenticated caller.
type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler { return &ContactHandler{svc: svc} }

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	c, err := h.svc.Get(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ContactEnvelope{Success: true, Contact: c})
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	req, err := decodeContactRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}
	c, err := h.svc.Create(r.Context(), claims.UserID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ContactEnvelope{Success: true, Contact: c})
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	req, err := decodeContactRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}
	if err := h.svc.Update(r.Context(), claims.UserID, req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "contact updated"})
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", CodeUnauthorized)
		return
	}
	if err := h.svc.Delete(r.Context(), claims.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "contact deleted"})
}

func decodeContactRequest(r *http.Request) (domain.ContactRequest, error) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errInvalidBody
	}
	if err := validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}
