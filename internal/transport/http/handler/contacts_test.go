package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-contacts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContactSvc struct{ mock.Mock }

func (m *mockContactSvc) Get(ctx context.Context, userID string) (*domain.Contact, error) {
	args := m.Called(ctx, userID)
	if c, _ := args.Get(0).(*domain.Contact); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockContactSvc) Create(ctx context.Context, userID string, req domain.ContactRequest) (*domain.Contact, error) {
	args := m.Called(ctx, userID, req)
	if c, _ := args.Get(0).(*domain.Contact); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockContactSvc) Update(ctx context.Context, userID string, req domain.ContactRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}
func (m *mockContactSvc) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func TestContactGet_NoToken(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewContactHandler(&mockContactSvc{})
	r := httptest.NewRequest(http.MethodGet, "/api/contacts/", nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Get, rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestContactGet_UnverifiedOwner(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Get", mock.Anything, "u1").Return(nil, domain.ErrUnauthorized)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodGet, "/api/contacts/", &domain.User{UserID: "u1"}, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Get, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeUnauthorized, decodeEnvelope(t, rr)["code"])
}

func TestContactGet_NotFound(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Get", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodGet, "/api/contacts/", &domain.User{UserID: "u1"}, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Get, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeNotFound, decodeEnvelope(t, rr)["code"])
}

func TestContactGet_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Get", mock.Anything, "u1").Return(&domain.Contact{UserID: "u1", Name: "A", Phone: "123"}, nil)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodGet, "/api/contacts/", &domain.User{UserID: "u1"}, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Get, rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)

	var env ContactEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.Equal(t, "A", env.Contact.Name)
	assert.Equal(t, "123", env.Contact.Phone)
}

func TestContactCreate_MissingFields(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewContactHandler(&mockContactSvc{})
	r := bearerReq(t, p, http.MethodPost, "/api/contacts/", &domain.User{UserID: "u1"}, []byte(`{"name":"A"}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Create, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeValidation, decodeEnvelope(t, rr)["code"])
}

func TestContactCreate_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Create", mock.Anything, "u1", domain.ContactRequest{Name: "A", Phone: "123"}).
		Return(&domain.Contact{UserID: "u1", ContactID: "c1", Name: "A", Phone: "123"}, nil)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodPost, "/api/contacts/", &domain.User{UserID: "u1"}, []byte(`{"name":"A","phone":"123"}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Create, rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)

	var env ContactEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.Equal(t, "c1", env.Contact.ContactID)
	svc.AssertExpectations(t)
}

func TestContactCreate_SecondCreate_Conflict(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrConflict)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodPost, "/api/contacts/", &domain.User{UserID: "u1"}, []byte(`{"name":"A","phone":"123"}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Create, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeConflict, decodeEnvelope(t, rr)["code"])
}

func TestContactUpdate_NotFound(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Update", mock.Anything, "u1", mock.Anything).Return(domain.ErrNotFound)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodPut, "/api/contacts/", &domain.User{UserID: "u1"}, []byte(`{"name":"A","phone":"999"}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Update, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeNotFound, decodeEnvelope(t, rr)["code"])
}

func TestContactUpdate_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Update", mock.Anything, "u1", domain.ContactRequest{Name: "A", Phone: "999"}).Return(nil)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodPut, "/api/contacts/", &domain.User{UserID: "u1"}, []byte(`{"name":"A","phone":"999"}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Update, rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "contact updated", decodeEnvelope(t, rr)["message"])
	svc.AssertExpectations(t)
}

func TestContactDelete_NotFound(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Delete", mock.Anything, "u1").Return(domain.ErrNotFound)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodDelete, "/api/contacts/", &domain.User{UserID: "u1"}, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Delete, rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeNotFound, decodeEnvelope(t, rr)["code"])
}

func TestContactDelete_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockContactSvc{}
	svc.On("Delete", mock.Anything, "u1").Return(nil)
	h := NewContactHandler(svc)
	r := bearerReq(t, p, http.MethodDelete, "/api/contacts/", &domain.User{UserID: "u1"}, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, h.Delete, rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "contact deleted", decodeEnvelope(t, rr)["message"])
}
