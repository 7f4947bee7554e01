package jwtinfra

import (
	"testing"
	"time"

	"github.com/go-contacts-api/internal/config"
	"github.com/go-contacts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, expiry time.Duration) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{JWTSecret: "test-secret", JWTExpiry: expiry})
	require.NoError(t, err)
	return p
}

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t, time.Hour)

	u := &domain.User{UserID: "u1", Username: "alice", Email: "alice@example.com", Verified: true}
	token, err := p.Sign(u)
	require.NoError(t, err)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.Verified)
}

func TestVerify_ExpiredToken(t *testing.T) {
	p := newTestProvider(t, -time.Minute) // already expired at issue time

	token, err := p.Sign(&domain.User{UserID: "u1"})
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	p := newTestProvider(t, time.Hour)
	token, err := p.Sign(&domain.User{UserID: "u1"})
	require.NoError(t, err)

	other, err := NewProvider(&config.Config{JWTSecret: "a-different-secret", JWTExpiry: time.Hour})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	p := newTestProvider(t, time.Hour)
	_, err := p.Verify("not-a-token")
	assert.Error(t, err)
}
