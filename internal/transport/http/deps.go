package http

import (
	"context"

	"github.com/go-contacts-api/internal/domain"
	jwtinfra "github.com/go-contacts-api/internal/infrastructure/jwt"
	"github.com/go-contacts-api/internal/infrastructure/smtp"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// ContactRepository is the minimal interface the router requires from a contact store.
type ContactRepository interface {
	Get(ctx context.Context, userID string) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	Delete(ctx context.Context, userID string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserRepository
	ContactRepo ContactRepository
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
