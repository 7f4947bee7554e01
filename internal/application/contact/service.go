package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-contacts-api/internal/domain"
	"github.com/go-contacts-api/internal/pkg/id"
)

const (
	fieldName  = "name"
	fieldPhone = "phone"
)

type Service interface {
	Get(ctx context.Context, userID string) (*domain.Contact, error)
	Create(ctx context.Context, userID string, req domain.ContactRequest) (*domain.Contact, error)
	Update(ctx context.Context, userID string, req domain.ContactRequest) error
	Delete(ctx context.Context, userID string) error
}

type contactStore interface {
	Get(ctx context.Context, userID string) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	Delete(ctx context.Context, userID string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo  contactStore
	users userStore
}

func NewService(repo contactStore, users userStore) Service {
	return &service{repo: repo, users: users}
}

// requireVerified re-reads the owner and rejects unverified accounts. The
// flag is always read fresh from the store, never trusted from the token.
func (s *service) requireVerified(ctx context.Context, userID string) error {
	u, err := s.users.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("please verify your account: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return err
	}
	if !u.Verified {
		return fmt.Errorf("please verify your account: %w", domain.ErrUnauthorized)
	}
	return nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Contact, error) {
	if err := s.requireVerified(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID string, req domain.ContactRequest) (*domain.Contact, error) {
	if err := s.requireVerified(ctx, userID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &domain.Contact{
		UserID:    userID,
		ContactID: id.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, userID string, req domain.ContactRequest) error {
	if err := s.requireVerified(ctx, userID); err != nil {
		return err
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{
		fieldName:  req.Name,
		fieldPhone: req.Phone,
	})
}

func (s *service) Delete(ctx context.Context, userID string) error {
	if err := s.requireVerified(ctx, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID)
}
