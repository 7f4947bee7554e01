package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-contacts-api/internal/domain"
	"github.com/go-contacts-api/internal/pkg/id"
	"github.com/go-contacts-api/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldOTP      = "otp"
	fieldVerified = "verified"
)

// RegisterResult is what a successful registration hands back to the
// transport layer. The OTP is deliberately absent: it travels only by email.
type RegisterResult struct {
	User        *domain.User
	AccessToken string
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error)
	SubmitOTP(ctx context.Context, userID string, code int) error
	SendOTP(ctx context.Context, userID string) error
	Login(ctx context.Context, req domain.LoginRequest) (string, error)
	Current(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type jwtSigner interface {
	Sign(u *domain.User) (string, error)
}

type service struct {
	repo        userStore
	mailer      mailer
	jwtProvider jwtSigner
}

type ServiceDeps struct {
	UserRepo    userStore
	Mailer      mailer
	JWTProvider jwtSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:        deps.UserRepo,
		mailer:      deps.Mailer,
		jwtProvider: deps.JWTProvider,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error) {
	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	// Only a confirmed miss means the email is free. A store failure must
	// not let a possibly duplicate registration through.
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, err := otp.New()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		OTP:          code,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.emailOTP(u.Email, code)
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	bearer, err := s.jwtProvider.Sign(u)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: u, AccessToken: bearer}, nil
}

func (s *service) SubmitOTP(ctx context.Context, userID string, code int) error {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	// u.OTP is 0 once verified, and submitted codes are validated non-zero
	// upstream, so a cleared code never matches.
	if u.OTP == 0 || u.OTP != code {
		return fmt.Errorf("wrong OTP: %w", domain.ErrInvalidOTP)
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{
		fieldOTP:      0,
		fieldVerified: true,
	})
}

func (s *service) SendOTP(ctx context.Context, userID string) error {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	code, err := otp.New()
	if err != nil {
		return err
	}
	s.emailOTP(u.Email, code)
	// Re-sending invalidates the previous verification until the new code
	// is submitted.
	return s.repo.Update(ctx, userID, map[string]interface{}{
		fieldOTP:      code,
		fieldVerified: false,
	})
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("email or password is not valid: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}
	if !u.Verified {
		return "", fmt.Errorf("please verify your account: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", fmt.Errorf("email or password is not valid: %w", domain.ErrUnauthorized)
	}
	return s.jwtProvider.Sign(u)
}

func (s *service) Current(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.Verified {
		return nil, fmt.Errorf("please verify your account: %w", domain.ErrUnauthorized)
	}
	return u, nil
}

// emailOTP dispatches the code. Delivery failure does not abort the calling
// flow — the user can request a re-send.
func (s *service) emailOTP(email string, code int) {
	body := fmt.Sprintf("Your verification OTP is %d", code)
	if err := s.mailer.SendEmail(email, "Verification OTP", body); err != nil {
		slog.Warn("failed to send OTP email", "email", email, "err", err)
	}
}
