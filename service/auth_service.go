package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"linedori-web/models"
	"linedori-web/repository"
)

const minPasswordLength = 6

// AuthService handles registration, login and bearer token checks
// Implements AuthServiceInterface
type AuthService struct {
	users    repository.UserRepositoryInterface
	sessions repository.SessionRepositoryInterface
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates an AuthService issuing sessions valid for ttl
func NewAuthService(users repository.UserRepositoryInterface, sessions repository.SessionRepositoryInterface, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// Register creates a user with the plain user role
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.createUser(ctx, req, models.RoleUser, s.users.Create)
}

// RegisterAdmin creates an admin. The first admin may register freely;
// afterwards caller must be an admin.
func (s *AuthService) RegisterAdmin(ctx context.Context, req models.RegisterRequest, caller *models.User) (*models.User, error) {
	if caller != nil && caller.Role == models.RoleAdmin {
		return s.createUser(ctx, req, models.RoleAdmin, s.users.Create)
	}

	admins, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admins > 0 {
		return nil, adminRequired(caller)
	}

	// The count above can race with another bootstrap; the insert re-checks under a lock
	user, err := s.createUser(ctx, req, models.RoleAdmin, s.users.CreateFirstAdmin)
	if errors.Is(err, repository.ErrAdminExists) {
		return nil, adminRequired(caller)
	}
	return user, err
}

func adminRequired(caller *models.User) error {
	if caller == nil {
		return ErrUnauthorized
	}
	return ErrForbidden
}

func (s *AuthService) createUser(ctx context.Context, req models.RegisterRequest, role string, insert func(context.Context, *models.User) error) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := insert(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("✓ Registered %s user %s", role, user.ID)
	return user, nil
}

// Login checks credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("⚠️  Failed login for user %s", user.ID)
		return nil, ErrUnauthorized
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	log.Printf("✓ User %s logged in", user.ID)
	return &models.LoginResponse{Token: session.Token, User: *user}, nil
}

// Authenticate resolves a bearer token to its user. Expired sessions are removed.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !s.now().Before(session.ExpiresAt) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			log.Printf("⚠️  Warning: failed to delete expired session: %v", err)
		}
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	return user, err
}

// Logout removes a session
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// PurgeExpiredSessions removes sessions past their expiry
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) error {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("🔄 Purged %d expired sessions", n)
	}
	return nil
}
