package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// User-facing result messages, kept verbatim from the product copy.
const (
	msgLoginOK        = "Login successful! Welcome back."
	msgLoginFailed    = "Invalid email or password. Please try again."
	msgRegisterOK     = "Registration successful! Welcome to DocSpot."
	msgDuplicateEmail = "An account with this email already exists."
)

type Service struct {
	registry repository.CredentialRegistry
	sessions repository.SessionRepository
}

func NewService(registry repository.CredentialRegistry, sessions repository.SessionRepository) *Service {
	return &Service{
		registry: registry,
		sessions: sessions,
	}
}

// Login matches the credentials against the registry and, on success,
// writes the password-stripped user as the session. The failure message
// never distinguishes an unknown email from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string, role model.Role) (*model.AuthResult, error) {
	user, err := s.registry.FindMatch(ctx, email, password, role)
	if err != nil {
		return nil, fmt.Errorf("failed to match credentials: %w", err)
	}
	if user == nil {
		return &model.AuthResult{Success: false, Message: msgLoginFailed}, ErrInvalidCredentials
	}

	session := user.WithoutPassword()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}

	return &model.AuthResult{Success: true, Message: msgLoginOK, User: &session}, nil
}

// Register appends a new user to the registry and logs them in through
// the same session-write path as Login. The duplicate check compares
// emails byte-for-byte across all roles.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error) {
	existing, err := s.registry.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check registry: %w", err)
	}
	if existing != nil {
		return &model.AuthResult{Success: false, Message: msgDuplicateEmail}, ErrDuplicateEmail
	}

	user := model.User{
		ID:          model.NewID(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		// Doctors register pre-approved; the admin review queue covers
		// externally submitted applications only.
		Approved: true,
	}

	if err := s.registry.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to append to registry: %w", err)
	}

	session := user.WithoutPassword()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}

	return &model.AuthResult{Success: true, Message: msgRegisterOK, User: &session}, nil
}

// Logout clears the session unconditionally. Logging out without a
// session is not an error.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the session user, or nil when anonymous.
func (s *Service) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.sessions.Current(ctx)
}
