package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers unknown email AND wrong password.
	// Callers must surface them identically (anti-enumeration).
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

const bcryptCost = 10

type AuthService struct {
	users  repository.UserRepository
	issuer *auth.Issuer
	logger *zap.Logger
}

// NewAuthService wires the credential store and the token issuer. The
// issuer may be nil when no signing secret is configured; login then
// fails with a server error rather than issuing unsigned tokens.
func NewAuthService(users repository.UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{
		users:  users,
		issuer: issuer,
		logger: zap.L().With(zap.String("service", "auth")),
	}
}

// Login checks the credentials and returns a signed identity token.
// Both lookup and hash comparison block: the bcrypt comparison is
// deliberately slow and is always awaited before responding.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if s.issuer == nil {
		return "", auth.ErrNoSecret
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("credential lookup: %w", err)
	}
	if user.Password == "" {
		// Account without a password hash (e.g. OAuth-origin record).
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID.Hex(), user.Name, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("userId", user.ID.Hex()))
	return token, nil
}

// Signup registers a new credential. It does not log the new user in.
func (s *AuthService) Signup(ctx context.Context, name, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("credential lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Email:         email,
		Password:      string(hash),
		Name:          name,
		EmailVerified: &now,
		Image:         fmt.Sprintf("https://placehold.co/100x100.png?text=%c", firstRune(name)),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User signed up", zap.String("userId", created.ID.Hex()))
	return nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
