package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resumeiq-backend/internal/shared/auth"
)

// Service contains account and credential logic.
type Service struct {
	Repo Repo
}

// TokenPair is an access/refresh token bundle issued at login.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// Register creates a local account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, name, password string) (User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("%w: valid email required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Provider:     ProviderLocal,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a token pair.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return TokenPair{}, ErrBadCredentials
		}
		return TokenPair{}, err
	}
	if user.PasswordHash == "" {
		// Social accounts have no local password.
		return TokenPair{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, ErrBadCredentials
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: %v", ErrBadCredentials, err)
	}
	user, err := s.Repo.GetByID(ctx, claims.Sub)
	if err != nil {
		if err == ErrNotFound {
			return TokenPair{}, ErrBadCredentials
		}
		return TokenPair{}, err
	}
	return s.issueTokens(user)
}

// GetByID returns a user profile.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// IssueTokens signs a token pair for an already-authenticated user. Used
// by the social login callback.
func (s *Service) IssueTokens(user User) (TokenPair, error) {
	return s.issueTokens(user)
}

func (s *Service) issueTokens(user User) (TokenPair, error) {
	access, err := auth.SignAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := auth.SignRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
