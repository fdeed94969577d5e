package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterLoginRefreshRoundTrip(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jane@Example.com", "Jane Roe", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.PasswordHash != "" {
		t.Error("password hash must not leak out of Register")
	}

	tokens, err := svc.Login(ctx, "jane@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("login must issue both tokens")
	}

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("refresh must issue a new access token")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "x", "longenough"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad email err = %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", "x", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short password err = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "a", "password1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "DUP@example.com", "b", "password2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second register err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "jane@example.com", "Jane", "correct-pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "jane@example.com", "wrong-pass"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email err = %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "jane@example.com", "Jane", "correct-pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	tokens, err := svc.Login(ctx, "jane@example.com", "correct-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.Refresh(ctx, tokens.AccessToken); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("refresh with access token err = %v, want rejection", err)
	}
}
