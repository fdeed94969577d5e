package auth

import (
	"testing"
	"time"

	"resumeiq-backend/internal/users"
)

func TestStateStoreConsumeOnce(t *testing.T) {
	store := newStateStore()
	store.put("abc", time.Now().Add(time.Minute))

	if !store.consume("abc") {
		t.Fatal("first consume must succeed")
	}
	if store.consume("abc") {
		t.Fatal("second consume must fail")
	}
}

func TestStateStoreExpired(t *testing.T) {
	store := newStateStore()
	store.put("old", time.Now().Add(-time.Second))

	if store.consume("old") {
		t.Fatal("expired state must be rejected")
	}
}

func TestAppendTokens(t *testing.T) {
	got, err := appendTokens("https://app.example.com/auth/done?src=google", users.TokenPair{
		AccessToken:  "acc",
		RefreshToken: "ref",
	})
	if err != nil {
		t.Fatalf("appendTokens: %v", err)
	}
	want := "https://app.example.com/auth/done?access=acc&refresh=ref&src=google"
	if got != want {
		t.Fatalf("url = %q, want %q", got, want)
	}
}

func TestAppendTokensEmptyURL(t *testing.T) {
	if _, err := appendTokens("", users.TokenPair{}); err == nil {
		t.Fatal("expected error for empty redirect url")
	}
}
