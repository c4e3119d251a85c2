package auth

import (
	"errors"
	"testing"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/models/entities"
)

func testUser() *entities.User {
	return &entities.User{
		ID:       "user-id-1",
		Username: "testuser",
	}
}

func TestParseAccessToken_RoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	initial, err := svc.CreateInitialAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	claims, err := svc.ParseAccessToken(initial)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.UserID != "user-id-1" {
		t.Errorf("expected user id to round-trip, got %s", claims.UserID)
	}
	if claims.Scope != ScopeInitial {
		t.Errorf("expected INITIAL scope, got %s", claims.Scope)
	}

	full, err := svc.CreateFullAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	claims, err = svc.ParseAccessToken(full)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Scope != ScopeFull {
		t.Errorf("expected FULL scope, got %s", claims.Scope)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	signer := NewTokenService([]byte("signer-secret"))
	verifier := NewTokenService([]byte("other-secret"))

	token, err := signer.CreateFullAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = verifier.ParseAccessToken(token)
	if !errors.Is(err, common.ErrAuthentication) {
		t.Errorf("expected authentication error, got %v", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ParseAccessToken(tokenString); !errors.Is(err, common.ErrAuthentication) {
			t.Errorf("expected authentication error for %q, got %v", tokenString, err)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !CheckPassword(hashed, "correct-horse") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hashed, "wrong-horse") {
		t.Error("expected mismatched password to fail")
	}
}
