package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{
		UserID:     uuid.New(),
		Email:      "owner@example.com",
		IsAdmin:    true,
		IsBusiness: true,
	}

	token, err := GenerateToken(testSecret, claims, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parsed, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}

	if parsed != claims {
		t.Fatalf("claims mismatch: got %+v, want %+v", parsed, claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, Claims{UserID: uuid.New()}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, Claims{UserID: uuid.New()}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
