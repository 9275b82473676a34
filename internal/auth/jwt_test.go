package auth

import (
	"testing"
	"time"

	"github.com/votepress/backend/internal/config"
)

func TestInitRequiresSecret(t *testing.T) {
	if err := Init(config.Config{JWTSecret: ""}); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	if err := Init(config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	if err := Init(config.Config{JWTSecret: "test-secret", TokenTTL: -time.Minute}); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := VerifyToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	if err := Init(config.Config{JWTSecret: "secret-one", TokenTTL: time.Hour}); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := Init(config.Config{JWTSecret: "secret-two", TokenTTL: time.Hour}); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	if _, err := VerifyToken(token); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	if err := Init(config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := VerifyToken(token); err == nil {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}
