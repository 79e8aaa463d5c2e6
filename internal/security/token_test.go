package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	token, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	subject, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", subject)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Millisecond)

	token, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}

func TestVerifyRejectsGarbageInput(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed input, got %v", err)
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", 0)

	token, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := manager.Verify(token); err != nil {
		t.Fatalf("expected token issued with default ttl to verify, got %v", err)
	}
}
