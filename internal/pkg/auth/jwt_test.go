package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(ttl time.Duration) *TokenService {
	return NewTokenService(TokenConfig{
		SecretKey:   "test-secret",
		TokenTTL:    ttl,
		TokenIssuer: "coursemart-test",
	})
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestService(time.Minute)

	token, err := svc.Issue("student@example.com", "student")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Email != "student@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Role != "student" {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
	if claims.Issuer != "coursemart-test" {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Issue("student@example.com", "student")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := newTestService(time.Minute).Issue("student@example.com", "student")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	other := NewTokenService(TokenConfig{SecretKey: "different-secret", TokenTTL: time.Minute})
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	if _, err := newTestService(time.Minute).Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	if _, err := newTestService(time.Minute).Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
