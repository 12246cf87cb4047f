package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testJWTSecret = "test-secret"

func signTestToken(t *testing.T, secret string, claims AuthClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

func validTestClaims() AuthClaims {
	return AuthClaims{
		UserID:    "user-1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyValidToken(t *testing.T) {
	verifier := NewAuthVerifier(testJWTSecret)
	token := signTestToken(t, testJWTSecret, validTestClaims())

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	verifier := NewAuthVerifier(testJWTSecret)

	expired := validTestClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	refresh := validTestClaims()
	refresh.TokenType = "refresh"

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not.a.jwt"},
		{name: "wrong secret", token: signTestToken(t, "other-secret", validTestClaims())},
		{name: "expired", token: signTestToken(t, testJWTSecret, expired)},
		{name: "refresh token", token: signTestToken(t, testJWTSecret, refresh)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := verifier.Verify(tt.token); !errors.Is(err, ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestVerifyRejectsEverythingWithoutSecret(t *testing.T) {
	verifier := NewAuthVerifier("")
	token := signTestToken(t, testJWTSecret, validTestClaims())

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
