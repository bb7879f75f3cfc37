package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return NewAuthService("admin", string(hash), NewTokenManager("test-key", time.Minute))
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "admin", "secret", nil},
		{"wrong password", "admin", "nope", ErrInvalidCredentials},
		{"wrong username", "root", "secret", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				sub, err := svc.Tokens().ParseToken(token)
				if err != nil {
					t.Fatalf("issued token did not parse: %v", err)
				}
				if sub != "admin" {
					t.Errorf("expected subject admin, got %q", sub)
				}
			}
		})
	}
}

func TestParseToken_Rejects(t *testing.T) {
	m := NewTokenManager("test-key", time.Minute)
	other := NewTokenManager("other-key", time.Minute)

	foreign, err := other.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokenManager("test-key", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := expired.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	for name, tok := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      stale,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := m.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestUsernameContext(t *testing.T) {
	ctx := context.Background()
	if got := UsernameFromContext(ctx); got != "" {
		t.Errorf("expected empty username, got %q", got)
	}
	if got := UsernameFromContext(WithUsername(ctx, "admin")); got != "admin" {
		t.Errorf("expected admin, got %q", got)
	}
}
