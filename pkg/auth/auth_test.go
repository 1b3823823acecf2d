package auth

import (
	"context"
	"errors"
	"testing"

	"noticias-service/pkg/models"
	"noticias-service/pkg/storage"
)

type mapUsers map[string]string // username -> plaintext password

func (m mapUsers) ByUsername(_ context.Context, username string) (*models.Usuario, error) {
	pw, ok := m[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &models.Usuario{Username: username, PasswordHash: HashPassword(pw)}, nil
}

func TestHashPassword(t *testing.T) {
	// Known SHA-256 digest of "secret"
	const want = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"
	if got := HashPassword("secret"); got != want {
		t.Errorf("HashPassword(secret) = %s, want %s", got, want)
	}
	if HashPassword("secret") != HashPassword("secret") {
		t.Error("digest must be deterministic")
	}
}

func TestValidateCredentials(t *testing.T) {
	a := New("test-secret", mapUsers{"alice": "secret"})
	ctx := context.Background()

	if err := a.ValidateCredentials(ctx, "alice", "secret"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if err := a.ValidateCredentials(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if err := a.ValidateCredentials(ctx, "bob", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-secret", mapUsers{})

	token, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username claim: got %q", claims.Username)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	a := New("test-secret", mapUsers{})
	b := New("other-secret", mapUsers{})

	token, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := b.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	a := New("test-secret", mapUsers{})
	if _, err := a.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
