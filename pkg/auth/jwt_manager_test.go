package auth

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, err := m.Generate("alice")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "alice")
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected iat and exp claims to be set")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Second)

	tok, err := m.Generate("alice")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := m.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTManager("right-secret", time.Hour).Generate("bob")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewJWTManager("wrong-secret", time.Hour).Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager("k", time.Hour).Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, err := m.Generate("alice")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	exp, err := m.Expiry(tok)
	if err != nil {
		t.Fatalf("Expiry error: %v", err)
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")

	tok, err := ExtractTokenFromHeader(r)
	if err != nil {
		t.Fatalf("ExtractTokenFromHeader error: %v", err)
	}
	if tok != "abc.def.ghi" {
		t.Fatalf("token mismatch: got %q", tok)
	}

	r = httptest.NewRequest("GET", "/", nil)
	if _, err := ExtractTokenFromHeader(r); err == nil {
		t.Fatalf("expected error for missing header, got nil")
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	if _, err := ExtractTokenFromHeader(r); err == nil {
		t.Fatalf("expected error for non-bearer header, got nil")
	}
}
