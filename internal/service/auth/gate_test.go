package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"PMTerminal/internal/domain/models"
	xhttp "PMTerminal/pkg/http"
)

func TestTokenFromCookie(t *testing.T) {
	g := NewGate("", "fallback")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "pmt_auth_token", Value: "user-token"})

	for _, policy := range []models.AuthPolicy{models.AuthRequired, models.AuthFallback} {
		tok, err := g.Token(r, policy)
		if err != nil || tok != "user-token" {
			t.Fatalf("policy %s: got %q %v", policy, tok, err)
		}
	}
}

func TestTokenMissingRequired(t *testing.T) {
	g := NewGate("", "fallback")
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := g.Token(r, models.AuthRequired)
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 AppError, got %v", err)
	}
	if appErr.Message != "Authentication required" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestTokenMissingFallback(t *testing.T) {
	g := NewGate("", "fallback")
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	tok, err := g.Token(r, models.AuthFallback)
	if err != nil || tok != "fallback" {
		t.Fatalf("expected fallback token, got %q %v", tok, err)
	}
}

func TestTokenFallbackNotConfigured(t *testing.T) {
	g := NewGate("", "  ")
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := g.Token(r, models.AuthFallback); err == nil {
		t.Fatalf("expected fail closed without fallback token")
	}
	if g.FallbackConfigured() {
		t.Fatalf("blank fallback must not count as configured")
	}
}

func TestEmptyCookieIsMissing(t *testing.T) {
	g := NewGate("", "")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "pmt_auth_token", Value: ""})
	if _, err := g.Token(r, models.AuthRequired); err == nil {
		t.Fatalf("expected empty cookie to be treated as missing")
	}
}
