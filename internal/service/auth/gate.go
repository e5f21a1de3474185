package auth

import (
	"net/http"
	"strings"

	"PMTerminal/internal/domain/models"
	xhttp "PMTerminal/pkg/http"
)

// Gate resolves the bearer token for a request from its cookies.
type Gate struct {
	tokenCookie   string
	fallbackToken string
}

// NewGate creates a gate. An empty fallbackToken makes AuthFallback
// endpoints fail closed like AuthRequired ones.
func NewGate(tokenCookie, fallbackToken string) *Gate {
	if tokenCookie == "" {
		tokenCookie = "pmt_auth_token"
	}
	return &Gate{
		tokenCookie:   tokenCookie,
		fallbackToken: strings.TrimSpace(fallbackToken),
	}
}

// Token returns the session token, or the fallback token when policy allows.
// It returns an AuthenticationRequired AppError otherwise.
func (g *Gate) Token(r *http.Request, policy models.AuthPolicy) (string, error) {
	if ck, err := r.Cookie(g.tokenCookie); err == nil {
		if v := strings.TrimSpace(ck.Value); v != "" {
			return v, nil
		}
	}
	if policy == models.AuthFallback && g.fallbackToken != "" {
		return g.fallbackToken, nil
	}
	return "", xhttp.AuthenticationRequired()
}

// FallbackConfigured reports whether a fallback token is available.
func (g *Gate) FallbackConfigured() bool {
	return g.fallbackToken != ""
}
