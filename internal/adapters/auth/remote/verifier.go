package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vet-clinic/internal/platform/httpclient"
	"vet-clinic/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("token rejected")
	ErrUpstream      = errors.New("auth upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del servicio de identidad. Vienen de AUTH_VERIFY_URL / AUTH_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier contra un servicio de identidad HTTP
// que valida el JWT emitido en el login y devuelve user/email/role.
type Verifier struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	return &Verifier{
		client:       c,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}
	if v.apiKey != "" {
		headers[v.apiKeyHeader] = v.apiKey
	}

	var out verifyResponse
	err := v.client.DoJSON(ctx, http.MethodPost, verifyPath, headers, map[string]string{"token": token}, &out)
	if err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) && (herr.StatusCode == http.StatusUnauthorized || herr.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
		Role:   auth.ParseRole(out.Role),
	}, nil
}
