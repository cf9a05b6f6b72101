package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

var stubVerifier = auth.VerifierFunc(func(_ context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "u1", Role: auth.RoleVet}, nil
})

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(c.UserID + "|" + string(c.Role)))
	})
}

func TestAuthContext_DevHeaders(t *testing.T) {
	h := AuthContext(nil)(claimsEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "vet-1")
	req.Header.Set("X-Debug-Role", "VET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "vet-1|vet", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "someone")
	req.Header.Set("X-Debug-Role", "superuser")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "someone|owner", rec.Body.String(), "unknown role falls back to owner")
}

func TestAuthContext_Verifier(t *testing.T) {
	h := AuthContext(stubVerifier)(claimsEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u1|vet", rec.Body.String())

	// Los headers de debug se ignoran cuando hay verifier.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "intruder")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	h := AuthContext(nil)(RequireAuth(claimsEcho()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "u1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
