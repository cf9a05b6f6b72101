package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id": "u1",
			"email":   "vet@clinic.test",
			"role":    "vet",
		})
	}))
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	c, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u1", Email: "vet@clinic.test", Role: auth.RoleVet}, c)

	_, err = v.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewVerifier_RequiresBaseURL(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
