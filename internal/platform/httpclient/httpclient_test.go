package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTripAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["token"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", 0)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-42")
	var out map[string]string
	err = c.DoJSON(ctx, http.MethodPost, "v1/echo", map[string]string{"X-Api-Key": "secret"}, map[string]string{"token": "abc"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "abc", out["echo"])
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, 0)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusForbidden, herr.StatusCode)
	assert.Equal(t, "nope", herr.Body)
}

func TestResolve(t *testing.T) {
	_, err := NewWithBaseURL("not a url", 0)
	assert.Error(t, err)

	c := New(0)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	_, err = c.resolve("/relative")
	assert.Error(t, err)

	got, err := c.resolve("https://id.example.com/v1")
	require.NoError(t, err)
	assert.Equal(t, "https://id.example.com/v1", got)
}
