package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocCoversAppointmentRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	routes := []struct{ path, method string }{
		{"/appointments", "get"},
		{"/appointments", "post"},
		{"/appointments/conflicts", "get"},
		{"/appointments/summary", "get"},
		{"/appointments/{id}", "get"},
		{"/appointments/{id}", "patch"},
		{"/appointments/{id}", "delete"},
		{"/appointments/{id}/cancel", "patch"},
		{"/appointments/{id}/complete", "patch"},
		{"/appointments/{id}/status", "patch"},
		{"/history", "get"},
		{"/notifications", "get"},
		{"/notifications/{id}/read", "patch"},
	}
	for _, r := range routes {
		ops, ok := doc.Paths[r.path]
		if !assert.True(t, ok, "missing path %s", r.path) {
			continue
		}
		assert.Contains(t, ops, r.method, "%s %s", r.method, r.path)
	}
}
