package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srvURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(HubOptions{})
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, srv.URL)
	b := dial(t, srv.URL)

	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	payload := map[string]string{"id": "n1", "message": "Appointment status updated for Milo (Jane)."}
	require.NoError(t, hub.Broadcast(context.Background(), "notification", payload))

	for _, c := range []*websocket.Conn{a, b} {
		_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := c.ReadMessage()
		require.NoError(t, err)

		var env struct {
			Event string            `json:"event"`
			Data  map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, "notification", env.Event)
		assert.Equal(t, "n1", env.Data["id"])
	}
}

func TestHub_BroadcastWithoutClientsIsNotAnError(t *testing.T) {
	hub := NewHub(HubOptions{})
	assert.NoError(t, hub.Broadcast(context.Background(), "notification", map[string]string{"id": "n1"}))
}

func TestHub_ClosedRejectsBroadcast(t *testing.T) {
	hub := NewHub(HubOptions{})
	hub.Close()
	assert.ErrorIs(t, hub.Broadcast(context.Background(), "notification", nil), ErrClosed)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := NewHub(HubOptions{})
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	c := dial(t, srv.URL)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	_ = c.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
