package realtime_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch/internal/adapters/out/realtime"
	"dispatch/internal/core/domain/model/notification"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*realtime.Hub, string) {
	t.Helper()
	hub := realtime.NewHub(realtime.Config{SendQueue: 8}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	e.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func subscribe(t *testing.T, conn *websocket.Conn, role string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "subscribe", "role": role}))
}

func waitSubscribers(t *testing.T, hub *realtime.Hub, role notification.Role, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Subscribers(role) == n }, 2*time.Second, 10*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// expectSilence leaves conn with an expired read deadline; gorilla/websocket
// treats that as permanent, so conn cannot be read again afterwards.
func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}

func TestHub_BroadcastReachesOnlyTheRole(t *testing.T) {
	hub, url := newTestHub(t)
	riderConn := dial(t, url)
	customerConn := dial(t, url)
	subscribe(t, riderConn, "rider")
	subscribe(t, customerConn, "customer")
	waitSubscribers(t, hub, notification.Rider, 1)
	waitSubscribers(t, hub, notification.Customer, 1)

	hub.Broadcast(notification.Rider, notification.NewEvent(notification.OrderAssigned,
		"order", map[string]any{"id": "O1"},
		"riderId", "R1",
	))

	got := readEvent(t, riderConn)
	assert.Equal(t, "order_assigned", got["type"])
	assert.Equal(t, "R1", got["riderId"])
	expectSilence(t, customerConn)
}

func TestHub_IgnoresUnknownMessages(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	subscribe(t, conn, "superuser")
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "hello", "role": "admin"}))
	subscribe(t, conn, "admin")

	waitSubscribers(t, hub, notification.Admin, 1)
	assert.Equal(t, 0, hub.Subscribers(notification.Rider))
	assert.Equal(t, 0, hub.Subscribers(notification.Customer))
}

func TestHub_ConnectionMayJoinSeveralRoles(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	subscribe(t, conn, "admin")
	subscribe(t, conn, "rider")
	subscribe(t, conn, "admin")
	waitSubscribers(t, hub, notification.Admin, 1)
	waitSubscribers(t, hub, notification.Rider, 1)

	hub.Broadcast(notification.Admin, notification.NewEvent(notification.NewOrder))
	hub.Broadcast(notification.Rider, notification.NewEvent(notification.BatchCreated))

	assert.Equal(t, "new_order", readEvent(t, conn)["type"])
	assert.Equal(t, "batch_created", readEvent(t, conn)["type"])
}

func TestHub_DisconnectLeavesAllChannels(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	subscribe(t, conn, "admin")
	subscribe(t, conn, "customer")
	waitSubscribers(t, hub, notification.Admin, 1)
	waitSubscribers(t, hub, notification.Customer, 1)

	require.NoError(t, conn.Close())

	waitSubscribers(t, hub, notification.Admin, 0)
	waitSubscribers(t, hub, notification.Customer, 0)
	hub.Broadcast(notification.Admin, notification.NewEvent(notification.NewOrder))
}

func TestHub_BroadcastWithoutSubscribersIsHarmless(t *testing.T) {
	hub, _ := newTestHub(t)

	assert.NotPanics(t, func() {
		hub.Broadcast(notification.Customer, notification.NewEvent(notification.OrderUpdated))
		hub.Broadcast(notification.Role("nobody"), notification.NewEvent(notification.OrderUpdated))
	})
}

func TestHub_RefusesConnectionsAfterClose(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	subscribe(t, conn, "admin")
	waitSubscribers(t, hub, notification.Admin, 1)

	hub.Close()

	waitSubscribers(t, hub, notification.Admin, 0)
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
