package live

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) tracker.Update {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var u tracker.Update
	require.NoError(t, json.Unmarshal(data, &u))
	return u
}

func TestBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	all := dial(t, srv, "")
	one := dial(t, srv, "?match=m2")
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(tracker.Update{Sport: history.SportCricket, Kind: tracker.KindMatch, ID: "m1"})
	hub.Broadcast(tracker.Update{Sport: history.SportFootball, Kind: tracker.KindMatch, ID: "m2"})

	assert.Equal(t, "m1", readUpdate(t, all).ID)
	assert.Equal(t, "m2", readUpdate(t, all).ID)

	got := readUpdate(t, one)
	assert.Equal(t, "m2", got.ID, "filtered subscriber only sees its match")
	assert.Equal(t, history.SportFootball, got.Sport)
}

func TestDisconnectRemovesClient(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 5*time.Millisecond)
}
