package mux

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsMessage struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Context string `json:"context"`
}

func dialTable(t *testing.T, ts *testServer, id, playerID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/table/" + id + "/ws?playerId=" + playerID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

// readUntil reads messages until one with key arrives
func readUntil(t *testing.T, conn *websocket.Conn, key string) wsMessage {
	t.Helper()

	for {
		var msg wsMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Key == key {
			return msg
		}
	}
}

func TestGetTableUUIDWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t, nil)
	id := createTable(t, ts)

	conn := dialTable(t, ts, id, "p1")

	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	a.Equal("view", msg.Key)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"action": "join", "context": "abc"}))
	msg = readUntil(t, conn, "status")
	a.Equal("OK", msg.Value)
	a.Equal("abc", msg.Context)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"action": "shuffle"}))
	msg = readUntil(t, conn, "error")
	a.Equal("unknown action: shuffle", msg.Value)

	d, ok := ts.pitBoss.Dealer(id)
	require.True(t, ok)
	seated, err := d.Seated(cbg)
	require.NoError(t, err)
	a.Equal([]string{"p1"}, seated)
}

func TestGetTableUUIDWS_Spectator(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t, nil)
	id := createTable(t, ts)

	conn := dialTable(t, ts, id, "")
	readUntil(t, conn, "view")

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"action": "join"}))
	msg := readUntil(t, conn, "error")
	a.Equal("player is not at this table", msg.Value)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"action": "view"}))
	readUntil(t, conn, "view")
	msg = readUntil(t, conn, "status")
	a.Equal("OK", msg.Value)
}
