package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHub_RegisterUnregister(t *testing.T) {
	hub := NewRealtimeHub()

	// Broadcast to a user with no sessions is a no-op.
	hub.Broadcast(1, map[string]any{"kind": "day.updated"})

	srv, client, serverClient := dialTestClient(t, hub, 1)
	defer srv.Close()
	defer client.Close()

	hub.Broadcast(1, map[string]any{"kind": "day.updated"})
	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(msg), "day.updated")

	hub.Unregister(serverClient)
	hub.Broadcast(1, map[string]any{"kind": "day.updated"})
}

// Keepalive pings and hub broadcasts write the same connection from
// different goroutines; the serialized client writer must keep them
// from colliding (gorilla allows only one concurrent writer).
func TestRealtimeHub_ConcurrentBroadcastAndPing(t *testing.T) {
	hub := NewRealtimeHub()

	srv, client, serverClient := dialTestClient(t, hub, 7)
	defer srv.Close()
	defer client.Close()

	const frames = 200

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < frames; i++ {
			_ = serverClient.Write(websocket.PingMessage, nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < frames; i++ {
			hub.Broadcast(7, map[string]any{"kind": "day.updated", "seq": i})
		}
	}()

	// Control frames are consumed by the reader transparently; every
	// broadcast must arrive intact.
	client.SetReadDeadline(time.Now().Add(10 * time.Second))
	for received := 0; received < frames; received++ {
		_, _, err := client.ReadMessage()
		require.NoError(t, err)
	}

	wg.Wait()
}

// dialTestClient upgrades a real websocket against an httptest server,
// registers the server side with the hub, and returns both ends.
func dialTestClient(t *testing.T, hub *RealtimeHub, userID uint) (*httptest.Server, *websocket.Conn, *WSClient) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: userID, Conn: conn}
		hub.Register(cl)
		registered <- cl

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	select {
	case cl := <-registered:
		return srv, client, cl
	case <-time.After(5 * time.Second):
		t.Fatal("client never registered with hub")
		return nil, nil, nil
	}
}
