package websocket_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"room-sync/domain"
	rsws "room-sync/infrastructure/websocket"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	commands chan domain.Command
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, cmd domain.Command) error {
	select {
	case d.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *recordingDispatcher) next(t *testing.T) domain.Command {
	t.Helper()
	select {
	case cmd := <-d.commands:
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("no command dispatched")
		return nil
	}
}

func startServer(t *testing.T) (*rsws.Hub, *recordingDispatcher, string) {
	t.Helper()
	return startServerWithPing(t, 0)
}

func startServerWithPing(t *testing.T, pingTimeout time.Duration) (*rsws.Hub, *recordingDispatcher, string) {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	hub := rsws.NewHub(log, 16, time.Second, pingTimeout/4)
	dispatcher := &recordingDispatcher{commands: make(chan domain.Command, 32)}
	server := httptest.NewServer(rsws.NewHandler(log, hub, dispatcher, rsws.HandlerConfig{ReadLimit: 1 << 16, PingTimeout: pingTimeout}))
	t.Cleanup(server.Close)
	return hub, dispatcher, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) rsws.Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame rsws.Frame
	require.NoError(t, json.Unmarshal(payload, &frame))
	return frame
}

func Test_Handler_dispatches_connect_with_resume_claim(t *testing.T) {
	req := require.New(t)
	_, dispatcher, url := startServer(t)

	// Given a client reconnecting with its previous identity
	dial(t, url+"?session_id=12&client_id=456")

	// Then the engine receives a connect command carrying the claim
	connect, ok := dispatcher.next(t).(domain.ConnectCommand)
	req.True(ok)
	req.NotEmpty(connect.Connection())
	req.Equal(domain.SessionID(12), connect.SessionID)
	req.Equal(domain.ClientID(456), connect.ClientID)
}

func Test_Handler_decodes_frames_and_skips_malformed_ones(t *testing.T) {
	req := require.New(t)
	_, dispatcher, url := startServer(t)
	conn := dial(t, url)
	connect := dispatcher.next(t)

	// When the client sends garbage followed by a valid join
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`garbage`)))
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"join","data":[12,456]}`)))

	// Then only the join reaches the engine, tagged with the same connection
	join, ok := dispatcher.next(t).(domain.JoinCommand)
	req.True(ok)
	req.Equal(connect.Connection(), join.Connection())
	req.Equal(domain.SessionID(12), join.SessionID)
}

func Test_Handler_reports_client_close_as_disconnect(t *testing.T) {
	req := require.New(t)
	_, dispatcher, url := startServer(t)
	conn := dial(t, url)
	dispatcher.next(t)

	// When the client closes cleanly
	req.NoError(conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	// Then disconnecting then disconnect are dispatched with the client reason
	disconnecting, ok := dispatcher.next(t).(domain.DisconnectingCommand)
	req.True(ok)
	req.Equal(domain.ReasonClientDisconnect, disconnecting.Reason)
	disconnect, ok := dispatcher.next(t).(domain.DisconnectCommand)
	req.True(ok)
	req.Equal(domain.ReasonClientDisconnect, disconnect.Reason)
}

func Test_Handler_pings_keep_idle_clients_alive(t *testing.T) {
	req := require.New(t)
	_, dispatcher, url := startServerWithPing(t, 200*time.Millisecond)
	conn := dial(t, url)
	dispatcher.next(t)

	// Given a client that reads, so it answers pings, but never writes
	pings := make(chan struct{}, 16)
	conn.SetPingHandler(func(data string) error {
		select {
		case pings <- struct{}{}:
		default:
		}
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// When several ping timeouts go by
	time.Sleep(600 * time.Millisecond)

	// Then it was pinged and is still connected
	req.NotEmpty(pings)
	select {
	case cmd := <-dispatcher.commands:
		req.Failf("unexpected command", "%T", cmd)
	default:
	}
}

func Test_Hub_server_disconnect_is_reported_as_such(t *testing.T) {
	req := require.New(t)
	hub, dispatcher, url := startServer(t)
	conn := dial(t, url)
	id := dispatcher.next(t).Connection()

	// When the server drops the connection
	hub.Disconnect(id)

	// Then the client sees a close frame and the engine a server-side reason
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	req.True(websocket.IsCloseError(err, websocket.CloseNormalClosure))
	dispatcher.next(t)
	disconnect, ok := dispatcher.next(t).(domain.DisconnectCommand)
	req.True(ok)
	req.Equal(domain.ReasonServerDisconnect, disconnect.Reason)
	req.Equal(0, hub.Len())
}

func Test_Hub_broadcast_skips_sender_and_other_rooms(t *testing.T) {
	req := require.New(t)
	hub, dispatcher, url := startServer(t)

	// Given three connections, two in session 12 and one in session 13
	a := dial(t, url)
	idA := dispatcher.next(t).Connection()
	b := dial(t, url)
	idB := dispatcher.next(t).Connection()
	c := dial(t, url)
	idC := dispatcher.next(t).Connection()
	req.NoError(hub.JoinRoom(idA, 12))
	req.NoError(hub.JoinRoom(idB, 12))
	req.NoError(hub.JoinRoom(idC, 13))
	req.True(hub.InRoom(idA, 12))
	req.ElementsMatch([]domain.ConnID{idA, idB}, hub.Members(12))

	// When A relays an update to its room
	hub.RelayUpdate(idA, 12, json.RawMessage(`[1,12,456,7,3]`))
	hub.ServerName(idC, "relay-1")

	// Then B receives it and C only gets its direct frame
	frame := readFrame(t, b)
	req.Equal(rsws.EventRelayUpdate, frame.Event)
	req.JSONEq(`[1,12,456,7,3]`, string(frame.Data))
	frame = readFrame(t, c)
	req.Equal(rsws.EventServerName, frame.Event)
	req.JSONEq(`"relay-1"`, string(frame.Data))

	// And A receives nothing
	_ = a.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := a.ReadMessage()
	req.Error(err)
}

func Test_Hub_room_operations_fail_on_unknown_connection(t *testing.T) {
	req := require.New(t)
	hub := rsws.NewHub(slog.New(slog.DiscardHandler), 0, 0, 0)

	req.Error(hub.JoinRoom("ghost", 12))
	req.Error(hub.LeaveRoom("ghost", 12))
	req.False(hub.InRoom("ghost", 12))
	req.False(hub.Unregister("ghost"))
}
