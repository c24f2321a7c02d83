package websocket

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"room-sync/contract"
	"room-sync/domain"
	"strconv"
	"time"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

const dispatchTimeout = 5 * time.Second

type HandlerConfig struct {
	ReadLimit   int64
	PingTimeout time.Duration
}

// Handler upgrades HTTP requests and feeds decoded frames to the engine.
type Handler struct {
	log        *slog.Logger
	hub        *Hub
	dispatcher contract.IDispatcher
	upgrader   ws.Upgrader
	config     HandlerConfig
}

func NewHandler(log *slog.Logger, hub *Hub, dispatcher contract.IDispatcher, config HandlerConfig) *Handler {
	return &Handler{
		log:        log,
		hub:        hub,
		dispatcher: dispatcher,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		config: config,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	id := domain.ConnID(uuid.NewString())
	h.hub.Register(id, conn)
	// Commands must reach the engine even after the request context ends.
	ctx := context.WithoutCancel(r.Context())

	connect := domain.ConnectCommand{Origin: domain.Origin{Conn: id}}
	connect.SessionID, connect.ClientID = resumeClaim(r)
	h.dispatch(ctx, connect)

	if h.config.ReadLimit > 0 {
		conn.SetReadLimit(h.config.ReadLimit)
	}
	if h.config.PingTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(h.config.PingTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(h.config.PingTimeout))
		})
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			reason := closeReason(err)
			if !h.hub.Unregister(id) {
				reason = domain.ReasonServerDisconnect
			}
			h.log.Debug("Connection closed", "conn_id", id, "reason", reason, "error", err)
			h.dispatch(ctx, domain.DisconnectingCommand{Origin: domain.Origin{Conn: id}, Reason: reason})
			h.dispatch(ctx, domain.DisconnectCommand{Origin: domain.Origin{Conn: id}, Reason: reason})
			return
		}
		if h.config.PingTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(h.config.PingTimeout))
		}

		cmd, err := Decode(id, payload)
		if err != nil {
			h.log.Warn("Discarding malformed message", "conn_id", id, "error", err)
			continue
		}
		h.dispatch(ctx, cmd)
	}
}

func (h *Handler) dispatch(ctx context.Context, cmd domain.Command) {
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		h.log.Error("Unable to dispatch command", "conn_id", cmd.Connection(), "error", err)
	}
}

// resumeClaim reads the session and client a reconnecting client says it
// belonged to. Missing or malformed values read as zero.
func resumeClaim(r *http.Request) (domain.SessionID, domain.ClientID) {
	q := r.URL.Query()
	sid, _ := strconv.ParseInt(q.Get("session_id"), 10, 64)
	cid, _ := strconv.ParseInt(q.Get("client_id"), 10, 64)
	return domain.SessionID(sid), domain.ClientID(cid)
}

func closeReason(err error) string {
	var closeErr *ws.CloseError
	if stdErrors.As(err, &closeErr) {
		switch closeErr.Code {
		case ws.CloseNormalClosure, ws.CloseGoingAway:
			return domain.ReasonClientDisconnect
		}
		return domain.ReasonTransportClose
	}
	var netErr interface{ Timeout() bool }
	if stdErrors.As(err, &netErr) && netErr.Timeout() {
		return domain.ReasonPingTimeout
	}
	return domain.ReasonTransportError
}
