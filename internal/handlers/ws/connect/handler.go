package connect

import (
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gofrs/uuid/v5"

	"dispatch/internal/realtime/registry"
	"dispatch/pkg/logger"
)

// Handler upgrades a client to WebSocket, admits it into the registry,
// flushes whatever queued up while the user was offline, then reads
// until the peer goes away. Every inbound frame counts as a heartbeat;
// the payload does not matter, this socket is server-to-client.
type Handler struct {
	log           handlerLogger
	authenticator Authenticator
	registry      ConnRegistry
	flusher       QueueFlusher
}

func New(log handlerLogger, authenticator Authenticator, connRegistry ConnRegistry, flusher QueueFlusher) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		authenticator: authenticator,
		registry:      connRegistry,
		flusher:       flusher,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, err := h.authenticator.Authenticate(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	socket, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket accept failed")
		return
	}

	connID, err := uuid.NewV4()
	if err != nil {
		_ = socket.Close(websocket.StatusInternalError, "connection id")
		return
	}

	conn := &registry.Conn{
		ID:      connID.String(),
		UserID:  principal.UserID,
		Tenant:  principal.Tenant,
		AppType: principal.AppType,
		Session: &wsSession{conn: socket},
	}

	if err := h.registry.Register(r.Context(), conn); err != nil {
		if errors.Is(err, registry.ErrTooManyConnections) {
			_ = socket.Close(websocket.StatusPolicyViolation, "too many connections")
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("failed to register connection")
		_ = socket.Close(websocket.StatusInternalError, "registration failed")
		return
	}
	defer h.registry.Unregister(r.Context(), conn.ID)

	connLog := h.log.With(
		logger.NewField("conn_id", conn.ID),
		logger.NewField("user_id", principal.UserID),
		logger.NewField("app_type", principal.AppType.String()),
	)
	connLog.Info("websocket connected")

	flushed, err := h.flusher.FlushQueued(r.Context(), principal.UserID, principal.AppType)
	if err != nil {
		connLog.Warn("failed to flush offline queue",
			logger.NewField("error", err))
	} else if flushed > 0 {
		connLog.Info("flushed offline queue",
			logger.NewField("messages", flushed))
	}

	for {
		if _, _, err := socket.Read(r.Context()); err != nil {
			connLog.Info("websocket closed",
				logger.NewField("reason", err))
			return
		}
		h.registry.Touch(r.Context(), conn.ID)
	}
}
