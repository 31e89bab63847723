package ws_handlers

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/notify"
)

const pingInterval = 30 * time.Second

type WSHandler struct {
	hub *notify.Hub
}

func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve upgrades the connection and streams hub events until the client
// goes away. The read side is drained only to detect the close; clients
// never send payloads on this socket.
func (h *WSHandler) Serve() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		sub := h.hub.Subscribe()
		defer h.hub.Unsubscribe(sub)

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case payload := <-sub.Ch:
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					log.Warn().Err(err).Str("subscription", sub.ID.String()).Msg("ws write failed")
					return
				}
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-sub.Done():
				return
			case <-closed:
				return
			}
		}
	}
}
