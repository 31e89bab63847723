package routers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	ws_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/ws"
	"github.com/nuwan-labs/project-buddy/internal/notify"
)

// WSRouter registers the notification stream. The endpoint sits outside
// /api/v1 so the frontend connects to a stable path.
func WSRouter(app *fiber.App, hub *notify.Hub) {
	wsHandler := ws_handlers.NewWSHandler(hub)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/notifications", websocket.New(wsHandler.Serve()))
}
