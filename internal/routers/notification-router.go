package routers

import (
	"github.com/gofiber/fiber/v2"

	notification_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/notification"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/queue"
)

func NotificationRouter(api fiber.Router, hub *notify.Hub, taskQueue *queue.TaskQueue, i18n *i18n.I18nService) {
	r := api.Group("/notifications")
	notificationHandler := notification_handlers.NewNotificationHandler(hub, taskQueue, i18n)

	r.Post("/popup", notificationHandler.BroadcastPopup)
	r.Post("/popup/schedule", notificationHandler.SchedulePopup)
}
