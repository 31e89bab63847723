package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/queue"
)

// SetupRoutes wires up the API routes.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig, i18n *i18n.I18nService, hub *notify.Hub, taskQueue *queue.TaskQueue) {
	api := app.Group("/api/v1")

	PlanRouter(api, db, hub, i18n)
	ProjectRouter(api, db, cfg, i18n)
	WorkLogRouter(api, db, cfg, hub, i18n)
	NoteRouter(api, db, i18n)
	DashboardRouter(api, db, redis, cfg, i18n)
	AnalysisRouter(api, db, redis, cfg, hub, i18n)
	NotificationRouter(api, hub, taskQueue, i18n)
	WSRouter(app, hub)
	HealthRouter(api, db, redis)
}
