package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/config"
	worklog_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/worklog"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
)

func WorkLogRouter(api fiber.Router, db *pgxpool.Pool, cfg *config.AppConfig, hub *notify.Hub, i18n *i18n.I18nService) {
	r := api.Group("/logs")
	workLogHandler := worklog_handlers.NewWorkLogHandler(db, cfg, hub, i18n)

	r.Post("/", workLogHandler.CreateWorkLog)
	r.Get("/", workLogHandler.ListWorkLogs)
	r.Put("/:log_id", workLogHandler.UpdateWorkLog)
	r.Delete("/:log_id", workLogHandler.DeleteWorkLog)
}
