package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nuwan-labs/project-buddy/internal/config"
	dashboard_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/dashboard"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
)

func DashboardRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig, i18n *i18n.I18nService) {
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db, redis, cfg, i18n)

	api.Get("/dashboard", dashboardHandler.GetDashboard)
}
