package dashboard_handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	dashboard_case "github.com/nuwan-labs/project-buddy/internal/use-cases/dashboard-case"
)

type DashboardHandler struct {
	service dashboard_case.DashboardServiceContract
	i18n    *internal_i18n.I18nService
}

func NewDashboardHandler(db *pgxpool.Pool, rdb *redis.Client, cfg *config.AppConfig, i18n *internal_i18n.I18nService) *DashboardHandler {
	return &DashboardHandler{
		service: dashboard_case.NewDashboardService(db, rdb, cfg),
		i18n:    i18n,
	}
}

func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	resp, err := h.service.GetDashboard(c.Context())
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
