package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	plan_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/plan"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
)

func PlanRouter(api fiber.Router, db *pgxpool.Pool, hub *notify.Hub, i18n *i18n.I18nService) {
	r := api.Group("/plans")
	planHandler := plan_handlers.NewPlanHandler(db, hub, i18n)

	r.Post("/", planHandler.CreatePlan)
	r.Get("/", planHandler.ListPlans)
	r.Get("/active", planHandler.GetActivePlan)
	r.Get("/:plan_id", planHandler.GetPlan)
	r.Put("/:plan_id", planHandler.UpdatePlan)
	r.Delete("/:plan_id", planHandler.DeletePlan)
	r.Put("/:plan_id/activities", planHandler.SelectSprintActivities)
	r.Get("/:plan_id/activities", planHandler.ListSprintSelections)
}
