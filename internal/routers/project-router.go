package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/config"
	project_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/project"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
)

func ProjectRouter(api fiber.Router, db *pgxpool.Pool, cfg *config.AppConfig, i18n *i18n.I18nService) {
	r := api.Group("/projects")
	projectHandler := project_handlers.NewProjectHandler(db, cfg, i18n)

	r.Post("/", projectHandler.CreateProject)
	r.Get("/", projectHandler.ListProjects)
	r.Get("/:project_id", projectHandler.GetProject)
	r.Put("/:project_id", projectHandler.UpdateProject)
	r.Delete("/:project_id", projectHandler.DeleteProject)

	r.Post("/:project_id/activities", projectHandler.CreateActivity)
	r.Get("/:project_id/activities", projectHandler.ListActivities)

	a := api.Group("/activities")
	a.Put("/:activity_id", projectHandler.UpdateActivity)
	a.Delete("/:activity_id", projectHandler.DeleteActivity)
}
