package project_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/config"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	project_case "github.com/nuwan-labs/project-buddy/internal/use-cases/project-case"
)

type ProjectHandler struct {
	validator *validator.Validate
	service   project_case.ProjectServiceContract
	i18n      *internal_i18n.I18nService
}

func NewProjectHandler(db *pgxpool.Pool, cfg *config.AppConfig, i18n *internal_i18n.I18nService) *ProjectHandler {
	validate := validator.New()
	validate.RegisterValidation("projectStatus", project_dto.IsValidProjectStatus)
	validate.RegisterValidation("activityStatus", project_dto.IsValidActivityStatus)
	return &ProjectHandler{
		validator: validate,
		service:   project_case.NewProjectService(db, cfg),
		i18n:      i18n,
	}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req project_dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateProject(c.Context(), &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_create_project", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetProject(c.Context(), projectID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	var filter project_dto.ProjectListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListProjects(c.Context(), &filter)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	var req project_dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateProject(c.Context(), projectID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_project", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Context(), projectID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_project", nil), struct{}{}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) CreateActivity(c *fiber.Ctx) error {
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	var req project_dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateActivity(c.Context(), projectID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_create_activity", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *ProjectHandler) ListActivities(c *fiber.Ctx) error {
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ListActivities(c.Context(), projectID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) UpdateActivity(c *fiber.Ctx) error {
	activityID, err := handlers.GetParamActivityID(c, h.validator)
	if err != nil {
		return err
	}

	var req project_dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateActivity(c.Context(), activityID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_activity", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) DeleteActivity(c *fiber.Ctx) error {
	activityID, err := handlers.GetParamActivityID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteActivity(c.Context(), activityID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_activity", nil), struct{}{}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
