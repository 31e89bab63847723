package worklog_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/config"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	worklog_case "github.com/nuwan-labs/project-buddy/internal/use-cases/worklog-case"
)

type WorkLogHandler struct {
	validator *validator.Validate
	service   worklog_case.WorkLogServiceContract
	i18n      *internal_i18n.I18nService
}

func NewWorkLogHandler(db *pgxpool.Pool, cfg *config.AppConfig, notifier notify.Broadcaster, i18n *internal_i18n.I18nService) *WorkLogHandler {
	validate := validator.New()
	validate.RegisterValidation("isoDatetime", worklog_dto.IsValidISODatetime)
	return &WorkLogHandler{
		validator: validate,
		service:   worklog_case.NewWorkLogService(db, cfg, notifier),
		i18n:      i18n,
	}
}

func (h *WorkLogHandler) CreateWorkLog(c *fiber.Ctx) error {
	var req worklog_dto.CreateWorkLogRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateWorkLog(c.Context(), &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_create_worklog", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *WorkLogHandler) ListWorkLogs(c *fiber.Ctx) error {
	var filter worklog_dto.WorkLogListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListWorkLogs(c.Context(), &filter)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *WorkLogHandler) UpdateWorkLog(c *fiber.Ctx) error {
	logID, err := handlers.GetParamWorkLogID(c, h.validator)
	if err != nil {
		return err
	}

	var req worklog_dto.UpdateWorkLogRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateWorkLog(c.Context(), logID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_worklog", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *WorkLogHandler) DeleteWorkLog(c *fiber.Ctx) error {
	logID, err := handlers.GetParamWorkLogID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteWorkLog(c.Context(), logID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_worklog", nil), struct{}{}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
