package plan_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	plan_case "github.com/nuwan-labs/project-buddy/internal/use-cases/plan-case"
)

type PlanHandler struct {
	validator *validator.Validate
	service   plan_case.PlanServiceContract
	i18n      *internal_i18n.I18nService
}

func NewPlanHandler(db *pgxpool.Pool, notifier notify.Broadcaster, i18n *internal_i18n.I18nService) *PlanHandler {
	validate := validator.New()
	validate.RegisterValidation("planStatus", plan_dto.IsValidPlanStatus)
	validate.RegisterValidation("isoDate", plan_dto.IsValidISODate)
	return &PlanHandler{
		validator: validate,
		service:   plan_case.NewPlanService(db, notifier),
		i18n:      i18n,
	}
}

func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req plan_dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreatePlan(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_plan", nil), resp, reqID)
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	planID, err := handlers.GetParamPlanID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetPlan(c.Context(), planID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) GetActivePlan(c *fiber.Ctx) error {
	plan, err := h.service.GetActivePlan(c.Context())
	if err != nil {
		return err
	}

	resp := plan_dto.ToPlanResponse(plan)
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	var filter plan_dto.PlanListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListPlans(c.Context(), &filter)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	planID, err := handlers.GetParamPlanID(c, h.validator)
	if err != nil {
		return err
	}

	var req plan_dto.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdatePlan(c.Context(), planID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_plan", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	planID, err := handlers.GetParamPlanID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeletePlan(c.Context(), planID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_plan", nil), struct{}{}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) SelectSprintActivities(c *fiber.Ctx) error {
	planID, err := handlers.GetParamPlanID(c, h.validator)
	if err != nil {
		return err
	}

	var req plan_dto.SelectActivitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.SelectSprintActivities(c.Context(), planID, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_plan", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *PlanHandler) ListSprintSelections(c *fiber.Ctx) error {
	planID, err := handlers.GetParamPlanID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ListSprintSelections(c.Context(), planID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
