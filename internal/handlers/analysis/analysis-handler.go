package analysis_handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/config"
	analysis_dto "github.com/nuwan-labs/project-buddy/internal/dtos/analysis-dto"
	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
	analysis_case "github.com/nuwan-labs/project-buddy/internal/use-cases/analysis-case"
)

type AnalysisHandler struct {
	validator *validator.Validate
	service   analysis_case.AnalysisServiceContract
	notifier  notify.Broadcaster
	i18n      *internal_i18n.I18nService
	location  *time.Location
}

func NewAnalysisHandler(db *pgxpool.Pool, cfg *config.AppConfig, client ollama.Client, notifier notify.Broadcaster, i18n *internal_i18n.I18nService) *AnalysisHandler {
	validate := validator.New()
	validate.RegisterValidation("isoDate", plan_dto.IsValidISODate)

	loc := time.Local
	if tz := cfg.SCHEDULER.Timezone; tz != "" && tz != "Local" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}

	return &AnalysisHandler{
		validator: validate,
		service:   analysis_case.NewAnalysisService(db, cfg, client),
		notifier:  notifier,
		i18n:      i18n,
		location:  loc,
	}
}

// RunAnalysis triggers an on-demand analysis run. Without a date in the body
// the run covers today. A successful run announces summary_ready the same
// way the nightly job does.
func (h *AnalysisHandler) RunAnalysis(c *fiber.Ctx) error {
	var req analysis_dto.RunAnalysisRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
		}

		if err := h.validator.Struct(req); err != nil {
			return app_errors.NewValidationError(app_errors.ParseValidationError(err))
		}
	}

	date := time.Now().In(h.location).Format("2006-01-02")
	if req.Date != nil && *req.Date != "" {
		date = *req.Date
	}

	summary, err := h.service.AnalyzeDate(c.Context(), date)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(notify.NewSummaryReadyEvent(date))

	resp := analysis_dto.ToSummaryResponse(summary)
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_run_analysis", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AnalysisHandler) GetSummary(c *fiber.Ctx) error {
	date, err := handlers.GetParamDate(c, h.validator)
	if err != nil {
		return err
	}

	summary, err := h.service.GetSummaryByDate(c.Context(), date)
	if err != nil {
		return err
	}

	resp := analysis_dto.ToSummaryResponse(summary)
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AnalysisHandler) ListSummaries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	summaries, err := h.service.ListSummaries(c.Context(), limit)
	if err != nil {
		return err
	}

	resp := make([]analysis_dto.SummaryResponse, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, analysis_dto.ToSummaryResponse(&summaries[i]))
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// OllamaStatus reports backend reachability without ever failing the
// request; an unreachable model shows up in the payload, not as an error.
func (h *AnalysisHandler) OllamaStatus(c *fiber.Ctx) error {
	status := h.service.OllamaStatus(c.Context())

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), status, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
