package notification_handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	notify_dto "github.com/nuwan-labs/project-buddy/internal/dtos/notify-dto"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/queue"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

type NotificationHandler struct {
	validator *validator.Validate
	hub       *notify.Hub
	queue     *queue.TaskQueue
	i18n      *internal_i18n.I18nService
}

func NewNotificationHandler(hub *notify.Hub, taskQueue *queue.TaskQueue, i18n *internal_i18n.I18nService) *NotificationHandler {
	validate := validator.New()
	validate.RegisterValidation("isoDatetime", worklog_dto.IsValidISODatetime)
	return &NotificationHandler{
		validator: validate,
		hub:       hub,
		queue:     taskQueue,
		i18n:      i18n,
	}
}

// BroadcastPopup pushes an activity popup to every connected client right
// now, bypassing the recurring schedule.
func (h *NotificationHandler) BroadcastPopup(c *fiber.Ctx) error {
	var req notify_dto.BroadcastPopupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
		}

		if err := h.validator.Struct(req); err != nil {
			return app_errors.NewValidationError(app_errors.ParseValidationError(err))
		}
	}

	event := notify.NewActivityPopupEvent()
	if req.Message != "" {
		event.Message = req.Message
	}
	h.hub.Broadcast(event)

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_broadcast_popup", nil), fiber.Map{"subscribers": h.hub.Count()}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// SchedulePopup books a one-shot reminder through the task queue. The worker
// delivers it even when it comes up after the requested time has passed.
func (h *NotificationHandler) SchedulePopup(c *fiber.Ctx) error {
	var req notify_dto.SchedulePopupRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	at, parseErr := time.Parse(time.RFC3339, req.At)
	if parseErr != nil {
		at, parseErr = time.ParseInLocation("2006-01-02T15:04:05", req.At, time.Local)
		if parseErr != nil {
			return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", parseErr)
		}
	}

	payload := &worker_task.OneShotPopupPayload{Message: req.Message}
	if err := h.queue.EnqueueOneShotPopup(payload, at); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_schedule_popup", nil), fiber.Map{"at": at}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusAccepted).JSON(webResp)
}
