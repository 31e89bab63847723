package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nuwan-labs/project-buddy/internal/dtos"
	analysis_dto "github.com/nuwan-labs/project-buddy/internal/dtos/analysis-dto"
	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

// CreateResponse builds the standard WebResponse envelope.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, ok := c.Locals("lang").(string)
	if !ok || lang == "" {
		lang = "en"
	}
	return lang
}

func GetParamPlanID(c *fiber.Ctx, v *validator.Validate) (int64, *app_errors.AppError) {
	var param plan_dto.ParamPlanID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamProjectID(c *fiber.Ctx, v *validator.Validate) (int64, *app_errors.AppError) {
	var param project_dto.ParamProjectID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamActivityID(c *fiber.Ctx, v *validator.Validate) (int64, *app_errors.AppError) {
	var param project_dto.ParamActivityID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamWorkLogID(c *fiber.Ctx, v *validator.Validate) (int64, *app_errors.AppError) {
	var param worklog_dto.ParamWorkLogID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamNoteID(c *fiber.Ctx, v *validator.Validate) (int64, *app_errors.AppError) {
	var param note_dto.ParamNoteID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamDate(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param analysis_dto.ParamDate
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.Date, nil
}
