package note_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/handlers"
	internal_i18n "github.com/nuwan-labs/project-buddy/internal/i18n"
	note_case "github.com/nuwan-labs/project-buddy/internal/use-cases/note-case"
)

type NoteHandler struct {
	validator *validator.Validate
	service   note_case.NoteServiceContract
	i18n      *internal_i18n.I18nService
}

func NewNoteHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *NoteHandler {
	validate := validator.New()
	validate.RegisterValidation("isoDate", plan_dto.IsValidISODate)
	return &NoteHandler{
		validator: validate,
		service:   note_case.NewNoteService(db),
		i18n:      i18n,
	}
}

func (h *NoteHandler) SaveNote(c *fiber.Ctx) error {
	var req note_dto.SaveNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.SaveNote(c.Context(), &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_save_note", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	var filter note_dto.NoteListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListNotes(c.Context(), &filter)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	noteID, err := handlers.GetParamNoteID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetNote(c.Context(), noteID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.ok", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	noteID, err := handlers.GetParamNoteID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteNote(c.Context(), noteID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_note", nil), struct{}{}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
