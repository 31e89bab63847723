package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	note_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/note"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
)

func NoteRouter(api fiber.Router, db *pgxpool.Pool, i18n *i18n.I18nService) {
	r := api.Group("/notes")
	noteHandler := note_handlers.NewNoteHandler(db, i18n)

	r.Post("/", noteHandler.SaveNote)
	r.Get("/", noteHandler.ListNotes)
	r.Get("/:note_id", noteHandler.GetNote)
	r.Delete("/:note_id", noteHandler.DeleteNote)
}
