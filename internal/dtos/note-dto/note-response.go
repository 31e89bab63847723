package note_dto

import (
	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type NoteResponse struct {
	Note entity.ProjectDailyNoteEntity `json:"note"`
}

type NoteListResponse struct {
	Notes []entity.ProjectDailyNoteEntity `json:"notes"`
}
