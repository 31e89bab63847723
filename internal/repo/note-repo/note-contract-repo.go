package note_repo

import (
	"context"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type NoteRepoContract interface {
	GetNoteByID(ctx context.Context, noteID int64) (*entity.ProjectDailyNoteEntity, *app_errors.AppError)
	UpsertNote(ctx context.Context, note *entity.ProjectDailyNoteEntity) (*entity.ProjectDailyNoteEntity, *app_errors.AppError)
	ListNotes(ctx context.Context, filter *note_dto.NoteListFilter) ([]entity.ProjectDailyNoteEntity, *app_errors.AppError)
	DeleteNote(ctx context.Context, noteID int64) *app_errors.AppError
}
