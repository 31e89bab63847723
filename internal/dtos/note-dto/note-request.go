package note_dto

type SaveNoteRequest struct {
	ProjectID int64   `json:"project_id" validate:"required,min=1"`
	Date      string  `json:"date" validate:"required,isoDate"`
	WhatIDid  string  `json:"what_i_did" validate:"required,min=1"`
	Blockers  *string `json:"blockers,omitempty"`
	NextSteps *string `json:"next_steps,omitempty"`
}

type NoteListFilter struct {
	Date      *string `query:"date,omitempty" validate:"omitempty,isoDate"`
	ProjectID *int64  `query:"project_id,omitempty" validate:"omitempty,min=1"`
}

type ParamNoteID struct {
	ID int64 `params:"note_id" validate:"required,min=1"`
}
