package notify_dto

// BroadcastPopupRequest pushes an activity popup to connected clients
// immediately. Message is optional; empty falls back to the standard text.
type BroadcastPopupRequest struct {
	Message string `json:"message" validate:"omitempty,max=500"`
}

// SchedulePopupRequest books a one-shot reminder popup for a future time.
type SchedulePopupRequest struct {
	At      string `json:"at" validate:"required,isoDatetime"`
	Message string `json:"message" validate:"omitempty,max=500"`
}
