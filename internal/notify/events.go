package notify

import "github.com/goccy/go-json"

// Event is the tagged union pushed to every connected client, e.g.
//
//	{"type":"activity_logged","data":{...}}
//	{"type":"summary_ready","data":{"date":"2026-02-24"}}
//	{"type":"notification","action":"SHOW_ACTIVITY_POPUP","message":"..."}
type Event struct {
	Type    EventType      `json:"type"`
	Action  string         `json:"action,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

type EventType string

const (
	EventActivityLogged EventType = "activity_logged"
	EventSummaryReady   EventType = "summary_ready"
	EventPlanUpdated    EventType = "plan_updated"
	EventNotification   EventType = "notification"
)

const (
	ActionShowActivityPopup   = "SHOW_ACTIVITY_POPUP"
	ActionShowDailyNotePrompt = "SHOW_DAILY_NOTE_PROMPT"
)

// Broadcaster is the one-way surface both sides of the context boundary
// implement: the in-process Hub on the API side, and the redis-backed
// bridge Publisher on the scheduling side. Delivery is best effort and
// never returns an error to the caller.
type Broadcaster interface {
	Broadcast(event Event)
}

func NewActivityLoggedEvent(data map[string]any) Event {
	return Event{Type: EventActivityLogged, Data: data}
}

func NewSummaryReadyEvent(date string) Event {
	return Event{Type: EventSummaryReady, Data: map[string]any{"date": date}}
}

func NewPlanUpdatedEvent(planID int64) Event {
	return Event{Type: EventPlanUpdated, Data: map[string]any{"plan_id": planID}}
}

func NewActivityPopupEvent() Event {
	return Event{
		Type:    EventNotification,
		Action:  ActionShowActivityPopup,
		Message: "What are you working on right now?",
	}
}

func NewDailyNotePromptEvent(date string) Event {
	return Event{
		Type:    EventNotification,
		Action:  ActionShowDailyNotePrompt,
		Message: "Time to write today's project notes.",
		Data:    map[string]any{"date": date},
	}
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEvent(payload []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(payload, &e)
	return e, err
}
