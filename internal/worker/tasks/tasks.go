package worker_task

const TaskActivityPopup = "default:activity_popup"

const TaskDailyNotePrompt = "default:daily_note_prompt"

const TaskDailyAnalysis = "low:daily_analysis"

const TaskOneShotPopup = "default:one_shot_popup"

// OneShotPopupPayload carries a user-scheduled reminder popup. Message may
// be empty, in which case the standard popup text is shown.
type OneShotPopupPayload struct {
	Message string `json:"message"`
}

// DailyAnalysisPayload optionally pins the analysis to a date. The recurring
// job leaves it empty and the handler resolves "today" at run time.
type DailyAnalysisPayload struct {
	Date string `json:"date,omitempty"`
}
