package analysis_dto

type ParamDate struct {
	Date string `params:"date" validate:"required,isoDate"`
}

type RunAnalysisRequest struct {
	Date *string `json:"date,omitempty" validate:"omitempty,isoDate"`
}
