package dto

type CreateDiligenceRequestDTO struct {
	Title              string  `json:"title" validate:"required"`
	Description        string  `json:"description,omitempty"`
	Type               string  `json:"type,omitempty" example:"court_hearing"`
	Priority           string  `json:"priority,omitempty" example:"normal"`
	Value              float64 `json:"value" validate:"required" example:"100"`
	CorrespondentValue float64 `json:"correspondent_value,omitempty" example:"70"`
	Deadline           string  `json:"deadline,omitempty" example:"2025-01-15T17:00:00Z"`
	ClientID           int     `json:"client_id,omitempty"`
	CorrespondentID    *int    `json:"correspondent_id,omitempty"`
	City               string  `json:"city,omitempty"`
	State              string  `json:"state,omitempty" example:"SP"`
}

type UpdateDiligenceRequestDTO struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Deadline    *string  `json:"deadline,omitempty"`
}

type DiligenceResponseDTO struct {
	ID                 int     `json:"id"`
	Protocol           string  `json:"protocol"`
	Title              string  `json:"title"`
	Description        string  `json:"description,omitempty"`
	Type               string  `json:"type,omitempty"`
	Status             string  `json:"status" example:"pending"`
	Priority           string  `json:"priority"`
	Value              float64 `json:"value"`
	CorrespondentValue float64 `json:"correspondent_value"`
	Deadline           string  `json:"deadline,omitempty"`
	ClientID           int     `json:"client_id"`
	CorrespondentID    *int    `json:"correspondent_id,omitempty"`
	City               string  `json:"city,omitempty"`
	State              string  `json:"state,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type AssignDiligenceRequestDTO struct {
	CorrespondentID int `json:"correspondent_id" validate:"required"`
}

type CancelDiligenceRequestDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type DisputeDiligenceRequestDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"in_progress"`
	Reason string `json:"reason,omitempty"`
}

type RevertStatusRequestDTO struct {
	Reason string `json:"reason,omitempty"`
}

type StatusHistoryResponseDTO struct {
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	UserID         int    `json:"user_id"`
	Reason         string `json:"reason,omitempty"`
	CreatedAt      string `json:"created_at"`
}
