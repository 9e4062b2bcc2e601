package dto

import "encoding/json"

type NotificationResponseDTO struct {
	ID        int             `json:"id"`
	Type      string          `json:"type" example:"diligence_assigned"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt string          `json:"created_at"`
}
