package dto

type UploadAttachmentRequestDTO struct {
	Name string `json:"name" validate:"required" example:"citacao.pdf"`
	URL  string `json:"url" validate:"required" example:"https://files.example.com/citacao.pdf"`
	Type string `json:"type,omitempty" example:"application/pdf"`
	Size int64  `json:"size,omitempty"`
}

type AttachmentResponseDTO struct {
	ID           int    `json:"id"`
	DiligenceID  int    `json:"diligence_id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Type         string `json:"type,omitempty"`
	Size         int64  `json:"size,omitempty"`
	UploadedByID int    `json:"uploaded_by_id"`
	CreatedAt    string `json:"created_at"`
}
