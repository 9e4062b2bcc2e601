package dto

type PaymentResponseDTO struct {
	ID          int     `json:"id"`
	DiligenceID int     `json:"diligence_id"`
	Type        string  `json:"type" example:"client_payment"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status" example:"pending"`
	PaidDate    string  `json:"paid_date,omitempty"`
}

type SubmitPaymentProofRequestDTO struct {
	PixKey     string  `json:"pix_key" validate:"required"`
	ProofImage string  `json:"proof_image" validate:"required" example:"https://files.example.com/proof.png"`
	Amount     float64 `json:"amount" validate:"required"`
}

type PaymentProofResponseDTO struct {
	ID              int     `json:"id"`
	DiligenceID     int     `json:"diligence_id"`
	PixKey          string  `json:"pix_key"`
	ProofImage      string  `json:"proof_image"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status" example:"pending_verification"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	UploadedByID    int     `json:"uploaded_by_id"`
	VerifiedByID    *int    `json:"verified_by_id,omitempty"`
}

type VerifyPaymentProofRequestDTO struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

type FinancialSummaryResponseDTO struct {
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
	PendingIncoming int     `json:"pending_incoming"`
	PendingOutgoing int     `json:"pending_outgoing"`
}

type DiligenceFinanceRowDTO struct {
	DiligenceID int     `json:"diligence_id"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Profit      float64 `json:"profit"`
}

type DiligenceFinanceResponseDTO struct {
	Payments []PaymentResponseDTO      `json:"payments"`
	Proofs   []PaymentProofResponseDTO `json:"proofs"`
}
