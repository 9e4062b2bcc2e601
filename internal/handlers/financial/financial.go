package financial

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/financialservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/fmarques/corresponde/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=financial.go -destination=financial_mock.go -package=financial

type Service interface {
	GetSummary(ctx context.Context) (*financialservice.Summary, error)
	GetFinancialData(ctx context.Context) ([]financialservice.DiligenceFinance, error)
	GetDiligenceFinance(ctx context.Context, diligenceID, userID int, role string) ([]domain.Payment, []domain.PaymentProof, error)
	SubmitProof(ctx context.Context, diligenceID, uploaderID int, pixKey, proofImage string, amount float64) (*domain.PaymentProof, error)
	VerifyProof(ctx context.Context, proofID int, approved bool, adminID int, reason string) (*domain.PaymentProof, error)
	MarkPaymentPaid(ctx context.Context, paymentID, adminID int) (*domain.Payment, error)
}

type FinancialHandler struct {
	financialService Service
}

func New(financialService Service) *FinancialHandler {
	return &FinancialHandler{
		financialService: financialService,
	}
}

func toPaymentDTO(p *domain.Payment) dto.PaymentResponseDTO {
	resp := dto.PaymentResponseDTO{
		ID:          p.ID,
		DiligenceID: p.DiligenceID,
		Type:        p.Type,
		Amount:      p.Amount,
		Status:      p.Status,
	}
	if p.PaidDate != nil {
		resp.PaidDate = p.PaidDate.Format(time.RFC3339)
	}
	return resp
}

func toProofDTO(p *domain.PaymentProof) dto.PaymentProofResponseDTO {
	return dto.PaymentProofResponseDTO{
		ID:              p.ID,
		DiligenceID:     p.DiligenceID,
		PixKey:          p.PixKey,
		ProofImage:      p.ProofImage,
		Amount:          p.Amount,
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		UploadedByID:    p.UploadedByID,
		VerifiedByID:    p.VerifiedByID,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, financialservice.ErrDiligenceNotFound),
		errors.Is(err, financialservice.ErrPaymentNotFound),
		errors.Is(err, financialservice.ErrProofNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, financialservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, financialservice.ErrProofAlreadyDecided):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, financialservice.ErrPaymentNotPending),
		errors.Is(err, financialservice.ErrRejectReasonRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Summary godoc
//
//	@Summary	Aggregate revenue, cost and profit over completed payments
//	@Tags		Financial
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.FinancialSummaryResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/financial/summary [get]
func (h *FinancialHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.financialService.GetSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FinancialSummaryResponseDTO{
		Revenue:         summary.Revenue,
		Cost:            summary.Cost,
		Profit:          summary.Profit,
		PendingIncoming: summary.PendingIncoming,
		PendingOutgoing: summary.PendingOutgoing,
	})
}

// Data godoc
//
//	@Summary	Per-diligence financial breakdown
//	@Tags		Financial
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.DiligenceFinanceRowDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/financial/data [get]
func (h *FinancialHandler) Data(w http.ResponseWriter, r *http.Request) {
	rows, err := h.financialService.GetFinancialData(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DiligenceFinanceRowDTO, 0, len(rows))
	for _, row := range rows {
		response = append(response, dto.DiligenceFinanceRowDTO{
			DiligenceID: row.DiligenceID,
			Revenue:     row.Revenue,
			Cost:        row.Cost,
			Profit:      row.Profit,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DiligenceFinance godoc
//
//	@Summary	Payments and proofs of one diligence
//	@Tags		Financial
//	@Produce	json
//	@Param		id	path	int	true	"Diligence ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DiligenceFinanceResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Failure	404	{object}	utils.Response	"Diligence not found"
//	@Router		/api/financial/diligence/{id} [get]
func (h *FinancialHandler) DiligenceFinance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	payments, proofs, err := h.financialService.GetDiligenceFinance(r.Context(), id, userID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := dto.DiligenceFinanceResponseDTO{
		Payments: make([]dto.PaymentResponseDTO, 0, len(payments)),
		Proofs:   make([]dto.PaymentProofResponseDTO, 0, len(proofs)),
	}
	for i := range payments {
		response.Payments = append(response.Payments, toPaymentDTO(&payments[i]))
	}
	for i := range proofs {
		response.Proofs = append(response.Proofs, toProofDTO(&proofs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitProof godoc
//
//	@Summary	Submit a PIX payment proof for a diligence
//	@Tags		Financial
//	@Accept		json
//	@Produce	json
//	@Param		diligenceID	path	int								true	"Diligence ID"
//	@Param		request		body	dto.SubmitPaymentProofRequestDTO	true	"Proof"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.PaymentProofResponseDTO
//	@Failure	400	{object}	utils.Response	"Bad input"
//	@Failure	403	{object}	utils.Response	"Not the diligence client"
//	@Failure	404	{object}	utils.Response	"Diligence not found"
//	@Router		/api/financial/payment-proof/{diligenceID} [post]
func (h *FinancialHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	uploaderID := r.Context().Value(auth.UserIDKey).(int)

	diligenceID, err := strconv.Atoi(chi.URLParam(r, "diligenceID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid diligence id")
		return
	}

	var req dto.SubmitPaymentProofRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PixKey == "" || req.ProofImage == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Pix key and proof image are required")
		return
	}
	if !validate.IsPixKey(req.PixKey) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid PIX key")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	proof, err := h.financialService.SubmitProof(r.Context(), diligenceID, uploaderID, req.PixKey, req.ProofImage, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProofDTO(proof))
}

// VerifyProof godoc
//
//	@Summary		Approve or reject a payment proof
//	@Description	Rejection requires a reason. Approval does not settle the payment; it notifies the finance admins instead.
//	@Tags			Financial
//	@Accept			json
//	@Produce		json
//	@Param			proofID	path	int								true	"Payment proof ID"
//	@Param			request	body	dto.VerifyPaymentProofRequestDTO	true	"Decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentProofResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing rejection reason"
//	@Failure		404	{object}	utils.Response	"Proof not found"
//	@Failure		409	{object}	utils.Response	"Proof already decided"
//	@Router			/api/financial/payment-proof/{proofID}/verify [patch]
func (h *FinancialHandler) VerifyProof(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	proofID, err := strconv.Atoi(chi.URLParam(r, "proofID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid proof id")
		return
	}

	var req dto.VerifyPaymentProofRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proof, err := h.financialService.VerifyProof(r.Context(), proofID, req.Approved, adminID, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProofDTO(proof))
}

// MarkPaid godoc
//
//	@Summary	Settle a pending or processing payment
//	@Tags		Financial
//	@Produce	json
//	@Param		id	path	int	true	"Payment ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PaymentResponseDTO
//	@Failure	400	{object}	utils.Response	"Payment is not pending"
//	@Failure	404	{object}	utils.Response	"Payment not found"
//	@Router		/api/financial/payments/{id}/paid [patch]
func (h *FinancialHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := h.financialService.MarkPaymentPaid(r.Context(), paymentID, adminID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}
