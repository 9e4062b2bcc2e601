package financialservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/fmarques/corresponde/internal/service/authservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=financialservice.go -destination=financialservice_mock.go -package=financialservice

const (
	PaymentTypeClient        = "client_payment"
	PaymentTypeCorrespondent = "correspondent_payment"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusCancelled  = "cancelled"
)

const (
	ProofStatusPendingVerification = "pending_verification"
	ProofStatusVerified            = "verified"
	ProofStatusRejected            = "rejected"
)

var (
	ErrDiligenceNotFound    = errors.New("diligence not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrProofNotFound        = errors.New("payment proof not found")
	ErrProofAlreadyDecided  = errors.New("payment proof already verified")
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrForbidden            = errors.New("operation not allowed for this user")
	ErrRejectReasonRequired = errors.New("rejection reason is required")
)

type PaymentRepo interface {
	SavePayment(ctx context.Context, p *domain.Payment) error
	FindPaymentByID(ctx context.Context, id int) (*domain.Payment, error)
	FindPaymentsByDiligenceID(ctx context.Context, diligenceID int) ([]domain.Payment, error)
	FindAllPayments(ctx context.Context) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, p *domain.Payment) error
	DeletePaymentsByDiligenceID(ctx context.Context, diligenceID int) error
	SaveProof(ctx context.Context, p *domain.PaymentProof) error
	FindProofByID(ctx context.Context, id int) (*domain.PaymentProof, error)
	FindProofsByDiligenceID(ctx context.Context, diligenceID int) ([]domain.PaymentProof, error)
	UpdateProof(ctx context.Context, p *domain.PaymentProof) error
	DeleteProofsByDiligenceID(ctx context.Context, diligenceID int) error
}

type DiligenceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Diligence, error)
}

type HistoryRepo interface {
	Save(ctx context.Context, h *domain.StatusHistory) error
}

type UserRepo interface {
	FindAll(ctx context.Context, role, status string) ([]domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) error
}

type Service struct {
	repo          PaymentRepo
	diligenceRepo DiligenceRepo
	historyRepo   HistoryRepo
	userRepo      UserRepo
	notifier      Notifier
	txManager     pg.TXManager
}

func New(repo PaymentRepo, diligenceRepo DiligenceRepo, historyRepo HistoryRepo, userRepo UserRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:          repo,
		diligenceRepo: diligenceRepo,
		historyRepo:   historyRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		txManager:     txManager,
	}
}

// CreateForDiligence writes the ledger rows for a new diligence: the client
// charge always, the correspondent payout only when one is assigned. Runs
// inside the caller's transaction when there is one.
func (s *Service) CreateForDiligence(ctx context.Context, d *domain.Diligence) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		clientPayment := &domain.Payment{
			DiligenceID: d.ID,
			Type:        PaymentTypeClient,
			Amount:      d.Value,
			Status:      PaymentStatusPending,
		}
		if err := s.repo.SavePayment(ctx, clientPayment); err != nil {
			return err
		}

		if d.CorrespondentID == nil {
			return nil
		}
		correspondentPayment := &domain.Payment{
			DiligenceID: d.ID,
			Type:        PaymentTypeCorrespondent,
			Amount:      d.CorrespondentValue,
			Status:      PaymentStatusPending,
		}
		return s.repo.SavePayment(ctx, correspondentPayment)
	})
}

// DeleteForDiligence removes the ledger rows and proofs of a diligence that is
// being deleted. Only pending diligences are deletable, so nothing settled is
// ever lost here.
func (s *Service) DeleteForDiligence(ctx context.Context, diligenceID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteProofsByDiligenceID(ctx, diligenceID); err != nil {
			return err
		}
		return s.repo.DeletePaymentsByDiligenceID(ctx, diligenceID)
	})
}

type Summary struct {
	Revenue         float64
	Cost            float64
	Profit          float64
	PendingIncoming int
	PendingOutgoing int
}

// GetSummary aggregates completed payments into revenue, cost and profit.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	payments, err := s.repo.FindAllPayments(ctx)
	if err != nil {
		zap.L().Error("can't get payments for summary", zap.Error(err))
		return nil, err
	}

	summary := &Summary{}
	for _, p := range payments {
		switch p.Type {
		case PaymentTypeClient:
			if p.Status == PaymentStatusCompleted {
				summary.Revenue += p.Amount
			} else if p.Status == PaymentStatusPending {
				summary.PendingIncoming++
			}
		case PaymentTypeCorrespondent:
			if p.Status == PaymentStatusCompleted {
				summary.Cost += p.Amount
			} else if p.Status == PaymentStatusPending {
				summary.PendingOutgoing++
			}
		}
	}
	summary.Profit = summary.Revenue - summary.Cost
	return summary, nil
}

type DiligenceFinance struct {
	DiligenceID int
	Revenue     float64
	Cost        float64
	Profit      float64
}

// GetFinancialData derives one revenue/cost/profit row per diligence from its
// ledger rows, regardless of payment status.
func (s *Service) GetFinancialData(ctx context.Context) ([]DiligenceFinance, error) {
	payments, err := s.repo.FindAllPayments(ctx)
	if err != nil {
		return nil, err
	}

	byDiligence := make(map[int]*DiligenceFinance)
	order := make([]int, 0)
	for _, p := range payments {
		row, ok := byDiligence[p.DiligenceID]
		if !ok {
			row = &DiligenceFinance{DiligenceID: p.DiligenceID}
			byDiligence[p.DiligenceID] = row
			order = append(order, p.DiligenceID)
		}
		switch p.Type {
		case PaymentTypeClient:
			row.Revenue += p.Amount
		case PaymentTypeCorrespondent:
			row.Cost += p.Amount
		}
	}

	rows := make([]DiligenceFinance, 0, len(order))
	for _, id := range order {
		row := byDiligence[id]
		row.Profit = row.Revenue - row.Cost
		rows = append(rows, *row)
	}
	return rows, nil
}

func (s *Service) GetDiligenceFinance(ctx context.Context, diligenceID, userID int, role string) ([]domain.Payment, []domain.PaymentProof, error) {
	diligence, err := s.diligenceRepo.FindByID(ctx, diligenceID)
	if err != nil {
		return nil, nil, err
	}
	if diligence == nil {
		return nil, nil, ErrDiligenceNotFound
	}
	if !canView(diligence, userID, role) {
		return nil, nil, ErrForbidden
	}

	payments, err := s.repo.FindPaymentsByDiligenceID(ctx, diligenceID)
	if err != nil {
		return nil, nil, err
	}
	proofs, err := s.repo.FindProofsByDiligenceID(ctx, diligenceID)
	if err != nil {
		return nil, nil, err
	}
	return payments, proofs, nil
}

func canView(d *domain.Diligence, userID int, role string) bool {
	if role == auth.RoleAdmin {
		return true
	}
	if d.ClientID == userID {
		return true
	}
	return d.CorrespondentID != nil && *d.CorrespondentID == userID
}

func (s *Service) SubmitProof(ctx context.Context, diligenceID, uploaderID int, pixKey, proofImage string, amount float64) (*domain.PaymentProof, error) {
	diligence, err := s.diligenceRepo.FindByID(ctx, diligenceID)
	if err != nil {
		return nil, err
	}
	if diligence == nil {
		return nil, ErrDiligenceNotFound
	}
	if diligence.ClientID != uploaderID {
		return nil, ErrForbidden
	}

	proof := &domain.PaymentProof{
		DiligenceID:  diligenceID,
		PixKey:       pixKey,
		ProofImage:   proofImage,
		Amount:       amount,
		Status:       ProofStatusPendingVerification,
		UploadedByID: uploaderID,
	}
	if err := s.repo.SaveProof(ctx, proof); err != nil {
		return nil, err
	}

	s.notifyAdmins(ctx, "payment_proof_submitted", "Payment proof submitted",
		fmt.Sprintf("A payment proof for diligence %d is awaiting verification", diligenceID),
		map[string]any{"diligence_id": diligenceID, "proof_id": proof.ID})

	zap.L().Info("payment proof submitted",
		zap.Int("diligenceID", diligenceID),
		zap.Int("proofID", proof.ID),
	)
	return proof, nil
}

// VerifyProof decides a proof. Approval clears any prior rejection reason, so
// a rejected proof can be re-verified once the client disputes the rejection;
// only a verified proof is final. The payment row is deliberately not flipped
// here: marking it paid stays a separate admin action, and the verifier is
// reminded of that by notification so the disconnect is never silent.
func (s *Service) VerifyProof(ctx context.Context, proofID int, approved bool, adminID int, reason string) (*domain.PaymentProof, error) {
	if !approved && reason == "" {
		return nil, ErrRejectReasonRequired
	}

	proof, err := s.repo.FindProofByID(ctx, proofID)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, ErrProofNotFound
	}
	if proof.Status == ProofStatusVerified {
		return nil, ErrProofAlreadyDecided
	}

	previousStatus := proof.Status
	if approved {
		proof.Status = ProofStatusVerified
		proof.RejectionReason = ""
	} else {
		proof.Status = ProofStatusRejected
		proof.RejectionReason = reason
	}
	proof.VerifiedByID = &adminID

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateProof(ctx, proof); err != nil {
			return err
		}
		return s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityPaymentProof,
			EntityID:       proof.ID,
			PreviousStatus: previousStatus,
			NewStatus:      proof.Status,
			UserID:         adminID,
			Reason:         reason,
		})
	})
	if err != nil {
		return nil, err
	}

	data := map[string]any{"diligence_id": proof.DiligenceID, "proof_id": proof.ID}
	if approved {
		s.notify(ctx, proof.UploadedByID, "payment_proof_verified", "Payment proof verified",
			"Your payment proof was verified", data)
		s.notify(ctx, adminID, "payment_pending_settlement", "Payment awaiting settlement",
			fmt.Sprintf("Proof %d verified; the client payment for diligence %d is still pending manual settlement", proof.ID, proof.DiligenceID), data)
	} else {
		s.notify(ctx, proof.UploadedByID, "payment_proof_rejected", "Payment proof rejected",
			"Your payment proof was rejected: "+reason, data)
	}

	return proof, nil
}

// MarkPaymentPaid completes a pending payment row and stamps the paid date.
func (s *Service) MarkPaymentPaid(ctx context.Context, paymentID, adminID int) (*domain.Payment, error) {
	payment, err := s.repo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != PaymentStatusPending && payment.Status != PaymentStatusProcessing {
		return nil, ErrPaymentNotPending
	}

	previousStatus := payment.Status
	now := time.Now()
	payment.Status = PaymentStatusCompleted
	payment.PaidDate = &now

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		return s.historyRepo.Save(ctx, &domain.StatusHistory{
			EntityType:     domain.EntityPayment,
			EntityID:       payment.ID,
			PreviousStatus: previousStatus,
			NewStatus:      PaymentStatusCompleted,
			UserID:         adminID,
		})
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *Service) notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) {
	if err := s.notifier.Notify(ctx, userID, ntype, title, message, data); err != nil {
		zap.L().Error("can't send notification", zap.String("type", ntype), zap.Error(err))
	}
}

func (s *Service) notifyAdmins(ctx context.Context, ntype, title, message string, data map[string]any) {
	admins, err := s.userRepo.FindAll(ctx, auth.RoleAdmin, authservice.StatusActive)
	if err != nil {
		zap.L().Error("can't get admins for notification", zap.String("type", ntype), zap.Error(err))
		return
	}
	for _, admin := range admins {
		s.notify(ctx, admin.ID, ntype, title, message, data)
	}
}
