package paymentrepo

import (
	"context"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	paymentColumns = "id, diligence_id, type, amount, status, paid_date, created_at"
	proofColumns   = `id, diligence_id, pix_key, proof_image, amount, status, rejection_reason,
		uploaded_by_id, verified_by_id, created_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.DiligenceID, &p.Type, &p.Amount, &p.Status, &p.PaidDate, &p.CreatedAt)
}

func scanProof(row pgx.Row, p *domain.PaymentProof) error {
	return row.Scan(
		&p.ID, &p.DiligenceID, &p.PixKey, &p.ProofImage, &p.Amount, &p.Status,
		&p.RejectionReason, &p.UploadedByID, &p.VerifiedByID, &p.CreatedAt,
	)
}

func (r *Repository) SavePayment(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (diligence_id, type, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.DiligenceID, p.Type, p.Amount, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPaymentByID(ctx context.Context, id int) (*domain.Payment, error) {
	var p domain.Payment
	err := scanPayment(r.db.QueryRow(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = $1", id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) FindPaymentsByDiligenceID(ctx context.Context, diligenceID int) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments WHERE diligence_id = $1 ORDER BY created_at ASC"
	return r.findPayments(ctx, query, diligenceID)
}

func (r *Repository) FindAllPayments(ctx context.Context) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments ORDER BY diligence_id, created_at ASC"
	return r.findPayments(ctx, query)
}

func (r *Repository) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = $1, paid_date = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, p.Status, p.PaidDate, p.ID)
	if err != nil {
		zap.L().Error("can't update payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveProof(ctx context.Context, p *domain.PaymentProof) error {
	query := `
		INSERT INTO payment_proofs (diligence_id, pix_key, proof_image, amount, status, uploaded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.DiligenceID, p.PixKey, p.ProofImage, p.Amount, p.Status, p.UploadedByID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment proof", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindProofByID(ctx context.Context, id int) (*domain.PaymentProof, error) {
	var p domain.PaymentProof
	err := scanProof(r.db.QueryRow(ctx, "SELECT "+proofColumns+" FROM payment_proofs WHERE id = $1", id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment proof", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindProofsByDiligenceID(ctx context.Context, diligenceID int) ([]domain.PaymentProof, error) {
	query := "SELECT " + proofColumns + " FROM payment_proofs WHERE diligence_id = $1 ORDER BY created_at ASC"
	rows, err := r.db.Query(ctx, query, diligenceID)
	if err != nil {
		zap.L().Error("can't get payment proofs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proofs []domain.PaymentProof
	for rows.Next() {
		var p domain.PaymentProof
		if err := scanProof(rows, &p); err != nil {
			zap.L().Error("can't scan payment proof row", zap.Error(err))
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

func (r *Repository) UpdateProof(ctx context.Context, p *domain.PaymentProof) error {
	query := `
		UPDATE payment_proofs
		SET status = $1, rejection_reason = $2, verified_by_id = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, p.Status, p.RejectionReason, p.VerifiedByID, p.ID)
	if err != nil {
		zap.L().Error("can't update payment proof", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeletePaymentsByDiligenceID(ctx context.Context, diligenceID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payments WHERE diligence_id = $1", diligenceID)
	if err != nil {
		zap.L().Error("can't delete payments", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteProofsByDiligenceID(ctx context.Context, diligenceID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payment_proofs WHERE diligence_id = $1", diligenceID)
	if err != nil {
		zap.L().Error("can't delete payment proofs", zap.Error(err))
		return err
	}
	return nil
}
