package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var (
	paymentRows = []string{"id", "diligence_id", "type", "amount", "status", "paid_date", "created_at"}
	proofRows   = []string{"id", "diligence_id", "pix_key", "proof_image", "amount", "status",
		"rejection_reason", "uploaded_by_id", "verified_by_id", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_SavePayment(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		payment   *domain.Payment
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Save payment successfully",
			payment: &domain.Payment{DiligenceID: 1, Type: "client_payment", Amount: 100.0, Status: "pending"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery("INSERT INTO payments (.+) RETURNING id, created_at").
					WithArgs(1, "client_payment", 100.0, "pending").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			payment: &domain.Payment{DiligenceID: 1, Type: "client_payment", Amount: 100.0, Status: "pending"},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO payments (.+) RETURNING id, created_at").
					WithArgs(1, "client_payment", 100.0, "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SavePayment(context.Background(), tt.payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.payment.ID)
			}
		})
	}
}

func TestRepository_FindPaymentByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Payment
	}{
		{
			name: "Payment exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRows).
					AddRow(1, 2, "client_payment", 100.0, "pending", (*time.Time)(nil), timeNow)
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE id = \\$1").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Payment{
				ID: 1, DiligenceID: 2, Type: "client_payment", Amount: 100.0,
				Status: "pending", CreatedAt: timeNow,
			},
		},
		{
			name: "Payment does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE id = \\$1").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE id = \\$1").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPaymentByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPaymentsByDiligenceID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Payment
	}{
		{
			name: "Payments found",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRows).
					AddRow(1, 2, "client_payment", 100.0, "pending", (*time.Time)(nil), timeNow).
					AddRow(2, 2, "correspondent_payment", 70.0, "pending", (*time.Time)(nil), timeNow)
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE diligence_id = \\$1").
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Payment{
				{ID: 1, DiligenceID: 2, Type: "client_payment", Amount: 100.0, Status: "pending", CreatedAt: timeNow},
				{ID: 2, DiligenceID: 2, Type: "correspondent_payment", Amount: 70.0, Status: "pending", CreatedAt: timeNow},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE diligence_id = \\$1").
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRows).
					AddRow(1, 2, "client_payment", "invalid_value", "pending", (*time.Time)(nil), timeNow)
				mock.ExpectQuery("SELECT (.+) FROM payments WHERE diligence_id = \\$1").
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPaymentsByDiligenceID(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdatePayment(t *testing.T) {
	repo, mock := NewMock(t)
	paidDate := time.Now()

	mock.ExpectExec("UPDATE payments\\s+SET status = \\$1, paid_date = \\$2").
		WithArgs("completed", &paidDate, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	err := repo.UpdatePayment(context.Background(), &domain.Payment{ID: 1, Status: "completed", PaidDate: &paidDate})
	assert.NoError(t, err)

	mock.ExpectExec("UPDATE payments\\s+SET status = \\$1, paid_date = \\$2").
		WithArgs("completed", &paidDate, 1).
		WillReturnError(errors.New("database error"))
	err = repo.UpdatePayment(context.Background(), &domain.Payment{ID: 1, Status: "completed", PaidDate: &paidDate})
	assert.Error(t, err)
}

func TestRepository_SaveProof(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		proof     *domain.PaymentProof
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save proof successfully",
			proof: &domain.PaymentProof{
				DiligenceID: 2, PixKey: "52998224725", ProofImage: "https://files.example.com/proof.png",
				Amount: 100.0, Status: "pending_verification", UploadedByID: 10,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery("INSERT INTO payment_proofs (.+) RETURNING id, created_at").
					WithArgs(2, "52998224725", "https://files.example.com/proof.png", 100.0, "pending_verification", 10).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			proof: &domain.PaymentProof{
				DiligenceID: 2, PixKey: "52998224725", ProofImage: "https://files.example.com/proof.png",
				Amount: 100.0, Status: "pending_verification", UploadedByID: 10,
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO payment_proofs (.+) RETURNING id, created_at").
					WithArgs(2, "52998224725", "https://files.example.com/proof.png", 100.0, "pending_verification", 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SaveProof(context.Background(), tt.proof)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.proof.ID)
			}
		})
	}
}

func TestRepository_FindProofByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.PaymentProof
	}{
		{
			name: "Proof exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(proofRows).
					AddRow(1, 2, "52998224725", "https://files.example.com/proof.png", 100.0,
						"pending_verification", "", 10, (*int)(nil), timeNow)
				mock.ExpectQuery("SELECT (.+) FROM payment_proofs WHERE id = \\$1").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.PaymentProof{
				ID: 1, DiligenceID: 2, PixKey: "52998224725",
				ProofImage: "https://files.example.com/proof.png", Amount: 100.0,
				Status: "pending_verification", UploadedByID: 10, CreatedAt: timeNow,
			},
		},
		{
			name: "Proof does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payment_proofs WHERE id = \\$1").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindProofByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateProof(t *testing.T) {
	repo, mock := NewMock(t)
	adminID := 3

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, rejection_reason = $2, verified_by_id = $3")).
		WithArgs("verified", "", &adminID, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	err := repo.UpdateProof(context.Background(), &domain.PaymentProof{ID: 1, Status: "verified", VerifiedByID: &adminID})
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, rejection_reason = $2, verified_by_id = $3")).
		WithArgs("rejected", "amount mismatch", &adminID, 1).
		WillReturnError(errors.New("database error"))
	err = repo.UpdateProof(context.Background(), &domain.PaymentProof{ID: 1, Status: "rejected", RejectionReason: "amount mismatch", VerifiedByID: &adminID})
	assert.Error(t, err)
}

func TestRepository_DeletePaymentsByDiligenceID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE diligence_id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	assert.NoError(t, repo.DeletePaymentsByDiligenceID(context.Background(), 10))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE diligence_id = $1")).
		WithArgs(10).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.DeletePaymentsByDiligenceID(context.Background(), 10))
}

func TestRepository_DeleteProofsByDiligenceID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payment_proofs WHERE diligence_id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.DeleteProofsByDiligenceID(context.Background(), 10))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payment_proofs WHERE diligence_id = $1")).
		WithArgs(10).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.DeleteProofsByDiligenceID(context.Background(), 10))
}
