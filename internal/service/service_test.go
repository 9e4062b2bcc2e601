package service

import (
	"testing"

	"github.com/fmarques/corresponde/internal/pg"
	"github.com/fmarques/corresponde/internal/repo"
	"github.com/fmarques/corresponde/internal/service/attachmentservice"
	"github.com/fmarques/corresponde/internal/service/authservice"
	"github.com/fmarques/corresponde/internal/service/diligenceservice"
	"github.com/fmarques/corresponde/internal/service/financialservice"
	"github.com/fmarques/corresponde/internal/service/notificationservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockDiligenceRepo := diligenceservice.NewMockRepo(ctrl)
	mockPaymentRepo := financialservice.NewMockPaymentRepo(ctrl)
	mockHistoryRepo := diligenceservice.NewMockHistoryRepo(ctrl)
	mockNotificationRepo := notificationservice.NewMockRepo(ctrl)
	mockAttachmentRepo := attachmentservice.NewMockRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		UserRepo:         mockUserRepo,
		DiligenceRepo:    mockDiligenceRepo,
		PaymentRepo:      mockPaymentRepo,
		HistoryRepo:      mockHistoryRepo,
		NotificationRepo: mockNotificationRepo,
		AttachmentRepo:   mockAttachmentRepo,
	}

	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.DiligenceService)
	assert.NotNil(t, services.FinancialService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.AttachmentService)
}
