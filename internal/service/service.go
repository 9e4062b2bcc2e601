package service

import (
	"github.com/fmarques/corresponde/internal/handlers/attachments"
	"github.com/fmarques/corresponde/internal/handlers/auth"
	"github.com/fmarques/corresponde/internal/handlers/diligences"
	"github.com/fmarques/corresponde/internal/handlers/financial"
	"github.com/fmarques/corresponde/internal/handlers/notifications"
	"github.com/fmarques/corresponde/internal/handlers/users"

	pkgauth "github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/clients"

	"github.com/fmarques/corresponde/internal/pg"
	"github.com/fmarques/corresponde/internal/repo"
	attachmentservice "github.com/fmarques/corresponde/internal/service/attachmentservice"
	authservice "github.com/fmarques/corresponde/internal/service/authservice"
	diligenceservice "github.com/fmarques/corresponde/internal/service/diligenceservice"
	financialservice "github.com/fmarques/corresponde/internal/service/financialservice"
	notificationservice "github.com/fmarques/corresponde/internal/service/notificationservice"
)

type Services struct {
	AuthService         auth.Service
	UserService         users.Service
	DiligenceService    diligences.Service
	FinancialService    financial.Service
	NotificationService notifications.Service
	AttachmentService   attachments.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	notificationService := notificationservice.New(repo.NotificationRepo)
	financialService := financialservice.New(repo.PaymentRepo, repo.DiligenceRepo, repo.HistoryRepo, repo.UserRepo, notificationService, txManager)
	diligenceService := diligenceservice.New(repo.DiligenceRepo, repo.UserRepo, repo.HistoryRepo, financialService, notificationService, txManager)
	authService := authservice.New(repo.UserRepo, repo.HistoryRepo, notificationService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	attachmentService := attachmentservice.New(repo.AttachmentRepo, repo.DiligenceRepo, clients.NewHTTPClient())

	return &Services{
		AuthService:         authService,
		UserService:         authService,
		DiligenceService:    diligenceService,
		FinancialService:    financialService,
		NotificationService: notificationService,
		AttachmentService:   attachmentService,
	}
}
