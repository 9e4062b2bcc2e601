package repo

import (
	"github.com/fmarques/corresponde/internal/pg"
	attachmentrepo "github.com/fmarques/corresponde/internal/repo/attachment-repo"
	diligencerepo "github.com/fmarques/corresponde/internal/repo/diligence-repo"
	historyrepo "github.com/fmarques/corresponde/internal/repo/history-repo"
	notificationrepo "github.com/fmarques/corresponde/internal/repo/notification-repo"
	paymentrepo "github.com/fmarques/corresponde/internal/repo/payment-repo"
	userrepo "github.com/fmarques/corresponde/internal/repo/user-repo"
	"github.com/fmarques/corresponde/internal/service/attachmentservice"
	"github.com/fmarques/corresponde/internal/service/authservice"
	"github.com/fmarques/corresponde/internal/service/diligenceservice"
	"github.com/fmarques/corresponde/internal/service/financialservice"
	"github.com/fmarques/corresponde/internal/service/notificationservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	DiligenceRepo    diligenceservice.Repo
	PaymentRepo      financialservice.PaymentRepo
	HistoryRepo      diligenceservice.HistoryRepo
	NotificationRepo notificationservice.Repo
	AttachmentRepo   attachmentservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		DiligenceRepo:    diligencerepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn),
		HistoryRepo:      historyrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		AttachmentRepo:   attachmentrepo.New(conn),
	}
}
