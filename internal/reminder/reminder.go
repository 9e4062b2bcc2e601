package reminder

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fmarques/corresponde/internal/config"
	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/service/diligenceservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	NotificationDeadlineApproaching = "deadline_approaching"
	NotificationDeadlineOverdue     = "deadline_overdue"
)

var remindingDiligences sync.Map

type Notifier interface {
	Notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) error
}

// Service sweeps active diligences whose deadline falls inside the
// configured window and notifies the participants once per diligence.
type Service struct {
	diligenceRepo diligenceservice.Repo
	notifier      Notifier
	limit         uint32
	window        time.Duration
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, diligenceRepo diligenceservice.Repo, notifier Notifier) *Service {
	return &Service{
		diligenceRepo: diligenceRepo,
		notifier:      notifier,
		limit:         1000,
		window:        cfg.ReminderWindow,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.ReminderInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reminder service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(s.window)
	diligences, err := s.diligenceRepo.FindForReminder(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch diligences for reminding", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, diligence := range diligences {
		diligence := diligence

		if _, loaded := remindingDiligences.LoadOrStore(diligence.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer remindingDiligences.Delete(diligence.ID)
				return s.remind(ctx, diligence)
			})
			if err != nil {
				remindingDiligences.Delete(diligence.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reminding diligences", zap.Error(err))
	}
}

func (s *Service) remind(ctx context.Context, diligence domain.Diligence) error {
	if diligence.Deadline == nil || diligence.CorrespondentID == nil {
		return nil
	}

	overdue := diligence.Deadline.Before(time.Now())
	data := map[string]any{
		"diligence_id": diligence.ID,
		"protocol":     diligence.Protocol,
		"deadline":     diligence.Deadline.Format(time.RFC3339),
	}

	ntype := NotificationDeadlineApproaching
	message := fmt.Sprintf("Diligence %s is due at %s", diligence.Protocol, diligence.Deadline.Format(time.RFC3339))
	if overdue {
		ntype = NotificationDeadlineOverdue
		message = fmt.Sprintf("Diligence %s missed its deadline %s", diligence.Protocol, diligence.Deadline.Format(time.RFC3339))
	}

	if err := s.notifier.Notify(ctx, *diligence.CorrespondentID, ntype, "Deadline reminder", message, data); err != nil {
		return fmt.Errorf("failed to notify correspondent %d: %w", *diligence.CorrespondentID, err)
	}
	if overdue {
		if err := s.notifier.Notify(ctx, diligence.ClientID, ntype, "Deadline reminder", message, data); err != nil {
			return fmt.Errorf("failed to notify client %d: %w", diligence.ClientID, err)
		}
	}

	if err := s.diligenceRepo.MarkReminded(ctx, diligence.ID); err != nil {
		return fmt.Errorf("failed to mark diligence %d reminded: %w", diligence.ID, err)
	}

	zap.L().Info("Deadline reminder sent",
		zap.Int("diligenceID", diligence.ID),
		zap.String("protocol", diligence.Protocol),
		zap.Bool("overdue", overdue),
	)
	return nil
}
