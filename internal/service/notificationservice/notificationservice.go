package notificationservice

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fmarques/corresponde/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notificationservice.go -destination=notificationservice_mock.go -package=notificationservice

var ErrNotificationNotFound = errors.New("notification not found")

type Repo interface {
	Save(ctx context.Context, n *domain.Notification) error
	FindByUserID(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Notify stores one notification row. Delivery is whatever the store gives
// us; there is no retry or queueing on top.
func (s *Service) Notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) error {
	payload := []byte("{}")
	if len(data) > 0 {
		var err error
		payload, err = json.Marshal(data)
		if err != nil {
			zap.L().Error("can't marshal notification data", zap.Error(err))
			return err
		}
	}

	return s.repo.Save(ctx, &domain.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    payload,
	})
}

func (s *Service) List(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID, unreadOnly)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) error {
	return s.repo.MarkAllRead(ctx, userID)
}
