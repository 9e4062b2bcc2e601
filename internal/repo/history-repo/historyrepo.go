package historyrepo

import (
	"context"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save appends one audit row. History rows are never updated or deleted.
func (r *Repository) Save(ctx context.Context, h *domain.StatusHistory) error {
	query := `
		INSERT INTO status_history (entity_type, entity_id, previous_status, new_status, user_id, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		h.EntityType, h.EntityID, h.PreviousStatus, h.NewStatus, h.UserID, h.Reason,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		zap.L().Error("can't save status history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByEntity(ctx context.Context, entityType string, entityID int) ([]domain.StatusHistory, error) {
	query := `
		SELECT id, entity_type, entity_id, previous_status, new_status, user_id, reason, created_at
		FROM status_history
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, entityType, entityID)
	if err != nil {
		zap.L().Error("can't get status history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.StatusHistory
	for rows.Next() {
		var h domain.StatusHistory
		err := rows.Scan(&h.ID, &h.EntityType, &h.EntityID, &h.PreviousStatus, &h.NewStatus, &h.UserID, &h.Reason, &h.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan status history row", zap.Error(err))
			return nil, err
		}
		history = append(history, h)
	}
	return history, nil
}
