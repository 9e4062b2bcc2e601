package diligencerepo

import (
	"context"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const diligenceColumns = `id, protocol, title, description, type, status, priority, value,
		correspondent_value, deadline, client_id, correspondent_id, city, state, reminded,
		created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDiligence(row pgx.Row, d *domain.Diligence) error {
	return row.Scan(
		&d.ID, &d.Protocol, &d.Title, &d.Description, &d.Type, &d.Status, &d.Priority,
		&d.Value, &d.CorrespondentValue, &d.Deadline, &d.ClientID, &d.CorrespondentID,
		&d.City, &d.State, &d.Reminded, &d.CreatedAt, &d.UpdatedAt,
	)
}

func (r *Repository) Save(ctx context.Context, d *domain.Diligence) error {
	query := `
		INSERT INTO diligences (protocol, title, description, type, status, priority, value,
			correspondent_value, deadline, client_id, correspondent_id, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		d.Protocol, d.Title, d.Description, d.Type, d.Status, d.Priority, d.Value,
		d.CorrespondentValue, d.Deadline, d.ClientID, d.CorrespondentID, d.City, d.State,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save diligence", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Diligence, error) {
	var d domain.Diligence
	err := scanDiligence(r.db.QueryRow(ctx, "SELECT "+diligenceColumns+" FROM diligences WHERE id = $1", id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find diligence", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Diligence, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get diligences", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var diligences []domain.Diligence
	for rows.Next() {
		var d domain.Diligence
		if err := scanDiligence(rows, &d); err != nil {
			zap.L().Error("can't scan diligence row", zap.Error(err))
			return nil, err
		}
		diligences = append(diligences, d)
	}
	return diligences, nil
}

func (r *Repository) FindByClientID(ctx context.Context, clientID int, status string) ([]domain.Diligence, error) {
	query := `
		SELECT ` + diligenceColumns + `
		FROM diligences
		WHERE client_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	return r.findMany(ctx, query, clientID, status)
}

func (r *Repository) FindByCorrespondentID(ctx context.Context, correspondentID int, status string) ([]domain.Diligence, error) {
	query := `
		SELECT ` + diligenceColumns + `
		FROM diligences
		WHERE correspondent_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	return r.findMany(ctx, query, correspondentID, status)
}

func (r *Repository) FindAll(ctx context.Context, status string) ([]domain.Diligence, error) {
	query := `
		SELECT ` + diligenceColumns + `
		FROM diligences
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`
	return r.findMany(ctx, query, status)
}

func (r *Repository) Update(ctx context.Context, d *domain.Diligence) error {
	query := `
		UPDATE diligences
		SET title = $1, description = $2, priority = $3, value = $4,
			correspondent_value = $5, deadline = $6, updated_at = now()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		d.Title, d.Description, d.Priority, d.Value, d.CorrespondentValue, d.Deadline, d.ID,
	)
	if err != nil {
		zap.L().Error("can't update diligence", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus moves the row to the destination status only when it still is
// in the expected one, so two concurrent transitions cannot both win.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
		UPDATE diligences
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update diligence status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Assign(ctx context.Context, id, correspondentID int, from string) (bool, error) {
	query := `
		UPDATE diligences
		SET correspondent_id = $1, status = 'assigned', updated_at = now()
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, correspondentID, id, from)
	if err != nil {
		zap.L().Error("can't assign diligence", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ClearCorrespondent(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE diligences SET correspondent_id = NULL, updated_at = now() WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't clear diligence correspondent", zap.Error(err))
		return err
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM diligences WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete diligence", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindForReminder(ctx context.Context, before time.Time, limit uint32) ([]domain.Diligence, error) {
	query := `
		SELECT ` + diligenceColumns + `
		FROM diligences
		WHERE status IN ('assigned', 'in_progress')
			AND deadline IS NOT NULL AND deadline <= $1
			AND NOT reminded
		ORDER BY deadline ASC
		LIMIT $2
	`
	return r.findMany(ctx, query, before, int(limit))
}

func (r *Repository) MarkReminded(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE diligences SET reminded = TRUE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't mark diligence reminded", zap.Error(err))
		return err
	}
	return nil
}
