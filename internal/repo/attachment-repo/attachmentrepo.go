package attachmentrepo

import (
	"context"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const attachmentColumns = "id, diligence_id, name, url, storage_key, type, size, uploaded_by_id, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAttachment(row pgx.Row, a *domain.Attachment) error {
	return row.Scan(&a.ID, &a.DiligenceID, &a.Name, &a.URL, &a.StorageKey, &a.Type, &a.Size, &a.UploadedByID, &a.CreatedAt)
}

func (r *Repository) Save(ctx context.Context, a *domain.Attachment) error {
	query := `
		INSERT INTO attachments (diligence_id, name, url, storage_key, type, size, uploaded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		a.DiligenceID, a.Name, a.URL, a.StorageKey, a.Type, a.Size, a.UploadedByID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		zap.L().Error("can't save attachment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Attachment, error) {
	var a domain.Attachment
	err := scanAttachment(r.db.QueryRow(ctx, "SELECT "+attachmentColumns+" FROM attachments WHERE id = $1", id), &a)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find attachment", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByDiligenceID(ctx context.Context, diligenceID int) ([]domain.Attachment, error) {
	query := "SELECT " + attachmentColumns + " FROM attachments WHERE diligence_id = $1 ORDER BY created_at ASC"
	rows, err := r.db.Query(ctx, query, diligenceID)
	if err != nil {
		zap.L().Error("can't get attachments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := scanAttachment(rows, &a); err != nil {
			zap.L().Error("can't scan attachment row", zap.Error(err))
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM attachments WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete attachment", zap.Error(err))
		return err
	}
	return nil
}
